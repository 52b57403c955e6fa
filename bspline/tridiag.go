package bspline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

// SolveTridiagonal solves the system of equations
//
// | d0 u0 ..       |   | x0 |   | r0 |
// | s1 d1 u1 ..    |   | x1 |   | r1 |
// | ..             | * | .. | = | .. |
// | ..       sn dn |   | xn |   | rn |
//
// for x0 .. xn with the Thomas algorithm, where each r and x is a point.
// sub[0] and sup[n] are ignored. If a pivot of the forward elimination is
// smaller than tol in magnitude, an error of kind SingularSystem is returned
// and no solution is.
func SolveTridiagonal(
	sub, diag, sup []float64, rhs []r3.Vec, tol float64,
) ([]r3.Vec, error) {
	n := len(diag)
	if len(sub) != n || len(sup) != n || len(rhs) != n {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"tridiagonal bands have lengths %d, %d, %d and the RHS has %d",
			len(sub), n, len(sup), len(rhs))
	}
	if n == 0 { return []r3.Vec{}, nil }

	cs := make([]float64, n)
	xs := make([]r3.Vec, n)

	m := diag[0]
	if math.Abs(m) < tol { return nil, singularPivot(0, m) }
	cs[0] = sup[0] / m
	xs[0] = r3.Scale(1/m, rhs[0])

	for i := 1; i < n; i++ {
		m = diag[i] - sub[i]*cs[i-1]
		if math.Abs(m) < tol { return nil, singularPivot(i, m) }

		if i < n-1 { cs[i] = sup[i] / m }
		xs[i] = r3.Scale(1/m, r3.Sub(rhs[i], r3.Scale(sub[i], xs[i-1])))
	}

	for i := n - 2; i >= 0; i-- {
		xs[i] = r3.Sub(xs[i], r3.Scale(cs[i], xs[i+1]))
	}

	return xs, nil
}

func singularPivot(i int, m float64) error {
	return gointerp.Errorf(gointerp.SingularSystem,
		"Thomas algorithm pivot %d is %g, the matrix is singular", i, m)
}

// SolveBanded solves A * x = rhs for a square matrix with w sub-diagonals
// and w super-diagonals. band[i] has length 2w+1 and band[i][k] is the
// element of row i in column i-w+k. Elements which fall outside the matrix
// are ignored.
//
// Elimination is done without pivoting, which is stable for the totally
// positive matrices given by B-spline collocation. If a pivot is smaller than
// tol in magnitude, an error of kind SingularSystem is returned. band and rhs
// are not modified.
func SolveBanded(
	band [][]float64, w int, rhs []r3.Vec, tol float64,
) ([]r3.Vec, error) {
	n := len(band)
	if len(rhs) != n || w < 0 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"band matrix has %d rows and half-width %d, but the RHS has %d",
			n, w, len(rhs))
	}
	for i := range band {
		if len(band[i]) != 2*w+1 {
			return nil, gointerp.Errorf(gointerp.InputMismatch,
				"row %d of the band has %d elements, not %d",
				i, len(band[i]), 2*w+1)
		}
	}

	a := make([][]float64, n)
	for i := range a { a[i] = append([]float64(nil), band[i]...) }
	xs := append([]r3.Vec(nil), rhs...)

	for i := 0; i < n; i++ {
		m := a[i][w]
		if math.Abs(m) < tol {
			return nil, gointerp.Errorf(gointerp.SingularSystem,
				"band elimination pivot %d is %g, the matrix is singular", i, m)
		}

		last := min(n-1, i+w)
		for r := i + 1; r <= last; r++ {
			f := a[r][i-r+w] / m
			if f == 0 { continue }
			for c := i; c <= last; c++ {
				a[r][c-r+w] -= f * a[i][c-i+w]
			}
			xs[r] = r3.Sub(xs[r], r3.Scale(f, xs[i]))
		}
	}

	for i := n - 1; i >= 0; i-- {
		x := xs[i]
		for c := i + 1; c <= min(n-1, i+w); c++ {
			x = r3.Sub(x, r3.Scale(a[i][c-i+w], xs[c]))
		}
		xs[i] = r3.Scale(1/a[i][w], x)
	}

	return xs, nil
}
