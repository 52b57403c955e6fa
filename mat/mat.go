package mat

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

// Matrix is a dense, row-major matrix.
type Matrix struct {
	Vals []float64
	Width, Height int
}

// LUFactors is the full-pivot LU factorization P * M * Q = L * U of a square
// matrix. L has a unit diagonal and is stored below the diagonal of lu, U is
// stored on and above it.
type LUFactors struct {
	lu Matrix
	// rowPivot[i] is the row of M which was moved to row i, colPivot[j] is
	// the column of M which was moved to column j.
	rowPivot, colPivot []int
}

func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width * height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Zeros returns a height x width matrix of zeros.
func Zeros(width, height int) *Matrix {
	return NewMatrix(make([]float64, width*height), width, height)
}

func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width + j] }
func (m *Matrix) Set(i, j int, x float64) { m.Vals[i*m.Width + j] = x }

// maxAbs returns the largest absolute value in m.
func (m *Matrix) maxAbs() float64 {
	max := 0.0
	for _, x := range m.Vals {
		if tmp := math.Abs(x); tmp > max { max = tmp }
	}
	return max
}

func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.rowPivot = make([]int, n)
	luf.colPivot = make([]int, n)

	return luf
}

// LU computes the full-pivot LU factorization of m. If a pivot is smaller
// than tol times the largest entry of m, the matrix is treated as singular
// and an error of kind SingularSystem is returned.
func (m *Matrix) LU(tol float64) (*LUFactors, error) {
	if m.Width != m.Height { panic("m is non-square.") }

	lu := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(lu, tol); err != nil {
		return nil, err
	}
	return lu, nil
}

// LUFactorsAt is LU, but writes its factorization into luf.
func (m *Matrix) LUFactorsAt(luf *LUFactors, tol float64) error {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	lu := luf.lu.Vals
	copy(lu, m.Vals)
	for i := 0; i < n; i++ {
		luf.rowPivot[i], luf.colPivot[i] = i, i
	}

	scale := m.maxAbs()
	if scale == 0 {
		return gointerp.Errorf(gointerp.SingularSystem, "matrix is all zeros")
	}

	for k := 0; k < n; k++ {
		// Search the whole trailing submatrix for the pivot.
		max, maxi, maxj := -1.0, k, k
		for i := k; i < n; i++ {
			iOffset := i*n
			for j := k; j < n; j++ {
				if tmp := math.Abs(lu[iOffset + j]); tmp > max {
					max, maxi, maxj = tmp, i, j
				}
			}
		}

		if max < tol*scale {
			return gointerp.Errorf(gointerp.SingularSystem,
				"LU pivot %d of %d is %g, below %g", k+1, n, max, tol*scale)
		}

		if maxi != k {
			kOffset, maxiOffset := n*k, n*maxi
			for j := 0; j < n; j++ {
				idx1, idx2 := kOffset + j, maxiOffset + j
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			luf.rowPivot[k], luf.rowPivot[maxi] = luf.rowPivot[maxi], luf.rowPivot[k]
		}
		if maxj != k {
			for i := 0; i < n; i++ {
				idx1, idx2 := i*n + k, i*n + maxj
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			luf.colPivot[k], luf.colPivot[maxj] = luf.colPivot[maxj], luf.colPivot[k]
		}

		kOffset := k*n
		for i := k + 1; i < n; i++ {
			iOffset := i*n
			lu[iOffset + k] /= lu[kOffset + k]
			tmp := lu[iOffset + k]
			for j := k + 1; j < n; j++ {
				lu[iOffset + j] -= tmp * lu[kOffset + j]
			}
		}
	}

	return nil
}

// N returns the number of rows in the factored matrix.
func (luf *LUFactors) N() int { return luf.lu.Width }

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	lu := luf.lu.Vals
	ys := make([]float64, n)
	for i := range ys { ys[i] = bs[luf.rowPivot[i]] }

	// Solve L * z = P * b for z.
	forwardSubst(n, lu, ys)
	// Solve U * w = z for w.
	backSubst(n, lu, ys)

	for j := range ys { xs[luf.colPivot[j]] = ys[j] }
}

// SolvePoints solves M * xs = pts for xs, one coordinate at a time.
func (luf *LUFactors) SolvePoints(pts []r3.Vec) []r3.Vec {
	n := luf.lu.Width
	if n != len(pts) { panic("len(pts) != luf.Width") }

	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	luf.SolveVector(xs, xs)
	luf.SolveVector(ys, ys)
	luf.SolveVector(zs, zs)

	out := make([]r3.Vec, n)
	for i := range out {
		out[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return out
}

// Solves L * y = b for y in place, where L has a unit diagonal.
func forwardSubst(n int, lu, ys []float64) {
	for i := 1; i < n; i++ {
		sum := ys[i]
		iOffset := i*n
		for j := 0; j < i; j++ {
			sum -= lu[iOffset + j] * ys[j]
		}
		ys[i] = sum
	}
}

// Solves U * x = y for x in place.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, ys []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := ys[i]
		iOffset := n * i
		for j := i + 1; j < n; j++ {
			sum -= lu[iOffset + j] * ys[j]
		}
		ys[i] = sum / lu[iOffset + i]
	}
}
