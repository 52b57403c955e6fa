package bspline

import (
	"github.com/phil-mansfield/gointerp"
)

// Knots is a non-decreasing knot vector.
type Knots []float64

func (U Knots) Clone() Knots {
	return append(Knots(nil), U...)
}

// NonDecreasing reports whether U[i] <= U[i+1] for every i.
func (U Knots) NonDecreasing() bool {
	for i := 1; i < len(U); i++ {
		if U[i] < U[i-1] { return false }
	}
	return true
}

// Clamped reports whether the first and last degree+1 knots are each
// repeated, to within tol.
func (U Knots) Clamped(degree int, tol float64) bool {
	if len(U) < 2*(degree+1) { return false }

	lo, hi := U[0], U[len(U)-1]
	for i := 0; i <= degree; i++ {
		if U[i]-lo > tol || hi-U[len(U)-1-i] > tol { return false }
	}
	return true
}

// Domain returns the parameter range over which a curve of the given degree
// is defined.
func (U Knots) Domain(degree int) (lo, hi float64) {
	return U[degree], U[len(U)-degree-1]
}

// Span returns the index s of the knot interval U[s] <= t < U[s+1] which
// contains t. Parameters at or past the end of the domain are placed in the
// last non-empty interval and parameters before it in the first.
//
// (Algorithm A2.1 from The NURBS Book, Piegl & Tiller.)
func (U Knots) Span(degree int, t float64) int {
	n := len(U) - degree - 2

	if t >= U[n+1] { return n }
	if t < U[degree] { return degree }

	low, high := degree, n+1
	mid := (low + high) / 2

	for t < U[mid] || t >= U[mid+1] {
		if t < U[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}

	return mid
}

// lastInterval returns the index of the last non-empty knot interval.
func (U Knots) lastInterval() int {
	for i := len(U) - 2; i >= 0; i-- {
		if U[i] < U[i+1] { return i }
	}
	return len(U) - 2
}

// GenerateKnotVector returns the clamped knot vector of length n+p+1 for n
// control points of degree p. The first p+1 knots are 0, the last p+1 are 1
// and the interior knots average p consecutive parameters,
//
//     U[j+p] = (t[j] + ... + t[j+p-1]) / p,   j = 1 .. n-p-1.
//
// This puts every t[i] inside the support of N[i], so the collocation matrix
// is non-singular with fewer than p non-zero elements on either side of the
// diagonal. t must already be normalized to [0, 1] and non-decreasing.
func GenerateKnotVector(n, p int, t []float64) (Knots, error) {
	if len(t) != n {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"%d parameters given for %d control points", len(t), n)
	} else if p < 1 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"cannot average knots for degree %d", p)
	} else if n < p+1 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"need at least %d control points for degree %d, but have %d",
			p+1, p, n)
	}
	for i := 1; i < n; i++ {
		if t[i] < t[i-1] {
			return nil, gointerp.Errorf(gointerp.InputMismatch,
				"parameter %d (%g) is smaller than parameter %d (%g)",
				i, t[i], i-1, t[i-1])
		}
	}

	U := make(Knots, n+p+1)
	for j := 1; j <= n-p-1; j++ {
		sum := 0.0
		for i := j; i < j+p; i++ { sum += t[i] }
		U[j+p] = sum / float64(p)
	}
	for i := n; i < len(U); i++ {
		U[i] = 1
	}

	return U, nil
}
