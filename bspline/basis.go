package bspline

// Basis evaluates the B-spline basis function N[i,p](t) over the knots U with
// the Cox-de Boor recurrence.
//
// A term of the recurrence whose knot-span denominator is at most tol
// contributes zero. This is how the repeated knots at the ends of a clamped
// vector are handled. The degree 0 functions are 1 on the half-open interval
// [U[i], U[i+1]) and the last non-empty interval also includes its right
// end, so that the basis is well defined at the end of the domain.
//
// The recurrence is not memoized: the cost is O(2^p) per call.
func Basis(i, p int, t float64, U Knots, tol float64) float64 {
	if p == 0 {
		if U[i] <= t && t < U[i+1] { return 1 }
		if t == U[i+1] && i == U.lastInterval() { return 1 }
		return 0
	}

	var left, right float64

	if denom := U[i+p] - U[i]; denom > tol {
		left = (t - U[i]) / denom * Basis(i, p-1, t, U, tol)
	}
	if denom := U[i+p+1] - U[i+1]; denom > tol {
		right = (U[i+p+1] - t) / denom * Basis(i+1, p-1, t, U, tol)
	}

	return left + right
}

// NonZeroBasis returns the index of the first basis function of degree p
// which can be non-zero at t, along with the values of the p+1 functions
// starting there.
func NonZeroBasis(p int, t float64, U Knots, tol float64) (first int, vals []float64) {
	s := U.Span(p, t)
	first = s - p

	vals = make([]float64, p+1)
	for k := range vals {
		vals[k] = Basis(first+k, p, t, U, tol)
	}
	return first, vals
}

// BasisAll returns N[i,p](t) for every control point index i.
func BasisAll(p int, t float64, U Knots, tol float64) []float64 {
	out := make([]float64, len(U)-p-1)
	first, vals := NonZeroBasis(p, t, U, tol)
	copy(out[first:], vals)
	return out
}
