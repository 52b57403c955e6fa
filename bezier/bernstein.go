package bezier

import (
	"math"
)

// Binomial returns n choose k as a float64. It is computed iteratively so
// that it does not overflow for the degrees used by surface patches.
func Binomial(n, k int) float64 {
	if k < 0 || k > n { return 0 }
	if k > n-k { k = n - k }

	combo := 1.0
	for j := 1; j <= k; j++ {
		combo = combo * float64(n-k+j) / float64(j)
	}
	return combo
}

// Bernstein returns the Bernstein polynomial B(i, n, u) =
// C(n, i) u^i (1-u)^(n-i). u is clamped to [0, 1].
func Bernstein(i, n int, u float64) float64 {
	if u < 0 { u = 0 }
	if u > 1 { u = 1 }
	return Binomial(n, i) * math.Pow(u, float64(i)) * math.Pow(1-u, float64(n-i))
}

// bernsteinAll returns B(i, n, u) for i = 0 .. n.
func bernsteinAll(n int, u float64) []float64 {
	bs := make([]float64, n+1)
	for i := range bs { bs[i] = Bernstein(i, n, u) }
	return bs
}
