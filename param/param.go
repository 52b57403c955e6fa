/*package param computes the parameter values at which an interpolating curve
or surface passes through its data points.
*/
package param

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

const (
	// ChordAlpha is the exponent which gives standard chord length spacing.
	ChordAlpha = 1.0
	// CentripetalAlpha is the exponent which gives centripetal spacing.
	CentripetalAlpha = 0.5
)

// Uniform returns count values evenly spaced in [0, 1]. It returns nil if
// count is not positive.
func Uniform(count int) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{0}
	}

	us := floats.Span(make([]float64, count), 0, 1)
	us[count-1] = 1
	return us
}

// ChordLength computes parameters from the distances between consecutive
// points, each raised to alpha. alpha = 1 is chord length spacing and
// alpha = 0.5 is centripetal spacing. If the points have (near-)zero total
// length, uniform spacing is returned instead.
func ChordLength(points []r3.Vec, alpha float64) []float64 {
	return ChordLengthTol(points, alpha, gointerp.DefaultEps)
}

// ChordLengthTol is ChordLength with an explicit zero-length tolerance.
func ChordLengthTol(points []r3.Vec, alpha, tol float64) []float64 {
	n := len(points)
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []float64{0}
	}

	// steps[0] stays zero so that the prefix sums start at 0.
	steps := make([]float64, n)
	for i := 1; i < n; i++ {
		d := r3.Norm(r3.Sub(points[i], points[i-1]))
		steps[i] = math.Pow(d, alpha)
	}

	us := floats.CumSum(make([]float64, n), steps)
	total := us[n-1]
	if total < tol { return Uniform(n) }

	floats.Scale(1/total, us)
	us[n-1] = 1
	return us
}

// Normalize rescales values affinely so that their minimum maps to 0 and
// their maximum maps to 1. values is not modified. An error of kind
// DegenerateParametrization is returned if the values span less than tol.
func Normalize(values []float64, tol float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, gointerp.Errorf(gointerp.DegenerateParametrization,
			"cannot normalize an empty parameter list")
	}

	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span < tol {
		return nil, gointerp.Errorf(gointerp.DegenerateParametrization,
			"parameters span [%g, %g], which is narrower than %g", lo, hi, tol)
	}

	out := make([]float64, len(values))
	// (hi - lo) / span is exactly 1, so the maximum needs no special case.
	for i, x := range values {
		out[i] = (x - lo) / span
	}
	return out, nil
}

// Method selects how parameters are assigned along one axis of a grid.
type Method int

const (
	ChordLengthMethod Method = iota
	UniformMethod
	CentripetalMethod
)

func (m Method) String() string {
	switch m {
	case ChordLengthMethod:
		return "ChordLength"
	case UniformMethod:
		return "Uniform"
	case CentripetalMethod:
		return "Centripetal"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a (case-insensitive) method name to a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "chordlength", "chord":
		return ChordLengthMethod, nil
	case "uniform":
		return UniformMethod, nil
	case "centripetal":
		return CentripetalMethod, nil
	}
	return 0, fmt.Errorf(
		"Parametrization method must be one of [ChordLength | Uniform | " +
			"Centripetal]. '%s' is not recognized.", s,
	)
}

// Alpha returns the chord exponent used by the method. It is zero for
// UniformMethod.
func (m Method) Alpha() float64 {
	switch m {
	case ChordLengthMethod:
		return ChordAlpha
	case CentripetalMethod:
		return CentripetalAlpha
	}
	return 0
}

// Params computes the parameters of a single point sequence.
func (m Method) Params(points []r3.Vec, tol float64) []float64 {
	if m == UniformMethod { return Uniform(len(points)) }
	return ChordLengthTol(points, m.Alpha(), tol)
}

// Averaged computes one parameter sequence shared by several parallel lines
// of points. Each line is parametrized on its own and the results are
// averaged element-wise, which keeps a tensor-product basis separable. All
// lines must have the same length.
func Averaged(lines [][]r3.Vec, m Method, tol float64) ([]float64, error) {
	if len(lines) == 0 {
		return nil, gointerp.Errorf(gointerp.IrregularGrid,
			"no lines to parametrize")
	}

	n := len(lines[0])
	for i := range lines {
		if len(lines[i]) != n {
			return nil, gointerp.Errorf(gointerp.IrregularGrid,
				"line %d has %d points, but line 0 has %d", i, len(lines[i]), n)
		}
	}

	if m == UniformMethod { return Uniform(n), nil }

	us := make([]float64, n)
	for i := range lines {
		floats.Add(us, m.Params(lines[i], tol))
	}
	floats.Scale(1/float64(len(lines)), us)

	if n > 0 { us[0] = 0 }
	if n > 1 { us[n-1] = 1 }
	return us, nil
}
