/*package bspline builds clamped B-spline curves which interpolate sequences
of 3D points.

Curves are immutable values: every accessor returns a copy.
*/
package bspline

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

// Curve is a non-rational B-spline curve.
type Curve struct {
	degree int
	ctrl []r3.Vec
	knots Knots
	basisEps float64

	// Only set for interpolated curves.
	data []r3.Vec
	params []float64
}

// NewCurve creates a curve from explicit control points and knots. The knot
// vector must be non-decreasing and have len(ctrl) + degree + 1 entries.
func NewCurve(degree int, ctrl []r3.Vec, knots []float64) (*Curve, error) {
	if degree < 0 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"degree must be non-negative, but is %d", degree)
	} else if len(ctrl) < degree+1 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"need at least %d control points for degree %d, but have %d",
			degree+1, degree, len(ctrl))
	} else if len(knots) != len(ctrl)+degree+1 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"%d control points of degree %d need %d knots, but have %d",
			len(ctrl), degree, len(ctrl)+degree+1, len(knots))
	}

	U := Knots(knots).Clone()
	if !U.NonDecreasing() {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"knot vector %v is not non-decreasing", knots)
	}
	if lo, hi := U.Domain(degree); hi <= lo {
		return nil, gointerp.Errorf(gointerp.DegenerateParametrization,
			"knot vector %v has an empty domain", knots)
	}

	return &Curve{
		degree: degree,
		ctrl: append([]r3.Vec(nil), ctrl...),
		knots: U,
		basisEps: gointerp.DefaultEps,
	}, nil
}

func (c *Curve) Degree() int { return c.degree }

func (c *Curve) ControlPoints() []r3.Vec {
	return append([]r3.Vec(nil), c.ctrl...)
}

func (c *Curve) Knots() []float64 {
	return []float64(c.knots.Clone())
}

// DataPoints returns the points the curve was built to pass through. It is
// nil for curves created with NewCurve.
func (c *Curve) DataPoints() []r3.Vec {
	if c.data == nil { return nil }
	return append([]r3.Vec(nil), c.data...)
}

// Params returns the normalized parameters at which the curve passes through
// its data points. It is nil for curves created with NewCurve.
func (c *Curve) Params() []float64 {
	if c.params == nil { return nil }
	return append([]float64(nil), c.params...)
}

// Domain returns the parameter range of the curve.
func (c *Curve) Domain() (lo, hi float64) { return c.knots.Domain(c.degree) }

// Eval returns the point on the curve at t. t is clamped to the domain.
func (c *Curve) Eval(t float64) r3.Vec {
	lo, hi := c.Domain()
	if t < lo { t = lo }
	if t > hi { t = hi }

	first, vals := NonZeroBasis(c.degree, t, c.knots, c.basisEps)
	var pt r3.Vec
	for k, N := range vals {
		pt = r3.Add(pt, r3.Scale(N, c.ctrl[first+k]))
	}
	return pt
}

// Sample evaluates the curve at n evenly spaced parameters covering the
// whole domain. n must be at least 2.
func (c *Curve) Sample(n int) []r3.Vec {
	if n < 2 { panic("Curve.Sample needs at least two points.") }

	lo, hi := c.Domain()
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = c.Eval(lo + (hi-lo)*float64(i)/float64(n-1))
	}
	pts[n-1] = c.Eval(hi)
	return pts
}
