package bspline

import (
	"log"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/param"
)

// Degree is the degree of interpolated curves.
const Degree = 3

// Options configures curve interpolation. The zero value and a nil *Options
// both give the defaults.
type Options struct {
	// Alpha is the chord-length exponent used by Interpolate. Defaults to
	// param.CentripetalAlpha.
	Alpha float64
	Tol gointerp.Tolerances
	// Logger receives conditioning warnings. Defaults to the standard
	// logger.
	Logger *log.Logger
}

func (opts *Options) withDefaults() Options {
	var out Options
	if opts != nil { out = *opts }

	if out.Alpha <= 0 { out.Alpha = param.CentripetalAlpha }
	out.Tol = out.Tol.WithDefaults()
	if out.Logger == nil { out.Logger = log.Default() }

	return out
}

// Interpolate builds a cubic B-spline through points, deriving the
// parameters with chord lengths raised to opts.Alpha (centripetal by
// default).
func Interpolate(points []r3.Vec, opts *Options) (*Curve, error) {
	o := opts.withDefaults()
	ts := param.ChordLengthTol(points, o.Alpha, o.Tol.ZeroLength)
	return InterpolateCubic(points, ts, &o)
}

// InterpolateCubic builds a clamped cubic B-spline with one control point per
// data point which passes through points[i] at the normalized value of
// ts[i]. The first and last control points are the first and last data
// points.
func InterpolateCubic(
	points []r3.Vec, ts []float64, opts *Options,
) (*Curve, error) {
	o := opts.withDefaults()
	N := len(points)

	if N != len(ts) {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"%d data points but %d parameter values", N, len(ts))
	} else if N < Degree+1 {
		return nil, gointerp.Errorf(gointerp.InputMismatch,
			"need at least %d data points for a degree %d B-spline, but have %d",
			Degree+1, Degree, N)
	}

	us, err := param.Normalize(ts, o.Tol.ZeroLength)
	if err != nil { return nil, err }

	for i := 1; i < N; i++ {
		if us[i] < us[i-1] {
			return nil, gointerp.Errorf(gointerp.InputMismatch,
				"parameters must be non-decreasing, but t[%d] = %g follows " +
					"t[%d] = %g", i, ts[i], i-1, ts[i-1])
		}
	}

	U, err := GenerateKnotVector(N, Degree, us)
	if err != nil { return nil, err }

	sys, err := assemble(points, us, U, &o)
	if err != nil { return nil, err }
	interior, err := sys.solve(o.Tol.PivotEps)
	if err != nil { return nil, err }

	ctrl := make([]r3.Vec, 0, N)
	ctrl = append(ctrl, points[0])
	ctrl = append(ctrl, interior...)
	ctrl = append(ctrl, points[N-1])

	if len(ctrl) != N {
		return nil, gointerp.Errorf(gointerp.SingularSystem,
			"solved %d control points for %d data points", len(ctrl), N)
	}

	return &Curve{
		degree: Degree,
		ctrl: ctrl,
		knots: U,
		basisEps: o.Tol.BasisEps,
		data: append([]r3.Vec(nil), points...),
		params: us,
	}, nil
}

// bandWidth is the number of sub- and super-diagonals of the collocation
// matrix. Averaged knots keep it below the degree.
const bandWidth = Degree - 1

// system is the collocation system for the interior control points
// P_1 .. P_{N-2}. Column j of the system is control point j+1 and band[j][k]
// is the coefficient of column j-bandWidth+k.
type system struct {
	band [][]float64
	rhs []r3.Vec
	// tridiagonal is true if no row has a non-zero coefficient more than one
	// column from the diagonal.
	tridiagonal bool
}

func assemble(
	points []r3.Vec, us []float64, U Knots, o *Options,
) (*system, error) {
	N := len(points)
	n := N - 2
	q0, qn := points[0], points[N-1]

	sys := &system{
		band: make([][]float64, n),
		rhs: make([]r3.Vec, n),
		tridiagonal: true,
	}

	for j := 0; j < n; j++ {
		i := j + 1
		first, vals := NonZeroBasis(Degree, us[i], U, o.Tol.BasisEps)
		row := make([]float64, 2*bandWidth+1)

		rhs := points[i]
		for k, nk := range vals {
			switch idx := first + k; {
			case nk == 0:
				continue
			case idx == 0:
				// P_0 = Q_0 is fixed.
				rhs = r3.Sub(rhs, r3.Scale(nk, q0))
			case idx == N-1:
				// P_{N-1} = Q_{N-1} is fixed.
				rhs = r3.Sub(rhs, r3.Scale(nk, qn))
			default:
				off := idx - 1 - j
				if off < -bandWidth || off > bandWidth {
					return nil, gointerp.Errorf(gointerp.SingularSystem,
						"N[%d,%d](%g) = %g lies %d columns from the diagonal, " +
							"repeated parameters leave the system singular",
						idx, Degree, us[i], nk, off)
				}
				row[off+bandWidth] = nk
				if off < -1 || off > 1 { sys.tridiagonal = false }
			}
		}
		sys.band[j], sys.rhs[j] = row, rhs

		if diag := row[bandWidth]; diag < o.Tol.DiagonalWarn {
			o.Logger.Printf(
				"Collocation diagonal N[%d,%d](%g) = %g is near zero, the " +
					"interpolation system is ill-conditioned.",
				i, Degree, us[i], diag,
			)
		}
	}

	return sys, nil
}

// solve uses the Thomas algorithm when the system is tridiagonal and band
// elimination otherwise. Both are O(N).
func (sys *system) solve(tol float64) ([]r3.Vec, error) {
	if !sys.tridiagonal {
		return SolveBanded(sys.band, bandWidth, sys.rhs, tol)
	}

	n := len(sys.band)
	sub, diag, sup := make([]float64, n), make([]float64, n), make([]float64, n)
	for j, row := range sys.band {
		sub[j], diag[j], sup[j] = row[bandWidth-1], row[bandWidth], row[bandWidth+1]
	}
	return SolveTridiagonal(sub, diag, sup, sys.rhs, tol)
}
