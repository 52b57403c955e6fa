package gointerp

import (
	"fmt"
)

// DefaultEps is the tolerance used for every threshold unless a caller
// overrides it.
const DefaultEps = 1e-5

// Tolerances collects the thresholds used by the interpolation routines.
// They are scale dependent: data with very large or very small coordinates
// may need different values.
type Tolerances struct {
	// BasisEps is the smallest knot-span denominator that the Cox-de Boor
	// recurrence will divide by. Smaller spans contribute zero.
	BasisEps float64
	// PivotEps is the smallest pivot magnitude accepted by the linear
	// solvers before a system is declared singular.
	PivotEps float64
	// DiagonalWarn is the level below which a collocation diagonal is
	// logged as ill-conditioned.
	DiagonalWarn float64
	// ZeroLength is the smallest parameter span or total chord length that
	// is not treated as degenerate.
	ZeroLength float64
}

// DefaultTolerances returns the tolerances used when none are given.
func DefaultTolerances() Tolerances {
	return Tolerances{
		BasisEps:     DefaultEps,
		PivotEps:     DefaultEps,
		DiagonalWarn: DefaultEps,
		ZeroLength:   DefaultEps,
	}
}

// WithDefaults returns a copy of tol where every non-positive field has been
// replaced by its default.
func (tol Tolerances) WithDefaults() Tolerances {
	def := DefaultTolerances()
	if tol.BasisEps <= 0 { tol.BasisEps = def.BasisEps }
	if tol.PivotEps <= 0 { tol.PivotEps = def.PivotEps }
	if tol.DiagonalWarn <= 0 { tol.DiagonalWarn = def.DiagonalWarn }
	if tol.ZeroLength <= 0 { tol.ZeroLength = def.ZeroLength }
	return tol
}

// Check returns an error if any tolerance is negative. Zero values are
// allowed and mean "use the default".
func (tol Tolerances) Check() error {
	vals := []float64{tol.BasisEps, tol.PivotEps, tol.DiagonalWarn, tol.ZeroLength}
	names := []string{"BasisEps", "PivotEps", "DiagonalWarn", "ZeroLength"}
	for i := range vals {
		if vals[i] < 0 {
			return fmt.Errorf("Tolerance %s must be non-negative, but is %g.",
				names[i], vals[i])
		}
	}
	return nil
}
