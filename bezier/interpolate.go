package bezier

import (
	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/mat"
	"github.com/phil-mansfield/gointerp/param"
)

// SurfaceOptions configures surface interpolation. The zero value uses
// averaged chord length parameters along both axes.
type SurfaceOptions struct {
	// MethodU parametrizes the rows (the u direction), MethodV the columns.
	MethodU, MethodV param.Method
	Tol gointerp.Tolerances
}

// InterpolateSurface builds the R x C Bezier surface which passes through
// every point of the R x C grid. Grid[r][c] is reproduced at
// (UParams()[r], VParams()[c]).
func InterpolateSurface(grid Grid, opts *SurfaceOptions) (*Surface, error) {
	var o SurfaceOptions
	if opts != nil { o = *opts }
	o.Tol = o.Tol.WithDefaults()

	if err := grid.Validate(); err != nil { return nil, err }
	if err := checkSize(grid); err != nil { return nil, err }

	rows, cols := grid.Rows(), grid.Cols()

	us, err := param.Averaged(grid.Columns(), o.MethodU, o.Tol.ZeroLength)
	if err != nil { return nil, err }
	vs, err := param.Averaged(grid, o.MethodV, o.Tol.ZeroLength)
	if err != nil { return nil, err }

	// Solve along u one column at a time: D = A_u * Q.
	luU, err := collocation(us).LU(o.Tol.PivotEps)
	if err != nil { return nil, err }
	Q := NewGrid(rows, cols)
	for c := 0; c < cols; c++ {
		col := luU.SolvePoints(grid.Column(c))
		for r := range col { Q[r][c] = col[r] }
	}

	// Then along v one row at a time: Q = P * A_v^T.
	luV, err := collocation(vs).LU(o.Tol.PivotEps)
	if err != nil { return nil, err }
	P := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		P[r] = luV.SolvePoints(Q[r])
	}

	s := newSurface(P)
	s.data = grid.Clone()
	s.us, s.vs = us, vs
	return s, nil
}

// collocation returns the matrix A[k][i] = B(i, n, us[k]), n = len(us) - 1.
func collocation(us []float64) *mat.Matrix {
	n := len(us)
	A := mat.Zeros(n, n)
	for k, u := range us {
		for i, B := range bernsteinAll(n-1, u) {
			A.Set(k, i, B)
		}
	}
	return A
}
