/*package bezier builds tensor-product Bezier surfaces which interpolate
rectangular grids of 3D points.
*/
package bezier

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

// Surface is a tensor-product Bezier surface of degree Rows()-1 in u and
// Cols()-1 in v. It is immutable.
type Surface struct {
	rows, cols int
	// Row-major control points, len(ctrl) == rows*cols.
	ctrl []r3.Vec

	// Only set for interpolated surfaces.
	data Grid
	us, vs []float64
}

// NewSurface creates a surface from an explicit control grid.
func NewSurface(ctrl Grid) (*Surface, error) {
	if err := ctrl.Validate(); err != nil { return nil, err }
	return newSurface(ctrl), nil
}

func newSurface(ctrl Grid) *Surface {
	s := &Surface{rows: ctrl.Rows(), cols: ctrl.Cols()}
	s.ctrl = make([]r3.Vec, 0, s.rows*s.cols)
	for r := range ctrl {
		s.ctrl = append(s.ctrl, ctrl[r]...)
	}
	return s
}

func (s *Surface) Rows() int { return s.rows }
func (s *Surface) Cols() int { return s.cols }

// At returns the control point in row r and column c.
func (s *Surface) At(r, c int) r3.Vec {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		panic("Surface index out of range.")
	}
	return s.ctrl[r*s.cols + c]
}

// ControlPoints returns a copy of the control grid.
func (s *Surface) ControlPoints() Grid {
	g := make(Grid, s.rows)
	for r := range g {
		g[r] = append([]r3.Vec(nil), s.ctrl[r*s.cols: (r+1)*s.cols]...)
	}
	return g
}

// DataGrid returns the grid the surface interpolates, or nil for surfaces
// created with NewSurface.
func (s *Surface) DataGrid() Grid {
	if s.data == nil { return nil }
	return s.data.Clone()
}

// UParams returns the row parameters used for interpolation, or nil.
func (s *Surface) UParams() []float64 {
	if s.us == nil { return nil }
	return append([]float64(nil), s.us...)
}

// VParams returns the column parameters used for interpolation, or nil.
func (s *Surface) VParams() []float64 {
	if s.vs == nil { return nil }
	return append([]float64(nil), s.vs...)
}

// Eval returns the point on the surface at (u, v). Both parameters are
// clamped to [0, 1].
func (s *Surface) Eval(u, v float64) r3.Vec {
	bu := bernsteinAll(s.rows-1, u)
	bv := bernsteinAll(s.cols-1, v)

	var pt r3.Vec
	for r, Bu := range bu {
		var row r3.Vec
		for c, Bv := range bv {
			row = r3.Add(row, r3.Scale(Bv, s.ctrl[r*s.cols + c]))
		}
		pt = r3.Add(pt, r3.Scale(Bu, row))
	}
	return pt
}

// Sample evaluates the surface on an nu x nv lattice of evenly spaced
// parameters. Both counts must be at least 2.
func (s *Surface) Sample(nu, nv int) Grid {
	if nu < 2 || nv < 2 {
		panic("Surface.Sample needs at least two points in each direction.")
	}

	g := NewGrid(nu, nv)
	for i := range g {
		u := float64(i) / float64(nu-1)
		for j := range g[i] {
			g[i][j] = s.Eval(u, float64(j)/float64(nv-1))
		}
	}
	return g
}

// checkSize returns an error if the grid is too small to interpolate.
func checkSize(g Grid) error {
	if g.Rows() < 2 || g.Cols() < 2 {
		return gointerp.Errorf(gointerp.InputMismatch,
			"need at least a 2 x 2 grid, but have %d x %d", g.Rows(), g.Cols())
	}
	return nil
}
