package bezier

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

// Grid is a row-major grid of points. Grid[r][c] is the point in row r and
// column c.
type Grid [][]r3.Vec

// NewGrid returns a rows x cols grid of zero points.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g { g[r] = make([]r3.Vec, cols) }
	return g
}

// Validate returns an error of kind IrregularGrid if g is empty or its rows
// have different lengths.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return gointerp.Errorf(gointerp.IrregularGrid, "grid has no rows")
	} else if len(g[0]) == 0 {
		return gointerp.Errorf(gointerp.IrregularGrid, "grid has no columns")
	}

	cols := len(g[0])
	for r := range g {
		if len(g[r]) != cols {
			return gointerp.Errorf(gointerp.IrregularGrid,
				"row %d has %d points, but row 0 has %d", r, len(g[r]), cols)
		}
	}
	return nil
}

func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 { return 0 }
	return len(g[0])
}

// Column returns a copy of column c.
func (g Grid) Column(c int) []r3.Vec {
	col := make([]r3.Vec, len(g))
	for r := range g { col[r] = g[r][c] }
	return col
}

// Columns returns copies of every column of g.
func (g Grid) Columns() [][]r3.Vec {
	cols := make([][]r3.Vec, g.Cols())
	for c := range cols { cols[c] = g.Column(c) }
	return cols
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g { out[r] = append([]r3.Vec(nil), g[r]...) }
	return out
}
