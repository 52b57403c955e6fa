/*package io reads the configuration files and point tables used by the
gointerp command line tool and writes the curves and surfaces it builds.
*/
package io

import (
	"strings"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/bezier"
)

// ReadCurvePoints reads the data points of a curve from the table named by
// con.Input. If con has a ParamColumn, the parameter of each point is
// returned as well, otherwise ts is nil.
func ReadCurvePoints(con *CurveConfig) (points []r3.Vec, ts []float64, err error) {
	cols, err := table.ReadTable(con.Input, con.Columns(), nil)
	if err != nil { return nil, nil, err }

	hasZ := con.ZColumn >= 0
	nCoords := 2
	if hasZ { nCoords = 3 }

	points = ColumnsToPoints(cols[:nCoords])
	if con.HasParamColumn() {
		ts = cols[nCoords]
	}
	return points, ts, nil
}

// ColumnsToPoints combines x, y and (optionally) z columns into points.
// Missing z values are zero.
func ColumnsToPoints(cols [][]float64) []r3.Vec {
	if len(cols) < 2 || len(cols) > 3 {
		panic("ColumnsToPoints needs two or three columns.")
	}

	xs, ys := cols[0], cols[1]
	points := make([]r3.Vec, len(xs))
	for i := range points {
		points[i].X, points[i].Y = xs[i], ys[i]
		if len(cols) == 3 { points[i].Z = cols[2][i] }
	}
	return points
}

// ReadSurfaceGrid returns the grid described by con: either one of the
// built in test grids or the points in con.Input, listed row by row with
// con.Cols points in each row.
func ReadSurfaceGrid(con *SurfaceConfig) (bezier.Grid, error) {
	if con.TestGrid != "" {
		return TestGrids[strings.ToLower(con.TestGrid)](), nil
	}

	cols, err := table.ReadTable(con.Input, con.Columns(), nil)
	if err != nil { return nil, err }

	return Reshape(ColumnsToPoints(cols), con.Cols)
}

// Reshape splits a row-major list of points into rows of length cols. An
// error of kind IrregularGrid is returned if the points do not fill a whole
// number of rows.
func Reshape(points []r3.Vec, cols int) (bezier.Grid, error) {
	if cols <= 0 {
		return nil, gointerp.Errorf(gointerp.IrregularGrid,
			"rows must contain a positive number of points, not %d", cols)
	} else if len(points) == 0 {
		return nil, gointerp.Errorf(gointerp.IrregularGrid, "no grid points")
	} else if len(points) % cols != 0 {
		return nil, gointerp.Errorf(gointerp.IrregularGrid,
			"%d points cannot be split into rows of %d", len(points), cols)
	}

	rows := len(points) / cols
	g := bezier.NewGrid(rows, cols)
	for r := range g {
		copy(g[r], points[r*cols: (r+1)*cols])
	}
	return g, nil
}
