package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/bezier"
	"github.com/phil-mansfield/gointerp/param"
)

const (
	ExampleCurveFile = `[Curve]

#######################
# Required Parameters #
#######################

# Whitespace-separated text table with one data point per line. Lines starting
# with '#' are ignored.
Input = path/to/points.txt
# Knots and control points will be written here as a text table.
Output = path/to/curve.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input holding the x, y and z coordinates. Setting
# ZColumn to -1 reads a planar curve with z = 0.
# XColumn = 0
# YColumn = 1
# ZColumn = 2

# If set, the parameter value of each point is read from this column instead
# of being computed from chord lengths. The values are rescaled to [0, 1].
# ParamColumn = 3

# Exponent applied to the distances between points when computing parameters.
# 1 is chord length spacing and 0.5 (the default) is centripetal spacing.
# Alpha = 0.5

# Writes Output in the binary format read by io.ReadCurveBinary instead of as
# text.
# BinaryOutput = true

# Numerical tolerances. All default to 1e-5. You might need to change these if
# your coordinates are very large or very small.
# BasisEps = 1e-5
# PivotEps = 1e-5
# DiagonalWarn = 1e-5
# ZeroLength = 1e-5

# Writes a png of the x-y projection of the data points, control polygon, and
# curve sampled at PlotSamples points. Requires python and matplotlib.
# PlotFile = curve.png
# PlotSamples = 200

# LogFile = log.out`
	ExampleSurfaceFile = `[Surface]

#######################
# Required Parameters #
#######################

# Whitespace-separated text table with one grid point per line, listed row by
# row. Lines starting with '#' are ignored.
Input = path/to/grid.txt
# The control grid will be written here.
Output = path/to/surface.txt

# Number of points in each row of the grid. The number of rows is the number
# of points in Input divided by Cols.
Cols = 5

#######################
# Optional Parameters #
#######################

# Instead of Input, one of the built in test grids can be used. Must be one of
# [ Overshoot | LShaped | Stretching ].
# TestGrid = Overshoot

# Zero-indexed columns of Input holding the x, y and z coordinates.
# XColumn = 0
# YColumn = 1
# ZColumn = 2

# Parametrization used along each axis of the grid. MethodU runs down the
# columns and MethodV runs along the rows. Must be one of
# [ ChordLength | Uniform | Centripetal ]. Default is ChordLength.
# MethodU = ChordLength
# MethodV = ChordLength

# BinaryOutput = true

# BasisEps = 1e-5
# PivotEps = 1e-5
# DiagonalWarn = 1e-5
# ZeroLength = 1e-5

# Writes a png of the x-y projection of the grid and the surface sampled on a
# PlotSamplesU x PlotSamplesV lattice.
# PlotFile = surface.png
# PlotSamplesU = 20
# PlotSamplesV = 20

# LogFile = log.out`
)

// TestGrids maps the accepted TestGrid values to the grids they create.
var TestGrids = map[string]func() bezier.Grid{
	"overshoot": bezier.OvershootTestGrid,
	"lshaped": bezier.LShapedDensityGrid,
	"stretching": bezier.StretchingTestGrid,
}

type CurveConfig struct {
	// Required
	Input, Output string

	// Optional
	XColumn, YColumn, ZColumn, ParamColumn int
	Alpha float64
	BinaryOutput bool
	BasisEps, PivotEps, DiagonalWarn, ZeroLength float64
	PlotFile string
	PlotSamples int
	LogFile string
}

type CurveWrapper struct {
	Curve CurveConfig
}

func DefaultCurveWrapper() *CurveWrapper {
	con := CurveConfig{}
	con.XColumn, con.YColumn, con.ZColumn = 0, 1, 2
	con.ParamColumn = -1
	con.Alpha = param.CentripetalAlpha
	con.BasisEps = gointerp.DefaultEps
	con.PivotEps = gointerp.DefaultEps
	con.DiagonalWarn = gointerp.DefaultEps
	con.ZeroLength = gointerp.DefaultEps
	con.PlotSamples = 200
	return &CurveWrapper{con}
}

func (con *CurveConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *CurveConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *CurveConfig) ValidColumns() bool {
	if con.XColumn < 0 || con.YColumn < 0 || con.ZColumn < -1 {
		return false
	}
	return distinct(con.Columns())
}
func (con *CurveConfig) ValidAlpha() bool {
	return con.Alpha > 0
}
func (con *CurveConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *CurveConfig) ValidPlotSamples() bool {
	return con.PlotSamples >= 2
}
func (con *CurveConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *CurveConfig) HasParamColumn() bool {
	return con.ParamColumn >= 0
}

// Columns returns the table columns which need to be read, in the order
// x, y, [z], [param].
func (con *CurveConfig) Columns() []int {
	cols := []int{con.XColumn, con.YColumn}
	if con.ZColumn >= 0 { cols = append(cols, con.ZColumn) }
	if con.HasParamColumn() { cols = append(cols, con.ParamColumn) }
	return cols
}

func (con *CurveConfig) Tolerances() gointerp.Tolerances {
	return gointerp.Tolerances{
		BasisEps: con.BasisEps,
		PivotEps: con.PivotEps,
		DiagonalWarn: con.DiagonalWarn,
		ZeroLength: con.ZeroLength,
	}
}

// CheckInit returns an error describing the first invalid field of con.
func (con *CurveConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"Column indices must be non-negative and distinct, but " +
				"XColumn = %d, YColumn = %d, ZColumn = %d, ParamColumn = %d.",
			con.XColumn, con.YColumn, con.ZColumn, con.ParamColumn,
		)
	} else if !con.ValidAlpha() {
		return fmt.Errorf("'Alpha' must be positive, but is %g.", con.Alpha)
	} else if con.ValidPlotFile() && !con.ValidPlotSamples() {
		return fmt.Errorf(
			"'PlotSamples' must be at least 2, but is %d.", con.PlotSamples,
		)
	}
	return con.Tolerances().Check()
}

// ReadCurveConfig reads and checks the [Curve] section of the given file.
func ReadCurveConfig(fname string) (*CurveConfig, error) {
	wrap := DefaultCurveWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Curve.CheckInit(); err != nil { return nil, err }
	return &wrap.Curve, nil
}

type SurfaceConfig struct {
	// Required
	Input, Output string
	Cols int

	// Optional
	TestGrid string
	XColumn, YColumn, ZColumn int
	MethodU, MethodV string
	BinaryOutput bool
	BasisEps, PivotEps, DiagonalWarn, ZeroLength float64
	PlotFile string
	PlotSamplesU, PlotSamplesV int
	LogFile string
}

type SurfaceWrapper struct {
	Surface SurfaceConfig
}

func DefaultSurfaceWrapper() *SurfaceWrapper {
	con := SurfaceConfig{}
	con.XColumn, con.YColumn, con.ZColumn = 0, 1, 2
	con.MethodU = param.ChordLengthMethod.String()
	con.MethodV = param.ChordLengthMethod.String()
	con.BasisEps = gointerp.DefaultEps
	con.PivotEps = gointerp.DefaultEps
	con.DiagonalWarn = gointerp.DefaultEps
	con.ZeroLength = gointerp.DefaultEps
	con.PlotSamplesU, con.PlotSamplesV = 20, 20
	return &SurfaceWrapper{con}
}

func (con *SurfaceConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SurfaceConfig) ValidTestGrid() bool {
	_, ok := TestGrids[strings.ToLower(con.TestGrid)]
	return ok
}
func (con *SurfaceConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SurfaceConfig) ValidCols() bool {
	return con.Cols >= 2
}
func (con *SurfaceConfig) ValidColumns() bool {
	if con.XColumn < 0 || con.YColumn < 0 || con.ZColumn < 0 {
		return false
	}
	return distinct(con.Columns())
}
func (con *SurfaceConfig) ValidMethodU() bool {
	_, err := param.ParseMethod(con.MethodU)
	return err == nil
}
func (con *SurfaceConfig) ValidMethodV() bool {
	_, err := param.ParseMethod(con.MethodV)
	return err == nil
}
func (con *SurfaceConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *SurfaceConfig) ValidPlotSamples() bool {
	return con.PlotSamplesU >= 2 && con.PlotSamplesV >= 2
}
func (con *SurfaceConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

func (con *SurfaceConfig) Columns() []int {
	return []int{con.XColumn, con.YColumn, con.ZColumn}
}

func (con *SurfaceConfig) Tolerances() gointerp.Tolerances {
	return gointerp.Tolerances{
		BasisEps: con.BasisEps,
		PivotEps: con.PivotEps,
		DiagonalWarn: con.DiagonalWarn,
		ZeroLength: con.ZeroLength,
	}
}

// Options converts the parametrization and tolerance fields of a checked
// config into surface options.
func (con *SurfaceConfig) Options() *bezier.SurfaceOptions {
	mu, err := param.ParseMethod(con.MethodU)
	if err != nil { panic(err.Error()) }
	mv, err := param.ParseMethod(con.MethodV)
	if err != nil { panic(err.Error()) }

	return &bezier.SurfaceOptions{
		MethodU: mu, MethodV: mv, Tol: con.Tolerances(),
	}
}

// CheckInit returns an error describing the first invalid field of con.
func (con *SurfaceConfig) CheckInit() error {
	if con.ValidInput() == (con.TestGrid != "") {
		return fmt.Errorf("Exactly one of 'Input' and 'TestGrid' must be set.")
	} else if con.TestGrid != "" && !con.ValidTestGrid() {
		return fmt.Errorf(
			"'TestGrid' must be one of [ Overshoot | LShaped | Stretching ], " +
				"but is '%s'.", con.TestGrid,
		)
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if con.ValidInput() && !con.ValidCols() {
		return fmt.Errorf(
			"'Cols' must be at least 2 when 'Input' is set, but is %d.",
			con.Cols,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"Column indices must be non-negative and distinct, but " +
				"XColumn = %d, YColumn = %d, ZColumn = %d.",
			con.XColumn, con.YColumn, con.ZColumn,
		)
	}

	if _, err := param.ParseMethod(con.MethodU); err != nil {
		return fmt.Errorf("Invalid 'MethodU': %s", err.Error())
	} else if _, err := param.ParseMethod(con.MethodV); err != nil {
		return fmt.Errorf("Invalid 'MethodV': %s", err.Error())
	}

	if con.ValidPlotFile() && !con.ValidPlotSamples() {
		return fmt.Errorf(
			"'PlotSamplesU' and 'PlotSamplesV' must be at least 2, but are " +
				"%d and %d.", con.PlotSamplesU, con.PlotSamplesV,
		)
	}
	return con.Tolerances().Check()
}

// ReadSurfaceConfig reads and checks the [Surface] section of the given file.
func ReadSurfaceConfig(fname string) (*SurfaceConfig, error) {
	wrap := DefaultSurfaceWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Surface.CheckInit(); err != nil { return nil, err }
	return &wrap.Surface, nil
}

func distinct(xs []int) bool {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] { return false }
		}
	}
	return true
}
