package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/bezier"
	"github.com/phil-mansfield/gointerp/bspline"
	"github.com/phil-mansfield/gointerp/io"
)

// FileGroup contains utility files for logging.
type FileGroup struct {
	log *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		curve, surface string
		exampleConfig string
	)
	vars := map[string]*string {
		"Curve": &curve,
		"Surface": &surface,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&curve, "Curve", "",
		"Configuration file for [Curve] mode, which interpolates a cubic " +
			"B-spline through a table of points.",
	)
	flag.StringVar(
		&surface, "Surface", "",
		"Configuration file for [Surface] mode, which interpolates a Bezier " +
			"surface through a grid of points.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Curve' and " +
			"'Surface'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Curve":
		con, err := io.ReadCurveConfig(curve)
		if err != nil { log.Fatal(err.Error()) }

		fg := setupLog(con.LogFile)
		defer fg.Close()
		curveMain(con)

	case "Surface":
		con, err := io.ReadSurfaceConfig(surface)
		if err != nil { log.Fatal(err.Error()) }

		fg := setupLog(con.LogFile)
		defer fg.Close()
		surfaceMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Curve":
			fmt.Println(io.ExampleCurveFile)
		case "Surface":
			fmt.Println(io.ExampleSurfaceFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Curve' and 'Surface'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gointerp " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupLog redirects the standard logger to the given file, if there is one.
func setupLog(fname string) *FileGroup {
	fg := &FileGroup{}
	if fname == "" { return fg }

	lf, err := os.Create(fname)
	if err != nil { log.Fatal(err.Error()) }
	log.SetOutput(lf)
	fg.log = lf
	return fg
}

func curveMain(con *io.CurveConfig) {
	t0 := time.Now()

	pts, ts, err := io.ReadCurvePoints(con)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d points from %s.", len(pts), con.Input)

	opts := &bspline.Options{ Alpha: con.Alpha, Tol: con.Tolerances() }
	var c *bspline.Curve
	if ts != nil {
		c, err = bspline.InterpolateCubic(pts, ts, opts)
	} else {
		c, err = bspline.Interpolate(pts, opts)
	}
	if err != nil { fatalInterpolation(con.Input, err) }

	log.Printf(
		"Interpolated %d control points in %.3g s.",
		len(c.ControlPoints()), time.Since(t0).Seconds(),
	)

	writeOutput(con.Output, func(f *os.File) error {
		if con.BinaryOutput { return io.WriteCurveBinary(c, f) }
		return io.WriteCurveText(c, f)
	})

	if con.ValidPlotFile() {
		plotCurve(c, con.PlotFile, con.PlotSamples)
		plt.Execute()
	}
}

func surfaceMain(con *io.SurfaceConfig) {
	t0 := time.Now()

	grid, err := io.ReadSurfaceGrid(con)
	if err != nil { fatalInterpolation(con.Input, err) }
	log.Printf("Read %d x %d grid.", grid.Rows(), grid.Cols())

	s, err := bezier.InterpolateSurface(grid, con.Options())
	if err != nil { fatalInterpolation(con.Input, err) }

	log.Printf(
		"Interpolated %d x %d control grid in %.3g s.",
		s.Rows(), s.Cols(), time.Since(t0).Seconds(),
	)

	writeOutput(con.Output, func(f *os.File) error {
		if con.BinaryOutput { return io.WriteSurfaceBinary(s, f) }
		return io.WriteSurfaceText(s, f)
	})

	if con.ValidPlotFile() {
		plotSurface(s, con.PlotFile, con.PlotSamplesU, con.PlotSamplesV)
		plt.Execute()
	}
}

// fatalInterpolation exits with a message naming the kind of failure, if the
// error has one.
func fatalInterpolation(input string, err error) {
	if kind, ok := gointerp.KindOf(err); ok {
		switch kind {
		case gointerp.SingularSystem:
			log.Fatalf(
				"The points in '%s' give a singular system. Check for " +
					"repeated points or try a larger 'PivotEps'. (%s)",
				input, err.Error(),
			)
		case gointerp.DegenerateParametrization:
			log.Fatalf(
				"The points in '%s' all have the same parameter. (%s)",
				input, err.Error(),
			)
		}
	}
	log.Fatal(err.Error())
}

func writeOutput(fname string, write func(*os.File) error) {
	f, err := os.Create(fname)
	if err != nil { log.Fatal(err.Error()) }
	defer f.Close()

	if err := write(f); err != nil { log.Fatal(err.Error()) }
	log.Printf("Wrote %s.", fname)
}

func plotCurve(c *bspline.Curve, fname string, samples int) {
	data, ctrl := c.DataPoints(), c.ControlPoints()

	plt.Figure(plt.FigSize(8, 8))
	plt.Plot(xs(ctrl), ys(ctrl), "--", plt.C("r"))
	plt.Plot(xs(ctrl), ys(ctrl), "o", plt.C("r"))
	curve := c.Sample(samples)
	plt.Plot(xs(curve), ys(curve), plt.LW(2), plt.C("b"))
	plt.Plot(xs(data), ys(data), "ok")

	plt.Title(fmt.Sprintf(
		"Cubic B-spline through %d points", len(data),
	))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.SaveFig(fname)
}

// plotSurface plots the X-Y projection of the sampled surface as a wire
// mesh, along with the data grid. The built-in test grids store their height
// in Y.
func plotSurface(s *bezier.Surface, fname string, nu, nv int) {
	plt.Figure(plt.FigSize(8, 8))
	for _, line := range surfaceLines(s, nu, nv) {
		plt.Plot(xs(line), ys(line), plt.LW(1), plt.C("b"))
	}
	for _, row := range s.DataGrid() {
		plt.Plot(xs(row), ys(row), "ok")
	}

	plt.Title(fmt.Sprintf(
		"Bezier surface of degree %d x %d", s.Rows() - 1, s.Cols() - 1,
	))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.SaveFig(fname)
}

// surfaceLines returns the rows and then the columns of the nu x nv sampled
// surface.
func surfaceLines(s *bezier.Surface, nu, nv int) [][]r3.Vec {
	mesh := s.Sample(nu, nv)
	return append(append([][]r3.Vec{}, mesh...), mesh.Columns()...)
}

func xs(pts []r3.Vec) []float64 {
	out := make([]float64, len(pts))
	for i := range pts { out[i] = pts[i].X }
	return out
}

func ys(pts []r3.Vec) []float64 {
	out := make([]float64, len(pts))
	for i := range pts { out[i] = pts[i].Y }
	return out
}
