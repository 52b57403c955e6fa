package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
	"github.com/phil-mansfield/gointerp/param"
)

func almostEqVec(t *testing.T, want, got r3.Vec, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func TestBinomial(t *testing.T) {
	table := []struct {
		n, k int
		c float64
	}{
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {4, 2, 6}, {5, 2, 10}, {5, 3, 10},
		{10, 5, 252}, {20, 10, 184756}, {3, -1, 0}, {3, 4, 0},
	}

	for i, test := range table {
		if c := Binomial(test.n, test.k); c != test.c {
			t.Errorf("%d) Expected Binomial(%d, %d) = %g, got %g.",
				i+1, test.n, test.k, test.c, c)
		}
	}
}

func TestBernstein(t *testing.T) {
	assert.Equal(t, 1.0, Bernstein(0, 3, 0))
	assert.Equal(t, 0.0, Bernstein(1, 3, 0))
	assert.Equal(t, 1.0, Bernstein(3, 3, 1))
	assert.Equal(t, 0.0, Bernstein(2, 3, 1))
	assert.InDelta(t, 0.375, Bernstein(1, 3, 0.5), 1e-15)
	assert.InDelta(t, 0.375, Bernstein(2, 3, 0.5), 1e-15)

	// Out of range parameters are clamped.
	assert.Equal(t, Bernstein(0, 4, 0), Bernstein(0, 4, -2))
	assert.Equal(t, Bernstein(4, 4, 1), Bernstein(4, 4, 3))

	for n := 0; n < 12; n++ {
		for _, u := range []float64{0, 0.013, 0.25, 0.5, 0.77, 1} {
			sum := 0.0
			for _, B := range bernsteinAll(n, u) { sum += B }
			assert.InDelta(t, 1, sum, 1e-12, "n = %d, u = %g", n, u)
		}
	}
}

func TestGridValidate(t *testing.T) {
	table := []struct {
		g Grid
		ok bool
	}{
		{nil, false},
		{Grid{}, false},
		{Grid{{}, {}}, false},
		{NewGrid(1, 1), true},
		{NewGrid(3, 5), true},
		{Grid{make([]r3.Vec, 3), make([]r3.Vec, 2)}, false},
		{Grid{make([]r3.Vec, 3), make([]r3.Vec, 3), make([]r3.Vec, 4)}, false},
	}

	for i, test := range table {
		err := test.g.Validate()
		if test.ok && err != nil {
			t.Errorf("%d) Expected valid grid, got '%s'.", i+1, err)
		} else if !test.ok && !errors.Is(err, gointerp.IrregularGrid) {
			t.Errorf("%d) Expected IrregularGrid error, got %v.", i+1, err)
		}
	}
}

func TestGridColumns(t *testing.T) {
	g := StretchingTestGrid()
	require.Equal(t, 4, g.Rows())
	require.Equal(t, 8, g.Cols())

	cols := g.Columns()
	require.Len(t, cols, 8)
	for c := range cols {
		require.Len(t, cols[c], 4)
		for r := range cols[c] {
			assert.Equal(t, g[r][c], cols[c][r])
		}
	}

	cols[0][0] = r3.Vec{X: 100}
	assert.NotEqual(t, cols[0][0], g[0][0])

	h := g.Clone()
	h[1][1] = r3.Vec{X: 100}
	assert.NotEqual(t, h[1][1], g[1][1])
}

func TestInterpolateSurfaceOvershoot(t *testing.T) {
	grid := OvershootTestGrid()
	s, err := InterpolateSurface(grid, nil)
	require.NoError(t, err)

	require.Equal(t, 5, s.Rows())
	require.Equal(t, 5, s.Cols())

	us, vs := s.UParams(), s.VParams()
	require.Len(t, us, 5)
	require.Len(t, vs, 5)
	assert.Equal(t, 0.0, us[0])
	assert.Equal(t, 1.0, us[4])
	assert.Equal(t, 0.0, vs[0])
	assert.Equal(t, 1.0, vs[4])

	// The grid is symmetric, so its parameters are too.
	assert.InDelta(t, 0.5, us[2], 1e-12)
	assert.InDelta(t, 1 - us[1], us[3], 1e-12)
	for i := range us {
		assert.InDelta(t, us[i], vs[i], 1e-12)
	}

	for r := range grid {
		for c := range grid[r] {
			almostEqVec(t, grid[r][c], s.Eval(us[r], vs[c]), 1e-3,
				"row %d, column %d", r, c)
		}
	}

	// Corners of a Bezier surface are its corner control points.
	almostEqVec(t, grid[0][0], s.At(0, 0), 1e-9)
	almostEqVec(t, grid[0][4], s.At(0, 4), 1e-9)
	almostEqVec(t, grid[4][0], s.At(4, 0), 1e-9)
	almostEqVec(t, grid[4][4], s.At(4, 4), 1e-9)
}

func TestInterpolateSurfaceExact(t *testing.T) {
	table := []struct {
		name string
		grid Grid
	}{
		{"Overshoot", OvershootTestGrid()},
		{"LShaped", LShapedDensityGrid()},
		{"Stretching", StretchingTestGrid()},
	}

	methods := []param.Method{
		param.ChordLengthMethod, param.UniformMethod, param.CentripetalMethod,
	}

	for _, test := range table {
		for _, m := range methods {
			opts := &SurfaceOptions{MethodU: m, MethodV: m}
			s, err := InterpolateSurface(test.grid, opts)
			require.NoError(t, err, "%s, %s", test.name, m)

			us, vs := s.UParams(), s.VParams()
			for r := range test.grid {
				for c := range test.grid[r] {
					almostEqVec(t, test.grid[r][c], s.Eval(us[r], vs[c]), 1e-6,
						"%s, %s: row %d, column %d", test.name, m, r, c)
				}
			}
		}
	}
}

func TestInterpolateSurfaceMixedMethods(t *testing.T) {
	grid := StretchingTestGrid()
	s, err := InterpolateSurface(grid, &SurfaceOptions{
		MethodU: param.ChordLengthMethod, MethodV: param.UniformMethod,
	})
	require.NoError(t, err)

	assert.Equal(t, param.Uniform(8), s.VParams())
	// Every column is evenly spaced in z, so chord length is uniform too.
	us := s.UParams()
	for i, u := range param.Uniform(4) {
		assert.InDelta(t, u, us[i], 1e-12)
	}

	// Row spacing grows with the column index.
	s, err = InterpolateSurface(grid, nil)
	require.NoError(t, err)
	vs := s.VParams()
	for i := 2; i < len(vs); i++ {
		assert.Greater(t, vs[i] - vs[i-1], vs[i-1] - vs[i-2])
	}
}

func TestInterpolateSurfaceConstant(t *testing.T) {
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	grid := NewGrid(3, 4)
	for r := range grid {
		for c := range grid[r] { grid[r][c] = p }
	}

	s, err := InterpolateSurface(grid, nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, param.Uniform(3), s.UParams(), 1e-12)
	assert.InDeltaSlice(t, param.Uniform(4), s.VParams(), 1e-12)
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			almostEqVec(t, p, s.At(r, c), 1e-9)
		}
	}
}

func TestInterpolateSurfaceFailures(t *testing.T) {
	jagged := OvershootTestGrid()
	jagged[2] = jagged[2][:4]

	coincident := NewGrid(3, 2)
	for c := 0; c < 2; c++ {
		coincident[0][c] = r3.Vec{X: float64(c)}
		coincident[1][c] = r3.Vec{X: float64(c)}
		coincident[2][c] = r3.Vec{X: float64(c), Z: 1}
	}

	table := []struct {
		name string
		grid Grid
		kind gointerp.Kind
	}{
		{"empty", Grid{}, gointerp.IrregularGrid},
		{"jagged", jagged, gointerp.IrregularGrid},
		{"one row", NewGrid(1, 4), gointerp.InputMismatch},
		{"one column", NewGrid(4, 1), gointerp.InputMismatch},
		{"coincident rows", coincident, gointerp.SingularSystem},
	}

	for i, test := range table {
		s, err := InterpolateSurface(test.grid, nil)
		if s != nil {
			t.Errorf("%d) Expected nil surface for %s grid.", i+1, test.name)
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("%d) Expected %s error for %s grid, got %v.",
				i+1, test.kind, test.name, err)
		}
	}
}

func TestNewSurface(t *testing.T) {
	ctrl := Grid{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 2}},
	}
	s, err := NewSurface(ctrl)
	require.NoError(t, err)

	assert.Nil(t, s.DataGrid())
	assert.Nil(t, s.UParams())
	assert.Nil(t, s.VParams())

	// A 2 x 2 Bezier patch is bilinear.
	almostEqVec(t, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, s.Eval(0.5, 0.5), 1e-12)
	almostEqVec(t, r3.Vec{X: 0.25, Y: 0.75, Z: 0.375}, s.Eval(0.25, 0.75), 1e-12)
	almostEqVec(t, ctrl[1][1], s.Eval(2, 2), 0)
	almostEqVec(t, ctrl[0][0], s.Eval(-1, -1), 0)

	got := s.ControlPoints()
	assert.Equal(t, ctrl, got)
	got[0][0] = r3.Vec{X: 100}
	assert.Equal(t, r3.Vec{}, s.At(0, 0))

	assert.Panics(t, func() { s.At(2, 0) })
	assert.Panics(t, func() { s.At(0, -1) })

	_, err = NewSurface(Grid{{{}}, {{}, {}}})
	assert.True(t, errors.Is(err, gointerp.IrregularGrid))
}

func TestSample(t *testing.T) {
	s, err := InterpolateSurface(LShapedDensityGrid(), nil)
	require.NoError(t, err)

	g := s.Sample(7, 9)
	require.Equal(t, 7, g.Rows())
	require.Equal(t, 9, g.Cols())
	for i := range g {
		for j := range g[i] {
			want := s.Eval(float64(i) / 6, float64(j) / 8)
			almostEqVec(t, want, g[i][j], 1e-12)
		}
	}

	data := s.DataGrid()
	almostEqVec(t, data[0][0], g[0][0], 1e-6)
	almostEqVec(t, data[5][5], g[6][8], 1e-6)

	assert.Panics(t, func() { s.Sample(1, 5) })
}

func TestOvershootGridValues(t *testing.T) {
	g := OvershootTestGrid()
	// The peak of the bump is in the middle of the grid.
	assert.InDelta(t, 3, g[2][2].Y, 1e-12)
	assert.InDelta(t, 3 * math.Exp(-12.5 / 5), g[0][0].Y, 1e-12)
	assert.Equal(t, r3.Vec{X: 4.5, Y: g[1][3].Y, Z: 0.5}, g[1][3])

	l := LShapedDensityGrid()
	assert.Equal(t, 31.0, l[5][5].X)
	assert.Equal(t, 31.0, l[5][5].Z)
	assert.Equal(t, 0.0, l[0][3].Y)

	st := StretchingTestGrid()
	assert.Equal(t, 14.0, st[0][7].X)
	assert.Equal(t, -0.5, st[1][0].Y)
	assert.Equal(t, 6.0, st[3][0].Z)
}

func BenchmarkInterpolateSurface(b *testing.B) {
	grid := LShapedDensityGrid()
	for i := 0; i < b.N; i++ {
		InterpolateSurface(grid, nil)
	}
}
