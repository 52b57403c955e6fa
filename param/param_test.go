package param

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp"
)

const eps = 1e-12

func checkMonotone(t *testing.T, us []float64, name string) {
	require.NotEmpty(t, us, name)
	assert.Equal(t, 0.0, us[0], "%s: first value", name)
	if len(us) > 1 {
		assert.Equal(t, 1.0, us[len(us)-1], "%s: last value", name)
	}
	for i := 1; i < len(us); i++ {
		assert.True(t, us[i] >= us[i-1],
			"%s: us[%d] = %g < us[%d] = %g", name, i, us[i], i-1, us[i-1])
	}
}

func spiral(n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		r := 0.1 * math.Pow(1.4, float64(i))
		theta := 0.7 * float64(i)
		pts[i] = r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: 0.2 * float64(i)}
	}
	return pts
}

func TestUniform(t *testing.T) {
	assert.Nil(t, Uniform(0))
	assert.Nil(t, Uniform(-3))
	assert.Equal(t, []float64{0}, Uniform(1))
	assert.Equal(t, []float64{0, 1}, Uniform(2))

	us := Uniform(5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, us, eps)

	for n := 1; n < 40; n++ {
		checkMonotone(t, Uniform(n), "Uniform")
	}
}

func TestChordLength(t *testing.T) {
	table := []struct {
		pts   []r3.Vec
		alpha float64
		us    []float64
	}{
		{[]r3.Vec{{X: 0}, {X: 1}, {X: 3}}, 1, []float64{0, 1.0 / 3, 1}},
		{[]r3.Vec{{X: 0}, {X: 1}, {X: 5}}, 0.5, []float64{0, 1.0 / 3, 1}},
		{[]r3.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}, 0.5,
			[]float64{0, 1.0 / 3, 2.0 / 3, 1}},
		// Repeated points contribute nothing.
		{[]r3.Vec{{X: 0}, {X: 0}, {X: 2}}, 1, []float64{0, 0, 1}},
	}

	for i, test := range table {
		us := ChordLength(test.pts, test.alpha)
		assert.InDeltaSlice(t, test.us, us, eps, "%d) alpha = %g", i+1, test.alpha)
	}

	assert.Nil(t, ChordLength(nil, 1))
	assert.Equal(t, []float64{0}, ChordLength([]r3.Vec{{X: 3}}, 1))
}

func TestChordLengthDegenerate(t *testing.T) {
	pts := []r3.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	us := ChordLength(pts, CentripetalAlpha)
	assert.Equal(t, Uniform(4), us)
}

func TestChordLengthMonotone(t *testing.T) {
	for n := 1; n < 20; n++ {
		pts := spiral(n)
		checkMonotone(t, ChordLength(pts, ChordAlpha), "chord")
		checkMonotone(t, ChordLength(pts, CentripetalAlpha), "centripetal")
	}
}

func TestNormalize(t *testing.T) {
	in := []float64{2, 3, 6}
	out, err := Normalize(in, gointerp.DefaultEps)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 1}, out, eps)
	assert.Equal(t, []float64{2, 3, 6}, in, "input modified")

	out, err = Normalize([]float64{-1, 0.1, 0.3}, gointerp.DefaultEps)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 1.0, out[2])

	_, err = Normalize([]float64{4, 4, 4 + 1e-7}, gointerp.DefaultEps)
	assert.True(t, errors.Is(err, gointerp.DegenerateParametrization))

	_, err = Normalize(nil, gointerp.DefaultEps)
	assert.True(t, errors.Is(err, gointerp.DegenerateParametrization))
}

func TestParseMethod(t *testing.T) {
	table := []struct {
		s  string
		m  Method
		ok bool
	}{
		{"ChordLength", ChordLengthMethod, true},
		{" chordlength ", ChordLengthMethod, true},
		{"UNIFORM", UniformMethod, true},
		{"centripetal", CentripetalMethod, true},
		{"spline", 0, false},
	}

	for i, test := range table {
		m, err := ParseMethod(test.s)
		if test.ok {
			assert.NoError(t, err, "%d) %q", i+1, test.s)
			assert.Equal(t, test.m, m, "%d) %q", i+1, test.s)
			assert.Equal(t, m, mustParse(t, m.String()))
		} else {
			assert.Error(t, err, "%d) %q", i+1, test.s)
		}
	}
}

func mustParse(t *testing.T, s string) Method {
	m, err := ParseMethod(s)
	require.NoError(t, err)
	return m
}

func TestAveraged(t *testing.T) {
	lines := [][]r3.Vec{
		{{X: 0}, {X: 1}, {X: 2}},
		{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
	}
	us, err := Averaged(lines, ChordLengthMethod, gointerp.DefaultEps)
	require.NoError(t, err)
	// (0.5 + 2/3) / 2
	assert.InDeltaSlice(t, []float64{0, 7.0 / 12, 1}, us, eps)

	us, err = Averaged(lines, UniformMethod, gointerp.DefaultEps)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, us)

	_, err = Averaged([][]r3.Vec{{{}}, {{}, {}}}, ChordLengthMethod, gointerp.DefaultEps)
	assert.True(t, errors.Is(err, gointerp.IrregularGrid))

	_, err = Averaged(nil, ChordLengthMethod, gointerp.DefaultEps)
	assert.True(t, errors.Is(err, gointerp.IrregularGrid))
}

func BenchmarkChordLength(b *testing.B) {
	pts := spiral(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ChordLength(pts, CentripetalAlpha)
	}
}
