package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp/bezier"
)

func TestGetModeName(t *testing.T) {
	curve, surface, example := "", "", ""
	vars := map[string]*string {
		"Curve": &curve, "Surface": &surface, "ExampleConfig": &example,
	}

	_, err := getModeName(vars)
	assert.Error(t, err)

	surface = "surface.cfg"
	name, err := getModeName(vars)
	assert.NoError(t, err)
	assert.Equal(t, "Surface", name)

	example = "Curve"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

func TestCoordinates(t *testing.T) {
	pts := []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	assert.Equal(t, []float64{1, 4}, xs(pts))
	assert.Equal(t, []float64{2, 5}, ys(pts))
}

func TestSurfaceLines(t *testing.T) {
	s, err := bezier.InterpolateSurface(bezier.OvershootTestGrid(), nil)
	require.NoError(t, err)

	lines := surfaceLines(s, 7, 9)
	require.Len(t, lines, 7 + 9)
	for i, line := range lines[:7] {
		assert.Len(t, line, 9, "row %d", i)
	}
	for i, line := range lines[7:] {
		assert.Len(t, line, 7, "column %d", i)
	}

	// The height of the built-in grids is in Y, so the plotted profile
	// through the middle of the grid shows the peak.
	heights := ys(lines[3])
	assert.InDelta(t, 3.0, heights[4], 1e-6)
	assert.True(t, floats.Max(heights) - floats.Min(heights) > 1)
}
