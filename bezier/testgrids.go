package bezier

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// The grids below lie roughly in the x-z plane with the height stored in Y.

// OvershootTestGrid returns a 5 x 5 Gaussian bump sampled densely near the
// edges and sparsely in the middle.
func OvershootTestGrid() Grid {
	coords := []float64{0, 0.5, 2.5, 4.5, 5}

	g := NewGrid(len(coords), len(coords))
	for i := range g {
		for j := range g[i] {
			x, y := coords[j], coords[i]
			dx, dy := x - 2.5, y - 2.5
			z := math.Exp(-(dx*dx + dy*dy) / 5) * 3
			g[i][j] = r3.Vec{X: x, Y: z, Z: y}
		}
	}
	return g
}

// LShapedDensityGrid returns a 6 x 6 grid whose samples are exponentially
// spaced, so they crowd together near the origin.
func LShapedDensityGrid() Grid {
	n := 6
	g := NewGrid(n, n)
	for i := range g {
		for j := range g[i] {
			x := math.Pow(2, float64(j)) - 1
			y := math.Pow(2, float64(i)) - 1
			z := math.Sin(x * 0.2) * y * 0.5
			g[i][j] = r3.Vec{X: x, Y: z, Z: y}
		}
	}
	return g
}

// StretchingTestGrid returns a 4 x 8 grid where the spacing along each row
// grows with every step and the height alternates between rows.
func StretchingTestGrid() Grid {
	g := NewGrid(4, 8)
	for i := range g {
		x := 0.0
		for j := range g[i] {
			x += float64(j) * 0.5
			y := float64(i) * 2
			z := 0.5
			if i % 2 == 1 { z = -0.5 }
			g[i][j] = r3.Vec{X: x, Y: z, Z: y}
		}
	}
	return g
}
