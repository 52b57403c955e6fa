package io

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/phil-mansfield/gointerp/bezier"
	"github.com/phil-mansfield/gointerp/bspline"
)

var end = binary.LittleEndian

/*
The binary format used for curves and surfaces is as follows:
    |-- 1 --||-- 2 --||-- ... 3 ... --||-- ... 4 ... --|

    1 - (TypeInfo) Endianness flag, header size and object type. -1 indicates
        a little endian byte ordering and 0 indicates a big endian ordering.
    2 - (ShapeInfo) Degree and control point counts.
    3 - ([]float64) Knot vector. Empty for surfaces.
    4 - ([][3]float64) Control points, row-major for surfaces.
*/
type Header struct {
	Type TypeInfo
	Shape ShapeInfo
}

type TypeInfo struct {
	Endianness int64
	HeaderSize int64
	ObjectType int64
}

// ShapeInfo gives the layout of the data following the header. Curves have
// Rows control points, Cols = 1 and Knots = Rows + Degree + 1.
type ShapeInfo struct {
	Degree int64
	Rows, Cols int64
	Knots int64
}

type ObjectFlag int64
const (
	CurveObject ObjectFlag = iota
	SurfaceObject
)

func newHeader(flag ObjectFlag, shape ShapeInfo) *Header {
	var endFlag int64
	if end == binary.LittleEndian {
		endFlag = -1
	} else {
		endFlag = 0
	}

	hd := &Header{ Shape: shape }
	hd.Type.Endianness = endFlag
	hd.Type.HeaderSize = int64(binary.Size(hd))
	hd.Type.ObjectType = int64(flag)
	return hd
}

// WriteCurveBinary writes c to wr in the binary format described above.
func WriteCurveBinary(c *bspline.Curve, wr io.Writer) error {
	ctrl, knots := c.ControlPoints(), c.Knots()
	hd := newHeader(CurveObject, ShapeInfo{
		Degree: int64(c.Degree()), Rows: int64(len(ctrl)), Cols: 1,
		Knots: int64(len(knots)),
	})

	if err := binary.Write(wr, end, hd); err != nil { return err }
	if err := binary.Write(wr, end, knots); err != nil { return err }
	return binary.Write(wr, end, ctrl)
}

// WriteSurfaceBinary writes s to wr in the binary format described above.
func WriteSurfaceBinary(s *bezier.Surface, wr io.Writer) error {
	hd := newHeader(SurfaceObject, ShapeInfo{
		Degree: -1, Rows: int64(s.Rows()), Cols: int64(s.Cols()),
	})

	if err := binary.Write(wr, end, hd); err != nil { return err }
	for _, row := range s.ControlPoints() {
		if err := binary.Write(wr, end, row); err != nil { return err }
	}
	return nil
}

// WriteCurveText writes c as a text table with one control point per line.
// The degree and knot vector are written in '#' comment lines above the
// table.
func WriteCurveText(c *bspline.Curve, wr io.Writer) error {
	w := bufio.NewWriter(wr)

	fmt.Fprintf(w, "# Degree: %d\n", c.Degree())
	fmt.Fprintf(w, "# Knots: %s\n", floatList(c.Knots()))
	if ts := c.Params(); ts != nil {
		fmt.Fprintf(w, "# Params: %s\n", floatList(ts))
	}
	fmt.Fprintf(w, "# %3s %24s %24s\n", "X", "Y", "Z")
	for _, p := range c.ControlPoints() {
		fmt.Fprintf(w, "%24.17g %24.17g %24.17g\n", p.X, p.Y, p.Z)
	}

	return w.Flush()
}

// WriteSurfaceText writes the control grid of s row by row, one point per
// line, so that it can be read back as an input grid with Cols = s.Cols().
func WriteSurfaceText(s *bezier.Surface, wr io.Writer) error {
	w := bufio.NewWriter(wr)

	fmt.Fprintf(w, "# Rows: %d\n", s.Rows())
	fmt.Fprintf(w, "# Cols: %d\n", s.Cols())
	if us := s.UParams(); us != nil {
		fmt.Fprintf(w, "# UParams: %s\n", floatList(us))
		fmt.Fprintf(w, "# VParams: %s\n", floatList(s.VParams()))
	}
	fmt.Fprintf(w, "# %3s %24s %24s\n", "X", "Y", "Z")
	for _, row := range s.ControlPoints() {
		for _, p := range row {
			fmt.Fprintf(w, "%24.17g %24.17g %24.17g\n", p.X, p.Y, p.Z)
		}
	}

	return w.Flush()
}

func floatList(xs []float64) string {
	tokens := make([]string, len(xs))
	for i := range tokens { tokens[i] = fmt.Sprintf("%.17g", xs[i]) }
	return strings.Join(tokens, " ")
}
