package io

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/gointerp/bezier"
	"github.com/phil-mansfield/gointerp/bspline"
)

// MaxElements is the largest number of knots or control points a binary
// file may declare.
const MaxElements = 1 << 24

// endianness returns the byte order used by a file with the given
// endianness flag. The flag is either all one bits or all zero bits, so it
// can be read before the order is known.
func endianness(flag int64) (binary.ByteOrder, error) {
	switch flag {
	case -1:
		return binary.LittleEndian, nil
	case 0:
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("Unrecognized endianness flag, %d.", flag)
}

// ReadHeader reads the header of a binary curve or surface and returns it
// along with the byte order of the rest of the file.
func ReadHeader(rd io.Reader) (*Header, binary.ByteOrder, error) {
	hd := &Header{}
	buf := make([]byte, binary.Size(hd))
	if _, err := io.ReadFull(rd, buf); err != nil {
		return nil, nil, err
	}

	order, err := endianness(int64(binary.LittleEndian.Uint64(buf[:8])))
	if err != nil { return nil, nil, err }

	if err := binary.Read(bytes.NewReader(buf), order, hd); err != nil {
		return nil, nil, err
	}

	if hd.Type.HeaderSize != int64(len(buf)) {
		return nil, nil, fmt.Errorf(
			"Header size is %d, but expected %d.",
			hd.Type.HeaderSize, len(buf),
		)
	} else if hd.Shape.Rows < 0 || hd.Shape.Cols < 0 || hd.Shape.Knots < 0 {
		return nil, nil, fmt.Errorf(
			"Header has negative shape %d x %d with %d knots.",
			hd.Shape.Rows, hd.Shape.Cols, hd.Shape.Knots,
		)
	} else if hd.Shape.Rows > MaxElements || hd.Shape.Cols > MaxElements ||
		hd.Shape.Rows*hd.Shape.Cols > MaxElements ||
		hd.Shape.Knots > MaxElements {
		return nil, nil, fmt.Errorf(
			"Header shape %d x %d with %d knots is larger than the limit " +
				"of %d elements.",
			hd.Shape.Rows, hd.Shape.Cols, hd.Shape.Knots, MaxElements,
		)
	}
	return hd, order, nil
}

// ReadCurveBinary reads a curve written by WriteCurveBinary.
func ReadCurveBinary(rd io.Reader) (*bspline.Curve, error) {
	hd, order, err := ReadHeader(rd)
	if err != nil { return nil, err }
	if ObjectFlag(hd.Type.ObjectType) != CurveObject {
		return nil, fmt.Errorf(
			"Object type is %d, not a curve.", hd.Type.ObjectType,
		)
	} else if hd.Shape.Degree < 0 || hd.Shape.Cols != 1 ||
		hd.Shape.Knots != hd.Shape.Rows+hd.Shape.Degree+1 {
		return nil, fmt.Errorf(
			"Curve header has degree %d, %d x %d control points and %d " +
				"knots.", hd.Shape.Degree, hd.Shape.Rows, hd.Shape.Cols,
			hd.Shape.Knots,
		)
	}

	knots := make([]float64, hd.Shape.Knots)
	ctrl := make([]r3.Vec, hd.Shape.Rows)
	if err := binary.Read(rd, order, knots); err != nil { return nil, err }
	if err := binary.Read(rd, order, ctrl); err != nil { return nil, err }

	return bspline.NewCurve(int(hd.Shape.Degree), ctrl, knots)
}

// ReadSurfaceBinary reads a surface written by WriteSurfaceBinary.
func ReadSurfaceBinary(rd io.Reader) (*bezier.Surface, error) {
	hd, order, err := ReadHeader(rd)
	if err != nil { return nil, err }
	if ObjectFlag(hd.Type.ObjectType) != SurfaceObject {
		return nil, fmt.Errorf(
			"Object type is %d, not a surface.", hd.Type.ObjectType,
		)
	}

	g := bezier.NewGrid(int(hd.Shape.Rows), int(hd.Shape.Cols))
	for r := range g {
		if err := binary.Read(rd, order, g[r]); err != nil { return nil, err }
	}
	return bezier.NewSurface(g)
}
