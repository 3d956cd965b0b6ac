package shader

import "fmt"

// PointShape is the marker drawn for each emitted point.
// The numeric values are passed to the point fragment shader.
type PointShape uint32

const (
	Square PointShape = iota
	SquareOutline
	Dot
	DotOutline
	Cross
	X
)

// String returns the name of the shape.
func (p PointShape) String() string {
	switch p {
	case Square:
		return "Square"
	case SquareOutline:
		return "SquareOutline"
	case Dot:
		return "Dot"
	case DotOutline:
		return "DotOutline"
	case Cross:
		return "Cross"
	case X:
		return "X"
	default:
		return fmt.Sprintf("PointShape(%d)", uint32(p))
	}
}

// Outlined reports whether the shape only draws its border.
func (p PointShape) Outlined() bool {
	return p == SquareOutline || p == DotOutline
}
