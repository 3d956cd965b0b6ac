// Package geom holds the small geometric values accepted by the drawing
// calls: line segments, triangles and axis-aligned bounding boxes.
//
// They carry no mesh logic. Each type only knows how to hand its vertices
// to the vector-of-positions form of the drawing calls.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Line is a segment from A to B.
type Line struct {
	A, B mgl32.Vec3
}

// Points returns the two endpoints.
func (l Line) Points() []mgl32.Vec3 {
	return []mgl32.Vec3{l.A, l.B}
}

// Length returns the segment length.
func (l Line) Length() float32 {
	return l.B.Sub(l.A).Len()
}

// Triangle is a triangle with vertices A, B and C in winding order.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// Points returns the three vertices.
func (t Triangle) Points() []mgl32.Vec3 {
	return []mgl32.Vec3{t.A, t.B, t.C}
}

// Edges returns the three edges AB, BC and CA.
func (t Triangle) Edges() []Line {
	return []Line{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// Normal returns the unit face normal, or the zero vector when the
// triangle is degenerate.
func (t Triangle) Normal() mgl32.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// BoundingBox is an axis-aligned box. A box with Min > Max on any axis is
// empty; the zero value is the single point at the origin.
type BoundingBox struct {
	Min, Max mgl32.Vec3
}

// Empty returns a box that contains nothing and grows to fit the first
// point passed to Expand.
func Empty() BoundingBox {
	inf := float32(math.Inf(1))
	return BoundingBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// NewBoundingBox returns the smallest box containing points.
func NewBoundingBox(points ...mgl32.Vec3) BoundingBox {
	b := Empty()
	for _, p := range points {
		b = b.Expand(p)
	}
	return b
}

// BoundingBoxFromRect returns the flat box spanned by r = (minX, minY,
// maxX, maxY) in the z = 0 plane.
func BoundingBoxFromRect(r mgl32.Vec4) BoundingBox {
	return NewBoundingBox(mgl32.Vec3{r[0], r[1], 0}, mgl32.Vec3{r[2], r[3], 0})
}

// Expand returns b grown to contain p.
func (b BoundingBox) Expand(p mgl32.Vec3) BoundingBox {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// IsEmpty reports whether the box contains no point.
func (b BoundingBox) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// IsFlat reports whether the box has no depth.
func (b BoundingBox) IsFlat() bool {
	return !b.IsEmpty() && b.Min[2] == b.Max[2]
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent along each axis.
func (b BoundingBox) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := range 3 {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Corners returns the corners of the box: four for a flat box in
// counter-clockwise order, eight otherwise. An empty box has none.
func (b BoundingBox) Corners() []mgl32.Vec3 {
	if b.IsEmpty() {
		return nil
	}
	lo, hi := b.Min, b.Max
	ring := func(z float32) []mgl32.Vec3 {
		return []mgl32.Vec3{
			{lo[0], lo[1], z},
			{hi[0], lo[1], z},
			{hi[0], hi[1], z},
			{lo[0], hi[1], z},
		}
	}
	if b.IsFlat() {
		return ring(lo[2])
	}
	return append(ring(lo[2]), ring(hi[2])...)
}

// Edges returns the box outline: four segments for a flat box, twelve
// otherwise.
func (b BoundingBox) Edges() []Line {
	c := b.Corners()
	switch len(c) {
	case 4:
		return []Line{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
	case 8:
		edges := make([]Line, 0, 12)
		for i := range 4 {
			j := (i + 1) % 4
			edges = append(edges,
				Line{c[i], c[j]},
				Line{c[4+i], c[4+j]},
				Line{c[i], c[4+i]},
			)
		}
		return edges
	default:
		return nil
	}
}

// LineList flattens segments into endpoint pairs for a line-list draw.
func LineList(lines []Line) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, 2*len(lines))
	for _, l := range lines {
		out = append(out, l.A, l.B)
	}
	return out
}
