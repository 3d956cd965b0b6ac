package imdraw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/imdraw/geom"
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/shader"
)

// Every primitive accepts an optional shader. Without one, the current
// shader is used if one was selected, else the default for the primitive
// kind (PointShader for points, FillShader otherwise).
//
// Positions are in model space; the submitted transform is
// ProjectionViewWorldMatrix at the time of the call. Empty input is a
// no-op.

func (c *Context) resolveShader(explicit []*shader.Shader, point bool) *shader.Shader {
	for _, s := range explicit {
		if s != nil {
			return s
		}
	}
	switch {
	case c.shaders.HasCurrent():
		return c.shaders.Current()
	case point:
		return c.PointShader()
	default:
		return c.FillShader()
	}
}

// submit fills the transform and lighting fields of call and sends it.
func (c *Context) submit(call gpucore.DrawCall) {
	if c.closed || len(call.Positions) == 0 {
		return
	}
	call.Transform = c.ProjectionViewWorldMatrix()
	call.World = c.WorldMatrix()
	if call.Lighting {
		call.Light = c.Light()
	}
	c.device.Draw(call)
}

func to3D(pts []mgl32.Vec2) []mgl32.Vec3 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]mgl32.Vec3, len(pts))
	for i, p := range pts {
		out[i] = p.Vec3(0)
	}
	return out
}

// --- Points ---

// Points draws each position as a point with the current point size and
// shape. The color is fill if enabled, else stroke if enabled, else the
// stored fill color.
func (c *Context) Points(pts []mgl32.Vec3, s ...*shader.Shader) {
	if len(pts) == 0 {
		return
	}
	c.submit(gpucore.DrawCall{
		Shader:     c.resolveShader(s, true),
		Topology:   gputypes.PrimitiveTopologyPointList,
		Positions:  pts,
		Color:      c.style.pointColor(),
		PointSize:  c.style.pointSize,
		PointShape: c.style.pointShape,
	})
}

// Points2D draws points in the z = 0 plane.
func (c *Context) Points2D(pts []mgl32.Vec2, s ...*shader.Shader) {
	c.Points(to3D(pts), s...)
}

// PointsLine draws the endpoints of l.
func (c *Context) PointsLine(l geom.Line, s ...*shader.Shader) {
	c.Points(l.Points(), s...)
}

// PointsTriangle draws the vertices of t.
func (c *Context) PointsTriangle(t geom.Triangle, s ...*shader.Shader) {
	c.Points(t.Points(), s...)
}

// PointsBoundingBox draws the corners of b.
func (c *Context) PointsBoundingBox(b geom.BoundingBox, s ...*shader.Shader) {
	c.Points(b.Corners(), s...)
}

// PointsBoundingBoxRect draws the corners of the rectangle
// (minX, minY, maxX, maxY) in the z = 0 plane.
func (c *Context) PointsBoundingBoxRect(r mgl32.Vec4, s ...*shader.Shader) {
	c.PointsBoundingBox(geom.BoundingBoxFromRect(r), s...)
}

// --- Lines ---

// lines draws with the stroke color and weight. Lines ignore NoStroke:
// they have no other style to draw with.
func (c *Context) lines(topology gputypes.PrimitiveTopology, pts []mgl32.Vec3, s []*shader.Shader) {
	if len(pts) < 2 {
		return
	}
	c.submit(gpucore.DrawCall{
		Shader:       c.resolveShader(s, false),
		Topology:     topology,
		Positions:    pts,
		Color:        c.style.stroke,
		StrokeWeight: c.style.strokeWeight,
	})
}

// Line draws a segment from a to b.
func (c *Context) Line(a, b mgl32.Vec3, s ...*shader.Shader) {
	c.lines(gputypes.PrimitiveTopologyLineStrip, []mgl32.Vec3{a, b}, s)
}

// Line2D draws a segment in the z = 0 plane.
func (c *Context) Line2D(a, b mgl32.Vec2, s ...*shader.Shader) {
	c.Line(a.Vec3(0), b.Vec3(0), s...)
}

// LineStrip draws a connected polyline through pts.
func (c *Context) LineStrip(pts []mgl32.Vec3, s ...*shader.Shader) {
	c.lines(gputypes.PrimitiveTopologyLineStrip, pts, s)
}

// LineStrip2D draws a polyline in the z = 0 plane.
func (c *Context) LineStrip2D(pts []mgl32.Vec2, s ...*shader.Shader) {
	c.LineStrip(to3D(pts), s...)
}

// LineSegment draws l.
func (c *Context) LineSegment(l geom.Line, s ...*shader.Shader) {
	c.lines(gputypes.PrimitiveTopologyLineList, l.Points(), s)
}

// LineTriangle draws the outline of t.
func (c *Context) LineTriangle(t geom.Triangle, s ...*shader.Shader) {
	c.lines(gputypes.PrimitiveTopologyLineList, geom.LineList(t.Edges()), s)
}

// LineBoundingBox draws the edges of b.
func (c *Context) LineBoundingBox(b geom.BoundingBox, s ...*shader.Shader) {
	c.lines(gputypes.PrimitiveTopologyLineList, geom.LineList(b.Edges()), s)
}

// LineBoundingBoxRect draws the outline of the rectangle
// (minX, minY, maxX, maxY) in the z = 0 plane.
func (c *Context) LineBoundingBoxRect(r mgl32.Vec4, s ...*shader.Shader) {
	c.LineBoundingBox(geom.BoundingBoxFromRect(r), s...)
}

// --- Triangles ---

// fillAndOutline draws a triangle list with the fill style, then its
// outline as a line list with the stroke style. Each pass is skipped when
// its style is disabled.
func (c *Context) fillAndOutline(tris, outline []mgl32.Vec3, s []*shader.Shader) {
	sh := c.resolveShader(s, false)
	if c.style.fillOn {
		c.submit(gpucore.DrawCall{
			Shader:    sh,
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			Positions: tris,
			Color:     c.style.fill,
			Lighting:  c.style.lighting,
		})
	}
	if c.style.strokeOn {
		c.submit(gpucore.DrawCall{
			Shader:       sh,
			Topology:     gputypes.PrimitiveTopologyLineList,
			Positions:    outline,
			Color:        c.style.stroke,
			StrokeWeight: c.style.strokeWeight,
		})
	}
}

// Triangles draws every three positions as a triangle. Trailing
// positions that do not complete a triangle are ignored.
func (c *Context) Triangles(pts []mgl32.Vec3, s ...*shader.Shader) {
	n := len(pts) - len(pts)%3
	if n == 0 {
		return
	}
	tris := pts[:n]
	outline := make([]mgl32.Vec3, 0, 2*n)
	for i := 0; i < n; i += 3 {
		t := geom.Triangle{A: tris[i], B: tris[i+1], C: tris[i+2]}
		outline = append(outline, geom.LineList(t.Edges())...)
	}
	c.fillAndOutline(tris, outline, s)
}

// Triangles2D draws triangles in the z = 0 plane.
func (c *Context) Triangles2D(pts []mgl32.Vec2, s ...*shader.Shader) {
	c.Triangles(to3D(pts), s...)
}

// Rect draws an axis-aligned rectangle in the z = 0 plane with corner
// (x, y) and size (w, h). Zero-area rectangles are ignored.
func (c *Context) Rect(x, y, w, h float32, s ...*shader.Shader) {
	if w == 0 || h == 0 {
		return
	}
	p := [4]mgl32.Vec3{
		{x, y, 0},
		{x + w, y, 0},
		{x + w, y + h, 0},
		{x, y + h, 0},
	}
	tris := []mgl32.Vec3{p[0], p[1], p[2], p[0], p[2], p[3]}
	outline := []mgl32.Vec3{p[0], p[1], p[1], p[2], p[2], p[3], p[3], p[0]}
	c.fillAndOutline(tris, outline, s)
}

// RectV draws a rectangle from a position and a size.
func (c *Context) RectV(pos, size mgl32.Vec2, s ...*shader.Shader) {
	c.Rect(pos[0], pos[1], size[0], size[1], s...)
}

// --- Meshes ---

// Model draws a caller-owned mesh with the fill color and the current
// lighting state. A nil mesh is ignored.
func (c *Context) Model(mesh gpucore.Mesh, s ...*shader.Shader) {
	if c.closed || mesh == nil || len(mesh.Vertices()) == 0 {
		return
	}
	call := gpucore.MeshCall{
		Mesh:      mesh,
		Shader:    c.resolveShader(s, false),
		Transform: c.ProjectionViewWorldMatrix(),
		World:     c.WorldMatrix(),
		Color:     c.style.fill,
		Lighting:  c.style.lighting,
	}
	if call.Lighting {
		call.Light = c.Light()
	}
	c.device.DrawMesh(call)
}
