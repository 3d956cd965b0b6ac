package imdraw

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/imdraw/shader"
)

// Default style values of a new Context.
const (
	DefaultStrokeWeight float32 = 1
	DefaultPointSize    float32 = 10
	DefaultPointShape           = shader.Dot
)

// style is the fill, stroke and point state applied to primitives.
// Disabling fill or stroke keeps the stored color.
type style struct {
	fill     mgl32.Vec4
	fillOn   bool
	stroke   mgl32.Vec4
	strokeOn bool

	strokeWeight float32
	pointSize    float32
	pointShape   shader.PointShape

	lighting bool
}

func defaultStyle() style {
	return style{
		fill:         White,
		fillOn:       true,
		stroke:       Black,
		strokeOn:     true,
		strokeWeight: DefaultStrokeWeight,
		pointSize:    DefaultPointSize,
		pointShape:   DefaultPointShape,
	}
}

// pointColor is fill if enabled, else stroke if enabled, else the
// stored fill color.
func (s *style) pointColor() mgl32.Vec4 {
	if !s.fillOn && s.strokeOn {
		return s.stroke
	}
	return s.fill
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// Fill enables filling with color c.
// Use the color helpers to build c:
//
//	ctx.Fill(imdraw.RGB(1, 0, 0))
//	ctx.Fill(imdraw.Gray(0.5))
//	ctx.Fill(imdraw.Hex("#3498db"))
func (c *Context) Fill(col mgl32.Vec4) {
	c.style.fill = col
	c.style.fillOn = true
}

// NoFill disables filling. The fill color is kept.
func (c *Context) NoFill() { c.style.fillOn = false }

// FillEnabled reports whether filling is enabled.
func (c *Context) FillEnabled() bool { return c.style.fillOn }

// FillColor returns the stored fill color.
func (c *Context) FillColor() mgl32.Vec4 { return c.style.fill }

// Stroke enables stroking with color c.
func (c *Context) Stroke(col mgl32.Vec4) {
	c.style.stroke = col
	c.style.strokeOn = true
}

// NoStroke disables stroking. The stroke color is kept.
func (c *Context) NoStroke() { c.style.strokeOn = false }

// StrokeEnabled reports whether stroking is enabled.
func (c *Context) StrokeEnabled() bool { return c.style.strokeOn }

// StrokeColor returns the stored stroke color.
func (c *Context) StrokeColor() mgl32.Vec4 { return c.style.stroke }

// StrokeWeight sets the line width in pixels.
// A weight that is not a positive finite number is rejected with
// ErrInvalidStrokeWeight and the previous weight is kept.
func (c *Context) StrokeWeight(w float32) error {
	if !positive(w) {
		return c.warn("StrokeWeight", fmt.Errorf("%w: %v", ErrInvalidStrokeWeight, w))
	}
	c.style.strokeWeight = w
	return nil
}

// CurrentStrokeWeight returns the line width in pixels.
func (c *Context) CurrentStrokeWeight() float32 { return c.style.strokeWeight }

// PointSize sets the point diameter in pixels.
// A size that is not a positive finite number is rejected with
// ErrInvalidPointSize and the previous size is kept.
func (c *Context) PointSize(s float32) error {
	if !positive(s) {
		return c.warn("PointSize", fmt.Errorf("%w: %v", ErrInvalidPointSize, s))
	}
	c.style.pointSize = s
	return nil
}

// CurrentPointSize returns the point diameter in pixels.
func (c *Context) CurrentPointSize() float32 { return c.style.pointSize }

// PointShape sets the shape drawn for points.
func (c *Context) PointShape(shape shader.PointShape) { c.style.pointShape = shape }

// CurrentPointShape returns the shape drawn for points.
func (c *Context) CurrentPointShape() shader.PointShape { return c.style.pointShape }

// Lights enables lit shading for fills and meshes.
func (c *Context) Lights() { c.style.lighting = true }

// NoLights disables lit shading.
func (c *Context) NoLights() { c.style.lighting = false }

// LightingEnabled reports whether lit shading is enabled.
func (c *Context) LightingEnabled() bool { return c.style.lighting }

// Clear fills the whole target with col.
func (c *Context) Clear(col mgl32.Vec4) {
	if c.closed {
		return
	}
	c.device.Clear(col)
}
