package imdraw

import (
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/label"
)

// AddLabel manages a caller-owned label. Its content is first evaluated
// by the next call to Labels.
func (c *Context) AddLabel(l *label.Label) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.labels.Add(l); err != nil {
		return c.warn("AddLabel", err)
	}
	return nil
}

// NewLabel creates a label owned by the context.
//
//	pos := mgl32.Vec3{0, 1, -5}
//	ctx.NewLabel(label.Static("origin"), label.At(&pos), label.Up, 4)
//	ctx.NewLabel(label.Dynamic(fps), label.Screen(10, 10), label.Right, 0)
func (c *Context) NewLabel(content label.Content, anchor label.Anchor, typ label.Type, margin float32) *label.Label {
	return c.labels.New(content, anchor, typ, margin)
}

// Labels re-projects every label for the current camera and transform,
// then draws the visible ones. Fixed anchor points go through the current
// transform; attached nodes and models report world positions and only go
// through the camera. Call it once per frame before LabelAt.
func (c *Context) Labels() {
	if c.closed {
		return
	}
	frame := label.Frame{
		ProjectionViewWorld: c.ProjectionViewWorldMatrix(),
		ProjectionView:      c.ProjectionViewMatrix(),
		Width:               float32(c.width),
		Height:              float32(c.height),
	}
	font := c.Font()
	c.labels.Update(frame, font)

	color := c.style.pointColor()
	for _, l := range c.labels.Visible() {
		f := font
		if l.Font != nil {
			f = l.Font
		}
		b := l.Bounds()
		c.device.DrawText(gpucore.TextCall{
			Text:  l.Text(),
			Font:  f,
			X:     b.X,
			Y:     b.Y + f.Metrics().Ascent,
			Size:  f.Size(),
			Color: color,
		})
	}
}

// LabelAt returns the index of the topmost visible label containing the
// screen point (x, y), or label.None. It uses the placement from the last
// call to Labels.
func (c *Context) LabelAt(x, y float32) int {
	return c.labels.At(x, y)
}

// Label returns the label at index i.
func (c *Context) Label(i int) (*label.Label, error) {
	l, err := c.labels.Label(i)
	if err != nil {
		return nil, c.warn("Label", err)
	}
	return l, nil
}

// LabelCount returns the number of managed labels.
func (c *Context) LabelCount() int {
	return c.labels.Len()
}

// RemoveLabel removes the label at index i. Later labels shift down.
func (c *Context) RemoveLabel(i int) error {
	if err := c.labels.Remove(i); err != nil {
		return c.warn("RemoveLabel", err)
	}
	return nil
}

// ClearLabels removes every label.
func (c *Context) ClearLabels() {
	c.labels.Clear()
}
