package imdraw

import (
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/text"
)

// The text setters configure a font in place. A nil font means the
// current font.

func (c *Context) fontOrCurrent(f *text.Font) *text.Font {
	if f != nil {
		return f
	}
	return c.Font()
}

// TextAlign sets the horizontal alignment of f.
func (c *Context) TextAlign(h text.HAlign, f *text.Font) {
	c.fontOrCurrent(f).SetAlign(h)
}

// TextVerticalAlign sets the vertical alignment of f.
func (c *Context) TextVerticalAlign(v text.VAlign, f *text.Font) {
	c.fontOrCurrent(f).SetVerticalAlign(v)
}

// TextAngle sets the rotation of f in radians, counter-clockwise on
// screen.
func (c *Context) TextAngle(rad float32, f *text.Font) {
	c.fontOrCurrent(f).SetAngle(rad)
}

// TextSize sets the size of f in pixels. Non-positive sizes are ignored.
func (c *Context) TextSize(size float32, f *text.Font) {
	c.fontOrCurrent(f).SetSize(size)
}

// Text draws s at screen position (x, y) aligned by f's alignment.
// The color follows the point rule: fill, else stroke.
func (c *Context) Text(s string, x, y float32, f *text.Font) {
	if c.closed || s == "" {
		return
	}
	f = c.fontOrCurrent(f)
	ox, oy := f.Origin(s, x, y)
	c.device.DrawText(gpucore.TextCall{
		Text:  s,
		Font:  f,
		X:     ox,
		Y:     oy,
		Size:  f.Size(),
		Angle: f.Angle(),
		Color: c.style.pointColor(),
	})
}
