package label

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/imdraw/text"
)

// Type places the label text relative to its projected anchor.
type Type int

const (
	// Center centers the text on the anchor.
	Center Type = iota
	// Left places the text left of the anchor, Margin pixels away.
	Left
	// Right places the text right of the anchor.
	Right
	// Up places the text above the anchor.
	Up
	// Down places the text below the anchor.
	Down
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Center:
		return "Center"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Content is either a fixed string or a function producing one.
type Content struct {
	text string
	fn   func() string
}

// Static returns content that always reads s.
func Static(s string) Content {
	return Content{text: s}
}

// Dynamic returns content produced by fn. fn is called at most once per
// Manager.Update, and only while the label is visible.
func Dynamic(fn func() string) Content {
	return Content{fn: fn}
}

// IsDynamic reports whether the content is produced by a function.
func (c Content) IsDynamic() bool { return c.fn != nil }

func (c Content) eval() string {
	if c.fn != nil {
		return c.fn()
	}
	return c.text
}

// Positioner reports a world-space position. Scene nodes and models
// implement it.
type Positioner interface {
	WorldPosition() mgl32.Vec3
}

type anchorKind int

const (
	anchorNone anchorKind = iota
	anchorPoint
	anchorScreen
	anchorAttached
)

// Anchor is the reference point a label's screen position derives from.
type Anchor struct {
	kind   anchorKind
	point  *mgl32.Vec3
	screen mgl32.Vec2
	target Positioner
}

// At anchors to the world point p. The point is read through the pointer
// every frame.
func At(p *mgl32.Vec3) Anchor {
	return Anchor{kind: anchorPoint, point: p}
}

// Screen anchors to a fixed screen position.
func Screen(x, y float32) Anchor {
	return Anchor{kind: anchorScreen, screen: mgl32.Vec2{x, y}}
}

// Attach anchors to the world position of p, polled every frame.
func Attach(p Positioner) Anchor {
	return Anchor{kind: anchorAttached, target: p}
}

// IsScreen reports whether the anchor is a fixed screen position.
func (a Anchor) IsScreen() bool { return a.kind == anchorScreen }

// world returns the anchor's world position, or false if it has none.
func (a Anchor) world() (mgl32.Vec3, bool) {
	switch a.kind {
	case anchorPoint:
		if a.point == nil {
			return mgl32.Vec3{}, false
		}
		return *a.point, true
	case anchorAttached:
		if a.target == nil {
			return mgl32.Vec3{}, false
		}
		return a.target.WorldPosition(), true
	default:
		return mgl32.Vec3{}, false
	}
}

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside or on the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Label is a text annotation. Fields may be changed between frames; the
// derived values are recomputed by Manager.Update.
type Label struct {
	Content Content
	Anchor  Anchor
	Type    Type
	Margin  float32

	// Font overrides the measurer passed to Manager.Update.
	Font *text.Font

	text    string
	screen  mgl32.Vec2
	bounds  Rect
	depth   float32
	visible bool
}

// New returns a label. It is not managed until added to a Manager.
func New(content Content, anchor Anchor, typ Type, margin float32) *Label {
	return &Label{Content: content, Anchor: anchor, Type: typ, Margin: margin}
}

// Text returns the content evaluated by the last update.
func (l *Label) Text() string { return l.text }

// Screen returns the projected anchor in screen pixels.
func (l *Label) Screen() mgl32.Vec2 { return l.screen }

// Bounds returns the screen rectangle covered by the text.
func (l *Label) Bounds() Rect { return l.bounds }

// Depth returns the normalized device depth of the anchor; 0 for screen
// anchors.
func (l *Label) Depth() float32 { return l.depth }

// Visible reports whether the label was on screen at the last update.
func (l *Label) Visible() bool { return l.visible }
