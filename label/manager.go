package label

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// None is returned by Manager.At when no label is hit.
const None = -1

var (
	// ErrIndexOutOfRange is returned for a label index outside [0, Len).
	ErrIndexOutOfRange = errors.New("label: index out of range")

	// ErrNilLabel is returned when adding a nil label.
	ErrNilLabel = errors.New("label: nil label")
)

// Measurer measures a string in screen pixels.
// *text.Font implements it.
type Measurer interface {
	Measure(s string) (w, h float32)
}

// Frame is the projection state of one frame.
type Frame struct {
	// ProjectionViewWorld maps fixed anchor points to clip space. Points
	// are given in the coordinate system of the current transform.
	ProjectionViewWorld mgl32.Mat4

	// ProjectionView maps attached anchors, which already report world
	// positions. A zero matrix falls back to ProjectionViewWorld.
	ProjectionView mgl32.Mat4

	// Width and Height are the viewport size in pixels.
	Width, Height float32
}

// Manager owns the ordered set of labels. Insertion order is z order:
// later labels are on top.
//
// Manager is not safe for concurrent use.
type Manager struct {
	labels []*Label
	owned  []bool
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add manages a caller-owned label.
func (m *Manager) Add(l *Label) error {
	if l == nil {
		return ErrNilLabel
	}
	m.labels = append(m.labels, l)
	m.owned = append(m.owned, false)
	return nil
}

// New creates and manages a label owned by the manager.
func (m *Manager) New(content Content, anchor Anchor, typ Type, margin float32) *Label {
	l := New(content, anchor, typ, margin)
	m.labels = append(m.labels, l)
	m.owned = append(m.owned, true)
	return l
}

// Len returns the number of managed labels.
func (m *Manager) Len() int { return len(m.labels) }

// Label returns the label at index i.
func (m *Manager) Label(i int) (*Label, error) {
	if i < 0 || i >= len(m.labels) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(m.labels))
	}
	return m.labels[i], nil
}

// IsOwned reports whether the label at i was created by the manager.
func (m *Manager) IsOwned(i int) bool {
	return i >= 0 && i < len(m.owned) && m.owned[i]
}

// Remove stops managing the label at index i.
func (m *Manager) Remove(i int) error {
	if i < 0 || i >= len(m.labels) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(m.labels))
	}
	m.labels = append(m.labels[:i], m.labels[i+1:]...)
	m.owned = append(m.owned[:i], m.owned[i+1:]...)
	return nil
}

// Clear stops managing every label.
func (m *Manager) Clear() {
	m.labels = nil
	m.owned = nil
}

// Visible returns the labels visible at the last update, in z order.
func (m *Manager) Visible() []*Label {
	var out []*Label
	for _, l := range m.labels {
		if l.visible {
			out = append(out, l)
		}
	}
	return out
}

// Update re-projects every label for the frame. Dynamic content is
// evaluated once for each visible label. measure sizes labels without
// their own font; a nil measure gives them zero size.
func (m *Manager) Update(frame Frame, measure Measurer) {
	for _, l := range m.labels {
		place(l, frame, measure)
	}
}

func (f Frame) matrix(a Anchor) mgl32.Mat4 {
	if a.kind == anchorAttached && f.ProjectionView != (mgl32.Mat4{}) {
		return f.ProjectionView
	}
	return f.ProjectionViewWorld
}

func place(l *Label, frame Frame, measure Measurer) {
	l.visible = false

	var sx, sy, depth float32
	if l.Anchor.IsScreen() {
		sx, sy = l.Anchor.screen[0], l.Anchor.screen[1]
	} else {
		p, ok := l.Anchor.world()
		if !ok {
			return
		}
		clip := frame.matrix(l.Anchor).Mul4x1(p.Vec4(1))
		w := clip.W()
		if w <= 0 {
			return
		}
		ndc := clip.Vec3().Mul(1 / w)
		if ndc[2] < -1 || ndc[2] > 1 {
			return
		}
		sx = (ndc[0] + 1) * 0.5 * frame.Width
		sy = (1 - ndc[1]) * 0.5 * frame.Height
		depth = ndc[2]

		margin := l.Margin
		if sx < -margin || sx > frame.Width+margin || sy < -margin || sy > frame.Height+margin {
			return
		}
	}

	l.text = l.Content.eval()
	l.screen = mgl32.Vec2{sx, sy}
	l.depth = depth
	l.visible = true

	var w, h float32
	switch {
	case l.Font != nil:
		w, h = l.Font.Measure(l.text)
	case measure != nil:
		w, h = measure.Measure(l.text)
	}

	x, y := sx-w/2, sy-h/2
	switch l.Type {
	case Left:
		x = sx - l.Margin - w
	case Right:
		x = sx + l.Margin
	case Up:
		y = sy - l.Margin - h
	case Down:
		y = sy + l.Margin
	}
	l.bounds = Rect{X: x, Y: y, W: w, H: h}
}

// At returns the index of the topmost visible label whose bounds contain
// (x, y), or None. It uses the state of the last Update.
func (m *Manager) At(x, y float32) int {
	for i := len(m.labels) - 1; i >= 0; i-- {
		l := m.labels[i]
		if l.visible && l.bounds.Contains(x, y) {
			return i
		}
	}
	return None
}
