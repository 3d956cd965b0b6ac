package label

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// fixedMeasure sizes every string as 10 pixels per byte by 10 high.
type fixedMeasure struct{}

func (fixedMeasure) Measure(s string) (float32, float32) {
	return float32(10 * len(s)), 10
}

type mover struct{ pos mgl32.Vec3 }

func (m *mover) WorldPosition() mgl32.Vec3 { return m.pos }

func testFrame() Frame {
	return Frame{
		ProjectionViewWorld: mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100),
		Width:               200,
		Height:              200,
	}
}

func TestFocalPointProjectsToCenter(t *testing.T) {
	m := NewManager()
	p := mgl32.Vec3{0, 0, -5}
	l := m.New(Static("center"), At(&p), Center, 0)

	m.Update(testFrame(), fixedMeasure{})

	if !l.Visible() {
		t.Fatal("label in front of the camera should be visible")
	}
	if !l.Screen().ApproxEqual(mgl32.Vec2{100, 100}) {
		t.Errorf("Screen() = %v, want viewport center (100, 100)", l.Screen())
	}
	b := l.Bounds()
	if b.X != 70 || b.Y != 95 || b.W != 60 || b.H != 10 {
		t.Errorf("Bounds() = %+v, want centered 60x10 box", b)
	}
}

func TestBehindCameraInvisible(t *testing.T) {
	m := NewManager()
	p := mgl32.Vec3{0, 0, 5}
	l := m.New(Static("behind"), At(&p), Center, 0)

	m.Update(testFrame(), fixedMeasure{})

	if l.Visible() {
		t.Error("label behind the camera should not be visible")
	}
	if m.At(100, 100) != None {
		t.Error("invisible label should not be hit")
	}
}

func TestOffscreenAndFarInvisible(t *testing.T) {
	m := NewManager()
	side := mgl32.Vec3{50, 0, -5}
	far := mgl32.Vec3{0, 0, -500}
	a := m.New(Static("side"), At(&side), Center, 0)
	b := m.New(Static("far"), At(&far), Center, 0)

	m.Update(testFrame(), fixedMeasure{})

	if a.Visible() {
		t.Error("label outside the viewport should not be visible")
	}
	if b.Visible() {
		t.Error("label beyond the far plane should not be visible")
	}
}

func TestMarginExpandsViewport(t *testing.T) {
	frame := Frame{ProjectionViewWorld: mgl32.Ortho(0, 200, 0, 200, -1, 1), Width: 200, Height: 200}
	p := mgl32.Vec3{205, 100, 0}

	m := NewManager()
	tight := m.New(Static("x"), At(&p), Right, 0)
	loose := m.New(Static("x"), At(&p), Right, 10)
	m.Update(frame, fixedMeasure{})

	if tight.Visible() {
		t.Error("point 5px outside should be hidden without margin")
	}
	if !loose.Visible() {
		t.Error("point 5px outside should be visible with a 10px margin")
	}
}

func TestPointerAnchorTracksMoves(t *testing.T) {
	m := NewManager()
	p := mgl32.Vec3{0, 0, -5}
	l := m.New(Static("p"), At(&p), Center, 0)

	m.Update(testFrame(), fixedMeasure{})
	before := l.Screen()

	p[0] = 1
	m.Update(testFrame(), fixedMeasure{})
	if l.Screen()[0] <= before[0] {
		t.Errorf("label did not follow its point: %v -> %v", before, l.Screen())
	}
}

func TestAttachedAnchor(t *testing.T) {
	m := NewManager()
	obj := &mover{pos: mgl32.Vec3{0, 0, -5}}
	l := m.New(Static("node"), Attach(obj), Center, 0)

	m.Update(testFrame(), fixedMeasure{})
	if !l.Screen().ApproxEqual(mgl32.Vec2{100, 100}) {
		t.Errorf("Screen() = %v", l.Screen())
	}

	obj.pos = mgl32.Vec3{0, 0, 5}
	m.Update(testFrame(), fixedMeasure{})
	if l.Visible() {
		t.Error("attached label should hide when its object moves behind the camera")
	}
}

func TestAttachedAnchorSkipsWorldTransform(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	frame := Frame{
		ProjectionViewWorld: proj.Mul4(mgl32.Translate3D(1, 0, 0)),
		ProjectionView:      proj,
		Width:               200,
		Height:              200,
	}
	m := NewManager()
	pos := mgl32.Vec3{0, 0, -5}
	attached := m.New(Static("node"), Attach(&mover{pos: pos}), Center, 0)
	fixed := m.New(Static("point"), At(&pos), Center, 0)

	m.Update(frame, fixedMeasure{})
	if !attached.Screen().ApproxEqual(mgl32.Vec2{100, 100}) {
		t.Errorf("attached Screen() = %v, want (100, 100)", attached.Screen())
	}
	if fixed.Screen()[0] <= 100 {
		t.Errorf("fixed point should follow the world transform, Screen() = %v", fixed.Screen())
	}
}

func TestNilAnchorsInvisible(t *testing.T) {
	m := NewManager()
	a := m.New(Static("a"), At(nil), Center, 0)
	b := m.New(Static("b"), Attach(nil), Center, 0)
	c := m.New(Static("c"), Anchor{}, Center, 0)
	m.Update(testFrame(), fixedMeasure{})
	if a.Visible() || b.Visible() || c.Visible() {
		t.Error("labels without a position should be invisible")
	}
}

func TestScreenAnchorPassesThrough(t *testing.T) {
	m := NewManager()
	l := m.New(Static("hud"), Screen(12, 34), Right, 0)
	m.Update(testFrame(), fixedMeasure{})

	if !l.Visible() {
		t.Fatal("screen label should be visible")
	}
	if l.Screen() != (mgl32.Vec2{12, 34}) {
		t.Errorf("Screen() = %v, want (12, 34)", l.Screen())
	}
	if l.Depth() != 0 {
		t.Errorf("Depth() = %v, want 0", l.Depth())
	}
}

func TestTypeOffsets(t *testing.T) {
	const margin = 5
	tests := []struct {
		typ  Type
		want Rect
	}{
		{Center, Rect{X: 85, Y: 95, W: 30, H: 10}},
		{Left, Rect{X: 65, Y: 95, W: 30, H: 10}},
		{Right, Rect{X: 105, Y: 95, W: 30, H: 10}},
		{Up, Rect{X: 85, Y: 85, W: 30, H: 10}},
		{Down, Rect{X: 85, Y: 105, W: 30, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			m := NewManager()
			l := m.New(Static("abc"), Screen(100, 100), tt.typ, margin)
			m.Update(testFrame(), fixedMeasure{})
			if l.Bounds() != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", l.Bounds(), tt.want)
			}
		})
	}
}

func TestDynamicContentEvaluatedOncePerUpdate(t *testing.T) {
	m := NewManager()
	calls := 0
	l := m.New(Dynamic(func() string {
		calls++
		return "live"
	}), Screen(100, 100), Center, 0)

	if calls != 0 {
		t.Fatal("content evaluated before the first update")
	}
	if l.Text() != "" {
		t.Error("text should be empty before the first update")
	}

	m.Update(testFrame(), fixedMeasure{})
	if calls != 1 {
		t.Errorf("calls after Update = %d, want 1", calls)
	}
	if l.Text() != "live" {
		t.Errorf("Text() = %q", l.Text())
	}

	for range 5 {
		m.At(100, 100)
	}
	if calls != 1 {
		t.Errorf("At evaluated content: calls = %d", calls)
	}

	m.Update(testFrame(), fixedMeasure{})
	if calls != 2 {
		t.Errorf("calls after second Update = %d, want 2", calls)
	}
}

func TestDynamicContentSkippedWhenInvisible(t *testing.T) {
	m := NewManager()
	p := mgl32.Vec3{0, 0, 5}
	calls := 0
	m.New(Dynamic(func() string { calls++; return "x" }), At(&p), Center, 0)
	m.Update(testFrame(), fixedMeasure{})
	if calls != 0 {
		t.Errorf("invisible label evaluated content %d times", calls)
	}
}

func TestAtReturnsTopmost(t *testing.T) {
	m := NewManager()
	m.New(Static("first"), Screen(100, 100), Center, 0)
	m.New(Static("second"), Screen(105, 100), Center, 0)
	m.New(Static("x"), Screen(10, 10), Center, 0)
	m.Update(testFrame(), fixedMeasure{})

	if got := m.At(102, 100); got != 1 {
		t.Errorf("At(overlap) = %d, want most recently added 1", got)
	}
	if got := m.At(12, 12); got != 2 {
		t.Errorf("At(12, 12) = %d, want 2", got)
	}
	if got := m.At(190, 190); got != None {
		t.Errorf("At(empty) = %d, want None", got)
	}
}

func TestNilMeasurer(t *testing.T) {
	m := NewManager()
	l := m.New(Static("abc"), Screen(0, 0), Center, 0)
	m.Update(testFrame(), nil)
	if l.Bounds().W != 0 || l.Bounds().H != 0 {
		t.Errorf("nil measurer should give empty bounds, got %+v", l.Bounds())
	}
}

func TestAddLabelAndIndexing(t *testing.T) {
	m := NewManager()
	mine := New(Static("mine"), Screen(0, 0), Center, 0)
	if err := m.Add(mine); err != nil {
		t.Fatal(err)
	}
	owned := m.New(Static("owned"), Screen(0, 0), Center, 0)

	if err := m.Add(nil); !errors.Is(err, ErrNilLabel) {
		t.Errorf("Add(nil) error = %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.IsOwned(0) || !m.IsOwned(1) || m.IsOwned(5) {
		t.Error("ownership flags wrong")
	}

	got, err := m.Label(1)
	if err != nil || got != owned {
		t.Errorf("Label(1) = %v, %v", got, err)
	}
	for _, bad := range []int{-1, 2} {
		if _, err := m.Label(bad); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Label(%d) error = %v, want ErrIndexOutOfRange", bad, err)
		}
	}
}

func TestRemoveAndClear(t *testing.T) {
	m := NewManager()
	a := m.New(Static("a"), Screen(0, 0), Center, 0)
	m.New(Static("b"), Screen(0, 0), Center, 0)

	if err := m.Remove(1); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if got, _ := m.Label(0); got != a {
		t.Error("wrong label removed")
	}
	if err := m.Remove(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(3) error = %v", err)
	}

	m.Clear()
	if m.Len() != 0 || m.At(0, 0) != None {
		t.Error("Clear should remove every label")
	}
}

func TestVisible(t *testing.T) {
	m := NewManager()
	front := mgl32.Vec3{0, 0, -5}
	back := mgl32.Vec3{0, 0, 5}
	a := m.New(Static("a"), At(&front), Center, 0)
	m.New(Static("b"), At(&back), Center, 0)
	c := m.New(Static("c"), Screen(1, 1), Center, 0)
	m.Update(testFrame(), fixedMeasure{})

	vis := m.Visible()
	if len(vis) != 2 || vis[0] != a || vis[1] != c {
		t.Errorf("Visible() = %v", vis)
	}
}

func TestTypeString(t *testing.T) {
	if Down.String() != "Down" || Type(9).String() != "Type(9)" {
		t.Error("unexpected type names")
	}
	if !Dynamic(func() string { return "" }).IsDynamic() || Static("").IsDynamic() {
		t.Error("IsDynamic mismatch")
	}
}
