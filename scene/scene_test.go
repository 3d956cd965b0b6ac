package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

func triangle() *Mesh {
	return &Mesh{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Index:     []uint32{0, 1, 2},
		Primitive: gputypes.PrimitiveTopologyTriangleList,
	}
}

func TestSceneAddRemove(t *testing.T) {
	s := New()
	a := NewModel("a", triangle())
	b := NewModel("b", triangle())

	s.Add(a)
	s.Add(b)
	s.Add(a)
	s.Add(nil)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got, ok := s.Model("b"); !ok || got != b {
		t.Error("Model(b) not found")
	}

	v := s.Version()
	if !s.Remove(a) {
		t.Error("Remove(a) = false")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true")
	}
	if s.Version() == v {
		t.Error("Remove should bump the version")
	}
	if s.Models()[0] != b {
		t.Error("remaining model should be b")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left models behind")
	}
}

func TestModelBounds(t *testing.T) {
	m := NewModel("tri", triangle())
	m.SetPosition(mgl32.Vec3{5, 0, 0})

	b := m.Bounds()
	if !b.Min.ApproxEqual(mgl32.Vec3{5, 0, 0}) || !b.Max.ApproxEqual(mgl32.Vec3{6, 1, 0}) {
		t.Errorf("Bounds() = %v..%v", b.Min, b.Max)
	}
	if !NewModel("empty", nil).Bounds().IsEmpty() {
		t.Error("model without mesh should have empty bounds")
	}
	if !NewModel("typed nil", (*Mesh)(nil)).Bounds().IsEmpty() {
		t.Error("model with a nil *Mesh should have empty bounds")
	}
}

func TestSceneBounds(t *testing.T) {
	s := New()
	if !s.Bounds().IsEmpty() {
		t.Error("empty scene should have empty bounds")
	}
	a := NewModel("a", triangle())
	b := NewModel("b", triangle())
	b.SetPosition(mgl32.Vec3{0, 0, -4})
	s.Add(a)
	s.Add(b)
	s.Add(NewModel("none", nil))

	bb := s.Bounds()
	if !bb.Min.ApproxEqual(mgl32.Vec3{0, 0, -4}) || !bb.Max.ApproxEqual(mgl32.Vec3{1, 1, 0}) {
		t.Errorf("Bounds() = %v..%v", bb.Min, bb.Max)
	}
}

func TestNilMeshIsEmpty(t *testing.T) {
	var m *Mesh
	if m.Vertices() != nil || m.Indices() != nil {
		t.Error("nil mesh should have no vertices or indices")
	}
	if m.Topology() != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology() = %v", m.Topology())
	}
}

func TestMeshImplementsInterface(t *testing.T) {
	m := triangle()
	if len(m.Vertices()) != 3 || len(m.Indices()) != 3 {
		t.Error("mesh accessors mismatch")
	}
	if m.Topology() != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology() = %v", m.Topology())
	}
}
