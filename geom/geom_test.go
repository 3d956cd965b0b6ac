package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLine(t *testing.T) {
	l := Line{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0}}
	if got := l.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	pts := l.Points()
	if len(pts) != 2 || pts[0] != l.A || pts[1] != l.B {
		t.Errorf("Points() = %v", pts)
	}
}

func TestTriangle(t *testing.T) {
	tri := Triangle{
		A: mgl32.Vec3{0, 0, 0},
		B: mgl32.Vec3{1, 0, 0},
		C: mgl32.Vec3{0, 1, 0},
	}
	if !tri.Normal().ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Normal() = %v, want +Z", tri.Normal())
	}
	edges := tri.Edges()
	if len(edges) != 3 || edges[2].B != tri.A {
		t.Errorf("Edges() = %v", edges)
	}

	flat := Triangle{A: mgl32.Vec3{1, 1, 1}, B: mgl32.Vec3{1, 1, 1}, C: mgl32.Vec3{2, 2, 2}}
	if flat.Normal() != (mgl32.Vec3{}) {
		t.Errorf("degenerate Normal() = %v, want zero", flat.Normal())
	}
}

func TestNewBoundingBox(t *testing.T) {
	b := NewBoundingBox(
		mgl32.Vec3{1, -2, 3},
		mgl32.Vec3{-1, 5, 0},
		mgl32.Vec3{0, 0, 7},
	)
	if b.Min != (mgl32.Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{1, 5, 7}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Center() != (mgl32.Vec3{0, 1.5, 3.5}) {
		t.Errorf("Center() = %v", b.Center())
	}
	if b.Size() != (mgl32.Vec3{2, 7, 7}) {
		t.Errorf("Size() = %v", b.Size())
	}
	if !b.Contains(mgl32.Vec3{0, 0, 1}) || b.Contains(mgl32.Vec3{2, 0, 1}) {
		t.Error("Contains mismatch")
	}
}

func TestEmptyBoundingBox(t *testing.T) {
	b := NewBoundingBox()
	if !b.IsEmpty() {
		t.Fatal("box with no points should be empty")
	}
	if b.Corners() != nil || b.Edges() != nil {
		t.Error("empty box should have no corners or edges")
	}
	if b.Size() != (mgl32.Vec3{}) {
		t.Errorf("Size() = %v, want zero", b.Size())
	}

	b = b.Expand(mgl32.Vec3{2, 2, 2})
	if b.IsEmpty() || b.Min != b.Max {
		t.Errorf("single point box = %+v", b)
	}
}

func TestBoundingBoxFromRect(t *testing.T) {
	b := BoundingBoxFromRect(mgl32.Vec4{10, 20, 30, 40})
	if !b.IsFlat() {
		t.Fatal("rect box should be flat")
	}
	want := []mgl32.Vec3{{10, 20, 0}, {30, 20, 0}, {30, 40, 0}, {10, 40, 0}}
	got := b.Corners()
	if len(got) != len(want) {
		t.Fatalf("Corners() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(b.Edges()); n != 4 {
		t.Errorf("flat box has %d edges, want 4", n)
	}

	// Swapped corners still produce the same box.
	if BoundingBoxFromRect(mgl32.Vec4{30, 40, 10, 20}) != b {
		t.Error("rect corners should be order independent")
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBoundingBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	if n := len(b.Corners()); n != 8 {
		t.Fatalf("box has %d corners, want 8", n)
	}
	edges := b.Edges()
	if len(edges) != 12 {
		t.Fatalf("box has %d edges, want 12", len(edges))
	}
	for i, e := range edges {
		if l := e.Length(); l != 1 {
			t.Errorf("edge %d length = %v, want 1", i, l)
		}
	}
}

func TestLineList(t *testing.T) {
	lines := []Line{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}},
	}
	pts := LineList(lines)
	if len(pts) != 4 || pts[2] != lines[1].A || pts[3] != lines[1].B {
		t.Errorf("LineList() = %v", pts)
	}
	if len(LineList(nil)) != 0 {
		t.Error("LineList(nil) should be empty")
	}
}
