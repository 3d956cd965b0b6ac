package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewNodeIdentity(t *testing.T) {
	n := NewNode()
	if !n.WorldMatrix().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("WorldMatrix() = %v, want identity", n.WorldMatrix())
	}
	if n.Scale() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale() = %v", n.Scale())
	}
}

func TestNodeWorldPosition(t *testing.T) {
	parent := NewNode()
	parent.SetPosition(mgl32.Vec3{10, 0, 0})
	parent.SetOrientation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}))

	child := NewNode()
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	child.SetParent(parent)

	// Rotating +X by 90° about Z gives +Y.
	want := mgl32.Vec3{10, 1, 0}
	if got := child.WorldPosition(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
}

func TestNodeTranslateAndScale(t *testing.T) {
	n := NewNode()
	n.Translate(mgl32.Vec3{1, 2, 3})
	n.Translate(mgl32.Vec3{1, 0, 0})
	n.SetScale(mgl32.Vec3{2, 2, 2})

	p := n.LocalMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !p.ApproxEqual(mgl32.Vec3{4, 2, 3}) {
		t.Errorf("transformed point = %v, want (4,2,3)", p)
	}
}

func TestNodeParentCycleIgnored(t *testing.T) {
	a, b := NewNode(), NewNode()
	b.SetParent(a)
	a.SetParent(b)
	if a.Parent() != nil {
		t.Error("cyclic SetParent should be ignored")
	}
	a.SetParent(a)
	if a.Parent() != nil {
		t.Error("self parent should be ignored")
	}
}
