// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.ViewMatrix() != mgl32.Ident4() {
		t.Errorf("new camera view = %v, want identity", c.ViewMatrix())
	}
	want := mgl32.Perspective(DefaultFovy, DefaultAspect, DefaultNear, DefaultFar)
	if c.ProjectionMatrix() != want {
		t.Errorf("projection = %v, want %v", c.ProjectionMatrix(), want)
	}
	if c.IsOrtho() {
		t.Error("new camera should be perspective")
	}
	if !c.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Forward() = %v, want -Z", c.Forward())
	}
}

func TestPerspective(t *testing.T) {
	c := New()
	fovy := mgl32.DegToRad(60)
	c.Perspective(fovy, 1, 0.1, 100)

	if c.ProjectionMatrix() != mgl32.Perspective(fovy, 1, 0.1, 100) {
		t.Error("projection does not match mgl32.Perspective")
	}
	if c.Fovy() != fovy || c.Aspect() != 1 || c.Near() != 0.1 || c.Far() != 100 {
		t.Errorf("parameters not stored: %v %v %v %v", c.Fovy(), c.Aspect(), c.Near(), c.Far())
	}
}

func TestOrtho(t *testing.T) {
	c := New()
	c.Ortho(0, 800, 600, 0, -1, 1)
	if !c.IsOrtho() {
		t.Fatal("expected orthographic camera")
	}
	if c.ProjectionMatrix() != mgl32.Ortho(0, 800, 600, 0, -1, 1) {
		t.Error("projection does not match mgl32.Ortho")
	}

	before := c.ProjectionMatrix()
	c.SetAspect(2)
	if c.ProjectionMatrix() != before {
		t.Error("SetAspect changed an orthographic projection")
	}
}

func TestSetAspect(t *testing.T) {
	c := New()
	c.SetAspect(2)
	if c.Aspect() != 2 {
		t.Errorf("Aspect() = %v, want 2", c.Aspect())
	}
	want := mgl32.Perspective(DefaultFovy, 2, DefaultNear, DefaultFar)
	if c.ProjectionMatrix() != want {
		t.Error("projection not rebuilt with the new aspect")
	}

	c.SetAspect(0)
	if c.Aspect() != 2 {
		t.Error("non-positive aspect should be ignored")
	}
}

func TestLookAt(t *testing.T) {
	c := New()
	eye := mgl32.Vec3{0, 0, 5}
	c.LookAt(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	if c.ViewMatrix() != mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}) {
		t.Error("view does not match mgl32.LookAtV")
	}
	// The world matrix maps the camera origin back to the eye.
	p := c.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !p.ApproxEqualThreshold(eye, 1e-5) {
		t.Errorf("world origin = %v, want %v", p, eye)
	}
	if !c.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Forward() = %v", c.Forward())
	}
}

func TestLookAtDegenerateIgnored(t *testing.T) {
	c := New()
	before := c.ViewMatrix()
	c.LookAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0})
	if c.ViewMatrix() != before {
		t.Error("eye == target should be ignored")
	}
}

func TestSetPositionKeepsTarget(t *testing.T) {
	c := New()
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	if c.Target() != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Target() = %v", c.Target())
	}
	if c.Position() != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("Position() = %v", c.Position())
	}
}

func TestProjectionViewMatrix(t *testing.T) {
	c := New()
	c.LookAt(mgl32.Vec3{3, 2, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	want := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	if c.ProjectionViewMatrix() != want {
		t.Error("ProjectionViewMatrix != projection × view")
	}
}
