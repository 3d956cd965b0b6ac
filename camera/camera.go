// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera provides the viewpoint used to project drawn geometry.
//
// A Camera owns a projection matrix (perspective or orthographic) and a
// view matrix (its placement in the world). Both are plain mgl32 values;
// callers read them every frame, so nothing is cached beyond the two
// matrices themselves.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default perspective parameters for new cameras.
const (
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 1000
	DefaultAspect float32 = 1
)

// DefaultFovy is the default vertical field of view, in radians.
var DefaultFovy = mgl32.DegToRad(60)

// Camera is a projection plus a placement in the world.
//
// A new camera sits at the origin looking down -Z with +Y up, so its
// view matrix is the identity.
type Camera struct {
	projection mgl32.Mat4
	view       mgl32.Mat4

	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fovy, aspect, near, far float32

	ortho                    bool
	left, right, bottom, top float32
}

// New returns a perspective camera with the default parameters.
func New() *Camera {
	c := &Camera{
		view:   mgl32.Ident4(),
		target: mgl32.Vec3{0, 0, -1},
		up:     mgl32.Vec3{0, 1, 0},
	}
	c.Perspective(DefaultFovy, DefaultAspect, DefaultNear, DefaultFar)
	return c
}

// Perspective switches to a perspective projection.
// fovy is the vertical field of view in radians.
func (c *Camera) Perspective(fovy, aspect, near, far float32) {
	c.ortho = false
	c.fovy, c.aspect, c.near, c.far = fovy, aspect, near, far
	c.projection = mgl32.Perspective(fovy, aspect, near, far)
}

// Ortho switches to an orthographic projection.
func (c *Camera) Ortho(left, right, bottom, top, near, far float32) {
	c.ortho = true
	c.left, c.right, c.bottom, c.top = left, right, bottom, top
	c.near, c.far = near, far
	c.projection = mgl32.Ortho(left, right, bottom, top, near, far)
}

// SetAspect updates the aspect ratio of a perspective camera.
// Orthographic cameras keep their bounds.
func (c *Camera) SetAspect(aspect float32) {
	if c.ortho || aspect <= 0 {
		return
	}
	c.Perspective(c.fovy, aspect, c.near, c.far)
}

// LookAt places the camera at eye, facing target.
// Calls where eye equals target are ignored.
func (c *Camera) LookAt(eye, target, up mgl32.Vec3) {
	if eye.ApproxEqual(target) || up.Len() == 0 {
		return
	}
	c.position, c.target, c.up = eye, target, up
	c.view = mgl32.LookAtV(eye, target, up)
}

// SetPosition moves the camera while keeping it facing the same target.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.LookAt(p, c.target, c.up)
}

// SetTarget turns the camera to face t.
func (c *Camera) SetTarget(t mgl32.Vec3) {
	c.LookAt(c.position, t, c.up)
}

// Position returns the eye position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Target returns the point the camera faces; this is its focal point.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Up returns the up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Forward returns the unit viewing direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.target.Sub(c.position).Normalize()
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 { return c.projection }

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 { return c.view }

// WorldMatrix returns the camera-to-world matrix, the inverse of the view.
func (c *Camera) WorldMatrix() mgl32.Mat4 { return c.view.Inv() }

// ProjectionViewMatrix returns projection × view.
func (c *Camera) ProjectionViewMatrix() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}

// IsOrtho reports whether the projection is orthographic.
func (c *Camera) IsOrtho() bool { return c.ortho }

// Fovy returns the vertical field of view in radians.
func (c *Camera) Fovy() float32 { return c.fovy }

// Aspect returns the perspective aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

// Near returns the near clip distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clip distance.
func (c *Camera) Far() float32 { return c.far }
