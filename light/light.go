// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package light describes scene lights.
//
// The drawing layer only names lights and passes the current one along
// with lit draws; how a light is applied is up to the device and shaders.
package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind is the type of light source.
type Kind int

const (
	Point Kind = iota
	Directional
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Point:
		return "Point"
	case Directional:
		return "Directional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Light is a point or directional light.
type Light struct {
	Kind      Kind
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec4
	Intensity float32
}

// New returns a white point light above the origin.
func New() *Light {
	return &Light{
		Kind:      Point,
		Position:  mgl32.Vec3{0, 10, 0},
		Direction: mgl32.Vec3{0, -1, 0},
		Color:     mgl32.Vec4{1, 1, 1, 1},
		Intensity: 1,
	}
}

// NewDirectional returns a white directional light shining along dir.
func NewDirectional(dir mgl32.Vec3) *Light {
	l := New()
	l.Kind = Directional
	if dir.Len() > 0 {
		l.Direction = dir.Normalize()
	}
	return l
}

// Radiance returns the color scaled by intensity, alpha untouched.
func (l *Light) Radiance() mgl32.Vec4 {
	return mgl32.Vec4{
		l.Color[0] * l.Intensity,
		l.Color[1] * l.Intensity,
		l.Color[2] * l.Intensity,
		l.Color[3],
	}
}
