// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNew(t *testing.T) {
	l := New()
	if l.Kind != Point {
		t.Errorf("Kind = %v, want Point", l.Kind)
	}
	if l.Color != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Color = %v, want white", l.Color)
	}
	if l.Intensity != 1 {
		t.Errorf("Intensity = %v, want 1", l.Intensity)
	}
}

func TestNewDirectional(t *testing.T) {
	l := NewDirectional(mgl32.Vec3{0, 0, -4})
	if l.Kind != Directional {
		t.Errorf("Kind = %v, want Directional", l.Kind)
	}
	if !l.Direction.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Direction = %v, want normalized", l.Direction)
	}

	zero := NewDirectional(mgl32.Vec3{})
	if zero.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("zero direction should keep the default, got %v", zero.Direction)
	}
}

func TestRadiance(t *testing.T) {
	l := New()
	l.Color = mgl32.Vec4{1, 0.5, 0, 0.25}
	l.Intensity = 2
	want := mgl32.Vec4{2, 1, 0, 0.25}
	if got := l.Radiance(); got != want {
		t.Errorf("Radiance() = %v, want %v", got, want)
	}
}

func TestKindString(t *testing.T) {
	if Point.String() != "Point" || Directional.String() != "Directional" {
		t.Error("unexpected kind names")
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}
