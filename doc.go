// Package imdraw provides an immediate-mode drawing layer for 2D and 3D
// primitives.
//
// # Overview
//
// A [Context] holds the implicit state every draw call resolves against:
// fill, stroke and point style, a transform stack, the current shader,
// camera, light and font, the bound scene, and a set of text labels.
// Each primitive call turns that state into a submission to a
// [gpucore.Device] and returns.
//
// # Quick Start
//
//	import "github.com/gogpu/imdraw"
//
//	rec := recording.NewRecorder()
//	ctx := imdraw.NewContext(800, 600, imdraw.WithDevice(rec))
//	defer ctx.Close()
//
//	ctx.Fill(imdraw.RGB(1, 0, 0))
//	ctx.Push()
//	ctx.Translate(0, 0, -5)
//	ctx.Rect(0, 0, 1, 1)
//	_ = ctx.Pop()
//
// # Transforms
//
// Transform calls post-multiply the top of the stack, so they compose in
// call order. The matrix submitted with every draw is
// projection × view × world, where projection and view come from the
// current camera and world is the top of the stack.
//
// # Resources
//
// Shaders, cameras, lights and fonts are kept in named registries.
// Resources created or loaded by the context are released by
// [Context.Close]; resources added with the Add* methods belong to the
// caller. When no resource is selected, a built-in default is used.
//
// # Labels
//
// Labels are text anchored to a world position, a screen position or a
// moving object. [Context.Labels] re-projects them once per frame and
// [Context.LabelAt] answers which label is under a screen point.
//
// # Errors
//
// Usage errors (duplicate names, stack underflow, invalid sizes) are
// returned and logged at warn level; the call has no effect. Unknown
// names resolve to absent values. Empty geometry is ignored.
package imdraw
