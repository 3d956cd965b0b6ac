// Package recording provides a gpucore.Device that records submissions.
//
// The recording device captures every submission as a typed command
// instead of drawing it. Recordings are useful for tests (inspect exactly
// what a sequence of drawing calls produced), for headless tools, and for
// replaying a frame to another device.
//
// # Architecture
//
// The package follows a Command Pattern with two main components:
//
//   - Recorder: a gpucore.Device that appends one Command per submission
//   - Recording: an immutable command list that can be replayed
//
// Vertex data is copied on submission, so callers may reuse their slices.
// Shaders, fonts, meshes and lights are recorded by reference.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	ctx, _ := imdraw.NewContext(800, 600, imdraw.WithDevice(rec))
//	ctx.Line(a, b)
//
//	for _, d := range rec.Draws() {
//	    fmt.Println(d.Topology, d.Positions)
//	}
//
//	r := rec.Finish()
//	r.Playback(otherDevice)
//
// # Device Registration
//
// The package registers itself with gpucore under the name "recording":
//
//	import _ "github.com/gogpu/imdraw/recording"
//
//	dev, _ := gpucore.NewDevice("recording")
package recording
