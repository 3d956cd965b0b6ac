package imdraw

import (
	"io"

	"github.com/gogpu/imdraw/camera"
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/text"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Headless context that discards every submission
//	ctx := imdraw.NewContext(800, 600)
//
//	// Capture submissions for inspection
//	rec := recording.NewRecorder()
//	ctx := imdraw.NewContext(800, 600, imdraw.WithDevice(rec))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	device gpucore.Device
	font   *text.Font
	camera *camera.Camera
	output io.Writer
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		device: gpucore.NullDevice{},
		output: io.Discard,
	}
}

// WithDevice sets the device that receives draw submissions.
// A nil device is ignored.
func WithDevice(d gpucore.Device) ContextOption {
	return func(o *contextOptions) {
		if d != nil {
			o.device = d
		}
	}
}

// WithFont makes f the current font. The context never releases it.
func WithFont(f *text.Font) ContextOption {
	return func(o *contextOptions) {
		o.font = f
	}
}

// WithCamera makes c the current camera. The context never releases it.
//
// The camera keeps its projection; NewContext does not adjust its aspect.
func WithCamera(c *camera.Camera) ContextOption {
	return func(o *contextOptions) {
		o.camera = c
	}
}

// WithOutput sets the writer used by Print. The default discards output.
func WithOutput(w io.Writer) ContextOption {
	return func(o *contextOptions) {
		if w != nil {
			o.output = w
		}
	}
}
