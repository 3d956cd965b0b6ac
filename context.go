package imdraw

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32/matstack"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imdraw/camera"
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/internal/registry"
	"github.com/gogpu/imdraw/label"
	"github.com/gogpu/imdraw/light"
	"github.com/gogpu/imdraw/scene"
	"github.com/gogpu/imdraw/shader"
	"github.com/gogpu/imdraw/text"
)

// Context is the immediate-mode drawing state: style, transform stack,
// resource registries, labels and the bound scene.
//
// Every draw call resolves the current state and submits to the device
// before returning. Context is not safe for concurrent use.
// Context implements io.Closer.
type Context struct {
	width  int
	height int
	device gpucore.Device
	out    io.Writer

	style style
	stack *matstack.MatStack

	shaders     *registry.Registry[shader.Shader]
	pointShader *shader.Shader
	cameras     *registry.Registry[camera.Camera]
	lights      *registry.Registry[light.Light]
	fonts       *registry.Registry[text.Font]

	labels  *label.Manager
	hovered int

	scene *scene.Scene

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a drawing context with a viewport of the given size.
//
//	// Submissions are discarded
//	ctx := imdraw.NewContext(800, 600)
//
//	// Submissions go to a device
//	ctx := imdraw.NewContext(800, 600, imdraw.WithDevice(dev))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		width:   max(width, 1),
		height:  max(height, 1),
		device:  options.device,
		out:     options.output,
		style:   defaultStyle(),
		stack:   matstack.NewMatStack(),
		labels:  label.NewManager(),
		hovered: label.None,
	}

	c.shaders = registry.New("shader", newFillShader, (*shader.Shader).Release)
	c.cameras = registry.New("camera", c.newCamera, nil)
	c.lights = registry.New("light", light.New, nil)
	c.fonts = registry.New("font", defaultFont, nil)

	if options.camera != nil {
		c.cameras.SetCurrent(options.camera)
	}
	if options.font != nil {
		c.fonts.SetCurrent(options.font)
	}
	if r, ok := c.device.(gpucore.Resizer); ok {
		r.Resize(c.width, c.height)
	}
	return c
}

func newFillShader() *shader.Shader {
	s := shader.NewFill()
	s.SetLabel("fill")
	return s
}

// newCamera builds cameras whose aspect matches the viewport.
func (c *Context) newCamera() *camera.Camera {
	cam := camera.New()
	cam.SetAspect(c.aspect())
	return cam
}

// defaultFont parses the embedded Go Regular font.
func defaultFont() *text.Font {
	f, err := text.Default()
	if err != nil {
		panic("imdraw: parse embedded font: " + err.Error())
	}
	return f
}

func (c *Context) aspect() float32 {
	return float32(c.width) / float32(c.height)
}

// Device returns the device receiving submissions.
func (c *Context) Device() gpucore.Device {
	return c.device
}

// Viewport returns the viewport size in pixels.
func (c *Context) Viewport() (width, height int) {
	return c.width, c.height
}

// Resize changes the viewport and the aspect ratio of the current camera.
// Non-positive sizes are ignored.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.Camera().SetAspect(c.aspect())
	if r, ok := c.device.(gpucore.Resizer); ok {
		r.Resize(width, height)
	}
}

// Print writes s and a newline to the context output.
func (c *Context) Print(s string) {
	fmt.Fprintln(c.out, s)
}

// BindEvents subscribes the context to window events: resizes update the
// viewport and mouse movement updates the hovered label.
func (c *Context) BindEvents(src gpucontext.EventSource) {
	if src == nil {
		return
	}
	src.OnResize(c.Resize)
	src.OnMouseMove(func(x, y float64) {
		c.hovered = c.LabelAt(float32(x), float32(y))
	})
}

// HoveredLabel returns the index of the label under the mouse after the
// last mouse event, or label.None.
func (c *Context) HoveredLabel() int {
	return c.hovered
}

// Close releases every registry-owned resource and owned label.
// Caller-owned resources are not touched. Close is idempotent and
// always returns nil.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.shaders.Close()
	if c.pointShader != nil {
		c.pointShader.Release()
		c.pointShader = nil
	}
	c.cameras.Close()
	c.lights.Close()
	c.fonts.Close()
	c.labels.Clear()
	c.scene = nil

	Logger().Debug("imdraw: context closed")
	return nil
}

// warn logs a usage error and returns it.
func (c *Context) warn(op string, err error) error {
	Logger().Warn("imdraw: call ignored", "op", op, "err", err)
	return err
}
