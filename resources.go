package imdraw

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imdraw/camera"
	"github.com/gogpu/imdraw/light"
	"github.com/gogpu/imdraw/shader"
	"github.com/gogpu/imdraw/text"
)

// Resources live in four named registries: shaders, cameras, lights and
// fonts. Resources created or loaded through the context are owned by it
// and released by Close or Remove*. Resources passed to Add* stay owned
// by the caller. Each registry has a lazily created default that is
// current until another resource is selected.

func (c *Context) created(kind, name string) {
	Logger().Debug("imdraw: resource registered", "kind", kind, "name", name)
}

func unknown(kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownResource, kind, name)
}

// --- Shaders ---

// CreateShader registers a shader built from WGSL sources under name.
// An empty source selects the default fill program for that stage.
// Sources are compiled when the device first uses the shader.
func (c *Context) CreateShader(name, frag, vert string) (*shader.Shader, error) {
	s := shader.New(frag, vert)
	s.SetLabel(name)
	return c.adoptShader(name, s)
}

// CreateDefaultShader registers a shader assembled from built-in sources.
func (c *Context) CreateDefaultShader(name string, frag, vert shader.Default) (*shader.Shader, error) {
	s := shader.NewDefault(frag, vert)
	s.SetLabel(name)
	return c.adoptShader(name, s)
}

// LoadShader reads WGSL sources from files and registers the shader.
func (c *Context) LoadShader(name, fragFile, vertFile string) (*shader.Shader, error) {
	if c.closed {
		return nil, ErrClosed
	}
	s, err := shader.Load(fragFile, vertFile)
	if err != nil {
		return nil, c.warn("LoadShader", err)
	}
	s.SetLabel(name)
	return c.adoptShader(name, s)
}

func (c *Context) adoptShader(name string, s *shader.Shader) (*shader.Shader, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if err := c.shaders.Adopt(name, s); err != nil {
		return nil, c.warn("CreateShader", err)
	}
	c.created("shader", name)
	return s, nil
}

// AddShader registers a caller-owned shader under name.
func (c *Context) AddShader(s *shader.Shader, name string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.shaders.Add(name, s); err != nil {
		return c.warn("AddShader", err)
	}
	c.created("shader", name)
	return nil
}

// Shader returns the current shader, or the default fill shader.
func (c *Context) Shader() *shader.Shader {
	return c.shaders.Current()
}

// ShaderNamed returns the shader registered under name.
func (c *Context) ShaderNamed(name string) (*shader.Shader, bool) {
	return c.shaders.Get(name)
}

// FillShader returns the default shader for lines, triangles, rects and
// meshes.
func (c *Context) FillShader() *shader.Shader {
	return c.shaders.Default()
}

// PointShader returns the default shader for points.
func (c *Context) PointShader() *shader.Shader {
	if c.pointShader == nil {
		c.pointShader = shader.NewPoint()
		c.pointShader.SetLabel("point")
	}
	return c.pointShader
}

// UseShader makes s current for every primitive kind. A nil s restores
// the per-kind defaults.
func (c *Context) UseShader(s *shader.Shader) {
	c.shaders.SetCurrent(s)
}

// UseShaderNamed makes the shader registered under name current.
func (c *Context) UseShaderNamed(name string) error {
	s, ok := c.shaders.Get(name)
	if !ok {
		return c.warn("UseShaderNamed", unknown("shader", name))
	}
	c.shaders.SetCurrent(s)
	return nil
}

// ResetShader restores the per-kind default shaders.
func (c *Context) ResetShader() {
	c.shaders.Reset()
}

// RemoveShader unregisters name and reports whether it was registered.
// Owned shaders are released.
func (c *Context) RemoveShader(name string) bool {
	return c.shaders.Remove(name)
}

// Texture binds tex under name on the shader the next primitive resolves
// to. With no shader selected by UseShader both the fill and point
// defaults get the binding. A nil tex removes the binding.
func (c *Context) Texture(tex hal.Texture, name string) {
	if c.closed {
		return
	}
	if c.shaders.HasCurrent() {
		c.shaders.Current().SetTexture(name, tex)
		return
	}
	c.FillShader().SetTexture(name, tex)
	c.PointShader().SetTexture(name, tex)
}

// --- Cameras ---

// CreateCamera registers a new perspective camera under name. Its aspect
// matches the viewport. The current camera is unchanged.
func (c *Context) CreateCamera(name string) (*camera.Camera, error) {
	if c.closed {
		return nil, ErrClosed
	}
	cam, err := c.cameras.Create(name)
	if err != nil {
		return nil, c.warn("CreateCamera", err)
	}
	c.created("camera", name)
	return cam, nil
}

// AddCamera registers a caller-owned camera under name.
func (c *Context) AddCamera(cam *camera.Camera, name string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.cameras.Add(name, cam); err != nil {
		return c.warn("AddCamera", err)
	}
	c.created("camera", name)
	return nil
}

// SetCamera makes cam current. cam need not be registered.
// A nil cam restores the default camera.
func (c *Context) SetCamera(cam *camera.Camera) {
	c.cameras.SetCurrent(cam)
}

// SetCameraNamed makes the camera registered under name current.
func (c *Context) SetCameraNamed(name string) error {
	cam, ok := c.cameras.Get(name)
	if !ok {
		return c.warn("SetCameraNamed", unknown("camera", name))
	}
	c.cameras.SetCurrent(cam)
	return nil
}

// ResetCamera restores the default camera.
func (c *Context) ResetCamera() {
	c.cameras.Reset()
}

// Camera returns the current camera.
func (c *Context) Camera() *camera.Camera {
	return c.cameras.Current()
}

// CameraNamed returns the camera registered under name.
func (c *Context) CameraNamed(name string) (*camera.Camera, bool) {
	return c.cameras.Get(name)
}

// RemoveCamera unregisters name and reports whether it was registered.
func (c *Context) RemoveCamera(name string) bool {
	return c.cameras.Remove(name)
}

// Perspective sets a perspective projection on the current camera.
// fovy is in radians.
func (c *Context) Perspective(fovy, aspect, near, far float32) {
	c.Camera().Perspective(fovy, aspect, near, far)
}

// Ortho sets an orthographic projection on the current camera.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	c.Camera().Ortho(left, right, bottom, top, near, far)
}

// --- Lights ---

// CreateLight registers a new point light under name.
func (c *Context) CreateLight(name string) (*light.Light, error) {
	if c.closed {
		return nil, ErrClosed
	}
	l, err := c.lights.Create(name)
	if err != nil {
		return nil, c.warn("CreateLight", err)
	}
	c.created("light", name)
	return l, nil
}

// AddLight registers a caller-owned light under name.
func (c *Context) AddLight(l *light.Light, name string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.lights.Add(name, l); err != nil {
		return c.warn("AddLight", err)
	}
	c.created("light", name)
	return nil
}

// Light returns the current light.
func (c *Context) Light() *light.Light {
	return c.lights.Current()
}

// LightNamed returns the light registered under name.
func (c *Context) LightNamed(name string) (*light.Light, bool) {
	return c.lights.Get(name)
}

// SetLight makes l current. A nil l restores the default light.
func (c *Context) SetLight(l *light.Light) {
	c.lights.SetCurrent(l)
}

// RemoveLight unregisters name and reports whether it was registered.
func (c *Context) RemoveLight(name string) bool {
	return c.lights.Remove(name)
}

// --- Fonts ---

// LoadFont parses a font file and registers it under name.
func (c *Context) LoadFont(file, name string) (*text.Font, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if _, dup := c.fonts.Get(name); dup {
		return nil, c.warn("LoadFont", fmt.Errorf("font %q: %w", name, ErrDuplicateName))
	}
	f, err := text.Load(file)
	if err != nil {
		return nil, c.warn("LoadFont", err)
	}
	if err := c.fonts.Adopt(name, f); err != nil {
		return nil, c.warn("LoadFont", err)
	}
	c.created("font", name)
	return f, nil
}

// AddFont registers a caller-owned font under name.
func (c *Context) AddFont(f *text.Font, name string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.fonts.Add(name, f); err != nil {
		return c.warn("AddFont", err)
	}
	c.created("font", name)
	return nil
}

// Font returns the current font, Go Regular by default.
func (c *Context) Font() *text.Font {
	return c.fonts.Current()
}

// FontNamed returns the font registered under name.
func (c *Context) FontNamed(name string) (*text.Font, bool) {
	return c.fonts.Get(name)
}

// SetFont makes f current. A nil f restores the default font.
func (c *Context) SetFont(f *text.Font) {
	c.fonts.SetCurrent(f)
}

// TextFont makes the font registered under name current.
func (c *Context) TextFont(name string) error {
	f, ok := c.fonts.Get(name)
	if !ok {
		return c.warn("TextFont", unknown("font", name))
	}
	c.fonts.SetCurrent(f)
	return nil
}

// RemoveFont unregisters name and reports whether it was registered.
func (c *Context) RemoveFont(name string) bool {
	return c.fonts.Remove(name)
}
