package imdraw

import (
	"github.com/gogpu/imdraw/scene"
)

// SetScene binds s as the current scene. The context does not own it.
// A nil s unbinds.
func (c *Context) SetScene(s *scene.Scene) {
	c.scene = s
}

// Scene returns the current scene, or nil.
func (c *Context) Scene() *scene.Scene {
	return c.scene
}

// LoadModel decodes a model file with the loader registered for its
// extension. The model is added to the current scene, if any.
func (c *Context) LoadModel(filename string) (*scene.Model, error) {
	if c.closed {
		return nil, ErrClosed
	}
	m, err := scene.Load(filename)
	if err != nil {
		return nil, c.warn("LoadModel", err)
	}
	if c.scene != nil {
		c.scene.Add(m)
	}
	Logger().Debug("imdraw: model loaded", "name", m.Name, "file", filename)
	return m, nil
}

// DrawScene draws every model of the current scene under its node
// transform, composed with the current transform.
func (c *Context) DrawScene() {
	if c.scene == nil {
		return
	}
	for _, m := range c.scene.Models() {
		c.Push()
		c.ApplyMatrix(m.WorldMatrix())
		c.Model(m.Mesh, m.Shader)
		_ = c.Pop()
	}
}
