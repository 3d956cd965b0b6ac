package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/imdraw/geom"
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/shader"
)

// Mesh is plain vertex data implementing gpucore.Mesh. A nil *Mesh is an
// empty mesh.
type Mesh struct {
	Positions []mgl32.Vec3
	Index     []uint32
	Primitive gputypes.PrimitiveTopology
}

// Vertices implements gpucore.Mesh.
func (m *Mesh) Vertices() []mgl32.Vec3 {
	if m == nil {
		return nil
	}
	return m.Positions
}

// Indices implements gpucore.Mesh.
func (m *Mesh) Indices() []uint32 {
	if m == nil {
		return nil
	}
	return m.Index
}

// Topology implements gpucore.Mesh.
func (m *Mesh) Topology() gputypes.PrimitiveTopology {
	if m == nil {
		return gputypes.PrimitiveTopologyTriangleList
	}
	return m.Primitive
}

// Model is a mesh placed in the world by its node.
type Model struct {
	Node

	Name   string
	Mesh   gpucore.Mesh
	Shader *shader.Shader
}

// NewModel returns a model at the origin.
func NewModel(name string, mesh gpucore.Mesh) *Model {
	m := &Model{Name: name, Mesh: mesh}
	m.init()
	return m
}

// Bounds returns the world-space bounds of the mesh vertices.
func (m *Model) Bounds() geom.BoundingBox {
	if m.Mesh == nil {
		return geom.Empty()
	}
	world := m.WorldMatrix()
	b := geom.Empty()
	for _, v := range m.Mesh.Vertices() {
		b = b.Expand(world.Mul4x1(v.Vec4(1)).Vec3())
	}
	return b
}
