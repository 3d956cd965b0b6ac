package gpucore

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/imdraw/light"
	"github.com/gogpu/imdraw/shader"
	"github.com/gogpu/imdraw/text"
)

// Device receives resolved draw submissions.
type Device interface {
	// Clear fills the whole target with color.
	Clear(color mgl32.Vec4)

	// Draw submits a list of positions with a topology.
	Draw(call DrawCall)

	// DrawText submits a string drawn at a screen position.
	DrawText(call TextCall)

	// DrawMesh submits a caller-owned mesh.
	DrawMesh(call MeshCall)
}

// Resizer is implemented by devices that track the viewport size.
type Resizer interface {
	Resize(width, height int)
}

// DrawCall is one geometry submission.
type DrawCall struct {
	// Shader is the program to draw with. Never nil.
	Shader *shader.Shader

	// Topology is how Positions are assembled into primitives.
	Topology gputypes.PrimitiveTopology

	// Positions are model-space vertex positions.
	Positions []mgl32.Vec3

	// Transform maps model space to clip space
	// (projection × view × world).
	Transform mgl32.Mat4

	// World is the model transform alone.
	World mgl32.Mat4

	// Color is the flat RGBA color.
	Color mgl32.Vec4

	// PointSize and PointShape apply to point lists only.
	PointSize  float32
	PointShape shader.PointShape

	// StrokeWeight applies to line topologies only.
	StrokeWeight float32

	// Lighting requests lit shading with Light.
	Lighting bool
	Light    *light.Light
}

// TextCall is one string submission.
type TextCall struct {
	Text string
	Font *text.Font

	// X, Y is the baseline origin of the first line in screen pixels,
	// already adjusted for the font's alignment.
	X, Y float32

	// Size and Angle are copied from the font at submission time.
	Size  float32
	Angle float32

	Color mgl32.Vec4
}

// Mesh is renderable geometry owned by the caller.
type Mesh interface {
	// Vertices returns model-space positions.
	Vertices() []mgl32.Vec3

	// Indices returns the index list, or nil for non-indexed meshes.
	Indices() []uint32

	// Topology returns the primitive topology.
	Topology() gputypes.PrimitiveTopology
}

// MeshCall is one mesh submission.
type MeshCall struct {
	Mesh      Mesh
	Shader    *shader.Shader
	Transform mgl32.Mat4
	World     mgl32.Mat4
	Color     mgl32.Vec4
	Lighting  bool
	Light     *light.Light
}
