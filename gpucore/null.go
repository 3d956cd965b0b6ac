package gpucore

import "github.com/go-gl/mathgl/mgl32"

// NullDevice discards every submission.
// Used when no GPU is attached, e.g. in headless tools.
type NullDevice struct{}

// Clear does nothing.
func (NullDevice) Clear(mgl32.Vec4) {}

// Draw does nothing.
func (NullDevice) Draw(DrawCall) {}

// DrawText does nothing.
func (NullDevice) DrawText(TextCall) {}

// DrawMesh does nothing.
func (NullDevice) DrawMesh(MeshCall) {}

// Ensure NullDevice implements Device.
var _ Device = NullDevice{}

func init() {
	Register(NullDeviceName, func() Device { return NullDevice{} })
}
