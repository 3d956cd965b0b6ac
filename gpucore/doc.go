// Package gpucore defines the contract between the immediate-mode drawing
// layer and the GPU resource layer beneath it.
//
// The drawing layer resolves every call into a fully specified draw call
// (geometry, shader, transform, style) and hands it to a [Device]. A Device
// owns buffers, pipelines and textures; the drawing layer owns none of
// them.
//
// # Draw Calls
//
// Three kinds of submission exist:
//
//   - [DrawCall]: a list of positions drawn with a topology (points,
//     lines, line strips or triangles)
//   - [TextCall]: a string at a screen position in a given font
//   - [MeshCall]: a caller-provided [Mesh], optionally lit
//
// Submissions are synchronous. A Device must not retain slices from a
// call after the call returns; the caller may reuse them.
//
// # Device Registry
//
// Devices register themselves by name, following the database/sql driver
// pattern:
//
//	func init() {
//	    gpucore.Register("wgpu", func() gpucore.Device {
//	        return newWGPUDevice()
//	    })
//	}
//
// The "null" device, which discards everything, is always registered.
package gpucore
