// Package shader holds the shader programs used by the immediate-mode
// drawing layer.
//
// A [Shader] pairs a WGSL vertex stage with a WGSL fragment stage and a set
// of named texture bindings. Shaders are compiled lazily to SPIR-V with
// gogpu/naga and turned into HAL shader modules on demand:
//
//	s := shader.NewDefault(shader.DefaultFillFrag, shader.DefaultFillVert)
//	if err := s.Compile(); err != nil {
//	    return err
//	}
//	vert, frag, err := s.Modules(device) // device is a hal.Device
//
// The default fill and point programs are embedded in the binary and
// selected with the [Default] constants.
//
// The package also defines [PointShape], the marker shape used when
// points are emitted.
package shader
