package shader

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ErrEmptySource is returned when a stage has no source to compile.
var ErrEmptySource = errors.New("shader: empty source")

// ModuleCreator creates and destroys HAL shader modules.
// hal.Device satisfies this interface.
type ModuleCreator interface {
	CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error)
	DestroyShaderModule(module hal.ShaderModule)
}

// Shader is a vertex/fragment program pair plus its texture bindings.
//
// Shader is not safe for concurrent use.
type Shader struct {
	label    string
	vert     string
	frag     string
	textures map[string]hal.Texture

	spirv [2][]uint32

	creator ModuleCreator
	modules [2]hal.ShaderModule
}

// New creates a shader from WGSL sources.
// An empty source selects the default fill program for that stage.
func New(frag, vert string) *Shader {
	if frag == "" {
		frag = DefaultFillFrag.Source()
	}
	if vert == "" {
		vert = DefaultFillVert.Source()
	}
	return &Shader{frag: frag, vert: vert}
}

// NewDefault creates a shader from two built-in sources.
func NewDefault(frag, vert Default) *Shader {
	return New(frag.Source(), vert.Source())
}

// NewFill returns the default program used for lines, triangles and rects.
func NewFill() *Shader {
	return NewDefault(DefaultFillFrag, DefaultFillVert)
}

// NewPoint returns the default program used for points.
func NewPoint() *Shader {
	return NewDefault(DefaultPointFrag, DefaultPointVert)
}

// Load reads WGSL sources from files.
// An empty file name selects the default fill program for that stage.
func Load(fragFile, vertFile string) (*Shader, error) {
	var frag, vert string
	if fragFile != "" {
		b, err := os.ReadFile(fragFile)
		if err != nil {
			return nil, fmt.Errorf("shader: read fragment source: %w", err)
		}
		frag = string(b)
	}
	if vertFile != "" {
		b, err := os.ReadFile(vertFile)
		if err != nil {
			return nil, fmt.Errorf("shader: read vertex source: %w", err)
		}
		vert = string(b)
	}
	return New(frag, vert), nil
}

// Label returns the debug label.
func (s *Shader) Label() string { return s.label }

// SetLabel sets the debug label used for created modules.
func (s *Shader) SetLabel(label string) { s.label = label }

// Source returns the WGSL source of a stage.
func (s *Shader) Source(stage Stage) string {
	if stage == Fragment {
		return s.frag
	}
	return s.vert
}

// SetTexture binds tex under name. A nil texture removes the binding.
// The shader never destroys bound textures.
func (s *Shader) SetTexture(name string, tex hal.Texture) {
	if tex == nil {
		delete(s.textures, name)
		return
	}
	if s.textures == nil {
		s.textures = make(map[string]hal.Texture)
	}
	s.textures[name] = tex
}

// Texture returns the texture bound under name.
func (s *Shader) Texture(name string) (hal.Texture, bool) {
	tex, ok := s.textures[name]
	return tex, ok
}

// TextureNames returns the bound texture names in sorted order.
func (s *Shader) TextureNames() []string {
	names := make([]string, 0, len(s.textures))
	for name := range s.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile compiles both stages to SPIR-V.
// Results are cached; later calls are no-ops.
func (s *Shader) Compile() error {
	for _, stage := range [...]Stage{Vertex, Fragment} {
		if s.spirv[stage] != nil {
			continue
		}
		code, err := CompileSPIRV(s.Source(stage))
		if err != nil {
			return fmt.Errorf("shader %q: %s stage: %w", s.label, stage, err)
		}
		s.spirv[stage] = code
	}
	return nil
}

// Compiled reports whether both stages have been compiled.
func (s *Shader) Compiled() bool {
	return s.spirv[Vertex] != nil && s.spirv[Fragment] != nil
}

// SPIRV returns the compiled words of a stage, or nil before Compile.
func (s *Shader) SPIRV(stage Stage) []uint32 {
	if stage != Vertex && stage != Fragment {
		return nil
	}
	return s.spirv[stage]
}

// Modules returns HAL shader modules for both stages, compiling and
// creating them on first use. Modules stay cached until Release.
func (s *Shader) Modules(creator ModuleCreator) (vert, frag hal.ShaderModule, err error) {
	if s.modules[Vertex] != nil && s.creator == creator {
		return s.modules[Vertex], s.modules[Fragment], nil
	}
	s.Release()

	if err := s.Compile(); err != nil {
		return nil, nil, err
	}

	vert, err = createModule(creator, s.label+".vert", s.spirv[Vertex])
	if err != nil {
		return nil, nil, err
	}
	frag, err = createModule(creator, s.label+".frag", s.spirv[Fragment])
	if err != nil {
		creator.DestroyShaderModule(vert)
		return nil, nil, err
	}

	s.creator = creator
	s.modules = [2]hal.ShaderModule{vert, frag}
	return vert, frag, nil
}

// Release destroys the HAL modules created by Modules.
// Compiled SPIR-V and texture bindings are kept.
func (s *Shader) Release() {
	if s.creator == nil {
		return
	}
	for i, m := range s.modules {
		if m != nil {
			s.creator.DestroyShaderModule(m)
		}
		s.modules[i] = nil
	}
	s.creator = nil
}

// CompileSPIRV compiles WGSL source to SPIR-V words.
func CompileSPIRV(source string) ([]uint32, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

func createModule(creator ModuleCreator, label string, code []uint32) (hal.ShaderModule, error) {
	m, err := creator.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", label, err)
	}
	return m, nil
}
