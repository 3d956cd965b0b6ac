package shader

import (
	_ "embed"
	"fmt"
)

//go:embed shaders/fill_vert.wgsl
var fillVertSource string

//go:embed shaders/fill_frag.wgsl
var fillFragSource string

//go:embed shaders/point_vert.wgsl
var pointVertSource string

//go:embed shaders/point_frag.wgsl
var pointFragSource string

// Entry point names shared by every default program.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Default selects one of the built-in shader sources.
type Default int

const (
	// DefaultFillVert transforms positions by the uniform transform.
	DefaultFillVert Default = iota

	// DefaultFillFrag outputs the flat uniform color.
	DefaultFillFrag

	// DefaultPointVert expands each point into a screen-aligned quad.
	DefaultPointVert

	// DefaultPointFrag shades the quad according to the point shape.
	DefaultPointFrag
)

// String returns the name of the default source.
func (d Default) String() string {
	switch d {
	case DefaultFillVert:
		return "FillVert"
	case DefaultFillFrag:
		return "FillFrag"
	case DefaultPointVert:
		return "PointVert"
	case DefaultPointFrag:
		return "PointFrag"
	default:
		return fmt.Sprintf("Default(%d)", int(d))
	}
}

// Stage returns the pipeline stage the source belongs to.
func (d Default) Stage() Stage {
	switch d {
	case DefaultFillFrag, DefaultPointFrag:
		return Fragment
	default:
		return Vertex
	}
}

// Source returns the WGSL source of the default.
// Unknown values return an empty string.
func (d Default) Source() string {
	switch d {
	case DefaultFillVert:
		return fillVertSource
	case DefaultFillFrag:
		return fillFragSource
	case DefaultPointVert:
		return pointVertSource
	case DefaultPointFrag:
		return pointFragSource
	default:
		return ""
	}
}
