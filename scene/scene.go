package scene

import (
	"slices"

	"github.com/gogpu/imdraw/geom"
)

// Scene is an ordered collection of models.
//
// Example:
//
//	s := scene.New()
//	s.Add(scene.NewModel("cube", cubeMesh))
//	ctx.SetScene(s)
type Scene struct {
	models []*Model

	// version is incremented on each modification for cache invalidation
	version uint64
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends m. Nil models and models already present are ignored.
func (s *Scene) Add(m *Model) {
	if m == nil || slices.Contains(s.models, m) {
		return
	}
	s.models = append(s.models, m)
	s.version++
}

// Remove removes m and reports whether it was present.
func (s *Scene) Remove(m *Model) bool {
	i := slices.Index(s.models, m)
	if i < 0 {
		return false
	}
	s.models = slices.Delete(s.models, i, i+1)
	s.version++
	return true
}

// Model returns the first model with the given name.
func (s *Scene) Model(name string) (*Model, bool) {
	for _, m := range s.models {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Models returns the models in insertion order.
func (s *Scene) Models() []*Model {
	return s.models
}

// Len returns the number of models.
func (s *Scene) Len() int { return len(s.models) }

// Clear removes every model.
func (s *Scene) Clear() {
	s.models = nil
	s.version++
}

// Version returns a counter that changes whenever the model set changes.
func (s *Scene) Version() uint64 { return s.version }

// Bounds returns the world-space bounds of all models.
func (s *Scene) Bounds() geom.BoundingBox {
	b := geom.Empty()
	for _, m := range s.models {
		mb := m.Bounds()
		if mb.IsEmpty() {
			continue
		}
		b = b.Expand(mb.Min).Expand(mb.Max)
	}
	return b
}
