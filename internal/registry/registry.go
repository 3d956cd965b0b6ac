// Package registry implements the named resource tables behind the
// drawing context: one table each for shaders, cameras, lights and fonts.
//
// Entries are either owned (created or adopted by the registry, released
// by it) or borrowed (added by the caller, never released). Each registry
// also has a lazily created default entry and a current pointer that falls
// back to the default.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateName is returned when a name is already registered.
	ErrDuplicateName = errors.New("duplicate resource name")

	// ErrNilValue is returned when registering a nil value.
	ErrNilValue = errors.New("nil resource")
)

type entry[T any] struct {
	value *T
	owned bool
}

// Registry is a table of named *T values.
//
// Registry is not safe for concurrent use.
type Registry[T any] struct {
	kind    string
	factory func() *T
	release func(*T)

	entries map[string]entry[T]
	def     *T
	current *T
}

// New creates a registry. kind names the resource in errors. factory
// builds new owned values and the default; release, if non-nil, is called
// for owned values when they are removed or the registry is closed.
func New[T any](kind string, factory func() *T, release func(*T)) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		factory: factory,
		release: release,
		entries: make(map[string]entry[T]),
	}
}

// Create builds a new owned value and registers it under name.
// The current value is unchanged.
func (r *Registry[T]) Create(name string) (*T, error) {
	if _, dup := r.entries[name]; dup {
		return nil, r.duplicate(name)
	}
	v := r.factory()
	r.entries[name] = entry[T]{value: v, owned: true}
	return v, nil
}

// Adopt registers v under name and takes ownership of it.
func (r *Registry[T]) Adopt(name string, v *T) error {
	return r.insert(name, v, true)
}

// Add registers a caller-owned v under name. The registry never
// releases it.
func (r *Registry[T]) Add(name string, v *T) error {
	return r.insert(name, v, false)
}

func (r *Registry[T]) insert(name string, v *T, owned bool) error {
	if v == nil {
		return fmt.Errorf("%s %q: %w", r.kind, name, ErrNilValue)
	}
	if _, dup := r.entries[name]; dup {
		return r.duplicate(name)
	}
	r.entries[name] = entry[T]{value: v, owned: owned}
	return nil
}

func (r *Registry[T]) duplicate(name string) error {
	return fmt.Errorf("%s %q: %w", r.kind, name, ErrDuplicateName)
}

// Get returns the value registered under name.
func (r *Registry[T]) Get(name string) (*T, bool) {
	e, ok := r.entries[name]
	return e.value, ok
}

// Default returns the built-in default, creating it on first use.
func (r *Registry[T]) Default() *T {
	if r.def == nil {
		r.def = r.factory()
	}
	return r.def
}

// Current returns the current value, or the default if none is set.
func (r *Registry[T]) Current() *T {
	if r.current != nil {
		return r.current
	}
	return r.Default()
}

// HasCurrent reports whether a current value was set explicitly.
func (r *Registry[T]) HasCurrent() bool {
	return r.current != nil
}

// SetCurrent makes v current. v need not be registered. A nil v resets
// to the default.
func (r *Registry[T]) SetCurrent(v *T) {
	r.current = v
}

// Reset makes the default current again.
func (r *Registry[T]) Reset() {
	r.current = nil
}

// Remove unregisters name and releases it if owned. If the value was
// current, the default becomes current.
func (r *Registry[T]) Remove(name string) bool {
	e, ok := r.entries[name]
	if !ok {
		return false
	}
	delete(r.entries, name)
	if r.current == e.value {
		r.current = nil
	}
	if e.owned && r.release != nil {
		r.release(e.value)
	}
	return true
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of named entries. The default is not counted.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// IsOwned reports whether name is registered and owned by the registry.
func (r *Registry[T]) IsOwned(name string) bool {
	return r.entries[name].owned
}

// Close releases owned entries and the default and empties the registry.
// Borrowed entries are dropped without being released.
func (r *Registry[T]) Close() {
	for _, name := range r.Names() {
		e := r.entries[name]
		if e.owned && r.release != nil {
			r.release(e.value)
		}
	}
	if r.def != nil && r.release != nil {
		r.release(r.def)
	}
	r.entries = make(map[string]entry[T])
	r.def = nil
	r.current = nil
}
