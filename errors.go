package imdraw

import (
	"errors"

	"github.com/gogpu/imdraw/internal/registry"
)

// Usage errors. The call that returns one has no effect.
var (
	// ErrDuplicateName is returned when a resource name is already taken.
	// The existing resource is kept.
	ErrDuplicateName = registry.ErrDuplicateName

	// ErrStackUnderflow is returned by Pop on a stack holding only the root.
	ErrStackUnderflow = errors.New("imdraw: transform stack underflow")

	// ErrInvalidStrokeWeight is returned for a stroke weight that is not positive.
	ErrInvalidStrokeWeight = errors.New("imdraw: stroke weight must be positive")

	// ErrInvalidPointSize is returned for a point size that is not positive.
	ErrInvalidPointSize = errors.New("imdraw: point size must be positive")

	// ErrUnknownResource is returned when selecting a name that is not registered.
	ErrUnknownResource = errors.New("imdraw: unknown resource")

	// ErrNilResource is returned when registering a nil resource.
	ErrNilResource = registry.ErrNilValue

	// ErrClosed is returned by resource operations on a closed Context.
	ErrClosed = errors.New("imdraw: context closed")
)
