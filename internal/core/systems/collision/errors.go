package collision

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrGeometry is the category every geometry failure belongs to.
	ErrGeometry = errors.New("geometry error")

	ErrInvalidGeometry = fmt.Errorf("%w: polygon needs at least 3 vertices", ErrGeometry)
	ErrDegenerateAxis  = fmt.Errorf("%w: edge has no usable normal", ErrGeometry)

	// Catalog errors

	ErrDuplicateShape = errors.New("shape already registered")
	ErrUnknownShape   = errors.New("unknown shape")
)

// GeometryError reports which shape and edge produced a geometry failure.
// Edge is -1 when the failure is not tied to one edge.
type GeometryError struct {
	Kind  error
	Shape uuid.UUID
	Edge  int
}

func (e *GeometryError) Error() string {
	msg := e.Kind.Error()
	if e.Shape != uuid.Nil {
		msg = fmt.Sprintf("shape %s: %s", e.Shape, msg)
	}
	if e.Edge >= 0 {
		msg = fmt.Sprintf("%s (edge %d)", msg, e.Edge)
	}
	return msg
}

func (e *GeometryError) Unwrap() error { return e.Kind }
