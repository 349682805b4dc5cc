package navmesh

import (
	"fmt"

	"github.com/pkg/errors"
)

// TriangleVertexIndexOutOfBoundsError is the sole build-time error kind.
// Build checks triangle slots in index order and reports only the first
// offending one.
type TriangleVertexIndexOutOfBoundsError struct {
	TriangleIndex int
	Which         int // 0, 1, or 2
	Value         uint32
}

func (e *TriangleVertexIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"navmesh: triangle %d vertex slot %d references out-of-bounds index %d",
		e.TriangleIndex, e.Which, e.Value,
	)
}

func newTriangleVertexIndexOutOfBoundsError(triangleIndex, which int, value uint32) error {
	return errors.WithStack(&TriangleVertexIndexOutOfBoundsError{
		TriangleIndex: triangleIndex,
		Which:         which,
		Value:         value,
	})
}
