//go:build !navmesh32

package navmesh

import "math"

// Scalar is the floating-point type used throughout the mesh. Build with
// -tags navmesh32 to switch to a 32-bit Scalar (see scalar_32.go).
type Scalar = float64

// ScalarMax is the largest finite Scalar value, used by Build as the
// adjacency graph's weight for absent edges.
const ScalarMax = math.MaxFloat64

// ZeroThreshold is the tolerance applied to all fold, plane-side, and
// coincidence tests.
const ZeroThreshold Scalar = 1e-9
