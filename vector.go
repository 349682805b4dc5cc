package navmesh

import "math"

// Vec3 is a 3D vector with value semantics; it is immutable after
// construction in the sense that every operation returns a new Vec3.
type Vec3 struct {
	X, Y, Z Scalar
}

// NewVec3 constructs a vector from its three components.
func NewVec3(x, y, z Scalar) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul is the componentwise (Hadamard) product, used by Mesh.Scale.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Scale(s Scalar) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) DivScalar(s Scalar) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Dot(o Vec3) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) SqrMagnitude() Scalar {
	return v.Dot(v)
}

func (v Vec3) Magnitude() Scalar {
	return Scalar(math.Sqrt(float64(v.SqrMagnitude())))
}

// Normalize returns the unit vector in v's direction. Per the vector
// contract, a zero vector normalizes to the zero vector rather than
// producing NaN in downstream dot products.
func (v Vec3) Normalize() Vec3 {
	m := v.Magnitude()
	if m <= ZeroThreshold {
		return Vec3{}
	}
	return v.DivScalar(m)
}

// Min/Max implement componentwise bounds, used for bounding-box computation.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{minScalar(v.X, o.X), minScalar(v.Y, o.Y), minScalar(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{maxScalar(v.X, o.X), maxScalar(v.Y, o.Y), maxScalar(v.Z, o.Z)}
}

func minScalar(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

func maxScalar(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

// SameAs reports whether v and o are equal within ZeroThreshold on every
// component.
func (v Vec3) SameAs(o Vec3) bool {
	return scalarAbs(v.X-o.X) <= ZeroThreshold &&
		scalarAbs(v.Y-o.Y) <= ZeroThreshold &&
		scalarAbs(v.Z-o.Z) <= ZeroThreshold
}

func scalarAbs(s Scalar) Scalar {
	if s < 0 {
		return -s
	}
	return s
}

// Project returns the signed parameter t such that Unproject(a, b, t) is
// the orthogonal projection of v onto the (infinite) line through a, b.
// t == 0 at a, t == 1 at b.
func (v Vec3) Project(a, b Vec3) Scalar {
	ab := b.Sub(a)
	denom := ab.SqrMagnitude()
	if denom <= ZeroThreshold {
		return 0
	}
	return v.Sub(a).Dot(ab) / denom
}

// Unproject is the inverse of Project: a + (b-a)*t.
func Unproject(a, b Vec3, t Scalar) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// ProjectOnPlane orthogonally projects v onto the plane through o with
// normal n (n need not be unit length).
func (v Vec3) ProjectOnPlane(o Vec3, n Vec3) Vec3 {
	nn := n.Normalize()
	d := v.Sub(o).Dot(nn)
	return v.Sub(nn.Scale(d))
}

// IsAbovePlane reports whether v lies strictly on the positive side of the
// plane through o with normal n, outside ZeroThreshold of the plane itself.
func (v Vec3) IsAbovePlane(o Vec3, n Vec3) bool {
	nn := n.Normalize()
	return v.Sub(o).Dot(nn) > ZeroThreshold
}

// IsLineBetweenPoints reports whether the segment p->q, projected into the
// plane with normal n, crosses the edge (a,b) strictly between its
// endpoints. This is the "does the straight line pass through this portal"
// test used throughout path refinement.
func IsLineBetweenPoints(p, q, a, b Vec3, n Vec3) bool {
	nn := n.Normalize()
	edge := b.Sub(a)
	edgeDir := nn.Cross(edge)
	if edgeDir.SqrMagnitude() <= ZeroThreshold*ZeroThreshold {
		return false
	}
	sideP := p.Sub(a).Dot(edgeDir)
	sideQ := q.Sub(a).Dot(edgeDir)
	// p and q must straddle the line through (a,b) within the plane.
	if (sideP > ZeroThreshold && sideQ > ZeroThreshold) ||
		(sideP < -ZeroThreshold && sideQ < -ZeroThreshold) {
		return false
	}
	denom := sideP - sideQ
	if scalarAbs(denom) <= ZeroThreshold {
		return false
	}
	t := sideP / denom
	hit := p.Add(q.Sub(p).Scale(t))
	along := hit.Sub(a).Dot(edge) / edge.SqrMagnitude()
	return along > ZeroThreshold && along < 1-ZeroThreshold
}

// RaycastLine intersects the segment p->q with the plane through a with
// normal n, returning the hit point if it lies within the segment's
// bounds ([0,1] along p->q). b identifies the edge (a,b) the plane was
// built from; the plane itself only depends on a and n.
func RaycastLine(p, q, a, b Vec3, n Vec3) (Vec3, bool) {
	_ = b
	nn := n.Normalize()
	dir := q.Sub(p)
	denom := dir.Dot(nn)
	if scalarAbs(denom) <= ZeroThreshold {
		return Vec3{}, false
	}
	t := a.Sub(p).Dot(nn) / denom
	if t < -ZeroThreshold || t > 1+ZeroThreshold {
		return Vec3{}, false
	}
	return p.Add(dir.Scale(t)), true
}
