package navmesh

// Triangle lists the three 0-based vertex indices of a mesh face. Face
// orientation (and therefore the face normal direction) is defined by the
// order i, j, k: normal = normalize((a-b) x (a-c)).
type Triangle struct {
	I, J, K uint32
}

// triangleRecord is the per-triangle spatial record: cached vertices, edge
// vectors, face normal, and the three "edge-outward in-plane" vectors used
// by ClosestPoint's edge-plane cases.
//
// Grounded on original_source/src/nav_mesh.rs's NavSpatialObject, carried
// into the collision/raytrace idiom of caching derived geometry at
// construction time (model2d/collisions.go, render3d/raytrace.go).
type triangleRecord struct {
	index int

	a, b, c    Vec3
	ab, bc, ca Vec3
	normal     Vec3
	dab, dbc, dca Vec3

	bboxMin, bboxMax Vec3
}

func newTriangleRecord(index int, a, b, c Vec3) *triangleRecord {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)
	normal := a.Sub(b).Cross(a.Sub(c)).Normalize()
	r := &triangleRecord{
		index:  index,
		a:      a,
		b:      b,
		c:      c,
		ab:     ab,
		bc:     bc,
		ca:     ca,
		normal: normal,
		dab:    normal.Cross(ab),
		dbc:    normal.Cross(bc),
		dca:    normal.Cross(ca),
	}
	r.bboxMin = a.Min(b).Min(c)
	r.bboxMax = a.Max(b).Max(c)
	return r
}

// SqrDistance returns the squared distance from p to the closest point on
// the triangle.
func (r *triangleRecord) SqrDistance(p Vec3) Scalar {
	return p.Sub(r.ClosestPoint(p)).SqrMagnitude()
}

// ClosestPoint returns the point on the triangle closest to p, using a
// seven-case decision order: three corner cases, three edge-plane cases,
// and a face-plane fallback.
func (r *triangleRecord) ClosestPoint(p Vec3) Vec3 {
	tab := p.Project(r.a, r.b)
	tbc := p.Project(r.b, r.c)
	tca := p.Project(r.c, r.a)

	switch {
	case tca > 1 && tab < 0:
		return r.a
	case tab > 1 && tbc < 0:
		return r.b
	case tbc > 1 && tca < 0:
		return r.c
	case tab >= 0 && tab <= 1 && !p.IsAbovePlane(r.a, r.dab):
		return Unproject(r.a, r.b, tab)
	case tbc >= 0 && tbc <= 1 && !p.IsAbovePlane(r.b, r.dbc):
		return Unproject(r.b, r.c, tbc)
	case tca >= 0 && tca <= 1 && !p.IsAbovePlane(r.c, r.dca):
		return Unproject(r.c, r.a, tca)
	default:
		return p.ProjectOnPlane(r.a, r.normal)
	}
}
