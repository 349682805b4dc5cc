package navmesh

// FindClosestTriangle finds the triangle index closest to point, trading
// accuracy for cost per query.
func (m *Mesh) FindClosestTriangle(point Vec3, query NavQuery) (int, bool) {
	return m.index.FindClosestTriangle(point, query)
}

// ClosestPoint returns the closest point to p on the given triangle.
func (m *Mesh) ClosestPoint(triangleIndex int, p Vec3) Vec3 {
	return m.spatial[triangleIndex].ClosestPoint(p)
}

// FindPath finds a polyline from "from" to "to" across the mesh, accepting
// every candidate graph edge. See FindPathCustom.
func (m *Mesh) FindPath(from, to Vec3, query NavQuery, mode NavPathMode) ([]Vec3, bool) {
	return m.FindPathCustom(from, to, query, mode, acceptAllFilter)
}

// FindPathCustom runs the full point-to-point query: locate the triangles
// under from/to, snap both endpoints onto their triangle, find the
// shortest triangle corridor between them subject to filter, and refine
// that corridor into a polyline using mode.
func (m *Mesh) FindPathCustom(from, to Vec3, query NavQuery, mode NavPathMode, filter FilterFunc) ([]Vec3, bool) {
	if from.SameAs(to) {
		return nil, false
	}
	start, ok := m.FindClosestTriangle(from, query)
	if !ok {
		return nil, false
	}
	end, ok := m.FindClosestTriangle(to, query)
	if !ok {
		return nil, false
	}
	snapFrom := m.spatial[start].ClosestPoint(from)
	snapTo := m.spatial[end].ClosestPoint(to)

	triangles, _, ok := m.FindPathTrianglesCustom(start, end, filter)
	if !ok {
		return nil, false
	}
	switch len(triangles) {
	case 0:
		return nil, false
	case 1:
		if snapFrom.SameAs(snapTo) {
			return nil, false
		}
		return []Vec3{snapFrom, snapTo}, true
	}

	switch mode {
	case NavPathModeAccuracy:
		return m.refineAccuracy(snapFrom, snapTo, triangles), true
	case NavPathModeMidPoints:
		return m.refineMidPoints(snapFrom, snapTo, triangles), true
	default:
		return m.refineMidPoints(snapFrom, snapTo, triangles), true
	}
}
