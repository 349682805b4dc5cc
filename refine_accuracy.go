package navmesh

// accuracyNodeKind distinguishes the two kinds of waypoint the accuracy
// refinement pass collects before materializing the final polyline.
type accuracyNodeKind int

const (
	accuracyNodePoint accuracyNodeKind = iota
	accuracyNodeLevelChange
)

// accuracyNode is either a concrete corner point on the corridor, or a
// pending fold across two non-coplanar triangles, recorded as the shared
// edge (a, b) and the raycast plane normal to resolve later once the next
// concrete point is known.
type accuracyNode struct {
	kind accuracyNodeKind
	p    Vec3
	a, b Vec3
	n    Vec3
}

// refineAccuracy walks the triangle corridor hugging its edges, cutting
// corners at portal vertices and deferring folds across non-coplanar
// triangle pairs ("level changes") until the next concrete point is known,
// then raycasts each fold's plane against the segment between its
// neighboring points.
//
// Grounded on original_source/src/nav_mesh.rs's find_path_accuracy,
// carried over call for call.
func (m *Mesh) refineAccuracy(from, to Vec3, triangles []int) []Vec3 {
	if len(triangles) == 2 {
		edge := m.connections[newTriangleConnection(triangles[0], triangles[1])].edge
		a, b := m.vertices[edge.A], m.vertices[edge.B]
		n := m.spatial[triangles[0]].normal
		o := m.spatial[triangles[1]].normal
		if !IsLineBetweenPoints(from, to, a, b, n) {
			da := from.Sub(a).SqrMagnitude()
			db := from.Sub(b).SqrMagnitude()
			point := a
			if db < da {
				point = b
			}
			return []Vec3{from, point, to}
		} else if n.Dot(o) < 1-ZeroThreshold {
			raycastNormal := b.Sub(a).Normalize().Cross(n)
			if point, ok := RaycastLine(from, to, a, b, raycastNormal); ok {
				return []Vec3{from, point, to}
			}
		}
		return []Vec3{from, to}
	}

	start := from
	lastNormal := m.spatial[triangles[0]].normal
	nodes := make([]accuracyNode, 0, len(triangles)-1)

	for i := 0; i+2 < len(triangles); i++ {
		t0, t1, t2 := triangles[i], triangles[i+1], triangles[i+2]
		edge1 := m.connections[newTriangleConnection(t0, t1)].edge
		a, b := m.vertices[edge1.A], m.vertices[edge1.B]
		edge2 := m.connections[newTriangleConnection(t1, t2)].edge
		c, d := m.vertices[edge2.A], m.vertices[edge2.B]
		normal := m.spatial[t1].normal
		oldLastNormal := lastNormal
		lastNormal = normal

		if !IsLineBetweenPoints(start, c, a, b, normal) || !IsLineBetweenPoints(start, d, a, b, normal) {
			da := start.Sub(a).SqrMagnitude()
			db := start.Sub(b).SqrMagnitude()
			point := a
			if db < da {
				point = b
			}
			start = point
			nodes = append(nodes, accuracyNode{kind: accuracyNodePoint, p: start})
		} else if oldLastNormal.Dot(normal) < 1-ZeroThreshold {
			n0 := m.spatial[t0].normal
			raycastNormal := b.Sub(a).Normalize().Cross(n0)
			nodes = append(nodes, accuracyNode{kind: accuracyNodeLevelChange, a: a, b: b, n: raycastNormal})
		}
	}

	{
		last, prev := triangles[len(triangles)-1], triangles[len(triangles)-2]
		edge := m.connections[newTriangleConnection(prev, last)].edge
		a, b := m.vertices[edge.A], m.vertices[edge.B]
		n := m.spatial[prev].normal
		o := m.spatial[last].normal
		if !IsLineBetweenPoints(start, to, a, b, n) {
			da := start.Sub(a).SqrMagnitude()
			db := start.Sub(b).SqrMagnitude()
			point := a
			if db < da {
				point = b
			}
			nodes = append(nodes, accuracyNode{kind: accuracyNodePoint, p: point})
		} else if n.Dot(o) < 1-ZeroThreshold {
			raycastNormal := b.Sub(a).Normalize().Cross(n)
			nodes = append(nodes, accuracyNode{kind: accuracyNodeLevelChange, a: a, b: b, n: raycastNormal})
		}
	}

	points := make([]Vec3, 0, len(nodes)+2)
	points = append(points, from)
	point := from
	for i, node := range nodes {
		switch node.kind {
		case accuracyNodePoint:
			point = node.p
			points = append(points, node.p)
		case accuracyNodeLevelChange:
			next := to
			for _, later := range nodes[i+1:] {
				if later.kind == accuracyNodePoint {
					next = later.p
					break
				}
			}
			if hit, ok := RaycastLine(point, next, node.a, node.b, node.n); ok {
				points = append(points, hit)
			}
		}
	}
	points = append(points, to)
	return dedupConsecutive(points)
}
