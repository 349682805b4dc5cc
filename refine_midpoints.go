package navmesh

// refineMidPoints turns a triangle corridor into a polyline by routing
// through portal (shared-edge) midpoints, only bending the path where the
// straight line between two consecutive waypoints would leave the corridor
// or cross a fold between non-coplanar triangles.
//
// Grounded on original_source/src/nav_mesh.rs's find_path_midpoints,
// carried over call for call.
func (m *Mesh) refineMidPoints(from, to Vec3, triangles []int) []Vec3 {
	if len(triangles) == 2 {
		edge := m.connections[newTriangleConnection(triangles[0], triangles[1])].edge
		a, b := m.vertices[edge.A], m.vertices[edge.B]
		n := m.spatial[triangles[0]].normal
		o := m.spatial[triangles[1]].normal
		if n.Dot(o) < 1-ZeroThreshold || !IsLineBetweenPoints(from, to, a, b, n) {
			return []Vec3{from, a.Add(b).Scale(0.5), to}
		}
		return []Vec3{from, to}
	}

	start := from
	lastNormal := m.spatial[triangles[0]].normal
	points := make([]Vec3, 0, len(triangles)+1)
	points = append(points, from)

	for i := 0; i+2 < len(triangles); i++ {
		t0, t1, t2 := triangles[i], triangles[i+1], triangles[i+2]
		edge := m.connections[newTriangleConnection(t0, t1)].edge
		a, b := m.vertices[edge.A], m.vertices[edge.B]
		point := a.Add(b).Scale(0.5)
		normal := m.spatial[t1].normal
		oldLastNormal := lastNormal
		lastNormal = normal

		if oldLastNormal.Dot(normal) < 1-ZeroThreshold {
			start = point
			points = append(points, start)
		} else {
			edge2 := m.connections[newTriangleConnection(t1, t2)].edge
			c, d := m.vertices[edge2.A], m.vertices[edge2.B]
			end := c.Add(d).Scale(0.5)
			if !IsLineBetweenPoints(start, end, a, b, normal) {
				start = point
				points = append(points, start)
			}
		}
	}

	{
		last, prev := triangles[len(triangles)-1], triangles[len(triangles)-2]
		edge := m.connections[newTriangleConnection(prev, last)].edge
		a, b := m.vertices[edge.A], m.vertices[edge.B]
		n := m.spatial[prev].normal
		o := m.spatial[last].normal
		if n.Dot(o) < 1-ZeroThreshold || !IsLineBetweenPoints(start, to, a, b, n) {
			points = append(points, a.Add(b).Scale(0.5))
		}
	}

	points = append(points, to)
	return dedupConsecutive(points)
}

func dedupConsecutive(points []Vec3) []Vec3 {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
