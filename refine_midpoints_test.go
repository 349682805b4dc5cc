package navmesh

import "testing"

func TestRefineMidPointsStraightLineShortcut(t *testing.T) {
	mesh := newStripMesh(t)
	// Triangles 0 and 1 are coplanar (both lie flat on z=0), so a straight
	// line that already stays inside the two-triangle corridor should
	// collapse to just the two endpoints.
	from := NewVec3(0.7, 0.2, 0)
	to := NewVec3(0.2, 0.7, 0)
	points := mesh.refineMidPoints(from, to, []int{0, 1})
	if len(points) != 2 {
		t.Fatalf("points = %v, want a 2-point shortcut", points)
	}
}

func TestRefineMidPointsBendsWhenStraightLineMissesThePortal(t *testing.T) {
	mesh := newStripMesh(t)
	edge := mesh.connections[newTriangleConnection(0, 1)].edge
	a, b := mesh.vertices[edge.A], mesh.vertices[edge.B]
	want := a.Add(b).Scale(0.5)

	// Both points sit on the same side of the shared diagonal, so the
	// straight line between them never crosses the portal.
	from := NewVec3(0.8, 0.1, 0)
	to := NewVec3(0.6, 0.3, 0)
	points := mesh.refineMidPoints(from, to, []int{0, 1})
	if len(points) != 3 {
		t.Fatalf("points = %v, want a 3-point bend through the shared edge midpoint", points)
	}
	if !points[1].SameAs(want) {
		t.Fatalf("bend point = %v, want edge midpoint %v", points[1], want)
	}
}
