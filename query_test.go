package navmesh

import "testing"

func TestFindPathMidPointsFixture(t *testing.T) {
	mesh := newStripMesh(t)
	path, ok := mesh.FindPath(
		NewVec3(0, 1, 0),
		NewVec3(1.5, 0.25, 0.5),
		NavQueryAccuracy,
		NavPathModeMidPoints,
	)
	if !ok {
		t.Fatal("expected a path")
	}
	want := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0.5, 0),
		NewVec3(1.5, 0.25, 0.5),
	}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if !path[i].SameAs(want[i]) {
			t.Fatalf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestFindPathSameStartAndEndRejected(t *testing.T) {
	mesh := newStripMesh(t)
	p := NewVec3(0.5, 0.5, 0)
	if _, ok := mesh.FindPath(p, p, NavQueryAccuracy, NavPathModeMidPoints); ok {
		t.Fatal("expected no path between identical points")
	}
}

func TestFindPathSingleTriangleCorridor(t *testing.T) {
	mesh := newStripMesh(t)
	from := NewVec3(0.1, 0.1, 0)
	to := NewVec3(0.9, 0.1, 0)
	path, ok := mesh.FindPath(from, to, NavQueryAccuracy, NavPathModeMidPoints)
	if !ok {
		t.Fatal("expected a path within a single triangle")
	}
	if len(path) != 2 {
		t.Fatalf("path = %v, want exactly 2 points", path)
	}
}

func TestFindPathSingleTriangleCoincidentEndpointsRejected(t *testing.T) {
	mesh := newStripMesh(t)
	// Both points snap to the same vertex of triangle 0, so the corridor
	// is a single triangle and the snapped endpoints coincide.
	from := NewVec3(0, 0, -1)
	to := NewVec3(0, 0, 1)
	if _, ok := mesh.FindPath(from, to, NavQueryAccuracy, NavPathModeMidPoints); ok {
		t.Fatal("expected no path when both endpoints snap to the same point")
	}
}

func TestClosestPointOnTriangle(t *testing.T) {
	mesh := newStripMesh(t)
	idx, ok := mesh.FindClosestTriangle(NewVec3(0, 0, 0), NavQueryAccuracy)
	if !ok {
		t.Fatal("expected a closest triangle")
	}
	p := mesh.ClosestPoint(idx, NewVec3(0, 0, 0))
	if !p.SameAs(NewVec3(0, 0, 0)) {
		t.Fatalf("closest point = %v, want (0,0,0)", p)
	}
}
