package navmesh

import "testing"

func TestRefineAccuracyStraightLineShortcut(t *testing.T) {
	mesh := newStripMesh(t)
	from := NewVec3(0.7, 0.2, 0)
	to := NewVec3(0.2, 0.7, 0)
	points := mesh.refineAccuracy(from, to, []int{0, 1})
	if len(points) != 2 {
		t.Fatalf("points = %v, want a 2-point shortcut", points)
	}
}

func TestRefineAccuracyBendsToNearestCorner(t *testing.T) {
	mesh := newStripMesh(t)
	from := NewVec3(0.8, 0.1, 0)
	to := NewVec3(0.6, 0.3, 0)
	points := mesh.refineAccuracy(from, to, []int{0, 1})
	if len(points) != 3 {
		t.Fatalf("points = %v, want a 3-point bend through the nearest shared-edge corner", points)
	}
	if !points[1].SameAs(NewVec3(0, 0, 0)) {
		t.Fatalf("bend point = %v, want (0,0,0)", points[1])
	}
}

func TestFindPathAccuracyOnStandardFixture(t *testing.T) {
	mesh := newStripMesh(t)
	path, ok := mesh.FindPath(
		NewVec3(0, 1, 0),
		NewVec3(1.5, 0.25, 0.5),
		NavQueryAccuracy,
		NavPathModeAccuracy,
	)
	if !ok {
		t.Fatal("expected a path")
	}
	want := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
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

// TestRefineAccuracyResolvesFoldWithRaycast exercises the deferred
// LevelChange node: a three-triangle corridor where the first portal's
// far corner coincides with the shared vertex of the next portal (so
// the corner-cutting branch fires there, same as on the standard
// fixture), but the final portal sits between two non-coplanar
// triangles and isn't touched by that corner pick, so the straight line
// from the cut corner to "to" really does cross it, deferring to a
// raycast against the fold plane.
func TestRefineAccuracyResolvesFoldWithRaycast(t *testing.T) {
	vertices := []Vec3{
		NewVec3(0, 0, 0),  // 0: P
		NewVec3(1, 0, 0),  // 1: H, hinge shared by both portals
		NewVec3(0, 1, 0),  // 2: Q
		NewVec3(0, -1, 0), // 3
		NewVec3(1, 1, 1),  // 4: lifts triangle 2 out of the z=0 plane
	}
	triangles := []Triangle{
		{I: 1, J: 0, K: 3}, // 0
		{I: 0, J: 1, K: 2}, // 1
		{I: 1, J: 2, K: 4}, // 2
	}
	mesh, err := Build(vertices, triangles)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	from := NewVec3(0.1, -0.3, 0)
	to := NewVec3(0.6, 0.6, 0.6)
	points := mesh.refineAccuracy(from, to, []int{0, 1, 2})

	want := []Vec3{
		from,
		NewVec3(0, 0, 0),
		NewVec3(0.5, 0.5, 0.5),
		to,
	}
	if len(points) != len(want) {
		t.Fatalf("points = %v, want %v", points, want)
	}
	for i := range want {
		if !points[i].SameAs(want[i]) {
			t.Fatalf("points[%d] = %v, want %v", i, points[i], want[i])
		}
	}
}
