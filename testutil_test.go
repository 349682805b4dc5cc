package navmesh

// failer is satisfied by *testing.T and *testing.B.
type failer interface {
	Fatal(args ...any)
}

// newStripMesh builds the six-vertex, four-triangle two-quad strip used
// throughout this package's tests: two coplanar-in-pairs quads joined
// along the ridge at vertices 1 and 4.
func newStripMesh(t failer) *Mesh {
	vertices := []Vec3{
		NewVec3(0, 0, 0), // 0
		NewVec3(1, 0, 0), // 1
		NewVec3(2, 0, 1), // 2
		NewVec3(0, 1, 0), // 3
		NewVec3(1, 1, 0), // 4
		NewVec3(2, 1, 1), // 5
	}
	triangles := []Triangle{
		{I: 0, J: 1, K: 4}, // 0
		{I: 4, J: 3, K: 0}, // 1
		{I: 1, J: 2, K: 5}, // 2
		{I: 5, J: 4, K: 1}, // 3
	}
	mesh, err := Build(vertices, triangles)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}
