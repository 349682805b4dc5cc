package navmesh

import "testing"

func newFlatSquareMesh(t failer) *Mesh {
	vertices := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 0),
		NewVec3(0, 1, 0),
	}
	triangles := []Triangle{
		{I: 0, J: 1, K: 2},
		{I: 0, J: 2, K: 3},
	}
	mesh, err := Build(vertices, triangles)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func TestThickenOffsetsAlongFlatNormal(t *testing.T) {
	mesh := newFlatSquareMesh(t)
	thick, err := mesh.Thicken(0.5)
	if err != nil {
		t.Fatalf("Thicken failed: %v", err)
	}
	for i, v := range mesh.Vertices() {
		want := v.Add(NewVec3(0, 0, 0.5))
		if !thick.Vertices()[i].SameAs(want) {
			t.Fatalf("vertex %d = %v, want %v", i, thick.Vertices()[i], want)
		}
	}
}

func TestThickenLeavesTopologyUnchanged(t *testing.T) {
	mesh := newFlatSquareMesh(t)
	thick, err := mesh.Thicken(0.5)
	if err != nil {
		t.Fatalf("Thicken failed: %v", err)
	}
	if len(thick.Triangles()) != len(mesh.Triangles()) {
		t.Fatalf("triangle count changed: %d vs %d", len(thick.Triangles()), len(mesh.Triangles()))
	}
	if thick.ID() == mesh.ID() {
		t.Fatal("thickened mesh should get a fresh ID")
	}
}

func TestScaleAroundExplicitOrigin(t *testing.T) {
	mesh := newStripMesh(t)
	origin := NewVec3(1, 0, 0)
	value := NewVec3(2, 2, 2)
	scaled, err := mesh.Scale(value, &origin)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	for i, v := range mesh.Vertices() {
		want := v.Sub(origin).Mul(value).Add(origin)
		if !scaled.Vertices()[i].SameAs(want) {
			t.Fatalf("vertex %d = %v, want %v", i, scaled.Vertices()[i], want)
		}
	}
}

func TestScaleDefaultsToMeshOrigin(t *testing.T) {
	mesh := newStripMesh(t)
	value := NewVec3(3, 1, 1)
	scaled, err := mesh.Scale(value, nil)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	origin := mesh.Origin()
	for i, v := range mesh.Vertices() {
		want := v.Sub(origin).Mul(value).Add(origin)
		if !scaled.Vertices()[i].SameAs(want) {
			t.Fatalf("vertex %d = %v, want %v", i, scaled.Vertices()[i], want)
		}
	}
}
