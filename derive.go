package navmesh

// Thicken rebuilds the mesh with every vertex offset by value along its
// averaged incident-face normal: the normals of every triangle touching
// the vertex are summed, divided by the touching-triangle count if more
// than one triangle touches it, normalized, then scaled by value. A vertex
// touched by no triangle is left where it is.
//
// Grounded on original_source/src/nav_mesh.rs's thicken and model3d's
// mesh_ops.go Blur, which shares the same "recompute every vertex from its
// neighborhood, then rebuild" shape.
func (m *Mesh) Thicken(value Scalar) (*Mesh, error) {
	touching := make([][]Vec3, len(m.vertices))
	for ti, t := range m.triangles {
		n := m.spatial[ti].normal
		touching[t.I] = append(touching[t.I], n)
		touching[t.J] = append(touching[t.J], n)
		touching[t.K] = append(touching[t.K], n)
	}

	shifted := make([]Vec3, len(m.vertices))
	for i, v := range m.vertices {
		normals := touching[i]
		if len(normals) == 0 {
			shifted[i] = v
			continue
		}
		var sum Vec3
		for _, n := range normals {
			sum = sum.Add(n)
		}
		if len(normals) > 1 {
			sum = sum.DivScalar(Scalar(len(normals)))
		}
		shifted[i] = v.Add(sum.Normalize().Scale(value))
	}

	return Build(shifted, m.triangles)
}

// Scale rebuilds the mesh with every vertex scaled componentwise by value
// around origin (the mesh's own Origin() if origin is nil).
func (m *Mesh) Scale(value Vec3, origin *Vec3) (*Mesh, error) {
	o := m.origin
	if origin != nil {
		o = *origin
	}
	vertices := make([]Vec3, len(m.vertices))
	for i, v := range m.vertices {
		vertices[i] = v.Sub(o).Mul(value).Add(o)
	}
	return Build(vertices, m.triangles)
}
