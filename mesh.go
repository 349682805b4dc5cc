package navmesh

import (
	"math"
	"sync/atomic"

	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/graph/simple"
)

var meshIDCounter uint64

// nextMeshID hands out process-unique, monotonically increasing mesh
// identifiers. Build never needs these to survive a process restart; they
// only distinguish meshes created in the same run.
func nextMeshID() uint64 {
	return atomic.AddUint64(&meshIDCounter, 1)
}

// Mesh is a built, queryable navigation mesh: topology, per-triangle
// metadata, the triangle adjacency graph, and the spatial index all derived
// once at Build time and held fixed afterward (Area.Cost is the only field
// Build's caller may still mutate).
//
// Grounded on original_source/src/nav_mesh.rs's NavMesh, laid out in the
// teacher's model3d.Mesh style of caching every derived structure as a
// plain field rather than recomputing on query.
type Mesh struct {
	id uint64

	vertices  []Vec3
	triangles []Triangle
	areas     []Area

	connections map[triangleConnection]connectionInfo
	graph       *simple.WeightedUndirectedGraph

	spatial []*triangleRecord
	index   *spatialIndex

	// boundary maps a triangle index to the edges of that triangle (in the
	// triangle's own i->j->k->i winding) that belong to no other triangle.
	boundary map[int][]vertexConnection

	origin Vec3
}

// ID returns the mesh's process-unique identifier.
func (m *Mesh) ID() uint64 { return m.id }

// Origin returns the mean of the mesh's vertices, computed once at Build.
func (m *Mesh) Origin() Vec3 { return m.origin }

// Vertices returns the mesh's vertex positions. The slice is owned by the
// mesh and must not be mutated.
func (m *Mesh) Vertices() []Vec3 { return m.vertices }

// Triangles returns the mesh's faces. The slice is owned by the mesh and
// must not be mutated.
func (m *Mesh) Triangles() []Triangle { return m.triangles }

// Areas returns the per-triangle metadata computed at Build, indexed the
// same as Triangles.
func (m *Mesh) Areas() []Area { return m.areas }

// SetAreaCost overrides the traversal cost of one triangle, consulted by
// FindPath's A* search from the next call onward. Build seeds every Area's
// Cost to 1; this is the only post-Build mutation the mesh exposes.
func (m *Mesh) SetAreaCost(triangleIndex int, cost Scalar) {
	m.areas[triangleIndex].Cost = cost
}

// BoundaryEdges returns the edges of triangleIndex's own face that belong to
// no other triangle in the mesh, in the triangle's i->j->k->i winding order.
func (m *Mesh) BoundaryEdges(triangleIndex int) []vertexConnection {
	return m.boundary[triangleIndex]
}

// Build assembles a Mesh from a vertex buffer and a list of faces indexing
// into it. It fails with a *TriangleVertexIndexOutOfBoundsError on the first
// face slot (in index order) that names a vertex outside [0, len(vertices));
// this is the sole build-time error.
func Build(vertices []Vec3, triangles []Triangle) (*Mesh, error) {
	n := uint32(len(vertices))
	for ti, t := range triangles {
		for which, v := range [3]uint32{t.I, t.J, t.K} {
			if v >= n {
				return nil, newTriangleVertexIndexOutOfBoundsError(ti, which, v)
			}
		}
	}

	m := &Mesh{
		id:        nextMeshID(),
		vertices:  vertices,
		triangles: triangles,
		origin:    meanVertex(vertices),
	}

	records := make([]*triangleRecord, len(triangles))
	areas := make([]Area, len(triangles))
	// maxGos 0 lets essentials pick GOMAXPROCS; each iteration only touches
	// its own slot of records/areas, so no locking is needed.
	essentials.ConcurrentMap(0, len(triangles), func(i int) {
		t := triangles[i]
		a, b, c := vertices[t.I], vertices[t.J], vertices[t.K]
		rec := newTriangleRecord(i, a, b, c)
		records[i] = rec
		centroid := a.Add(b).Add(c).DivScalar(3)
		size := b.Sub(a).Cross(c.Sub(a)).Magnitude() / 2
		radiusSqr := triangleRadiusSqr(centroid, a, b, c)
		areas[i] = Area{
			TriangleIndex: i,
			Size:          size,
			Cost:          1,
			Centroid:      centroid,
			Radius:        Scalar(math.Sqrt(float64(radiusSqr))),
			RadiusSqr:     radiusSqr,
		}
	})
	m.spatial = records
	m.areas = areas
	m.index = buildSpatialIndex(records)

	// Bucket every undirected vertex edge by the triangles that use it. Map
	// writes here are sequential: building the bucket map concurrently would
	// need per-key locking for no real win, since this pass is dominated by
	// the per-triangle work already parallelized above.
	edgeTriangles := make(map[vertexConnection][]int)
	for ti, t := range triangles {
		for _, e := range triangleEdges(t) {
			key := newVertexConnection(e.a, e.b)
			edgeTriangles[key] = append(edgeTriangles[key], ti)
		}
	}

	m.connections = make(map[triangleConnection]connectionInfo)
	m.boundary = make(map[int][]vertexConnection)
	for key, owners := range edgeTriangles {
		if len(owners) < 2 {
			continue
		}
		for i := 0; i < len(owners); i++ {
			for j := i + 1; j < len(owners); j++ {
				u, v := owners[i], owners[j]
				d := areas[u].Centroid.Sub(areas[v].Centroid).SqrMagnitude()
				m.connections[newTriangleConnection(u, v)] = connectionInfo{
					sqrDist: d,
					edge:    key,
				}
			}
		}
	}
	for ti, t := range triangles {
		for _, e := range triangleEdges(t) {
			key := newVertexConnection(e.a, e.b)
			if len(edgeTriangles[key]) < 2 {
				// Stored in the triangle's own winding direction, not
				// canonicalized, so callers can tell which side faces out.
				m.boundary[ti] = append(m.boundary[ti], vertexConnection{A: e.a, B: e.b})
			}
		}
	}

	m.graph = simple.NewWeightedUndirectedGraph(0, float64(ScalarMax))
	for i := range triangles {
		m.graph.AddNode(simple.Node(int64(i)))
	}
	for conn, info := range m.connections {
		m.graph.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(conn.A)),
			T: simple.Node(int64(conn.B)),
			W: float64(info.sqrDist),
		})
	}

	return m, nil
}

// vertexEdge is an unreduced, directed pair used only while walking a
// triangle's own three edges in winding order.
type vertexEdge struct {
	a, b uint32
}

func triangleEdges(t Triangle) [3]vertexEdge {
	return [3]vertexEdge{
		{t.I, t.J},
		{t.J, t.K},
		{t.K, t.I},
	}
}

func meanVertex(vertices []Vec3) Vec3 {
	if len(vertices) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.DivScalar(Scalar(len(vertices)))
}

// triangleRadiusSqr is the squared distance from the triangle's centroid to
// its farthest vertex, the bounding-sphere radius used by Area.RadiusSqr.
func triangleRadiusSqr(centroid, a, b, c Vec3) Scalar {
	da := a.Sub(centroid).SqrMagnitude()
	db := b.Sub(centroid).SqrMagnitude()
	dc := c.Sub(centroid).SqrMagnitude()
	return maxScalar(maxScalar(da, db), dc)
}
