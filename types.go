package navmesh

// NavQuery selects how a closest-triangle query trades accuracy for cost.
type NavQuery int

const (
	// NavQueryAccuracy rescores the 32 R-tree candidates nearest by
	// bounding box against true point-to-triangle distance and returns the
	// nearest of them. This is the true nearest triangle on a mesh of at
	// most 32 triangles; on a larger mesh the true nearest triangle can fall
	// outside the candidate set.
	NavQueryAccuracy NavQuery = iota
	// NavQueryClosest rescores a smaller R-tree candidate set than
	// NavQueryAccuracy and returns its minimum.
	NavQueryClosest
	// NavQueryClosestFirst returns a cheap, not-guaranteed-nearest
	// candidate.
	NavQueryClosestFirst
)

// NavPathMode selects which corridor-to-polyline refinement algorithm
// FindPath uses.
type NavPathMode int

const (
	// NavPathModeAccuracy cuts corners at portal vertices and inserts
	// fold points ("level changes") across non-coplanar triangles.
	NavPathModeAccuracy NavPathMode = iota
	// NavPathModeMidPoints routes through portal midpoints, only
	// inserting a bend when geometry requires it.
	NavPathModeMidPoints
)

// FilterFunc vets a candidate graph edge during A* search. It is invoked
// exactly once per candidate edge, with weight the stored centroid-distance
// squared and u, v the two triangle indices it connects. Returning false
// makes the edge unreachable for that search. The caller should not rely on
// memoization: this is invoked fresh per edge per search.
type FilterFunc func(weight Scalar, u, v int) bool

func acceptAllFilter(Scalar, int, int) bool { return true }

// vertexConnection is an unordered pair of vertex indices forming an edge.
// Two vertexConnections with the same two indices, in either order, are
// equal and compare equal as map keys (the pair is stored in canonical
// min/max order at construction time).
type vertexConnection struct {
	A, B uint32
}

func newVertexConnection(a, b uint32) vertexConnection {
	if a > b {
		a, b = b, a
	}
	return vertexConnection{A: a, B: b}
}

// triangleConnection is an unordered pair of triangle indices sharing an
// edge. Like vertexConnection, it is canonicalized at construction so the
// same unordered pair always hashes and compares identically regardless of
// discovery order.
type triangleConnection struct {
	A, B int
}

func newTriangleConnection(a, b int) triangleConnection {
	if a > b {
		a, b = b, a
	}
	return triangleConnection{A: a, B: b}
}

// connectionInfo is the value stored per triangleConnection in the mesh's
// connection map: the squared distance between the two triangles' centroids
// (the graph edge weight) and the vertex edge the two triangles share.
type connectionInfo struct {
	sqrDist Scalar
	edge    vertexConnection
}

// Area is the per-triangle metadata computed at Build time. Cost is the
// only field mutable afterward; everything else is an invariant computed once.
type Area struct {
	TriangleIndex int
	Size          Scalar
	Cost          Scalar
	Centroid      Vec3
	Radius        Scalar
	RadiusSqr     Scalar
}
