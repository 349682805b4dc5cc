package navmesh

import "container/heap"

// FindPathTriangles finds the lowest-cost corridor of triangle indices from
// `from` to `to`, accepting every candidate edge. See FindPathTrianglesCustom.
func (m *Mesh) FindPathTriangles(from, to int) ([]int, Scalar, bool) {
	return m.FindPathTrianglesCustom(from, to, acceptAllFilter)
}

// FindPathTrianglesCustom runs A* over the triangle adjacency graph built at
// Build time. filter is invoked exactly once per candidate edge during
// expansion, with the edge's stored squared centroid distance
// and its two endpoints. A candidate edge's traversal cost is its stored
// weight times both endpoint triangles' Area.Cost; a rejected edge is
// skipped, so no returned path crosses it, and when every route crosses a
// rejected edge no path is found. The heuristic is always zero
// (this degenerates to Dijkstra), since no admissible triangle-space
// heuristic is assumed by the mesh.
//
// Grounded on other_examples' gonum graph/search AStar (the closedSet/
// openSet/predecessor shape) and dd0wney-graphdb/pkg/algorithms/
// shortest_path.go's predecessor-map path reconstruction, hand-rolled
// instead of calling gonum/graph/path.AStar because that package's
// graph.Weighting interface has no way to thread a per-search, no-memoize
// filter through to each candidate edge.
func (m *Mesh) FindPathTrianglesCustom(from, to int, filter FilterFunc) ([]int, Scalar, bool) {
	if from == to {
		return []int{from}, 0, true
	}
	if filter == nil {
		filter = acceptAllFilter
	}
	if from < 0 || from >= len(m.triangles) || to < 0 || to >= len(m.triangles) {
		return nil, 0, false
	}

	open := &aStarQueue{}
	heap.Init(open)
	heap.Push(open, &aStarEntry{node: from, gScore: 0})

	best := map[int]Scalar{from: 0}
	predecessor := make(map[int]int)
	closed := make(map[int]bool)

	for open.Len() > 0 {
		curr := heap.Pop(open).(*aStarEntry)
		if closed[curr.node] {
			continue
		}
		if curr.node == to {
			return reconstructPath(predecessor, from, to), curr.gScore, true
		}
		closed[curr.node] = true

		neighbors := m.graph.From(int64(curr.node))
		for neighbors.Next() {
			neighbor := int(neighbors.Node().ID())
			if closed[neighbor] {
				continue
			}
			edge := m.graph.WeightedEdge(int64(curr.node), int64(neighbor))
			weight := Scalar(edge.Weight())
			if !filter(weight, curr.node, neighbor) {
				continue
			}
			cost := weight * m.areas[curr.node].Cost * m.areas[neighbor].Cost
			g := curr.gScore + cost
			if existing, ok := best[neighbor]; !ok || g < existing {
				best[neighbor] = g
				predecessor[neighbor] = curr.node
				heap.Push(open, &aStarEntry{node: neighbor, gScore: g})
			}
		}
	}

	return nil, 0, false
}

func reconstructPath(predecessor map[int]int, from, to int) []int {
	path := []int{to}
	for cur := to; cur != from; {
		prev, ok := predecessor[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// aStarEntry is one entry in the open set's priority queue, ordered by
// gScore (the heuristic is always zero, so gScore is the full fScore too).
type aStarEntry struct {
	node   int
	gScore Scalar
}

type aStarQueue []*aStarEntry

func (q aStarQueue) Len() int            { return len(q) }
func (q aStarQueue) Less(i, j int) bool  { return q[i].gScore < q[j].gScore }
func (q aStarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *aStarQueue) Push(x interface{}) { *q = append(*q, x.(*aStarEntry)) }
func (q *aStarQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
