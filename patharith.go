package navmesh

// PathLength sums the segment lengths of a polyline path.
func PathLength(path []Vec3) Scalar {
	if len(path) < 2 {
		return 0
	}
	var total Scalar
	for i := 0; i+1 < len(path); i++ {
		total += path[i+1].Sub(path[i]).Magnitude()
	}
	return total
}

// ProjectOnPath returns the arc-length distance from path's start to the
// point on path closest to "point", plus offset, clamped to [0, PathLength].
func ProjectOnPath(path []Vec3, point Vec3, offset Scalar) Scalar {
	var s Scalar
	switch len(path) {
	case 0, 1:
		s = 0
	case 2:
		s = projectOnLine(path[0], path[1], point)
	default:
		var dist Scalar
		best := -1
		var bestSqr Scalar
		var bestS Scalar
		for i := 0; i+1 < len(path); i++ {
			a, b := path[i], path[i+1]
			p, along := pointOnLine(a, b, point)
			candidate := dist + along
			sqr := p.Sub(point).SqrMagnitude()
			if best == -1 || sqr < bestSqr {
				best = i
				bestSqr = sqr
				bestS = candidate
			}
			dist += b.Sub(a).Magnitude()
		}
		s = bestS
	}
	s += offset
	if s < 0 {
		s = 0
	}
	if total := PathLength(path); s > total {
		s = total
	}
	return s
}

// PointOnPath returns the point on path at arc-length distance s from its
// start, or false if the path has fewer than two points.
func PointOnPath(path []Vec3, s Scalar) (Vec3, bool) {
	switch len(path) {
	case 0, 1:
		return Vec3{}, false
	case 2:
		return Unproject(path[0], path[1], s/PathLength(path)), true
	default:
		for i := 0; i+1 < len(path); i++ {
			a, b := path[i], path[i+1]
			d := b.Sub(a).Magnitude()
			if s <= d {
				return Unproject(a, b, s/d), true
			}
			s -= d
		}
		return Vec3{}, false
	}
}

// PathTargetPoint projects point onto path, offsets that projection by
// offset along the path, and returns the resulting point together with its
// arc-length distance from the path's start.
func PathTargetPoint(path []Vec3, point Vec3, offset Scalar) (Vec3, Scalar, bool) {
	s := ProjectOnPath(path, point, offset)
	p, ok := PointOnPath(path, s)
	if !ok {
		return Vec3{}, 0, false
	}
	return p, s, true
}

func projectOnLine(from, to, point Vec3) Scalar {
	d := to.Sub(from).Magnitude()
	p := point.Project(from, to)
	return d * p
}

// pointOnLine returns the point on segment from->to closest to point
// (clamped to the segment), and its arc-length distance from "from".
func pointOnLine(from, to, point Vec3) (Vec3, Scalar) {
	d := to.Sub(from).Magnitude()
	p := point.Project(from, to)
	switch {
	case p <= 0:
		return from, 0
	case p >= 1:
		return to, d
	default:
		return Unproject(from, to, p), p * d
	}
}
