package geom

// Segment is a straight line between two endpoints, with no width of
// its own -- width lives on the owning item (package item). Segment is
// the geometric primitive; item.Segment wraps it with board semantics.
type Segment struct {
	P0, P1 Point
}

// Length returns the exact-floor length of the segment.
func (s Segment) Length() int64 { return s.P0.Distance(s.P1) }

// Vector returns P1 - P0.
func (s Segment) Vector() Vector { return s.P1.Sub(s.P0) }

// IsZeroLength reports whether both endpoints coincide. NODE.Add
// silently rejects segments for which this is true (spec §4.1, §7).
func (s Segment) IsZeroLength() bool { return s.P0.Equal(s.P1) }

// BBox returns the segment's axis-aligned bounding box.
func (s Segment) BBox() Rect {
	return EmptyRect().UnionPoint(s.P0).UnionPoint(s.P1)
}

// Reversed returns the segment with endpoints swapped.
func (s Segment) Reversed() Segment { return Segment{s.P1, s.P0} }

// DistanceToPoint returns the shortest distance from p to the segment
// (not the infinite line), using only integer arithmetic via a
// projected-parameter clamp.
func (s Segment) DistanceToPoint(p Point) int64 {
	v := s.Vector()
	if v.X == 0 && v.Y == 0 {
		return s.P0.Distance(p)
	}
	w := p.Sub(s.P0)
	t := w.Dot(v)
	vv := v.LengthSquared()
	if t <= 0 {
		return s.P0.Distance(p)
	}
	if t >= vv {
		return s.P1.Distance(p)
	}
	// Closest point is P0 + (t/vv)*v, computed by multiplying before
	// the integer division and then measuring to that rounded point.
	projX := s.P0.X + v.X*t/vv
	projY := s.P0.Y + v.Y*t/vv
	return p.Distance(Point{projX, projY})
}

// DistanceToSegment returns the shortest distance between s and o: 0
// if they intersect, otherwise the minimum of each segment's endpoints
// measured against the other segment (the standard reduction for
// non-intersecting segments, since the closest pair of points between
// two disjoint line segments always includes at least one endpoint).
func (s Segment) DistanceToSegment(o Segment) int64 {
	if _, hit := s.Intersects(o); hit {
		return 0
	}
	d := s.DistanceToPoint(o.P0)
	if v := s.DistanceToPoint(o.P1); v < d {
		d = v
	}
	if v := o.DistanceToPoint(s.P0); v < d {
		d = v
	}
	if v := o.DistanceToPoint(s.P1); v < d {
		d = v
	}
	return d
}

// Intersects reports whether s and o share at least one point, and
// returns that point if they do. For a proper crossing that is the
// crossing point; otherwise (touching or collinear overlap) it is the
// first endpoint found lying on the other segment, checked in the
// order s.P0, s.P1, o.P0, o.P1.
func (s Segment) Intersects(o Segment) (Point, bool) {
	d1 := o.P1.Sub(o.P0).Cross(s.P0.Sub(o.P0))
	d2 := o.P1.Sub(o.P0).Cross(s.P1.Sub(o.P0))
	d3 := s.P1.Sub(s.P0).Cross(o.P0.Sub(s.P0))
	d4 := s.P1.Sub(s.P0).Cross(o.P1.Sub(s.P0))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return segLineIntersectPoint(s, o), true
	}
	// Collinear / touching-endpoint special cases.
	if d1 == 0 && onSegment(o.P0, o.P1, s.P0) {
		return s.P0, true
	}
	if d2 == 0 && onSegment(o.P0, o.P1, s.P1) {
		return s.P1, true
	}
	if d3 == 0 && onSegment(s.P0, s.P1, o.P0) {
		return o.P0, true
	}
	if d4 == 0 && onSegment(s.P0, s.P1, o.P1) {
		return o.P1, true
	}
	return Point{}, false
}

func onSegment(a, b, p Point) bool {
	if (Segment{a, b}).Vector().Cross(p.Sub(a)) != 0 {
		return false
	}
	return p.X >= min64(a.X, b.X) && p.X <= max64(a.X, b.X) &&
		p.Y >= min64(a.Y, b.Y) && p.Y <= max64(a.Y, b.Y)
}

// segLineIntersectPoint computes the intersection of two properly
// crossing segments using floating point only at this single interior
// step; the result is rounded back to the integer grid. This is one of
// geom's few documented exceptions to "no floating point" (see also
// Arc.Center) and is confined to sub-nanometre rounding noise that never affects a
// clearance comparison (spec §3 allows board-unit granularity).
func segLineIntersectPoint(s, o Segment) Point {
	x1, y1 := float64(s.P0.X), float64(s.P0.Y)
	x2, y2 := float64(s.P1.X), float64(s.P1.Y)
	x3, y3 := float64(o.P0.X), float64(o.P0.Y)
	x4, y4 := float64(o.P1.X), float64(o.P1.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return s.P0
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return Point{
		X: int64(x1 + t*(x2-x1)),
		Y: int64(y1 + t*(y2-y1)),
	}
}
