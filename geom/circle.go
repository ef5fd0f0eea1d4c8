package geom

// Circle is a center and radius, used for via bodies, pad drills and
// the closed-form octagonal hull construction (spec §4.4).
type Circle struct {
	Center Point
	Radius int64
}

// BBox returns the circle's bounding square.
func (c Circle) BBox() Rect {
	return Rect{
		Point{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Point{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
}

// DistanceToPoint returns the distance from p to the circle's boundary;
// negative when p is inside.
func (c Circle) DistanceToPoint(p Point) int64 {
	d := c.Center.Distance(p)
	return d - c.Radius
}

// IntersectsSegment reports whether the circle and the segment come within
// zero distance of each other.
func (c Circle) IntersectsSegment(s Segment) bool {
	return s.DistanceToPoint(c.Center) <= c.Radius
}
