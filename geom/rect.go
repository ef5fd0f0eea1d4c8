package geom

// Rect is an axis-aligned bounding box, Min inclusive, Max inclusive.
// It is the currency of the spatial index (package index): every item
// stored there is indexed by its Rect, never by its exact shape.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a degenerate rect that Union treats as "nothing yet".
func EmptyRect() Rect {
	return Rect{Point{1, 1}, Point{0, 0}}
}

// IsEmpty reports whether r was never unioned with a point.
func (r Rect) IsEmpty() bool { return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y }

// Union returns the smallest rect containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		Point{min64(r.Min.X, s.Min.X), min64(r.Min.Y, s.Min.Y)},
		Point{max64(r.Max.X, s.Max.X), max64(r.Max.Y, s.Max.Y)},
	}
}

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{p, p})
}

// Inflate grows r by d on every side (d may be negative to shrink).
func (r Rect) Inflate(d int64) Rect {
	return Rect{
		Point{r.Min.X - d, r.Min.Y - d},
		Point{r.Max.X + d, r.Max.Y + d},
	}
}

// Intersects reports whether r and s share at least one point.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.Min.X <= s.Max.X && r.Max.X >= s.Min.X &&
		r.Min.Y <= s.Max.Y && r.Max.Y >= s.Min.Y
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Center returns the (floor) center point of r.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
