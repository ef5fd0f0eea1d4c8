package geom

// ChamferFraction is the (1 - sqrt(2)/2) constant from spec §4.4,
// stored as a fixed-point numerator/denominator pair rather than a
// float so every hull chamfer computation stays exact-integer. The
// denominator is large enough that the rounding error on any realistic
// clearance/diameter value is sub-unit.
const (
	chamferNum = 292893 // round(1000000 * (1 - sqrt(2)/2))
	chamferDen = 1000000
)

// ChamferLength returns floor(span * (1 - sqrt(2)/2)) for a given span
// (a diameter for circles, a width for rectangles), per the chamfer
// formulas in spec §4.4.
func ChamferLength(span int64) int64 {
	return (span * chamferNum) / chamferDen
}

// Octagon returns the 8-vertex CCW polygon approximating a circle of
// the given center and radius, per spec §4.4's "octagon inscribed in
// the enlarged circle" hull. chamfer is the corner cut length,
// typically ChamferLength(2*radius).
func Octagon(center Point, radius, chamfer int64) Polyline {
	// Start from the enclosing square and cut each corner by chamfer.
	x0, y0 := center.X-radius, center.Y-radius
	x1, y1 := center.X+radius, center.Y+radius
	pts := []Point{
		{x0 + chamfer, y0},
		{x1 - chamfer, y0},
		{x1, y0 + chamfer},
		{x1, y1 - chamfer},
		{x1 - chamfer, y1},
		{x0 + chamfer, y1},
		{x0, y1 - chamfer},
		{x0, y0 + chamfer},
	}
	return Polyline{Points: closeLoop(pts), ArcIndex: straightIdx(9)}
}

// ChamferedRect returns a CCW rectangle hull with chamfered corners,
// for an SMD pad or other rectangular shape, per spec §4.4.
func ChamferedRect(center Point, halfW, halfH, chamfer int64) Polyline {
	if chamfer > halfW {
		chamfer = halfW
	}
	if chamfer > halfH {
		chamfer = halfH
	}
	x0, y0 := center.X-halfW, center.Y-halfH
	x1, y1 := center.X+halfW, center.Y+halfH
	pts := []Point{
		{x0 + chamfer, y0},
		{x1 - chamfer, y0},
		{x1, y0 + chamfer},
		{x1, y1 - chamfer},
		{x1 - chamfer, y1},
		{x0 + chamfer, y1},
		{x0, y1 - chamfer},
		{x0, y0 + chamfer},
	}
	return Polyline{Points: closeLoop(pts), ArcIndex: straightIdx(9)}
}

func closeLoop(pts []Point) []Point {
	return append(append([]Point{}, pts...), pts[0])
}

func straightIdx(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = -1
	}
	return idx
}

// ConvexHull returns the CCW convex hull of pts via the monotone chain
// algorithm. Used by the hull builder to merge composite-shape hulls
// and to join a segment's two end-cap octagons (see hull package).
func ConvexHull(pts []Point) []Point {
	uniq := dedupeSorted(pts)
	n := len(uniq)
	if n < 3 {
		return uniq
	}
	hull := make([]Point, 0, 2*n)
	// Lower chain.
	for _, p := range uniq {
		for len(hull) >= 2 && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func cross3(o, a, b Point) int64 {
	return a.Sub(o).Cross(b.Sub(o))
}

func dedupeSorted(pts []Point) []Point {
	cp := append([]Point{}, pts...)
	for i := 1; i < len(cp); i++ {
		for j := i; j > 0 && (cp[j-1].X > cp[j].X || (cp[j-1].X == cp[j].X && cp[j-1].Y > cp[j].Y)); j-- {
			cp[j-1], cp[j] = cp[j], cp[j-1]
		}
	}
	out := cp[:0]
	for i, p := range cp {
		if i == 0 || !p.Equal(cp[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

// MinTranslationVector returns the minimum-translation vector that
// separates two axis-aligned bounding boxes that currently overlap --
// used as the fast-path MTV for SOLID/VIA-vs-everything shove pushes
// (spec §4.5, "Push via"). ok is false when the boxes do not overlap.
func MinTranslationVector(a, b Rect) (Vector, bool) {
	if !a.Intersects(b) {
		return Vector{}, false
	}
	overlapX := min64(a.Max.X, b.Max.X) - max64(a.Min.X, b.Min.X)
	overlapY := min64(a.Max.Y, b.Max.Y) - max64(a.Min.Y, b.Min.Y)
	ca := a.Center()
	cb := b.Center()
	if overlapX < overlapY {
		if ca.X < cb.X {
			return Vector{overlapX, 0}, true
		}
		return Vector{-overlapX, 0}, true
	}
	if ca.Y < cb.Y {
		return Vector{0, overlapY}, true
	}
	return Vector{0, -overlapY}, true
}
