package geom

// Polyline is an ordered chain of vertices. ArcIndex, when non-nil,
// tags each trailing edge with the index of the Arc it belongs to (so
// callers -- the line assembler in particular -- can recover which
// stretches of a flattened polyline were originally arcs). A nil
// ArcIndex, or a -1 entry, means "that edge is a straight segment".
//
// This is the type the design calls a "shape line chain"; it is renamed
// here because the core never actually stores or links it -- it is
// always a transient view, same as item.Line, which embeds it.
type Polyline struct {
	Points []Point
	ArcIndex []int
}

// NewPolyline builds a Polyline from bare points with no arc tagging.
func NewPolyline(pts...Point) Polyline {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = -1
	}
	return Polyline{Points: pts, ArcIndex: idx}
}

// Len returns the number of vertices.
func (pl Polyline) Len() int { return len(pl.Points) }

// SegmentCount returns the number of edges (Len-1, 0 for degenerate lines).
func (pl Polyline) SegmentCount() int {
	if len(pl.Points) < 2 {
		return 0
	}
	return len(pl.Points) - 1
}

// Segment returns the i-th edge as a Segment.
func (pl Polyline) Segment(i int) Segment {
	return Segment{pl.Points[i], pl.Points[i+1]}
}

// First returns the first vertex, or the zero Point if empty.
func (pl Polyline) First() Point {
	if len(pl.Points) == 0 {
		return Point{}
	}
	return pl.Points[0]
}

// Last returns the last vertex, or the zero Point if empty.
func (pl Polyline) Last() Point {
	if len(pl.Points) == 0 {
		return Point{}
	}
	return pl.Points[len(pl.Points)-1]
}

// Length returns the total exact-floor arc length of the chain.
func (pl Polyline) Length() int64 {
	var total int64
	for i := 0; i < pl.SegmentCount(); i++ {
		total += pl.Segment(i).Length()
	}
	return total
}

// BBox returns the polyline's bounding box.
func (pl Polyline) BBox() Rect {
	r := EmptyRect()
	for _, p := range pl.Points {
		r = r.UnionPoint(p)
	}
	return r
}

// Clone returns a deep copy safe to mutate independently.
func (pl Polyline) Clone() Polyline {
	pts := make([]Point, len(pl.Points))
	copy(pts, pl.Points)
	idx := make([]int, len(pl.ArcIndex))
	copy(idx, pl.ArcIndex)
	return Polyline{Points: pts, ArcIndex: idx}
}

// Reversed returns the chain walked back to front.
func (pl Polyline) Reversed() Polyline {
	n := len(pl.Points)
	pts := make([]Point, n)
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		pts[i] = pl.Points[n-1-i]
		if i < len(pl.ArcIndex) {
			idx[i] = pl.ArcIndex[n-1-i]
		} else {
			idx[i] = -1
		}
	}
	return Polyline{Points: pts, ArcIndex: idx}
}

// SimplifyCollinear removes interior vertices where two adjacent
// edges are collinear (cross product zero) and removes zero-length
// edges, returning a new Polyline and whether any point was dropped.
// This backs both the line assembler's pre-shove cleanup and the
// optimizer's MERGE_COLINEAR effort (spec §4.2, §4.7).
func (pl Polyline) SimplifyCollinear() (Polyline, bool) {
	if len(pl.Points) < 3 {
		return pl.Clone(), false
	}
	out := make([]Point, 0, len(pl.Points))
	outIdx := make([]int, 0, len(pl.Points))
	out = append(out, pl.Points[0])
	outIdx = append(outIdx, arcAt(pl, 0))

	changed := false
	for i := 1; i < len(pl.Points)-1; i++ {
		prev := out[len(out)-1]
		cur := pl.Points[i]
		next := pl.Points[i+1]
		if cur.Equal(prev) {
			changed = true
			continue // zero-length edge
		}
		v1 := cur.Sub(prev)
		v2 := next.Sub(cur)
		sameArc := arcAt(pl, i) == arcAt(pl, i+1) && arcAt(pl, i) >= 0
		if !sameArc && v1.Cross(v2) == 0 && v1.Dot(v2) > 0 {
			// collinear, same direction: drop cur
			changed = true
			continue
		}
		out = append(out, cur)
		outIdx = append(outIdx, arcAt(pl, i))
	}
	last := pl.Points[len(pl.Points)-1]
	if !last.Equal(out[len(out)-1]) {
		out = append(out, last)
		outIdx = append(outIdx, arcAt(pl, len(pl.Points)-1))
	} else {
		changed = true
	}
	return Polyline{Points: out, ArcIndex: outIdx}, changed
}

func arcAt(pl Polyline, i int) int {
	if i < 0 || i >= len(pl.ArcIndex) {
		return -1
	}
	return pl.ArcIndex[i]
}

// SelfIntersects reports whether any two non-adjacent edges of pl
// cross, and if so returns the index of the earlier edge and the
// crossing point (first found walking from the start). Used by the
// line placer's handleSelfIntersections (spec §4.8).
func (pl Polyline) SelfIntersects() (idx int, at Point, ok bool) {
	n := pl.SegmentCount()
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 && pl.Points[0].Equal(pl.Points[n]) {
				continue // closed ring: first and last edge share the closure point
			}
			if p, hit := pl.Segment(i).Intersects(pl.Segment(j)); hit {
				return i, p, true
			}
		}
	}
	return 0, Point{}, false
}

// Truncate returns the prefix of pl up to and including vertex index i,
// with its final point replaced by at (used when an intersection falls
// mid-edge rather than exactly on a vertex).
func (pl Polyline) Truncate(i int, at Point) Polyline {
	pts := make([]Point, 0, i+2)
	idx := make([]int, 0, i+2)
	for k := 0; k <= i; k++ {
		pts = append(pts, pl.Points[k])
		idx = append(idx, arcAt(pl, k))
	}
	if !at.Equal(pts[len(pts)-1]) {
		pts = append(pts, at)
		idx = append(idx, -1)
	}
	return Polyline{Points: pts, ArcIndex: idx}
}
