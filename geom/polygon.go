package geom

// PointInPolygon reports whether p lies inside the closed polygon
// described by pts (either explicitly closed, pts[0]==pts[last], or
// implicitly closed), via the standard ray-casting parity test. Used
// by the optimizer's KEEP_TOPOLOGY constraint to test whether a
// candidate replacement subchain would enclose a joint belonging to a
// different net.
func PointInPolygon(pts []Point, p Point) bool {
	ring := pts
	if n := len(ring); n > 1 && ring[0].Equal(ring[n-1]) {
		ring = ring[:n-1]
	}
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ClosedPolygon returns the points of a (reversed b) joined head-to-
// tail into a closed ring, for the optimizer's KEEP_TOPOLOGY check:
// "the closed polygon formed by (original slice + reversed
// replacement)".
func ClosedPolygon(a, b []Point) []Point {
	out := make([]Point, 0, len(a)+len(b)+1)
	out = append(out, a...)
	for i := len(b) - 1; i >= 0; i-- {
		out = append(out, b[i])
	}
	if len(out) > 0 && !out[0].Equal(out[len(out)-1]) {
		out = append(out, out[0])
	}
	return out
}
