package optimizer

import "github.com/katalvlaran/pns/geom"

// bypassCandidates returns the two canonical two-segment 45° bypass
// paths between a and b (the design document's SMERGE_SEGMENTS
// "two-segment 45° bypass"): a diagonal leg followed by an
// axis-aligned leg, and the same legs in the opposite order. Degenerate
// inputs (a==b, or already axis/diagonal-aligned) collapse to a
// single straight segment, which the caller's cost comparison then
// naturally rejects (no corner to remove).
func bypassCandidates(a, b geom.Point) [2][]geom.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	adx, ady := abs64(dx), abs64(dy)
	diag := min64(adx, ady)
	sx, sy := sign64(dx), sign64(dy)

	diagFirst := geom.Point{X: a.X + sx*diag, Y: a.Y + sy*diag}
	straightFirst := geom.Point{X: b.X - sx*diag, Y: b.Y - sy*diag}

	return [2][]geom.Point{
		{a, diagFirst, b},
		{a, straightFirst, b},
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign64(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
