package placer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
)

// twoSegmentCandidates mirrors optimizer's bypassCandidates (a diagonal
// leg then an axis-aligned leg, and the reverse), reduceTail's own copy
// since the optimizer package doesn't export it.
func twoSegmentCandidates(a, b geom.Point) [2][]geom.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	adx, ady := abs64p(dx), abs64p(dy)
	diag := adx
	if ady < diag {
		diag = ady
	}
	sx, sy := sign64p(dx), sign64p(dy)
	diagFirst := geom.Point{X: a.X + sx*diag, Y: a.Y + sy*diag}
	straightFirst := geom.Point{X: b.X - sx*diag, Y: b.Y - sy*diag}
	return [2][]geom.Point{
		{a, diagFirst, b},
		{a, straightFirst, b},
	}
}

func abs64p(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign64p(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// pathCollides reports whether any leg of the given polyline points
// collides with an item outside this placer's own net.
func (p *Placer) pathCollides(pts []geom.Point) bool {
	margin := p.cfg.Width / 2
	if p.resolver != nil {
		margin += p.resolver.ClearanceEpsilon()
	}
	for i := 0; i+1 < len(pts); i++ {
		seg := geom.Segment{P0: pts[i], P1: pts[i+1]}
		if len(p.n.QueryColliding(seg.BBox().Inflate(margin), node.QueryOptions{ExcludeNet: p.cfg.Net})) > 0 {
			return true
		}
	}
	return false
}

// reduceTail is step 5: try collapsing a trailing window of the tail
// (up to maxReduceTailWindow segments, largest first) into a single
// two-segment 45° run to the same fixed endpoint, keeping the first
// candidate that neither collides nor reverses direction at the
// window's anchor.
func (p *Placer) reduceTail(_ geom.Point) {
	target := p.tail.Last()
	maxWindow := maxReduceTailWindow
	if maxWindow > p.tail.SegmentCount() {
		maxWindow = p.tail.SegmentCount()
	}
	for window := maxWindow; window >= 2; window-- {
		anchorIdx := p.tail.Len() - 1 - window
		if anchorIdx < 0 {
			continue
		}
		anchor := p.tail.Points[anchorIdx]
		if anchor.Equal(target) {
			continue
		}
		origDir := p.tail.Points[anchorIdx+1].Sub(anchor)

		for _, cand := range twoSegmentCandidates(anchor, target) {
			if len(cand) < 2 {
				continue
			}
			newDir := cand[1].Sub(anchor)
			if origDir.Dot(newDir) <= 0 {
				continue
			}
			if p.pathCollides(cand) {
				continue
			}
			pts := make([]geom.Point, 0, anchorIdx+len(cand))
			pts = append(pts, p.tail.Points[:anchorIdx+1]...)
			pts = append(pts, cand[1:]...)
			p.tail = geom.NewPolyline(pts...)
			return
		}
	}
}

// mergeHead is step 6: once the head has grown to three or more
// segments with no forbidden (acute/right/half-full) interior corner,
// it is stable enough to fold into the tail; the head resets to a
// zero-length stub at the same point so the next Move starts clean.
func (p *Placer) mergeHead() {
	if p.head.SegmentCount() < 3 {
		return
	}
	for i := 1; i < p.head.Len()-1; i++ {
		if pullbackTriggers(classify(p.head.Points[i-1], p.head.Points[i], p.head.Points[i+1])) {
			return
		}
	}
	p.tail = p.combined()
	p.head = geom.NewPolyline(p.tail.Last())
}

// optimizeTailHeadTransition is step 7: run the optimizer over the
// last couple of tail segments plus the whole head, then fold the
// result back into the tail. The optimizer never moves a line's
// endpoints, so the head's cursor-facing end is untouched; the head
// collapses to a stub at that same point.
func (p *Placer) optimizeTailHeadTransition() {
	if p.cfg.Effort == 0 || p.tail.SegmentCount() == 0 || p.head.SegmentCount() == 0 {
		return
	}
	windowStart := p.tail.Len() - 1
	if windowStart > 2 {
		windowStart -= 2
	} else {
		windowStart = 0
	}

	pts := make([]geom.Point, 0, p.tail.Len()-windowStart+p.head.Len()-1)
	pts = append(pts, p.tail.Points[windowStart:]...)
	pts = append(pts, p.head.Points[1:]...)
	window := item.Line{
		Poly:  geom.NewPolyline(pts...),
		Width: p.cfg.Width,
		Layer: p.cfg.Layer,
		NetID: p.cfg.Net,
	}

	out := optimizer.Optimize(p.n, p.resolver, window, p.cfg.Effort)
	if out.Poly.Len() < 2 {
		return
	}

	merged := make([]geom.Point, 0, windowStart+out.Poly.Len())
	merged = append(merged, p.tail.Points[:windowStart]...)
	merged = append(merged, out.Poly.Points...)
	p.tail = geom.NewPolyline(merged...)
	p.head = geom.NewPolyline(p.tail.Last())
}
