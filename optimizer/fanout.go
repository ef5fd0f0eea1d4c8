package optimizer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
)

// fanoutMaxLengthRatio is FANOUT_CLEANUP's length cap relative to
// track width, "the line is ≤ 10× track width."
const fanoutMaxLengthRatio = 10

// fanoutCleanup implements FANOUT_CLEANUP: "if both endpoints are
// pads/vias and the line is ≤ 10× track width, replace it with a
// direct two-segment 45° connection (either diagonal) if
// non-colliding."
func (p *pass) fanoutCleanup(ln item.Line) item.Line {
	if ln.Poly.Len() < 2 {
		return ln
	}
	if ln.Poly.Length() > ln.Width*fanoutMaxLengthRatio {
		return ln
	}
	first, last := ln.Poly.First(), ln.Poly.Last()
	if !p.isPadOrViaTerminal(first) || !p.isPadOrViaTerminal(last) {
		return ln
	}

	base := costOf(ln.Poly)
	var bestPoly geom.Polyline
	found := false
	for _, cand := range bypassCandidates(first, last) {
		if collides(p.n, p.resolver, p.net, p.width, cand) {
			continue
		}
		candPoly := geom.NewPolyline(cand...)
		if !found || better(costOf(candPoly), base, p.tol) {
			bestPoly, found = candPoly, true
			base = costOf(candPoly)
		}
	}
	if !found {
		return ln
	}
	ln.Poly = bestPoly
	return ln
}

// isPadOrViaTerminal reports whether pt sits on a Solid pad body or a
// Via center, the two terminal kinds FANOUT_CLEANUP requires at both
// ends.
func (p *pass) isPadOrViaTerminal(pt geom.Point) bool {
	if _, ok := p.padAt(pt); ok {
		return true
	}
	if p.n == nil {
		return false
	}
	if j, ok := p.n.FindJoint(pt, p.net); ok {
		for _, ln := range j.LinkSlice() {
			if _, ok := ln.(item.Via); ok {
				return true
			}
		}
	}
	return false
}
