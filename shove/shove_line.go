package shove

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/walkaround"
)

// shoveSnapThreshold is ShoveObstacleLine's endpoint-snapping
// tolerance: "within a small threshold (1000 coordinate units)".
const shoveSnapThreshold int64 = 1000

// shoveLine is the main loop's "Shove line" case : rebuild
// the obstacle's full LINE and re-walk it around current.
func (e *Engine) shoveLine(branch *node.Node, current item.Line, obstacle item.Item) bool {
	obsLinked, ok := obstacle.(item.Linked)
	if !ok {
		return false
	}
	obsLine := branch.AssembleLine(obsLinked, node.AssembleOptions{})

	result, ok := e.shoveObstacleLine(branch, current, obsLine)
	if !ok {
		return e.walkaroundSolid(branch, current, obstacle)
	}
	result.Rank = current.Rank - 1
	result.Links = branch.PutLine(result)
	e.lineStack = append(e.lineStack, lineStackEntry{line: result, rank: result.Rank})
	e.affectedArea = e.affectedArea.Union(result.Poly.BBox())
	return true
}

// shoveObstacleLine is ShoveObstacleLine : try the four
// named (invert, clockwise) combinations, then two further attempts
// that permit snapping each endpoint to the nearest hull point within
// shoveSnapThreshold, expanding the walkaround engine's hull-expansion
// limit up to three extra times if every attempt at the current
// expansion fails. A candidate is accepted only if its endpoints match
// the original obstacle (exactly, or after snapping), it does not
// self-intersect, it does not collide with current, and it passes the
// "shove-the-right-way" direction guard (current ends up outside the
// closed polygon formed by the original and the new obstacle curve;
// spec §9 Open Questions flags this guard as a heuristic, not a proof,
// and calls for preserving the four-attempt retry structure alongside
// it, not dropping it).
func (e *Engine) shoveObstacleLine(branch *node.Node, current, obstacle item.Line) (item.Line, bool) {
	attempts := [4]struct{ invert, clockwise bool }{
		{false, true}, {false, false}, {true, true}, {true, false},
	}

	for expansion := 0; expansion <= 3; expansion++ {
		opts := walkaround.Options{ExpansionLimit: int64(10 + expansion*10)}
		for _, a := range attempts {
			if res, ok := e.tryShoveCandidate(branch, current, obstacle, a.invert, a.clockwise, opts, false); ok {
				return res, true
			}
		}
		// Two further attempts, snapping each endpoint to the original
		// obstacle's corresponding endpoint when the walked result lands
		// within shoveSnapThreshold of it but not exactly on it.
		for _, a := range attempts[:2] {
			if res, ok := e.tryShoveCandidate(branch, current, obstacle, a.invert, a.clockwise, opts, true); ok {
				return res, true
			}
		}
	}
	return item.Line{}, false
}

// tryShoveCandidate runs one (invert, clockwise) walkaround attempt and
// applies the acceptance checks shared by the base and snap passes.
func (e *Engine) tryShoveCandidate(branch *node.Node, current, obstacle item.Line, invert, clockwise bool, opts walkaround.Options, allowSnap bool) (item.Line, bool) {
	candidate := obstacle
	if invert {
		candidate.Poly = candidate.Poly.Reversed()
	}
	p := policyFor(clockwise)
	res := walkaround.Walkaround(branch, e.resolver, candidate, []walkaround.Policy{p}, opts)[p]
	if res.Status != walkaround.Done && res.Status != walkaround.AlmostDone {
		return item.Line{}, false
	}
	result := res.Line
	if allowSnap {
		result = snapLineEndpoints(result, obstacle, shoveSnapThreshold)
	}
	if !result.EndpointsMatch(obstacle) {
		return item.Line{}, false
	}
	if _, _, hit := result.Poly.SelfIntersects(); hit {
		return item.Line{}, false
	}
	if linesCollide(result, current, e.clearanceFor(result.NetID, current.NetID)) {
		return item.Line{}, false
	}
	if !shovedTheRightWay(current, obstacle, result) {
		return item.Line{}, false
	}
	return result, true
}

// linesCollide reports whether a and b's polylines pass closer than
// their combined half-widths plus clearance anywhere along their
// length -- a bbox pre-check, then segment-to-segment distance (finer
// than node.CheckColliding's bbox overlap), applied directly
// line-to-line since neither a transient
// walkaround candidate nor the live drag head is in the spatial index.
func linesCollide(a, b item.Line, clearance int64) bool {
	if !a.BBox().Intersects(b.BBox()) {
		return false
	}
	required := a.Width/2 + b.Width/2 + clearance
	for i := 0; i < a.Poly.SegmentCount(); i++ {
		sa := a.Poly.Segment(i)
		for j := 0; j < b.Poly.SegmentCount(); j++ {
			if sa.DistanceToSegment(b.Poly.Segment(j)) < required {
				return true
			}
		}
	}
	return false
}

// snapLineEndpoints returns a copy of result with each endpoint that
// lands within threshold of original's corresponding endpoint (but not
// already equal to it) replaced by original's exact endpoint, letting
// EndpointsMatch succeed on a near-miss walkaround result.
func snapLineEndpoints(result, original item.Line, threshold int64) item.Line {
	poly := result.Poly.Clone()
	if n := len(poly.Points); n > 0 {
		if first := poly.Points[0]; !first.Equal(original.Poly.First()) && first.Distance(original.Poly.First()) <= threshold {
			poly.Points[0] = original.Poly.First()
		}
		if last := poly.Points[n-1]; !last.Equal(original.Poly.Last()) && last.Distance(original.Poly.Last()) <= threshold {
			poly.Points[n-1] = original.Poly.Last()
		}
	}
	return result.WithPoly(poly)
}

// shovedTheRightWay is the "shove-the-right-way" guard: current (the
// pusher) must end up outside the closed polygon formed by joining
// original and result head-to-tail, rejecting a result that wraps
// around the pusher's start instead of being displaced by it.
func shovedTheRightWay(current, original, result item.Line) bool {
	ring := geom.ClosedPolygon(original.Poly.Points, result.Poly.Points)
	return !geom.PointInPolygon(ring, current.Poly.First())
}

func policyFor(clockwise bool) walkaround.Policy {
	if clockwise {
		return walkaround.PolicyClockwise
	}
	return walkaround.PolicyCounterClockwise
}
