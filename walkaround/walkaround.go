package walkaround

import (
	"time"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/hull"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
)

// Walkaround runs every requested policy against ln independently and
// returns each one's Result, keyed by policy.
func Walkaround(n *node.Node, resolver rules.Resolver, ln item.Line, policies []Policy, opts Options) map[Policy]Result {
	out := make(map[Policy]Result, len(policies))
	for _, p := range policies {
		switch p {
		case PolicyClockwise:
			out[p] = walkOneDirection(n, resolver, ln, true, opts)
		case PolicyCounterClockwise:
			out[p] = walkOneDirection(n, resolver, ln, false, opts)
		case PolicyShortest:
			out[p] = race(n, resolver, ln, opts)
		}
	}
	return out
}

// race runs both directions to completion and picks one. A result
// longer than opts.expansionLimit() times the seed's own length loses
// to one that is not; otherwise a Done result beats a non-Done one,
// and then the shorter wins (ties go to clockwise). When both exceed
// the budget and the length comparison decides, the chosen result is
// reported as AlmostDone.
func race(n *node.Node, resolver rules.Resolver, ln item.Line, opts Options) Result {
	budget := ln.Poly.Length() * opts.expansionLimit()
	if budget <= 0 {
		budget = 1
	}

	cw := walkOneDirection(n, resolver, ln, true, opts)
	ccw := walkOneDirection(n, resolver, ln, false, opts)

	cwOver := cw.Line.Poly.Length() > budget
	ccwOver := ccw.Line.Poly.Length() > budget
	switch {
	case cwOver && !ccwOver:
		return ccw
	case ccwOver && !cwOver:
		return cw
	}

	if cw.Status == Done && ccw.Status != Done {
		return cw
	}
	if ccw.Status == Done && cw.Status != Done {
		return ccw
	}
	if cw.Line.Poly.Length() <= ccw.Line.Poly.Length() {
		if cwOver && ccwOver {
			cw.Status = AlmostDone
		}
		return cw
	}
	if cwOver && ccwOver {
		ccw.Status = AlmostDone
	}
	return ccw
}

func walkOneDirection(n *node.Node, resolver rules.Resolver, ln item.Line, clockwise bool, opts Options) Result {
	seedT0, seedT1 := ln.Poly.First(), ln.Poly.Last()
	current := ln
	deadline := time.Now().Add(opts.clusterTimeout())

	for iter := 0; iter < opts.iterationLimit(); iter++ {
		if time.Now().After(deadline) {
			return Result{Status: Stuck, Line: current}
		}
		obstacle, segIdx, entry, exit, found := firstCollision(n, current)
		if !found {
			if current.Poly.First().Equal(seedT0) && current.Poly.Last().Equal(seedT1) {
				return Result{Status: Done, Line: current}
			}
			return Result{Status: AlmostDone, Line: current}
		}
		h := hull.Build(resolver, obstacle, clearanceFor(resolver, current, obstacle), current.Width, current.Layer)
		detour, ok := spliceAround(h, entry, exit, clockwise)
		if !ok {
			return Result{Status: Stuck, Line: current}
		}
		current.Poly = spliceSegment(current.Poly, segIdx, entry, exit, detour)
	}
	return Result{Status: InProgress, Line: current}
}

func clearanceFor(resolver rules.Resolver, ln item.Line, obstacle item.Item) int64 {
	if resolver == nil {
		return ln.Width / 2
	}
	return resolver.Clearance(ln.NetID, obstacle.Net())
}

// firstCollision scans ln's edges in order and returns the first
// visible, non-same-net obstacle whose bbox the edge crosses, plus
// the edge's entry/exit points against that bbox. This is a
// conservative bbox-level crossing test, not an exact polygon
// intersection -- adequate for deciding which obstacle to hull-walk
// around, which is all this engine needs.
func firstCollision(n *node.Node, ln item.Line) (obstacle item.Item, segIdx int, entry, exit geom.Point, found bool) {
	for i := 0; i < ln.Poly.SegmentCount(); i++ {
		seg := ln.Poly.Segment(i)
		cands := n.QueryColliding(seg.BBox().Inflate(ln.Width/2), node.QueryOptions{ExcludeNet: ln.NetID})
		for _, cand := range cands {
			if e0, e1, ok := segmentCrossesBox(seg, cand.BBox()); ok {
				return cand, i, e0, e1, true
			}
		}
	}
	return nil, 0, geom.Point{}, geom.Point{}, false
}

// segmentCrossesBox returns the two points where seg crosses r's
// boundary (in travel order), or ok=false if seg does not cross it.
func segmentCrossesBox(seg geom.Segment, r geom.Rect) (geom.Point, geom.Point, bool) {
	edges := [4]geom.Segment{
		{P0: r.Min, P1: geom.Point{X: r.Max.X, Y: r.Min.Y}},
		{P0: geom.Point{X: r.Max.X, Y: r.Min.Y}, P1: r.Max},
		{P0: r.Max, P1: geom.Point{X: r.Min.X, Y: r.Max.Y}},
		{P0: geom.Point{X: r.Min.X, Y: r.Max.Y}, P1: r.Min},
	}
	var hits []geom.Point
	for _, e := range edges {
		if p, ok := seg.Intersects(e); ok {
			hits = append(hits, p)
		}
	}
	switch {
	case len(hits) >= 2:
		if hits[1].DistanceSquared(seg.P0) < hits[0].DistanceSquared(seg.P0) {
			hits[0], hits[1] = hits[1], hits[0]
		}
		return hits[0], hits[1], true
	case len(hits) == 1 && r.Contains(seg.P1):
		return hits[0], seg.P1, true
	case len(hits) == 1 && r.Contains(seg.P0):
		return seg.P0, hits[0], true
	default:
		return geom.Point{}, geom.Point{}, false
	}
}

// spliceAround returns the hull vertices to insert between entry and
// exit: from the vertex of h nearest entry to the vertex nearest exit,
// walking forward through h's vertex ring when clockwise is true and
// backward otherwise.
func spliceAround(h geom.Polyline, entry, exit geom.Point, clockwise bool) ([]geom.Point, bool) {
	if h.Len() < 3 {
		return nil, false
	}
	pts := h.Points
	if !pts[0].Equal(pts[len(pts)-1]) {
		pts = append(append([]geom.Point{}, pts...), pts[0])
	}
	ring := pts[:len(pts)-1]

	entryIdx := nearestVertex(ring, entry)
	exitIdx := nearestVertex(ring, exit)
	if entryIdx == exitIdx {
		return nil, false
	}

	n := len(ring)
	var out []geom.Point
	if clockwise {
		for i := entryIdx; i != exitIdx; i = (i + 1) % n {
			out = append(out, ring[i])
		}
	} else {
		for i := entryIdx; i != exitIdx; i = (i - 1 + n) % n {
			out = append(out, ring[i])
		}
	}
	out = append(out, ring[exitIdx])
	return out, true
}

func nearestVertex(ring []geom.Point, p geom.Point) int {
	best := 0
	bestDist := ring[0].DistanceSquared(p)
	for i := 1; i < len(ring); i++ {
		if d := ring[i].DistanceSquared(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// spliceSegment inserts entry and then the detour vertices, in order,
// into poly's segIdx-th edge. exit itself is not inserted: the detour
// ends at the hull vertex nearest it.
func spliceSegment(poly geom.Polyline, segIdx int, entry, exit geom.Point, detour []geom.Point) geom.Polyline {
	pts := make([]geom.Point, 0, len(poly.Points)+len(detour)+2)
	pts = append(pts, poly.Points[:segIdx+1]...)
	pts = append(pts, entry)
	pts = append(pts, detour...)
	pts = append(pts, poly.Points[segIdx+1:]...)
	_ = exit // not inserted; detour ends at the hull vertex nearest exit
	simplified, _ := geom.NewPolyline(pts...).SimplifyCollinear()
	return simplified
}
