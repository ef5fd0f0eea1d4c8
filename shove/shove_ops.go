package shove

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/walkaround"
)

// nearestObstacle is main loop step 2: find the nearest
// obstacle to current's current shape, searching kind tiers in
// priority order {SOLID, VIA, SEGMENT, HOLE} and returning the first
// tier's nearest hit (collision itself is bbox-overlap, the same
// precision node.CheckColliding uses throughout the core).
func (e *Engine) nearestObstacle(branch *node.Node, current item.Line) (item.Item, bool) {
	area := current.Poly.BBox().Inflate(current.Width/2 + e.clearanceFor(current.NetID, netid.Orphan))
	cands := branch.QueryColliding(area, node.QueryOptions{ExcludeNet: current.NetID})

	for _, k := range kindPriority {
		var best item.Item
		bestDist := int64(-1)
		for _, c := range cands {
			if c.Kind() != k || item.Ignored(c) {
				continue
			}
			d := c.BBox().Center().DistanceSquared(current.Poly.First())
			if best == nil || d < bestDist {
				best, bestDist = c, d
			}
		}
		if best != nil {
			return best, true
		}
	}
	return nil, false
}

func (e *Engine) clearanceFor(a, b netid.ID) int64 {
	if e.resolver == nil {
		return 0
	}
	return e.resolver.Clearance(a, b)
}

// viaFixup is main loop step 4: swap the obstacle pointer
// for an attached via/segment pair whose widths would otherwise cause
// oscillation between pushing the thin member and colliding on the wide
// one.
func (e *Engine) viaFixup(branch *node.Node, current item.Line, obstacle item.Item) item.Item {
	switch v := obstacle.(type) {
	case item.Via:
		// Already the widest member of its own fanout; pushVia widens the
		// effective hull itself via maxFanoutWidth, so no swap is needed.
		return obstacle
	case item.Segment:
		for _, p := range []geom.Point{v.P0, v.P1} {
			if j, ok := branch.FindJoint(p, v.NetID); ok {
				if via := viaNarrowerThan(j, v.Width); via != nil {
					return *via
				}
			}
		}
		return obstacle
	default:
		return obstacle
	}
}

func widthOfLinked(ln item.Linked) int64 {
	switch v := ln.(type) {
	case item.Segment:
		return v.Width
	case item.Arc:
		return v.Width
	default:
		return 0
	}
}

func viaNarrowerThan(j *node.Joint, width int64) *item.Via {
	for _, ln := range j.LinkSlice() {
		if v, ok := ln.(item.Via); ok && v.MaxRadius()*2 < width {
			return &v
		}
	}
	return nil
}

// reverseCollideVia is the main loop's "Reverse-collide-via" case
// : current has run into a via an earlier episode already
// shoved.
func (e *Engine) reverseCollideVia(branch *node.Node, current item.Line, obstacleVia item.Via) bool {
	if current.Via != nil {
		return e.pushVia(branch, current, obstacleVia)
	}
	j, ok := branch.FindJoint(obstacleVia.Pos, obstacleVia.NetID)
	if !ok {
		return false
	}
	for _, ln := range j.LinkSlice() {
		if ln.UID() == obstacleVia.UID() {
			continue
		}
		full := branch.AssembleLine(ln, node.AssembleOptions{})
		full.Rank = current.Rank - 1
		e.lineStack = append(e.lineStack, lineStackEntry{line: full, rank: full.Rank})
	}
	return true
}

// reverseCollideLine is the main loop's "Reverse-collide-line" case:
// pop current and push the earlier-shoved line back onto the stack to
// re-shove it.
func (e *Engine) reverseCollideLine(branch *node.Node, obstacle item.Item) bool {
	linked, ok := obstacle.(item.Linked)
	if !ok {
		return false
	}
	e.lineStack = e.lineStack[:len(e.lineStack)-1]
	full := branch.AssembleLine(linked, node.AssembleOptions{})
	e.lineStack = append(e.lineStack, lineStackEntry{line: full, rank: full.Rank})
	return true
}

// walkaroundSolid is the main loop's "Walkaround solid" case: run the
// shortest-policy walkaround on current and accept the result only if
// it doesn't collide with any other line still queued on line_stack.
func (e *Engine) walkaroundSolid(branch *node.Node, current item.Line, obstacle item.Item) bool {
	res := walkaround.Walkaround(branch, e.resolver, current, []walkaround.Policy{walkaround.PolicyShortest}, walkaround.Options{})[walkaround.PolicyShortest]
	if res.Status != walkaround.Done && res.Status != walkaround.AlmostDone {
		return false
	}
	for _, entry := range e.lineStack[:len(e.lineStack)-1] {
		if entry.line.Poly.BBox().Intersects(res.Line.Poly.BBox()) {
			return false
		}
	}
	res.Line.Rank = current.Rank
	res.Line.Links = branch.PutLine(res.Line)
	e.lineStack[len(e.lineStack)-1] = lineStackEntry{line: res.Line, rank: res.Line.Rank}
	e.affectedArea = e.affectedArea.Union(res.Line.Poly.BBox())
	return true
}

// pushVia is the main loop's "Push via" case: translate obstacleVia
// away from current by the minimum distance needed to clear it, then
// drag its incident lines along via pushOrShoveVia.
func (e *Engine) pushVia(branch *node.Node, current item.Line, obstacleVia item.Via) bool {
	nearest := nearestPointOnPolyline(current.Poly, obstacleVia.Pos)
	dir := obstacleVia.Pos.Sub(nearest)
	if dir.X == 0 && dir.Y == 0 {
		dir = geom.Vector{X: 1}
	}
	needed := current.Width/2 + e.maxFanoutWidth(branch, obstacleVia)/2 + e.clearanceFor(current.NetID, obstacleVia.NetID)
	target := translateAlong(nearest, dir, needed)
	return e.pushOrShoveVia(branch, obstacleVia, target, true, current.Rank-1)
}

// maxFanoutWidth is the via-fixup heuristic's widened effective
// diameter : the via's own diameter, or any
// incident segment's width plus one unit if that segment is wider,
// so a thin via attached to a wide track doesn't leave that track
// intersecting the pusher after the via alone is cleared.
func (e *Engine) maxFanoutWidth(branch *node.Node, v item.Via) int64 {
	widest := v.MaxRadius() * 2
	j, ok := branch.FindJoint(v.Pos, v.NetID)
	if !ok {
		return widest
	}
	for _, ln := range j.LinkSlice() {
		if w := widthOfLinked(ln); w > widest {
			widest = w + 1
		}
	}
	return widest
}

func nearestPointOnPolyline(pl geom.Polyline, p geom.Point) geom.Point {
	best := pl.First()
	bestDist := best.DistanceSquared(p)
	for i := 0; i < pl.SegmentCount(); i++ {
		seg := pl.Segment(i)
		c := closestPointOnSegment(seg, p)
		if d := c.DistanceSquared(p); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func closestPointOnSegment(s geom.Segment, p geom.Point) geom.Point {
	v := s.Vector()
	if v.X == 0 && v.Y == 0 {
		return s.P0
	}
	w := p.Sub(s.P0)
	t := w.Dot(v)
	vv := v.LengthSquared()
	if t <= 0 {
		return s.P0
	}
	if t >= vv {
		return s.P1
	}
	return geom.Point{X: s.P0.X + v.X*t/vv, Y: s.P0.Y + v.Y*t/vv}
}

// translateAlong returns from moved by dist along dir's direction,
// using integer truncating division: dir need not be a unit vector.
func translateAlong(from geom.Point, dir geom.Vector, dist int64) geom.Point {
	length := dir.Length()
	if length == 0 {
		return from
	}
	return geom.Point{X: from.X + dir.X*dist/length, Y: from.Y + dir.Y*dist/length}
}
