package optimizer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/topology"
)

// replacement is one candidate subchain swap: the original vertices
// [from..to] of root's polyline are proposed to become repl.
type replacement struct {
	from, to int
	repl []geom.Point
	rootCorners int // root line's total obtuse-corner count, for LIMIT_CORNER_COUNT
}

// satisfiesConstraints reports whether every constraint in cs accepts
// r, against the full candidate polyline cand (the root's points with
// [from..to] replaced by repl) and the joint source used by
// KEEP_TOPOLOGY, "a proposed replacement subchain
// [v1..v2] → replacement is accepted only if every registered
// constraint returns true on it."
func satisfiesConstraints(cs []rules.Constraint, r replacement, root, cand geom.Polyline, src topology.JointSource, net netid.ID, l layer.ID) bool {
	for _, c := range cs {
		switch c.Kind {
		case rules.RestrictArea:
			if !restrictArea(cand, r, c.Area) {
				return false
			}
		case rules.RestrictVertexRange:
			if r.from < c.From || r.to > c.To {
				return false
			}
		case rules.PreserveVertex:
			if !preserveVertex(root, r, c.Vertex) {
				return false
			}
		case rules.KeepTopology:
			if !keepsTopology(root, r, src, net, l) {
				return false
			}
		case rules.LimitCornerCount:
			if ObtuseCornerCount(cand) > r.rootCorners {
				return false
			}
		}
	}
	return true
}

// restrictArea rejects a replacement whose inserted vertices stray
// outside area.
func restrictArea(cand geom.Polyline, r replacement, area geom.Rect) bool {
	if area.IsEmpty() {
		return true
	}
	for _, p := range r.repl {
		if !area.Contains(p) {
			return false
		}
	}
	return true
}

// preserveVertex rejects a replacement that would remove v from the
// root's vertex list when v lies strictly inside the replaced range.
func preserveVertex(root geom.Polyline, r replacement, v geom.Point) bool {
	for i := r.from + 1; i < r.to; i++ {
		if root.Points[i].Equal(v) {
			return false // v is inside the removed range: rejected
		}
	}
	return true
}

// keepsTopology runs the KEEP_TOPOLOGY check: the closed polygon
// formed by the original slice plus the reversed replacement must not
// enclose a joint belonging to a different net.
func keepsTopology(root geom.Polyline, r replacement, src topology.JointSource, net netid.ID, l layer.ID) bool {
	if src == nil {
		return true
	}
	original := root.Points[r.from : r.to+1]
	ring := geom.ClosedPolygon(original, r.repl)
	bb := geom.EmptyRect()
	for _, p := range ring {
		bb = bb.UnionPoint(p)
	}
	for _, it := range src.ItemsOverlapping(bb, l, net) {
		for _, a := range itemAnchors(it) {
			if geom.PointInPolygon(ring, a) {
				return false
			}
		}
	}
	return true
}

// itemAnchors returns the points of it relevant to an enclosure test:
// a Linked item's (Segment, Arc, Via, Solid) anchors, or a Hole's bbox
// center.
func itemAnchors(it item.Item) []geom.Point {
	if ln, ok := it.(item.Linked); ok {
		return ln.Anchors()
	}
	return []geom.Point{it.BBox().Center()}
}
