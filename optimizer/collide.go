package optimizer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
)

// collides reports whether any edge of pts (a candidate replacement
// chain, not the whole line) overlaps a visible item outside net: each
// edge's bbox, inflated by half the width plus the resolver's clearance
// against netid.Orphan, is queried with node.QueryColliding. It is a
// bbox-overlap test only; no segment distance is measured.
func collides(n *node.Node, resolver rules.Resolver, net netid.ID, width int64, pts []geom.Point) bool {
	if n == nil || len(pts) < 2 {
		return false
	}
	for i := 0; i < len(pts)-1; i++ {
		seg := geom.Segment{P0: pts[i], P1: pts[i+1]}
		margin := width / 2
		if resolver != nil {
			margin += resolver.Clearance(net, netid.Orphan)
		}
		box := seg.BBox().Inflate(margin)
		if len(n.QueryColliding(box, node.QueryOptions{ExcludeNet: net})) > 0 {
			return true
		}
	}
	return false
}

// selfIntersectsWith reports whether inserting repl in place of
// root[from:to+1] would make the resulting chain self-intersect
// against the untouched remainder of root.
func selfIntersectsWith(root geom.Polyline, from, to int, repl []geom.Point) bool {
	cand := spliceRange(root, from, to, repl)
	_, _, hit := cand.SelfIntersects()
	return hit
}

// spliceRange returns root with vertices [from..to] replaced by repl.
func spliceRange(root geom.Polyline, from, to int, repl []geom.Point) geom.Polyline {
	pts := make([]geom.Point, 0, len(root.Points)-(to-from+1)+len(repl))
	pts = append(pts, root.Points[:from]...)
	pts = append(pts, repl...)
	pts = append(pts, root.Points[to+1:]...)
	return geom.NewPolyline(pts...)
}
