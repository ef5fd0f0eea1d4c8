package optimizer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/topology"
)

// Optimize reduces ln's corner count and length per the document's
// Optimizer module, running whichever passes effort selects and
// rejecting any candidate that collides with n (outside ln's own net)
// or violates a constraint resolver reports for ln's net/layer.
// Optimize never changes ln's endpoints.
func Optimize(n *node.Node, resolver rules.Resolver, ln item.Line, effort Effort) item.Line {
	var constraints []rules.Constraint
	if resolver != nil {
		constraints = resolver.QueryConstraint(ln.NetID, ln.Layer)
	}
	var src topology.JointSource
	if n != nil {
		src = n.JointView()
	}

	poly := ln.Poly
	rootCorners := ObtuseCornerCount(poly)

	p := &pass{
		n: n, resolver: resolver,
		net: ln.NetID, width: ln.Width, layer: ln.Layer,
		constraints: constraints, src: src, rootCorners: rootCorners,
		tol: defaultTolerance(),
	}

	if effort.Has(MergeColinear) {
		if simplified, changed := poly.SimplifyCollinear(); changed {
			poly = simplified
		}
	}
	if effort.Has(MergeObtuse) {
		poly = p.mergeObtuse(poly)
	}
	if effort.Has(MergeSegments) {
		poly = p.mergeSegments(poly)
	}

	out := ln.WithPoly(poly)
	if effort.Has(SmartPads) {
		out = p.smartPads(out)
	}
	if effort.Has(FanoutCleanup) {
		out = p.fanoutCleanup(out)
	}
	return out
}

// pass bundles the context every bypass/merge search needs, so each
// search function doesn't carry a dozen positional parameters.
type pass struct {
	n *node.Node
	resolver rules.Resolver
	net netid.ID
	width int64
	layer layer.ID
	rootCorners int
	constraints []rules.Constraint
	src topology.JointSource
	tol tolerance
}

// mergeObtuse implements MERGE_OBTUSE: "collapse obtuse-angle
// consecutive segments into a single one" -- try removing each
// interior vertex whose corner is not already straight, replacing its
// two incident edges with one direct edge.
func (p *pass) mergeObtuse(poly geom.Polyline) geom.Polyline {
	changed := true
	for changed {
		changed = false
		n := poly.Len()
		for i := 1; i < n-1; i++ {
			kind := classifyCorner(poly.Points[i-1], poly.Points[i], poly.Points[i+1])
			if kind == CornerStraight {
				continue
			}
			repl := []geom.Point{poly.Points[i-1], poly.Points[i+1]}
			if p.accept(poly, i-1, i+1, repl) {
				poly = spliceRange(poly, i-1, i+1, repl)
				changed = true
				break
			}
		}
	}
	return poly
}

// mergeSegments implements MERGE_SEGMENTS: for each window of up to
// maxBypassStep+1 vertices, try both 45°-bypass candidates between its
// ends and accept the first that improves cost and satisfies every
// constraint and collision check.
func (p *pass) mergeSegments(poly geom.Polyline) geom.Polyline {
	changed := true
	for changed {
		changed = false
		n := poly.Len()
		for step := maxBypassStep; step >= 2; step-- {
			for i := 0; i+step < n; i++ {
				to := i + step
				for _, cand := range bypassCandidates(poly.Points[i], poly.Points[to]) {
					if p.accept(poly, i, to, cand) {
						poly = spliceRange(poly, i, to, cand)
						changed = true
						break
					}
				}
				if changed {
					break
				}
			}
			if changed {
				break
			}
		}
	}
	return poly
}

// accept evaluates a candidate replacement of root[from..to] by repl:
// it must strictly improve (or stay within tolerance of) cost, pass
// every registered constraint, not self-intersect the untouched
// remainder, and not collide with anything outside the line's own net.
func (p *pass) accept(root geom.Polyline, from, to int, repl []geom.Point) bool {
	if len(repl) == to-from+1 {
		allSame := true
		for i, pt := range repl {
			if !pt.Equal(root.Points[from+i]) {
				allSame = false
				break
			}
		}
		if allSame {
			return false // no actual change
		}
	}
	cand := spliceRange(root, from, to, repl)
	if !better(costOf(cand), costOf(root), p.tol) {
		return false
	}
	if selfIntersectsWith(root, from, to, repl) {
		return false
	}
	if p.constraints != nil {
		r := replacement{from: from, to: to, repl: repl, rootCorners: p.rootCorners}
		if !satisfiesConstraints(p.constraints, r, root, cand, p.src, p.net, p.layer) {
			return false
		}
	}
	if collides(p.n, p.resolver, p.net, p.width, repl) {
		return false
	}
	return true
}
