package placer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/settings"
	"github.com/katalvlaran/pns/shove"
	"github.com/katalvlaran/pns/walkaround"
)

// Placer is the line placer of spec.md §4.8: it maintains tail
// (already routed, not yet fixed) and head (tail's last point to the
// cursor), re-deriving head on every cursor move via whichever
// routeHead mode cfg.Settings.Mode selects.
type Placer struct {
	n        *node.Node
	resolver rules.Resolver
	cfg      Config

	fixedStart geom.Point
	tail       geom.Polyline
	head       geom.Polyline

	obstacles []item.Item
	engine    *shove.Engine
	branch    *node.Node
}

// New starts a Placer rooted at n, beginning a new line at start.
func New(n *node.Node, resolver rules.Resolver, start geom.Point, cfg Config) *Placer {
	return &Placer{
		n:          n,
		resolver:   resolver,
		cfg:        cfg,
		fixedStart: start,
		tail:       geom.NewPolyline(start),
		head:       geom.NewPolyline(start),
		engine:     shove.NewEngine(n, resolver, cfg.Shove),
	}
}

// Head returns the placer's current head polyline.
func (p *Placer) Head() geom.Polyline { return p.head }

// Tail returns the placer's current tail polyline.
func (p *Placer) Tail() geom.Polyline { return p.tail }

// Obstacles returns the items mark-obstacles mode found colliding with
// the most recent head, empty in any other mode.
func (p *Placer) Obstacles() []item.Item { return p.obstacles }

// Move runs one cursor-move iteration of the §4.8 pipeline: routeHead,
// handleSelfIntersections, handlePullback, reduceTail, mergeHead,
// optimizeTailHeadTransition.
func (p *Placer) Move(cursor geom.Point) Status {
	status := p.routeHead(cursor)
	if status == Failed {
		return status
	}

	p.handleSelfIntersections(cursor)
	p.handlePullback(cursor)
	p.reduceTail(cursor)
	p.mergeHead()
	p.optimizeTailHeadTransition()

	return status
}

// pStart returns tail's live endpoint, the point routeHead extends
// from ("p_start = tail.lastPoint() or fixedStart").
func (p *Placer) pStart() geom.Point { return p.tail.Last() }

// routeHead implements step 2: delegate to mark-obstacles, walkaround
// or shove per the configured mode.
func (p *Placer) routeHead(cursor geom.Point) Status {
	switch p.cfg.Settings.Mode {
	case settings.ModeWalkaround:
		return p.routeWalkaround(cursor)
	case settings.ModeShove:
		return p.routeShove(cursor)
	default:
		return p.routeMarkObstacles(cursor)
	}
}

// routeMarkObstacles is the non-destructive mode: the head always
// becomes the straight segment to cursor; colliding items are reported
// via Obstacles rather than moved.
func (p *Placer) routeMarkObstacles(cursor geom.Point) Status {
	start := p.pStart()
	p.head = geom.NewPolyline(start, cursor)
	p.obstacles = nil

	margin := p.cfg.Width / 2
	if p.resolver != nil {
		margin += p.resolver.ClearanceEpsilon()
	}
	seg := geom.Segment{P0: start, P1: cursor}
	hits := p.n.QueryColliding(seg.BBox().Inflate(margin), node.QueryOptions{ExcludeNet: p.cfg.Net})
	if len(hits) == 0 {
		return Done
	}
	p.obstacles = hits
	return Blocked
}

// routeWalkaround runs the walkaround engine over the candidate head
// segment and keeps whichever configured policy produced the best
// result, preferring an earlier-listed policy's Done outcome.
func (p *Placer) routeWalkaround(cursor geom.Point) Status {
	seed := item.Line{
		Poly:  geom.NewPolyline(p.pStart(), cursor),
		Width: p.cfg.Width,
		Layer: p.cfg.Layer,
		NetID: p.cfg.Net,
	}
	policies := make([]walkaround.Policy, 0, len(p.cfg.Settings.WalkaroundPolicies))
	for _, sp := range p.cfg.Settings.WalkaroundPolicies {
		policies = append(policies, walkaround.Policy(sp))
	}
	if len(policies) == 0 {
		policies = []walkaround.Policy{walkaround.PolicyShortest}
	}

	results := walkaround.Walkaround(p.n, p.resolver, seed, policies, p.cfg.Walk)
	for _, pol := range policies {
		if res, ok := results[pol]; ok && res.Status == walkaround.Done {
			p.head = res.Line.Poly
			return Done
		}
	}
	for _, pol := range policies {
		if res, ok := results[pol]; ok {
			p.head = res.Line.Poly
			return Incomplete
		}
	}
	return Incomplete
}

// routeShove materializes the candidate head as a fresh branch of n
// and lets the shove engine push obstacles aside, reassembling the
// resulting head polyline from the joint the engine committed at
// cursor -- every attempt starts over from n, so the previous attempt's
// branch is discarded first.
func (p *Placer) routeShove(cursor geom.Point) Status {
	p.n.KillChildren()

	ln := item.Line{
		Poly:   geom.NewPolyline(p.pStart(), cursor),
		Width:  p.cfg.Width,
		Layer:  p.cfg.Layer,
		NetID:  p.cfg.Net,
		Policy: item.PolicyShove,
	}
	branch, st := p.engine.Move([]shove.Head{{Line: &ln}})
	if st == shove.Failed {
		return Failed
	}
	p.branch = branch

	if p.cfg.Effort != 0 {
		for _, queued := range p.engine.OptimizerQueue() {
			out := optimizer.Optimize(branch, p.resolver, queued, p.cfg.Effort)
			out.Links = branch.PutLine(out)
		}
	}

	if poly, ok := reassembleHead(branch, p.pStart(), cursor, p.cfg.Net); ok {
		p.head = poly
	}
	if st == shove.Incomplete {
		return Incomplete
	}
	return Done
}

// reassembleHead finds the line the shove engine materialized between
// start and end by looking up the joint it left at end and walking the
// joint graph back from there with AssembleLine, the inverse of
// PutLine. Shove never changes a head's endpoints, so end is exactly
// where the new chain terminates.
func reassembleHead(branch *node.Node, start, end geom.Point, net netid.ID) (geom.Polyline, bool) {
	j, ok := branch.FindJoint(end, net)
	if !ok {
		return geom.Polyline{}, false
	}
	for _, linked := range j.LinkSlice() {
		ln := branch.AssembleLine(linked, node.AssembleOptions{AllowWidthMismatch: true})
		if ln.Poly.First().Equal(start) && ln.Poly.Last().Equal(end) {
			return ln.Poly, true
		}
		if ln.Poly.First().Equal(end) && ln.Poly.Last().Equal(start) {
			return ln.Poly.Reversed(), true
		}
	}
	return geom.Polyline{}, false
}
