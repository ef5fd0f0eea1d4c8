package shove

import (
	"time"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/uid"
)

// kindPriority orders the obstacle kinds the main loop searches in,
// step 2.
var kindPriority = []item.Kind{item.KindSolid, item.KindVia, item.KindSegment, item.KindHole}

// NewEngine creates a shove Engine rooted at root, consulting resolver
// for clearances and hull caching.
func NewEngine(root *node.Node, resolver rules.Resolver, opts Options) *Engine {
	return &Engine{
		root: root,
		resolver: resolver,
		opts: opts,
		rootHistory: make(map[uid.ID]RootLineEntry),
		affectedArea: geom.EmptyRect(),
	}
}

// Move runs one shove episode against heads, returning the branch it
// built (on Done/Incomplete, not committed) or nil (on Failed), per the design
// §4.5's "Inputs"/"State"/"Main loop"/"Post-success".
func (e *Engine) Move(heads []Head) (*node.Node, Status) {
	e.reduceSpringback(heads)

	branch := e.root.Branch()
	e.bootstrap(branch, heads)

	deadline := time.Now().Add(e.opts.timeLimit())
	status := Done

loop:
	for iter := 0; ; iter++ {
		if len(e.lineStack) == 0 {
			break
		}
		if iter >= e.opts.iterationLimit() || time.Now().After(deadline) {
			status = Incomplete
			break
		}

		top := e.lineStack[len(e.lineStack)-1]
		current := top.line

		obstacle, found := e.nearestObstacle(branch, current)
		if !found {
			e.lineStack = e.lineStack[:len(e.lineStack)-1]
			e.optimizerQueue = append(e.optimizerQueue, current)
			continue
		}
		obstacle = e.viaFixup(branch, current, obstacle)
		obstacleRank := item.RankOf(obstacle)

		var ok bool
		switch {
		case obstacleRank > current.Rank && obstacle.Kind() == item.KindVia:
			ok = e.reverseCollideVia(branch, current, obstacle.(item.Via))
		case obstacleRank > current.Rank && (obstacle.Kind() == item.KindSegment || obstacle.Kind() == item.KindArc):
			ok = e.reverseCollideLine(branch, obstacle)
		case obstacle.Kind() == item.KindSolid || obstacle.Kind() == item.KindHole:
			ok = e.walkaroundSolid(branch, current, obstacle)
		case obstacle.Kind() == item.KindVia:
			ok = e.pushVia(branch, current, obstacle.(item.Via))
		default:
			ok = e.shoveLine(branch, current, obstacle)
		}
		if !ok {
			status = Failed
			break loop
		}
	}

	if status == Failed {
		return nil, Failed
	}

	e.pushSpringback(branch)
	return branch, status
}

// reduceSpringback pops node_stack entries whose affected area no
// longer overlaps the incoming heads.
func (e *Engine) reduceSpringback(heads []Head) {
	headArea := geom.EmptyRect()
	for _, h := range heads {
		if h.Line != nil {
			headArea = headArea.Union(h.Line.Poly.BBox())
		}
		if h.Via != nil {
			headArea = headArea.Union(h.Via.BBox())
		}
	}
	for len(e.springback) > 0 {
		top := e.springback[len(e.springback)-1]
		if top.locked || top.affectedArea.Intersects(headArea) {
			break
		}
		e.springback = e.springback[:len(e.springback)-1]
	}
}

// bootstrap is this "Per-head bootstrap".
func (e *Engine) bootstrap(branch *node.Node, heads []Head) {
	for _, h := range heads {
		if h.Line != nil {
			ln := *h.Line
			ln.Rank = 100000
			ln.Links = branch.PutLine(ln)
			if ln.Policy&item.PolicyDontLockEndpoints == 0 {
				lockEndpoints(branch, ln)
			}
			e.lineStack = append(e.lineStack, lineStackEntry{line: ln, rank: ln.Rank})
			if len(ln.Links) > 0 {
				e.rootHistory[ln.Links[0].UID()] = RootLineEntry{RootLine: ln, Policy: ln.Policy, IsHead: true}
			}
			continue
		}
		if h.Via != nil {
			e.rootHistory[h.Via.UID()] = RootLineEntry{OldVia: h.Via, IsHead: true}
			e.pushOrShoveVia(branch, *h.Via, h.NewPos, true, 100000)
		}
	}
}

func lockEndpoints(branch *node.Node, ln item.Line) {
	for _, p := range []geom.Point{ln.Poly.First(), ln.Poly.Last()} {
		if j, ok := branch.FindJoint(p, ln.NetID); ok {
			j.Locked = true
		}
	}
}

// OptimizerQueue returns the lines queued for post-pass optimization
// ( "Post-success": the optimizer itself runs out-of-
// package, via optimizer.Optimize, so this engine stays decoupled from
// its effort/constraint knobs).
func (e *Engine) OptimizerQueue() []item.Line { return e.optimizerQueue }

// RootHistory returns the root_line_history recorded so far.
func (e *Engine) RootHistory() map[uid.ID]RootLineEntry { return e.rootHistory }

func (e *Engine) pushSpringback(branch *node.Node) {
	e.seq++
	e.springback = append(e.springback, springbackTag{
		branch: branch,
		affectedArea: e.affectedArea,
		seq: e.seq,
	})
}
