package drivers

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// session is the common engine/bookkeeping every mode-specific driver
// embeds: one shove.Engine per drag episode (so springback tags and
// rank history survive across cursor moves the way spec.md §4.5
// describes), plus the optimizer pass run over whatever the engine
// queues once a move settles.
type session struct {
	root     *node.Node
	resolver rules.Resolver
	engine   *shove.Engine
	cfg      Config

	// skipAutoOptimize lets a coupled driver (DiffPairDriver) take over
	// the optimizer pass itself instead of running Optimize on each
	// queued line independently, which would let the two legs drift
	// out of their required gap.
	skipAutoOptimize bool

	last   *node.Node
	status shove.Status
}

func newSession(root *node.Node, resolver rules.Resolver, cfg Config) *session {
	return &session{
		root:     root,
		resolver: resolver,
		engine:   shove.NewEngine(root, resolver, cfg.Shove),
		cfg:      cfg,
	}
}

// move runs one shove episode and, on anything but outright failure,
// optimizes whatever the engine queued for post-processing before
// handing the branch back.
func (s *session) move(heads []shove.Head) Result {
	branch, status := s.engine.Move(heads)
	s.status = status
	if status == shove.Failed {
		return Result{Status: Rejected, Branch: s.last}
	}
	if !s.skipAutoOptimize && s.cfg.Effort != 0 {
		s.optimizeQueued(branch)
	}
	s.last = branch
	return Result{Status: fromShoveStatus(status), Branch: branch}
}

// optimizeQueued runs optimizer.Optimize over every line the shove
// engine queued for post-processing ("Post-success. Run the optimizer
// on optimizer_queue items"), re-materializing each
// accepted result back into branch via PutLine -- the inverse of the
// AssembleLine walk the engine used to build the queued Line in the
// first place.
func (s *session) optimizeQueued(branch *node.Node) {
	for _, ln := range s.engine.OptimizerQueue() {
		if ln.Policy.Has(item.PolicyDontOptimize) {
			continue
		}
		out := optimizer.Optimize(branch, s.resolver, ln, s.cfg.Effort)
		out.Links = branch.PutLine(out)
	}
}

// Commit folds the last settled branch into its parent, making the
// drag's result permanent. Calling Commit before any successful Drag
// is a no-op that returns the session's original root.
func (s *session) Commit() (*node.Node, error) {
	if s.last == nil {
		return s.root, nil
	}
	if err := s.last.Commit(); err != nil {
		return nil, err
	}
	return s.root, nil
}

// Cancel discards every uncommitted branch the session's episodes
// produced off of root, the springback path for a drag the user aborts
// (e.g. Escape) rather than fixes.
func (s *session) Cancel() {
	s.root.KillChildren()
	s.last = nil
}
