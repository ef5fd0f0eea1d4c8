package drivers

import (
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/shove"
)

// Status is a driver's commit-or-springback decision for one cursor
// event.
type Status uint8

const (
	// Ready means the shove episode completed cleanly; Result.Branch is
	// a candidate the caller may Commit.
	Ready Status = iota
	// Pending means the episode ran out of iterations/time before
	// settling; Result.Branch is still usable (a best-effort state) but
	// the caller should keep driving the cursor rather than commit.
	Pending
	// Rejected means the episode failed outright; Result.Branch is the
	// previous episode's branch (or nil before any succeeded), and the
	// attempted move must be discarded.
	Rejected
)

func fromShoveStatus(st shove.Status) Status {
	switch st {
	case shove.Done:
		return Ready
	case shove.Incomplete:
		return Pending
	default:
		return Rejected
	}
}

// Result is one driver call's outcome.
type Result struct {
	Status Status
	Branch *node.Node
}

// Config bundles the knobs every driver needs beyond its mode-specific
// drag state: the shove engine's own limits and the optimizer effort to
// run over settled lines between episodes.
type Config struct {
	Shove  shove.Options
	Effort optimizer.Effort
}
