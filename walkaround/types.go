package walkaround

import (
	"time"

	"github.com/katalvlaran/pns/item"
)

// Policy selects the direction the engine tries to walk around an
// obstacle's hull.
type Policy uint8

const (
	PolicyClockwise Policy = iota
	PolicyCounterClockwise
	PolicyShortest
)

// Status is the outcome of one policy's walkaround attempt.
type Status uint8

const (
	// None is the zero value: no attempt has been made yet.
	None Status = iota
	// InProgress means the iteration limit was hit before the line
	// stopped colliding.
	InProgress
	// AlmostDone means the line no longer collides but its endpoints
	// no longer match the original seed's (the post-condition check
	// of failed).
	AlmostDone
	// Done means the line no longer collides and its endpoints match
	// the original seed's.
	Done
	// Stuck means no progress could be made at all (e.g. a hull could
	// not be spliced, or the per-cluster time budget expired).
	Stuck
)

// Result is one policy's outcome.
type Result struct {
	Status Status
	Line item.Line
}

// Options configures the engine's limits ( defaults:
// 40 iterations, ~100ms per cluster, 10x expansion cutoff for the
// shortest-policy CW/CCW race).
type Options struct {
	IterationLimit int
	ClusterTimeout time.Duration
	ExpansionLimit int64
}

func (o Options) iterationLimit() int {
	if o.IterationLimit <= 0 {
		return 40
	}
	return o.IterationLimit
}

func (o Options) clusterTimeout() time.Duration {
	if o.ClusterTimeout <= 0 {
		return 100 * time.Millisecond
	}
	return o.ClusterTimeout
}

func (o Options) expansionLimit() int64 {
	if o.ExpansionLimit <= 0 {
		return 10
	}
	return o.ExpansionLimit
}
