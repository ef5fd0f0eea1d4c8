package shove

import (
	"time"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/uid"
)

// Head is one shove input: either a LINE (with optional trailing via)
// or a via being dragged to a new position, "Inputs".
type Head struct {
	Line *item.Line
	Via *item.Via
	NewPos geom.Point
}

// Status is the outcome of a Move episode.
type Status uint8

const (
	Done Status = iota
	Incomplete
	Failed
)

// springbackTag is one node_stack entry: a snapshot taken when a run
// commits to a branch, so a later run can pop branches that no longer
// collide with the new head set.
type springbackTag struct {
	branch *node.Node
	affectedArea geom.Rect
	draggedVias []item.Via
	locked bool
	seq int
	length int64
}

// lineStackEntry is one line_stack entry: a line queued for further
// shoving, ordered LIFO with the rank it was pushed at.
type lineStackEntry struct {
	line item.Line
	rank int
}

// RootLineEntry is one root_line_history entry: an item's shape before
// the current shove episode began, plus whatever it has become since.
// The optimizer treats RootLine as a "do not deform beyond this"
// reference.
type RootLineEntry struct {
	RootLine item.Line
	NewLine *item.Line
	OldVia *item.Via
	NewVia *item.Via
	Policy item.HeadPolicy
	IsHead bool
}

// Options configures the engine's limits. A zero IterationLimit or
// TimeLimit falls back to RoutingSettings' values (250 iterations,
// 1000ms). ShoveVias has no such fallback (its zero value is false);
// the engine's own via pushes pass force, so they move vias whatever
// it holds.
type Options struct {
	IterationLimit int
	TimeLimit time.Duration
	ShoveVias bool
	WalkaroundExpansionLimit float64
}

func (o Options) iterationLimit() int {
	if o.IterationLimit <= 0 {
		return 250
	}
	return o.IterationLimit
}

func (o Options) timeLimit() time.Duration {
	if o.TimeLimit <= 0 {
		return 1000 * time.Millisecond
	}
	return o.TimeLimit
}

func (o Options) walkaroundExpansionLimit() float64 {
	if o.WalkaroundExpansionLimit <= 0 {
		return 10
	}
	return o.WalkaroundExpansionLimit
}

// Engine holds the state a Move episode threads through its main loop:
// node_stack, line_stack, optimizer_queue, root_line_history and
// affected_area.
type Engine struct {
	root *node.Node
	resolver rules.Resolver
	opts Options

	springback []springbackTag
	lineStack []lineStackEntry
	optimizerQueue []item.Line
	rootHistory map[uid.ID]RootLineEntry
	affectedArea geom.Rect
	seq int
}
