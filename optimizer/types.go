package optimizer

import "github.com/katalvlaran/pns/item"

// Effort is the bitmask selecting which passes Optimize runs, the
// design document's "Optimizer" module bit names.
type Effort uint16

const (
	MergeSegments Effort = 1 << iota
	MergeObtuse
	MergeColinear
	SmartPads
	FanoutCleanup
)

// EffortLow runs only the cheap, always-safe colinear merge; EffortFull
// runs every pass. These mirror settings.RoutingSettings' "optimizer
// effort ∈ {low, medium, full}" persisted enum without depending on
// package settings (optimizer stays a pure geometry/collision
// consumer; the effort-name-to-bitmask mapping is the router façade's
// job, kept out of scope here per spec.md §1).
const (
	EffortLow Effort = MergeColinear
	EffortMedium Effort = MergeColinear | MergeObtuse | MergeSegments
	EffortFull Effort = MergeColinear | MergeObtuse | MergeSegments | SmartPads | FanoutCleanup
)

// Has reports whether bit is set in e.
func (e Effort) Has(bit Effort) bool { return e&bit != 0 }

// maxBypassStep is the largest step (in edges) MERGE_SEGMENTS tries to
// replace in one candidate, "for each pair (s_i, s_{i+step})"; a
// window spans up to maxBypassStep+1 vertices.
const maxBypassStep = 4

// DiffPair is a coupled pair of lines the differential-pair leg of the
// optimizer keeps in step, "For diff pairs,
// Optimize(DIFF_PAIR*) runs the same bypass logic on both legs,
// keeping coupled length maximal and ensuring both legs remain
// non-colliding against each other and the node."
type DiffPair struct {
	P, N item.Line
}
