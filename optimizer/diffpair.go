package optimizer

import (
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
)

// OptimizeDiffPair runs the same bypass search on both legs of dp,
// "keeping coupled length maximal and ensuring both
// legs remain non-colliding against each other and the node" -- the
// supplemented differential-pair feature named in the expanded spec
// (not the full diff-pair placer, which stays out of scope).
//
// Each leg is optimized on its own against n; the other leg is an
// obstacle only as far as it is an item of n (P and N are different
// nets, so neither leg's net filter hides the other). When the
// resolver reports a DpNetPair partner for P, both legs' changes are
// rejected together if the optimized legs cross. The pair's gap is not
// measured: a result that narrows the gap without crossing is kept.
func OptimizeDiffPair(n *node.Node, resolver rules.Resolver, dp DiffPair, effort Effort) DiffPair {
	out := DiffPair{
		P: Optimize(n, resolver, dp.P, effort),
		N: Optimize(n, resolver, dp.N, effort),
	}
	if resolver == nil {
		return out
	}
	gap, ok := resolver.DpNetPair(dp.P.NetID)
	_ = gap
	if !ok {
		return out
	}
	if violatesGap(out) {
		return dp // reject both legs' changes together rather than desync them
	}
	return out
}

// violatesGap is a conservative placeholder: the true coupled-gap
// geometry (minimum separation measured perpendicular to the pair's
// common direction, not just endpoint-to-endpoint distance) belongs to
// the diff-pair gateway/placer machinery named as a non-goal; here it
// only guards against the two legs' polylines crossing, which would
// never be a valid diff-pair shape regardless of gap value.
func violatesGap(dp DiffPair) bool {
	for i := 0; i < dp.P.Poly.SegmentCount(); i++ {
		for j := 0; j < dp.N.Poly.SegmentCount(); j++ {
			if _, hit := dp.P.Poly.Segment(i).Intersects(dp.N.Poly.Segment(j)); hit {
				return true
			}
		}
	}
	return false
}
