package node

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/topology"
)

// RoutedLength sums the geometric length of every linked item on net
// visible at this branch (the design "length/skew query pass-
// through" -- a read-only report, distinct from the host's own
// CalculateRoutedPathLength which additionally accounts for pad entry
// geometry).
func (n *Node) RoutedLength(net netid.ID) int64 {
	var linked []item.Linked
	for _, it := range n.AllItemsInNet(net) {
		if l, ok := it.(item.Linked); ok {
			linked = append(linked, l)
		}
	}
	return topology.PathLength(linked)
}

// SetLocked sets it's locked flag in this branch, replacing it with a
// copy carrying the new flag (the design "Locked-item handling").
func (n *Node) SetLocked(it item.Linked, locked bool) error {
	return n.Replace(it, item.WithLocked(it, locked))
}
