package node

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// FixupVirtualVias reconciles every virtual via on net after a route
// episode : a virtual via that no longer bridges
// a layer change (its joint's other links all share one layer) is
// redundant and removed, collapsing the joint back to an ordinary
// corner; one that still bridges two layers is kept and, along with
// both adjoining segments, locked so the optimizer never strips it
// back out (the original's "lock both endpoints" behavior, supplemented
// per the design since the design only names the accessor).
func (n *Node) FixupVirtualVias(net netid.ID) {
	for _, it := range n.AllItemsInNet(net) {
		v, ok := it.(item.Via)
		if !ok || !v.IsVirtual {
			continue
		}
		j, ok := n.FindJoint(v.Pos, net)
		if !ok {
			continue
		}
		if viaStillNeeded(j, v) {
			n.lockJointLinks(j)
			continue
		}
		_ = n.Remove(v)
	}
}

// viaStillNeeded reports whether v's joint links span more than one
// layer among its non-via members.
func viaStillNeeded(j *Joint, v item.Via) bool {
	layers := make(map[layer.ID]bool)
	for _, l := range j.Links {
		if l.UID() == v.UID() {
			continue
		}
		if ll, ok := layerOf(l); ok {
			layers[ll] = true
		}
	}
	return len(layers) > 1
}

// lockJointLinks marks j and every linked item as locked, replacing
// each link in place with a locked copy.
func (n *Node) lockJointLinks(j *Joint) {
	j.Locked = true
	links := j.LinkSlice()
	for _, l := range links {
		locked := item.WithLocked(l, true)
		_ = n.Replace(l, locked)
	}
}
