package topology

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// Joint is the minimal view of a JOINT this package
// needs: its layer range, linked items, and lock state.
type Joint struct {
	Layers layer.Set
	Links []item.Linked
	Locked bool
}

// JointSource is the read-only view a *node.Node provides of itself
// (node.Node.JointView) so this package never imports package node
// (avoiding a node <-> topology import cycle, since node imports
// topology for that adapter and for RoutedLength's PathLength).
type JointSource interface {
	// JointAt returns the joint at pos on net, if any.
	JointAt(pos geom.Point, net netid.ID) (Joint, bool)

	// ItemsOverlapping returns distinct items (any kind) whose bbox
	// intersects bbox, restricted to layer l, excluding items on
	// excludeNet (netid.Orphan excludes nothing).
	ItemsOverlapping(bbox geom.Rect, l layer.ID, excludeNet netid.ID) []item.Item
}
