package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// visibleItems returns every item visible at n whose bbox overlaps
// bbox, walking n then its ancestors and honoring each level's
// override shadow. An item inherited from
// an ancestor but removed at some branch between n and that ancestor
// never appears, even though the ancestor's own index still lists it.
func (n *Node) visibleItems(bbox geom.Rect) []item.Item {
	hidden := make(map[uid.ID]bool)
	seen := make(map[uid.ID]bool)
	var out []item.Item

	for b := n; b != nil; b = b.parent {
		b.muItems.RLock()
		for _, it := range b.idx.Query(bbox) {
			id := it.UID()
			if hidden[id] || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, it)
		}
		for id := range b.override {
			hidden[id] = true
		}
		b.muItems.RUnlock()
	}
	return out
}

// allItems is visibleItems without a bbox filter, used by
// AllItemsInNet and FixupVirtualVias.
func (n *Node) allItems() []item.Item {
	hidden := make(map[uid.ID]bool)
	seen := make(map[uid.ID]bool)
	var out []item.Item

	for b := n; b != nil; b = b.parent {
		b.muItems.RLock()
		for _, it := range b.idx.All() {
			id := it.UID()
			if hidden[id] || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, it)
		}
		for id := range b.override {
			hidden[id] = true
		}
		b.muItems.RUnlock()
	}
	return out
}

// excluded reports whether a and b are exempted from colliding with
// one another by an edge exclusion registered anywhere from n up to
// the root.
func (n *Node) excluded(a, b uid.ID) bool {
	for br := n; br != nil; br = br.parent {
		for _, ex := range br.exclusions {
			if (ex.A == a && ex.B == b) || (ex.A == b && ex.B == a) {
				return true
			}
		}
	}
	return false
}

// QueryColliding returns every visible item (subject to opts) whose
// bbox overlaps bbox.
func (n *Node) QueryColliding(bbox geom.Rect, opts QueryOptions) []item.Item {
	all := n.visibleItems(bbox)
	out := all[:0:0]
	for _, it := range all {
		if !opts.ExcludeNet.IsOrphan() && it.Net().Equal(opts.ExcludeNet) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// CheckColliding reports the first visible item whose bbox overlaps
// it's own bbox (excluding it itself and anything exempted by an edge
// exclusion).
func (n *Node) CheckColliding(it item.Item, opts QueryOptions) (item.Item, bool) {
	for _, cand := range n.visibleItems(it.BBox()) {
		if cand.UID() == it.UID() {
			continue
		}
		if !opts.ExcludeNet.IsOrphan() && cand.Net().Equal(opts.ExcludeNet) {
			continue
		}
		if n.excluded(it.UID(), cand.UID()) {
			continue
		}
		return cand, true
	}
	return nil, false
}

// NearestObstacle returns the visible item matching filter whose bbox
// center is closest to from, among the items found in the first
// square search box around from that holds any match (the box starts
// at ±1000 and doubles, at most 16 times). filter may be nil to accept
// any item.
func (n *Node) NearestObstacle(from geom.Point, filter func(item.Item) bool) (item.Item, bool) {
	var best item.Item
	bestDist := int64(-1)
	radius := int64(1000)
	for tries := 0; tries < 16; tries++ {
		box := geom.Rect{Min: geom.Point{X: from.X - radius, Y: from.Y - radius},
			Max: geom.Point{X: from.X + radius, Y: from.Y + radius}}
		for _, it := range n.visibleItems(box) {
			if filter != nil && !filter(it) {
				continue
			}
			d := it.BBox().Center().Distance(from)
			if bestDist < 0 || d < bestDist {
				bestDist, best = d, it
			}
		}
		if best != nil {
			return best, true
		}
		radius *= 2
	}
	return nil, false
}

// FindJoint returns the joint at pos on net, if one exists anywhere
// from n up to the root. A shadow (empty) joint left by unlinkJoint at
// a descendant branch takes precedence over an ancestor's joint at the
// same key, the same override-by-shadowing rule items follow.
func (n *Node) FindJoint(pos geom.Point, net netid.ID) (*Joint, bool) {
	key := JointKey{Pos: pos, Net: net}
	for b := n; b != nil; b = b.parent {
		b.muJoints.RLock()
		j, ok := b.joints[key]
		b.muJoints.RUnlock()
		if ok {
			return j, true
		}
	}
	return nil, false
}

// AllItemsInNet returns every visible item on net (net.Orphan matches
// nothing, since unrouted/orphaned items are never a query target).
func (n *Node) AllItemsInNet(net netid.ID) []item.Item {
	if net.IsOrphan() {
		return nil
	}
	var out []item.Item
	for _, it := range n.allItems() {
		if it.Net().Equal(net) {
			out = append(out, it)
		}
	}
	return out
}

// GetUpdatedItems returns every item Added or Removed at this branch
// specifically (not inherited unmodified from an ancestor), split into
// added and removed sets, this "diff interface" used by
// a host to apply a committed branch's changes to its own board model.
func (n *Node) GetUpdatedItems() (added, removed []item.Item) {
	n.muItems.RLock()
	defer n.muItems.RUnlock()
	for _, it := range n.items {
		added = append(added, it)
	}
	for _, it := range n.garbage {
		removed = append(removed, it)
	}
	return added, removed
}
