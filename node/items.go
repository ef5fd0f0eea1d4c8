package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/uid"
)

// Add inserts it into this branch: the item becomes visible here and
// in every descendant branch that doesn't override it, per the design
// §3/§4.1. If it is Linked, its anchors are linked into the joint
// graph, creating joints as needed.
func (n *Node) Add(it item.Item) {
	n.muItems.Lock()
	delete(n.override, it.UID())
	n.items[it.UID()] = it
	n.idx.Insert(it)
	n.muItems.Unlock()

	if ln, ok := it.(item.Linked); ok {
		n.muJoints.Lock()
		for _, a := range ln.Anchors() {
			n.linkJoint(a, ln)
		}
		n.muJoints.Unlock()
	}
}

// Remove marks it as gone in this branch. If it was inherited from an
// ancestor, the ancestor's copy is shadowed by an override entry and
// the item is also recorded in this branch's garbage set (reaped at
// Commit/KillChildren, "garbage set"). Returns
// ErrForeignItem if it is not visible here at all.
func (n *Node) Remove(it item.Item) error {
	n.muItems.Lock()
	if _, ok := n.lookupLocalLocked(it.UID()); !ok {
		n.muItems.Unlock()
		return ErrForeignItem
	}
	delete(n.items, it.UID())
	n.override[it.UID()] = true
	n.garbage[it.UID()] = it
	n.idx.Remove(it)
	n.muItems.Unlock()

	if ln, ok := it.(item.Linked); ok {
		n.muJoints.Lock()
		for _, a := range ln.Anchors() {
			n.unlinkJoint(a, ln)
		}
		n.muJoints.Unlock()
	}
	return nil
}

// Replace removes old and adds replacement in one step, preserving the
// joint graph's continuity at shared anchors (a corner's two segments
// can be replaced one at a time without the joint between them ever
// disappearing and reappearing as a fanout/corner flicker).
func (n *Node) Replace(old, replacement item.Item) error {
	if err := n.Remove(old); err != nil {
		return err
	}
	n.Add(replacement)
	return nil
}

// lookupLocalLocked is lookupLocal for a caller that already holds
// muItems (read or write) on n itself; it still takes ancestors' own
// locks since those are separate mutexes.
func (n *Node) lookupLocalLocked(id uid.ID) (item.Item, bool) {
	if n.override[id] {
		return nil, false
	}
	if it, ok := n.items[id]; ok {
		return it, true
	}
	if n.parent == nil {
		return nil, false
	}
	n.parent.muItems.RLock()
	defer n.parent.muItems.RUnlock()
	return n.parent.lookupLocalLocked(id)
}

// linkJoint creates (if needed) the joint at pos on ln's net and adds
// ln to its link set, widening the joint's layer range to cover ln. The
// first touch of a key in this branch copy-on-write seeds the local
// entry from the nearest ancestor's joint (caller holds muJoints).
func (n *Node) linkJoint(pos geom.Point, ln item.Linked) {
	key := JointKey{Pos: pos, Net: ln.Net()}
	j, ok := n.joints[key]
	if !ok {
		j = n.seedJointLocked(key)
		n.joints[key] = j
	}
	j.Layers = j.Layers.Union(ln.Layers())
	j.Links[ln.UID()] = ln
}

// unlinkJoint removes ln from the joint at pos on ln's net. As with
// linkJoint, the first touch of a key in this branch copy-on-write
// seeds the local entry from the nearest ancestor's joint before the
// removal is applied, so a sibling link that was never itself touched
// in this branch isn't silently dropped from the branch's view.
func (n *Node) unlinkJoint(pos geom.Point, ln item.Linked) {
	key := JointKey{Pos: pos, Net: ln.Net()}
	j, ok := n.joints[key]
	if !ok {
		j = n.seedJointLocked(key)
		n.joints[key] = j
	}
	delete(j.Links, ln.UID())
}

// seedJointLocked returns the local joint to mutate for key: a
// copy-on-write snapshot of the nearest ancestor's joint at key (union
// of its links, net of any branch in between overriding it), or a fresh
// empty Joint if no ancestor has touched key yet. Caller holds muJoints.
func (n *Node) seedJointLocked(key JointKey) *Joint {
	if n.parent != nil {
		if src, ok := n.parent.FindJoint(key.Pos, key.Net); ok {
			cp := &Joint{
				Layers: src.Layers,
				Locked: src.Locked,
				Links:  make(map[uid.ID]item.Linked, len(src.Links)),
			}
			for id, l := range src.Links {
				cp.Links[id] = l
			}
			return cp
		}
	}
	return newJoint()
}
