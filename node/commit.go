package node

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/uid"
)

// Commit folds this branch's edits into its parent and detaches the
// branch from the tree. Removals
// made locally on an item that was only ever local to this branch (add
// then remove within the same branch, never visible to the parent) are
// not propagated -- there is nothing for the parent to remove.
func (n *Node) Commit() error {
	p := n.parent
	if p == nil {
		return ErrWrongBranch
	}

	n.muItems.RLock()
	garbage := make([]item.Item, 0, len(n.garbage))
	for _, it := range n.garbage {
		garbage = append(garbage, it)
	}
	added := make([]item.Item, 0, len(n.items))
	for _, it := range n.items {
		added = append(added, it)
	}
	n.muItems.RUnlock()

	for _, it := range garbage {
		p.muItems.RLock()
		_, visible := p.lookupLocalLocked(it.UID())
		p.muItems.RUnlock()
		if visible {
			_ = p.Remove(it)
		}
	}
	for _, it := range added {
		p.Add(it)
	}

	// Merge, never replace: p.joints[k] may already hold links that
	// p.Add/p.Remove (via the item loops above) linked/unlinked directly
	// on p, independently of what this branch's own joint copy records
	// (e.g. a sibling link p inherited from further up that this branch
	// never touched). Overwriting the pointer/value outright would drop
	// those links from the committed board.
	n.muJoints.RLock()
	for k, j := range n.joints {
		p.muJoints.Lock()
		if existing, ok := p.joints[k]; ok {
			existing.Layers = existing.Layers.Union(j.Layers)
			if j.Locked {
				existing.Locked = true
			}
			for id, l := range j.Links {
				existing.Links[id] = l
			}
		} else {
			cp := &Joint{
				Layers: j.Layers,
				Locked: j.Locked,
				Links:  make(map[uid.ID]item.Linked, len(j.Links)),
			}
			for id, l := range j.Links {
				cp.Links[id] = l
			}
			p.joints[k] = cp
		}
		p.muJoints.Unlock()
	}
	n.muJoints.RUnlock()

	n.muItems.RLock()
	exclusions := append([]EdgeExclusion(nil), n.exclusions...)
	n.muItems.RUnlock()
	if len(exclusions) > 0 {
		p.muItems.Lock()
		p.exclusions = append(p.exclusions, exclusions...)
		p.muItems.Unlock()
	}

	p.muItems.Lock()
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	p.muItems.Unlock()

	n.parent = nil
	return nil
}

// KillChildren discards every branch descended from n without
// committing any of their edits, -- used when an
// iteration abandons every candidate branch except the one it commits.
func (n *Node) KillChildren() {
	n.muItems.Lock()
	defer n.muItems.Unlock()
	n.children = nil
}
