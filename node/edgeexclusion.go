package node

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/uid"
)

// AddEdgeExclusion registers a and b as exempt from colliding with one
// another, used by the placer to keep
// a pad's own copper from being reported as an obstacle against the
// trace leaving it.
func (n *Node) AddEdgeExclusion(a, b item.Item) {
	n.muItems.Lock()
	n.exclusions = append(n.exclusions, EdgeExclusion{A: a.UID(), B: b.UID()})
	n.muItems.Unlock()
}

// QueryEdgeExclusions returns the UIDs exempted from colliding with
// it, across this branch and every ancestor.
func (n *Node) QueryEdgeExclusions(it item.Item) []uid.ID {
	var out []uid.ID
	id := it.UID()
	for b := n; b != nil; b = b.parent {
		b.muItems.RLock()
		for _, ex := range b.exclusions {
			switch id {
			case ex.A:
				out = append(out, ex.B)
			case ex.B:
				out = append(out, ex.A)
			}
		}
		b.muItems.RUnlock()
	}
	return out
}
