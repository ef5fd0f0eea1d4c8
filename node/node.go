package node

import (
	"sync"

	"github.com/katalvlaran/pns/index"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// EdgeExclusion is a pair of items that must never be reported as
// colliding with one another, even though their shapes overlap (spec
// §4.1, "edge exclusions": pad-to-trace exclusions at a component's
// own pads, set up by the placer before a route starts).
type EdgeExclusion struct {
	A, B uid.ID
}

// Node is NODE : a copy-on-write branch of the board
// item database. A root Node owns its items outright; a child Node
// (see Branch) sees everything its ancestors own, minus whatever it
// has Removed (tracked in override) plus whatever it has Added itself.
//
// Grounded on lvlath/core.Graph: split muVert/muEdgeAdj locks become a
// lock pair per branch (muItems guards items/override/garbage,
// muJoints guards joints); the single shared adjacency map becomes a
// per-branch joints map layered over the parent chain the same way
// items are layered.
type Node struct {
	muItems sync.RWMutex
	muJoints sync.RWMutex

	parent *Node
	children []*Node
	depth int

	gen *uid.Gen // shared by the whole tree, set once at the root

	items map[uid.ID]item.Item // items this branch itself owns
	override map[uid.ID]bool // items inherited from parent but removed here
	garbage map[uid.ID]item.Item // items removed here, retained until Commit/KillChildren

	joints map[JointKey]*Joint // joints this branch itself owns (overlay over parent)

	idx *index.Grid // spatial index over the items this branch itself owns

	exclusions []EdgeExclusion
}

// NewRoot creates a fresh root Node with its own uid.Gen.
func NewRoot() *Node {
	return &Node{
		gen: &uid.Gen{},
		items: make(map[uid.ID]item.Item),
		override: make(map[uid.ID]bool),
		garbage: make(map[uid.ID]item.Item),
		joints: make(map[JointKey]*Joint),
		idx: index.NewGrid(index.DefaultCellSize),
	}
}

// Branch returns a new child Node, ready to receive speculative edits
// without touching the receiver (spec §4.1: "a branch may freely
// mutate; its parent is untouched until Commit").
func (n *Node) Branch() *Node {
	n.muItems.Lock()
	defer n.muItems.Unlock()

	child := &Node{
		parent: n,
		depth: n.depth + 1,
		gen: n.gen,
		items: make(map[uid.ID]item.Item),
		override: make(map[uid.ID]bool),
		garbage: make(map[uid.ID]item.Item),
		joints: make(map[JointKey]*Joint),
		idx: index.NewGrid(index.DefaultCellSize),
	}
	n.children = append(n.children, child)
	return child
}

// Depth returns the number of Branch calls between the receiver and
// the tree's root (0 for the root itself).
func (n *Node) Depth() int { return n.depth }

// Parent returns the branch's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Gen returns the uid.Gen shared by the whole tree, so callers can mint
// items that will be added to this branch.
func (n *Node) Gen() *uid.Gen { return n.gen }

// Root walks up to and returns the tree's root Node.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// JointView exposes this Node as a topology.JointSource.
func (n *Node) JointView() jointView { return jointView{n: n} }

// netOf is a small helper used by collision/query code that needs to
// compare an item's net against netid.Orphan-as-wildcard.
func netOf(it item.Item) netid.ID { return it.Net() }
