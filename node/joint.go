package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/topology"
	"github.com/katalvlaran/pns/uid"
)

// JointKey is the JOINT hash key of : "(position, net)".
type JointKey struct {
	Pos geom.Point
	Net netid.ID
}

// Joint is the JOINT value of : "layer range ∪ of linked
// items, set of linked items (unordered), optional lock flag."
type Joint struct {
	Layers layer.Set
	Links map[uid.ID]item.Linked
	Locked bool
}

func newJoint() *Joint {
	return &Joint{Links: make(map[uid.ID]item.Linked)}
}

// LinkSlice returns the joint's links as a slice, for callers (package
// topology) that want ordered iteration; order is unspecified but
// stable for a given joint until it is next mutated.
func (j *Joint) LinkSlice() []item.Linked {
	out := make([]item.Linked, 0, len(j.Links))
	for _, l := range j.Links {
		out = append(out, l)
	}
	return out
}

// IsCorner reports whether the joint has exactly two links of the same
// kind (spec §3: "a joint with two links of identical kind and
// opposite direction is a corner joint" -- generalized here to "same
// kind", since direction is a property of how the walk crosses it, not
// a static joint attribute).
func (j *Joint) IsCorner() bool {
	if len(j.Links) != 2 {
		return false
	}
	var kind item.Kind
	first := true
	for _, l := range j.Links {
		if first {
			kind = l.Kind()
			first = false
			continue
		}
		if l.Kind() != kind {
			return false
		}
	}
	return true
}

// IsFanout reports whether the joint has three or more links
// (spec §3, GLOSSARY "Fanout joint").
func (j *Joint) IsFanout() bool { return len(j.Links) >= 3 }

// IsMultiLayer reports whether the joint contains a via (spec §3: "a
// joint containing a via is multi-layer").
func (j *Joint) IsMultiLayer() bool {
	for _, l := range j.Links {
		if l.Kind() == item.KindVia {
			return true
		}
	}
	return false
}

// jointView adapts *Node to topology.JointSource so the line
// assembler, walkaround and shove can reuse topology's cluster/path
// helpers without Node importing those packages (one-way dependency:
// node -> topology).
type jointView struct{ n *Node }

func (v jointView) JointAt(pos geom.Point, net netid.ID) (topology.Joint, bool) {
	j, ok := v.n.FindJoint(pos, net)
	if !ok {
		return topology.Joint{}, false
	}
	return topology.Joint{Layers: j.Layers, Links: j.LinkSlice(), Locked: j.Locked}, true
}

func (v jointView) ItemsOverlapping(bbox geom.Rect, l layer.ID, excludeNet netid.ID) []item.Item {
	var out []item.Item
	for _, it := range v.n.QueryColliding(bbox, QueryOptions{ExcludeNet: excludeNet}) {
		if it.Layers().Contains(l) {
			out = append(out, it)
		}
	}
	return out
}
