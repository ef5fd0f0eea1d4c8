package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// Item is satisfied by every primitive that can live in a NODE's
// index: Segment, Arc, Via, Solid, Hole. LINE deliberately does not
// implement Item -- is explicit that "A LINE is not stored
// in the spatial index; it is a transient view."
type Item interface {
	Kind() Kind
	UID() uid.ID
	Net() netid.ID
	Layers() layer.Set
	BBox() geom.Rect
}

// Linked is the subset of Item that can terminate in a JOINT: it has
// one or more anchor points the joint graph links on. Segment, Arc,
// Via and Solid (through its pad center and extra anchors) are Linked;
// Hole is not (holes are collision obstacles, never line endpoints in
// the joint graph).
type Linked interface {
	Item
	Anchors() []geom.Point
}

// RankOf returns the shove rank carried by it's Base, or 0 for kinds
// that never carry one (Solid, Hole -- pads and holes are collision
// obstacles, never shove-ranked).
func RankOf(it Item) int {
	switch v := it.(type) {
	case Segment:
		return v.Rank
	case Arc:
		return v.Rank
	case Via:
		return v.Rank
	default:
		return 0
	}
}

// Ignored reports whether it carries MarkerIgnore for the current pass.
func Ignored(it Item) bool {
	switch v := it.(type) {
	case Segment:
		return v.HasMarker(MarkerIgnore)
	case Arc:
		return v.HasMarker(MarkerIgnore)
	case Via:
		return v.HasMarker(MarkerIgnore)
	default:
		return false
	}
}
