package item

import "github.com/katalvlaran/pns/uid"

// ParentHandle is an opaque index into a host-owned table, replacing
// what the original source kept as a raw pointer back to a host
// object ( design note: "make this an opaque ParentHandle
//... so the core has no owning or lifetime relationship with host
// objects"). The zero value means "no host parent" (a synthetic item,
// e.g. a virtual via).
type ParentHandle int64

// NoParent is the zero ParentHandle.
const NoParent ParentHandle = 0

// Marker bits recorded on an item during a shove/walkaround episode.
// These never affect persistence; they are scratch state a running
// algorithm sets and later clears.
type Marker uint32

const MarkerNone Marker = 0

const (
	// MarkerIgnore excludes an item from obstacle search for one pass.
	MarkerIgnore Marker = 1 << iota
	// MarkerVisited marks an item as already processed this pass.
	MarkerVisited
	// MarkerFixed marks a line as translated rigidly, never re-walked.
	MarkerFixed
)

// Base holds the fields every linked item carries :
// a parent handle, a source-item reference (what this item was copied
// or derived from, used by the optimizer's root-line lookups), a
// shove rank, marker bits, a link count and a monotonic unique ID.
type Base struct {
	id uid.ID
	Parent ParentHandle
	SourceRef ParentHandle
	Rank int
	Markers Marker
	LinkCount int
	Locked bool
}

// UID returns the item's monotonic identifier.
func (b Base) UID() uid.ID { return b.id }

// SetUID assigns the item's identifier; called exactly once, by the
// constructor that mints it from a uid.Gen.
func (b *Base) SetUID(id uid.ID) { b.id = id }

// HasMarker reports whether m is set.
func (b Base) HasMarker(m Marker) bool { return b.Markers&m != 0 }

// SetMarker sets or clears m.
func (b *Base) SetMarker(m Marker, on bool) {
	if on {
		b.Markers |= m
	} else {
		b.Markers &^= m
	}
}
