// Package netid defines the opaque, process-local net handle (the design
// §3 "Net handle"): equality compares nets, and a distinguished
// "orphan" handle represents unassigned nets.
package netid

// ID is an opaque net handle. The zero value is the orphan net: items
// with no assigned net compare equal to each other and to Orphan, and
// to nothing else.
type ID int32

// Orphan is the distinguished "no net assigned" handle.
const Orphan ID = 0

// IsOrphan reports whether id is the orphan handle.
func (id ID) IsOrphan() bool { return id == Orphan }

// Equal reports net equality -- this is the only comparison the core
// ever performs on a net handle; it never inspects or derives meaning
// from the underlying integer beyond equality and the Orphan sentinel.
func (id ID) Equal(o ID) bool { return id == o }

// Allocator hands out fresh, distinct net IDs. The host owns the
// authoritative net table ; Allocator is
// a minimal local source used by tests and the demo CLI to mint IDs
// without a host attached.
type Allocator struct {
	next ID
}

// NewAllocator returns an Allocator whose first Alloc returns 1
// (Orphan is reserved for 0).
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Alloc returns the next unused ID.
func (a *Allocator) Alloc() ID {
	id := a.next
	a.next++
	return id
}
