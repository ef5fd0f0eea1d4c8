// Package uid mints the monotonic 64-bit item identifiers 
// requires ("every linked item carries a monotonic 64-bit id"). These
// IDs are the keys for the shove engine's root-line history.
//
// Grounded on core.Graph's nextEdgeID atomic counter (lvlath
// core/types.go / methods_edges.go): a single atomic.Uint64, no locks.
package uid

import "sync/atomic"

// ID is a process-local, monotonically increasing item identifier.
// Zero is never issued -- it is reserved so a zero-value ID field
// reliably means "not yet assigned".
type ID uint64

// Gen mints IDs. The zero Gen is usable; its first Next returns 1.
type Gen struct {
	counter atomic.Uint64
}

// Next returns a fresh, never-before-issued ID. Safe for concurrent use.
func (g *Gen) Next() ID {
	return ID(g.counter.Add(1))
}
