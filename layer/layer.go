// Package layer implements the board layer-set: a [start..end] range
// packed into a fixed-size bitmask, "Layer set".
package layer

import "math/bits"

// MaxLayers bounds the bitmask width. 64 covers any realistic physical
// stackup with room to spare; a wider board would need a []uint64
// bitmask, which is a mechanical change this package does not need
// today.
const MaxLayers = 64

// ID identifies a single physical layer, 0-indexed from the top.
type ID int

// Set is an inclusive [Start..End] layer range. It is stored as a
// contiguous bitmask rather than the two bounds directly so that
// Overlaps/iteration are simple bit operations -- the representation
// KiCad's own PNS_LAYERSET keeps as a pair of ints, generalized here
// to an explicit bitmask per the spec's "packed into a fixed-size
// bitmask" wording.
type Set struct {
	mask uint64
}

// Single returns a Set containing exactly one layer.
func Single(l ID) Set {
	return Set{mask: 1 << uint(l)}
}

// Range returns a Set covering [start..end] inclusive.
func Range(start, end ID) Set {
	if end < start {
		start, end = end, start
	}
	var mask uint64
	for l := start; l <= end; l++ {
		mask |= 1 << uint(l)
	}
	return Set{mask: mask}
}

// IsSingleLayer reports whether the set spans exactly one layer.
func (s Set) IsSingleLayer() bool { return bits.OnesCount64(s.mask) == 1 }

// IsEmpty reports whether the set contains no layers.
func (s Set) IsEmpty() bool { return s.mask == 0 }

// Overlaps reports whether s and o share at least one layer.
func (s Set) Overlaps(o Set) bool { return s.mask&o.mask != 0 }

// Contains reports whether l is in the set.
func (s Set) Contains(l ID) bool { return s.mask&(1<<uint(l)) != 0 }

// Union returns the set union of s and o. Used when a joint's layer
// range is recomputed as the union of its remaining links' ranges
// (spec §4.1 "joint is rebuilt").
func (s Set) Union(o Set) Set { return Set{mask: s.mask | o.mask} }

// Start returns the lowest layer in the set, or -1 if empty.
func (s Set) Start() ID {
	if s.mask == 0 {
		return -1
	}
	return ID(bits.TrailingZeros64(s.mask))
}

// End returns the highest layer in the set, or -1 if empty.
func (s Set) End() ID {
	if s.mask == 0 {
		return -1
	}
	return ID(63 - bits.LeadingZeros64(s.mask))
}

// Layers returns every distinct layer in the set in ascending order --
// used to iterate a multi-layer via's per-layer shapes (spec §3).
func (s Set) Layers() []ID {
	out := make([]ID, 0, bits.OnesCount64(s.mask))
	m := s.mask
	for m != 0 {
		l := bits.TrailingZeros64(m)
		out = append(out, ID(l))
		m &^= 1 << uint(l)
	}
	return out
}
