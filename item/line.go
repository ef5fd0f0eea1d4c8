package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// Line is the transient polyline aggregate of : "not stored
// in the spatial index; it is a transient view." Links records the
// ordered primitives (Segment/Arc, and optionally a trailing Via) that
// materialize it in a NODE; Links' length drives lifetime inside
// drag/shove (spec §3's "Link count drives lifetime").
type Line struct {
	Poly geom.Polyline
	Width int64
	Layer layer.ID
	NetID netid.ID
	Via *Via // optional trailing via
	Links []Linked

	// Rank mirrors the shove-episode rank carried by every Link during
	// a Move (spec §3 "Rank"); kept on Line too since the line, not its
	// individual segments, is the unit the shove line_stack ranks.
	Rank int

	// Policy is the bitmask controlling shove/walk/ignore behaviour
	// for this line as a drag head (spec §4.5 "Inputs").
	Policy HeadPolicy

	// Loop is set when AssembleLine detects a self-loop (spec §4.2).
	Loop bool
}

// HeadPolicy bits, "Inputs".
type HeadPolicy uint8

const PolicyDefault HeadPolicy = 0

const (
	PolicyShove HeadPolicy = 1 << iota
	PolicyWalkForward
	PolicyWalkBack
	PolicyIgnore
	PolicyDontOptimize
	PolicyDontLockEndpoints
)

func (p HeadPolicy) Has(bit HeadPolicy) bool { return p&bit != 0 }

func (l Line) Kind() Kind { return KindLine }

// Net returns the line's net.
func (l Line) Net() netid.ID { return l.NetID }

// BBox returns the polyline's bounding box inflated by half width,
// plus the trailing via's bbox if present.
func (l Line) BBox() geom.Rect {
	r := l.Poly.BBox().Inflate(l.Width / 2)
	if l.Via != nil {
		r = r.Union(l.Via.BBox())
	}
	return r
}

// EndpointsMatch reports whether l's first/last points equal those of
// other -- the post-condition walkaround checks before accepting a
// result as DONE (spec §4.3).
func (l Line) EndpointsMatch(other Line) bool {
	return l.Poly.First().Equal(other.Poly.First()) && l.Poly.Last().Equal(other.Poly.Last())
}

// CornerCount returns the number of interior vertices (possible
// corners) in the line's polyline.
func (l Line) CornerCount() int {
	n := l.Poly.Len()
	if n < 2 {
		return 0
	}
	return n - 2
}

// WithPoly returns a copy of l with its polyline replaced, preserving
// width/layer/net/via/links/rank/policy.
func (l Line) WithPoly(p geom.Polyline) Line {
	out := l
	out.Poly = p
	return out
}
