package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// Segment is a straight track.
type Segment struct {
	Base
	P0, P1 geom.Point
	Width int64
	Layer layer.ID
	NetID netid.ID
}

// NewSegment constructs a Segment and mints its UID. Returns ok=false
// for a zero-length segment, which NODE.Add silently rejects per
// /§7.
func NewSegment(gen *uid.Gen, p0, p1 geom.Point, width int64, l layer.ID, net netid.ID) (Segment, bool) {
	if p0.Equal(p1) {
		return Segment{}, false
	}
	s := Segment{P0: p0, P1: p1, Width: width, Layer: l, NetID: net}
	s.SetUID(gen.Next())
	return s, true
}

func (s Segment) Kind() Kind { return KindSegment }
func (s Segment) Net() netid.ID { return s.NetID }
func (s Segment) Layers() layer.Set { return layer.Single(s.Layer) }
func (s Segment) Anchors() []geom.Point { return []geom.Point{s.P0, s.P1} }
func (s Segment) Geometry() geom.Segment { return geom.Segment{P0: s.P0, P1: s.P1} }

func (s Segment) BBox() geom.Rect {
	return s.Geometry().BBox().Inflate(s.Width / 2)
}

// WithEndpoints returns a copy of s translated to new endpoints,
// keeping the same UID, rank and parent -- used when DragCorner moves
// one end of a line during shove (spec §4.5.1).
func (s Segment) WithEndpoints(p0, p1 geom.Point) Segment {
	out := s
	out.P0, out.P1 = p0, p1
	return out
}
