package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// Arc is a circular arc, : "P0, mid, P1, width, layer,
// net, direction (CW/CCW), plus the fields SEGMENT has." Its anchors
// are its endpoints P0 and P1.
type Arc struct {
	Base
	P0, Mid, P1 geom.Point
	Width int64
	Layer layer.ID
	NetID netid.ID
	Dir geom.Direction
}

// NewArc constructs an Arc and mints its UID.
func NewArc(gen *uid.Gen, p0, mid, p1 geom.Point, width int64, l layer.ID, net netid.ID, dir geom.Direction) Arc {
	a := Arc{P0: p0, Mid: mid, P1: p1, Width: width, Layer: l, NetID: net, Dir: dir}
	a.SetUID(gen.Next())
	return a
}

func (a Arc) Kind() Kind { return KindArc }
func (a Arc) Net() netid.ID { return a.NetID }
func (a Arc) Layers() layer.Set { return layer.Single(a.Layer) }
func (a Arc) Anchors() []geom.Point { return []geom.Point{a.P0, a.P1} }
func (a Arc) Geometry() geom.Arc { return geom.Arc{P0: a.P0, Mid: a.Mid, P1: a.P1, Dir: a.Dir} }

func (a Arc) BBox() geom.Rect {
	return a.Geometry().BBox().Inflate(a.Width / 2)
}

// WithEndpoints returns a copy of a with whichever of P0/P1 matches
// from moved to to, keeping UID, rank and Mid -- used by DragCorner
// the same way Segment.WithEndpoints is (spec §4.5.1). Mid is left as
// recorded; a dragged arc corner is expected to be re-walked or
// optimized afterward rather than treated as exact.
func (a Arc) WithEndpoints(from, to geom.Point) Arc {
	out := a
	if a.P0.Equal(from) {
		out.P0 = to
	} else if a.P1.Equal(from) {
		out.P1 = to
	}
	return out
}
