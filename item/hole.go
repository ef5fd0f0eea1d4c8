package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// Hole is a circular drilled region, : "owned by its
// parent pad/via but indexed independently for collision against
// tracks." Its Layers is the caller-supplied set; passing the full
// board span makes a track on any layer collide against it.
type Hole struct {
	Base
	Pos geom.Point
	Radius int64
	NetID netid.ID
	LayerSet layer.Set
	Plated bool
}

// NewHole constructs a Hole and mints its UID.
func NewHole(gen *uid.Gen, pos geom.Point, radius int64, layers layer.Set, net netid.ID, plated bool) Hole {
	h := Hole{Pos: pos, Radius: radius, NetID: net, LayerSet: layers, Plated: plated}
	h.SetUID(gen.Next())
	return h
}

func (h Hole) Kind() Kind { return KindHole }
func (h Hole) Net() netid.ID { return h.NetID }
func (h Hole) Layers() layer.Set { return h.LayerSet }

func (h Hole) BBox() geom.Rect {
	return geom.Circle{Center: h.Pos, Radius: h.Radius}.BBox()
}
