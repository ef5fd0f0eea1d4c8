package drivers

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// FreeAngleDriver is the free-angle drag mode: a single straight
// segment from a fixed anchor to the cursor at any angle, not
// constrained to the 45°/90° corner grid the line placer snaps to
// during ordinary routing -- that snapping is a host UI concern
// (spec.md §1's "drag-mode-selection UI" non-goal), this driver only
// ever offers the engine the raw anchor-to-cursor head.
type FreeAngleDriver struct {
	*session
	anchor geom.Point
	width  int64
	layer  layer.ID
	net    netid.ID
}

// NewFreeAngleDriver starts a free-angle drag from anchor.
func NewFreeAngleDriver(n *node.Node, resolver rules.Resolver, anchor geom.Point, width int64, l layer.ID, net netid.ID, cfg Config) *FreeAngleDriver {
	return &FreeAngleDriver{session: newSession(n, resolver, cfg), anchor: anchor, width: width, layer: l, net: net}
}

// Drag extends the head straight from anchor to cursor and runs one
// shove episode.
func (d *FreeAngleDriver) Drag(cursor geom.Point) Result {
	ln := item.Line{
		Poly:   geom.NewPolyline(d.anchor, cursor),
		Width:  d.width,
		Layer:  d.layer,
		NetID:  d.net,
		Policy: item.PolicyShove,
	}
	return d.move([]shove.Head{{Line: &ln}})
}
