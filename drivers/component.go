package drivers

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// ComponentDriver is the component drag mode: every line and via
// attached to a dragged footprint moves rigidly together, batched into
// a single shove.Move call so the whole set shoves and springs back
// as one episode ("Component and diff-pair drivers batch
// multiple heads into one shove Move call").
type ComponentDriver struct {
	*session
	anchor geom.Point
	lines  []item.Line
	vias   []item.Via
}

// NewComponentDriver starts a component drag. anchor is the
// footprint's reference point at drag start; lines and vias are its
// attached tracks and vias at that same moment.
func NewComponentDriver(n *node.Node, resolver rules.Resolver, anchor geom.Point, lines []item.Line, vias []item.Via, cfg Config) *ComponentDriver {
	return &ComponentDriver{
		session: newSession(n, resolver, cfg),
		anchor:  anchor,
		lines:   append([]item.Line(nil), lines...),
		vias:    append([]item.Via(nil), vias...),
	}
}

// Drag translates every attached line and via by cursor-anchor and
// runs one shove episode over the whole batch.
func (d *ComponentDriver) Drag(cursor geom.Point) Result {
	delta := cursor.Sub(d.anchor)

	heads := make([]shove.Head, 0, len(d.lines)+len(d.vias))
	movedLines := make([]item.Line, len(d.lines))
	for i, ln := range d.lines {
		pts := make([]geom.Point, ln.Poly.Len())
		for j, p := range ln.Poly.Points {
			pts[j] = p.Add(delta)
		}
		moved := ln
		moved.Poly = geom.NewPolyline(pts...)
		moved.Policy |= item.PolicyShove
		movedLines[i] = moved
	}
	for i := range movedLines {
		heads = append(heads, shove.Head{Line: &movedLines[i]})
	}
	movedVias := make([]item.Via, len(d.vias))
	for i, v := range d.vias {
		movedVias[i] = v
		heads = append(heads, shove.Head{Via: &movedVias[i], NewPos: v.Pos.Add(delta)})
	}

	return d.move(heads)
}
