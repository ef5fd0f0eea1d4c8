package drivers

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// SegmentDriver is the segment/corner drag mode: one endpoint of an
// existing LINE follows the cursor while the rest of the line shoves
// or walks obstacles out of the way, per spec.md's row L "segment/
// corner" front-end.
type SegmentDriver struct {
	*session
	seed     item.Line
	dragLast bool // true: the cursor drives Poly.Last(); false: Poly.First()
}

// NewSegmentDriver starts a segment/corner drag of seed, with
// dragLast selecting which endpoint the cursor controls.
func NewSegmentDriver(n *node.Node, resolver rules.Resolver, seed item.Line, dragLast bool, cfg Config) *SegmentDriver {
	return &SegmentDriver{session: newSession(n, resolver, cfg), seed: seed, dragLast: dragLast}
}

// Drag moves the driven endpoint to cursor and runs one shove episode.
func (d *SegmentDriver) Drag(cursor geom.Point) Result {
	ln := d.seed
	pts := append([]geom.Point(nil), ln.Poly.Points...)
	if d.dragLast {
		pts[len(pts)-1] = cursor
	} else {
		pts[0] = cursor
	}
	ln.Poly = geom.NewPolyline(pts...)
	ln.Policy |= item.PolicyShove

	return d.move([]shove.Head{{Line: &ln}})
}
