package topology

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
)

// PathLength sums the geometric length of every linked item in path.
// Used by node.Node.RoutedLength, the supplemented read-only reporting
// hook named in the design (distinct from the host's own
// CalculateRoutedPathLength, which additionally accounts for pad
// entry/exit and is a routerface.Iface concern, not this package's).
func PathLength(path []item.Linked) int64 {
	var total int64
	for _, it := range path {
		switch v := it.(type) {
		case item.Segment:
			total += v.Geometry().Length()
		case item.Arc:
			total += arcLength(v.Geometry())
		}
	}
	return total
}

// arcLength approximates an arc's length by sampling it into a short
// polyline and summing chord lengths -- fine-grained enough that the
// error is well under one board unit for any realistic PCB arc.
func arcLength(a geom.Arc) int64 {
	pts := a.Sample(16)
	var total int64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}
