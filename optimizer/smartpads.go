package optimizer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
)

// breakoutDirections are the eight octagonal exit directions SMART_PADS
// tries at a pad or via entry, "try all octagonal
// breakout directions (8 directions + 8 diagonals; 90° mode uses
// 4+4)" -- the cardinal and ordinal directions together already form
// the octagon, so one table of eight unit vectors covers both halves
// of that phrase for 45°-mode routing.
var breakoutDirections = [8]geom.Vector{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// rightAngleDirections is the 90°-mode subset ("90° mode uses 4+4").
// Nothing uses it: smartPadEnd always tries all eight
// breakoutDirections, whatever the corner mode.
var rightAngleDirections = [4]geom.Vector{
	{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
}

// smartPads implements SMART_PADS at both ends of ln: if an endpoint
// sits inside a Solid, try every breakout direction and replace the
// line's first (or last) leg with whichever exit has the lowest
// corner cost among the non-colliding candidates, preferring a
// pad-parallel exit on ties for an oblong pad.
func (p *pass) smartPads(ln item.Line) item.Line {
	ln.Poly = p.smartPadEnd(ln.Poly, true)
	ln.Poly = p.smartPadEnd(ln.Poly, false)
	return ln
}

// padExit is one breakout candidate evaluated at a pad-entry endpoint.
type padExit struct {
	point geom.Point
	cost int64
	parallel bool
}

func (p *pass) smartPadEnd(poly geom.Polyline, atStart bool) geom.Polyline {
	if poly.Len() < 2 {
		return poly
	}
	anchorIdx, nextIdx := 0, 1
	if !atStart {
		anchorIdx, nextIdx = poly.Len()-1, poly.Len()-2
	}
	anchor := poly.Points[anchorIdx]
	next := poly.Points[nextIdx]

	pad, ok := p.padAt(anchor)
	if !ok || !pad.BBox().Contains(next) {
		return poly // no pad here, or the line already exits it cleanly
	}

	exitLen := padBreakoutLength(pad, p.width)
	longAxis := padLongAxis(pad)

	var best *padExit
	for _, dir := range breakoutDirections {
		exit := anchor.Add(dir.Scale(exitLen))

		var repl []geom.Point
		var kind CornerKind
		if atStart {
			repl = []geom.Point{anchor, exit}
			kind = classifyCorner(exit, anchor, next)
		} else {
			repl = []geom.Point{exit, anchor}
			kind = classifyCorner(next, anchor, exit)
		}
		if collides(p.n, p.resolver, p.net, p.width, repl) {
			continue
		}
		parallel := longAxis.LengthSquared() > 0 && abs64(dir.Cross(longAxis)) < abs64(dir.Dot(longAxis))
		cand := padExit{point: exit, cost: cornerCost[kind], parallel: parallel}
		if best == nil || cand.cost < best.cost || (cand.cost == best.cost && cand.parallel && !best.parallel) {
			best = &cand
		}
	}
	if best == nil {
		return poly
	}

	if atStart {
		pts := append([]geom.Point{anchor, best.point}, poly.Points[nextIdx:]...)
		return geom.NewPolyline(pts...)
	}
	pts := append(append([]geom.Point{}, poly.Points[:nextIdx+1]...), best.point, anchor)
	return geom.NewPolyline(pts...)
}

// padAt returns the Solid whose body contains pt, if any is visible at
// the current node.
func (p *pass) padAt(pt geom.Point) (item.Solid, bool) {
	if p.n == nil {
		return item.Solid{}, false
	}
	box := geom.Rect{Min: pt, Max: pt}.Inflate(1)
	for _, it := range p.n.QueryColliding(box, node.QueryOptions{}) {
		if s, ok := it.(item.Solid); ok && s.BBox().Contains(pt) {
			return s, true
		}
	}
	return item.Solid{}, false
}

// padBreakoutLength is the exit-leg length SMART_PADS uses: the pad's
// larger half-extent plus the track's own width, long enough to clear
// the pad body on any octagonal direction.
func padBreakoutLength(pad item.Solid, width int64) int64 {
	bb := pad.ShapeBody.BBox()
	halfW := (bb.Max.X - bb.Min.X) / 2
	halfH := (bb.Max.Y - bb.Min.Y) / 2
	longer := halfW
	if halfH > longer {
		longer = halfH
	}
	return longer + width
}

// padLongAxis returns a unit-ish vector along an oblong rectangular
// pad's long side, or the zero vector for a square/non-rect pad (no
// parallel-exit preference applies).
func padLongAxis(pad item.Solid) geom.Vector {
	if pad.ShapeBody.Kind != item.ShapeRect || pad.ShapeBody.HalfW == pad.ShapeBody.HalfH {
		return geom.Vector{}
	}
	if pad.ShapeBody.HalfW > pad.ShapeBody.HalfH {
		return geom.Vector{X: 1, Y: 0}
	}
	return geom.Vector{X: 0, Y: 1}
}
