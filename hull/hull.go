// Package hull builds HULL polylines : the offset
// boundary the walkaround and shove engines route around an obstacle
// at, rather than the obstacle's own outline. Circles (vias, round
// pads) and segments use the spec's closed-form octagon chamfer
// directly (geom.Octagon/geom.ChamferedRect), since an octagonal
// approximation needs no boolean engine; arcs trace their own offset
// curvature (geom.Arc.SampleOffset) instead, since a >180° arc's band
// has a concave side a convex octagon approximation would bridge over.
// Only an arbitrary simple polygon shape goes through clipper2's
// ClipperOffset, since neither closed form generalizes to an
// unconstrained outline.
package hull

import (
	"math"

	clipper "github.com/go-clipper/clipper2"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/rules"
)

// arcAngleStepDeg is the angular sampling step used to flatten an arc
// hull's offset band into the fixed-accuracy polyline spec §4.4 calls
// for; halving it doubles the sample count and the resulting hull's
// fidelity to the true offset band.
const arcAngleStepDeg = 15.0

// Build returns the hull polyline for it at the given clearance and
// walkaround width, on layer l, consulting resolver's cache first
//.
func Build(resolver rules.Resolver, it item.Item, clearance, walkaroundWidth int64, l layer.ID) geom.Polyline {
	if resolver != nil {
		if cached, ok := resolver.HullCache(it, clearance, walkaroundWidth, l); ok {
			return cached
		}
	}
	out := build(it, clearance, walkaroundWidth, l)
	if resolver != nil {
		resolver.StoreHull(it, clearance, walkaroundWidth, l, out)
	}
	return out
}

func build(it item.Item, clearance, walkaroundWidth int64, l layer.ID) geom.Polyline {
	margin := clearance + walkaroundWidth/2

	switch v := it.(type) {
	case item.Segment:
		return offsetSegment(v.P0, v.P1, v.Width/2+margin)
	case item.Arc:
		return arcHull(v, margin)
	case item.Via:
		return geom.Octagon(v.Pos, v.RadiusOnLayer(l)+margin, geom.ChamferLength(2*(v.RadiusOnLayer(l)+margin)))
	case item.Hole:
		return geom.Octagon(v.Pos, v.Radius+margin, geom.ChamferLength(2*(v.Radius+margin)))
	case item.Solid:
		return solidHull(v, margin)
	default:
		bb := it.BBox().Inflate(margin)
		return geom.NewPolyline(bb.Min, geom.Point{X: bb.Max.X, Y: bb.Min.Y}, bb.Max, geom.Point{X: bb.Min.X, Y: bb.Max.Y}, bb.Min)
	}
}

func solidHull(s item.Solid, margin int64) geom.Polyline {
	return shapeHull(s.Pos, s.ShapeBody, margin)
}

func shapeHull(pos geom.Point, shape item.Shape, margin int64) geom.Polyline {
	switch shape.Kind {
	case item.ShapeCircle:
		return geom.Octagon(pos, shape.Radius+margin, geom.ChamferLength(2*(shape.Radius+margin)))
	case item.ShapeRoundedSegment:
		return offsetSegment(pos.Add(vec(shape.SegP0)), pos.Add(vec(shape.SegP1)), shape.Width/2+margin)
	case item.ShapeRect:
		return geom.ChamferedRect(pos, shape.HalfW+margin, shape.HalfH+margin, geom.ChamferLength(min64(shape.HalfW, shape.HalfH)+margin))
	case item.ShapePolygon:
		path := make(clipper.Path64, 0, len(shape.Polygon))
		for _, p := range shape.Polygon {
			abs := pos.Add(vec(p))
			path = append(path, clipper.Point64{X: abs.X, Y: abs.Y})
		}
		return offsetPath(path, margin)
	case item.ShapeComposite:
		var pts []geom.Point
		for _, c := range shape.Children {
			h := shapeHull(pos, c, margin)
			pts = append(pts, h.Points...)
		}
		hull := geom.ConvexHull(pts)
		if len(hull) == 0 {
			return geom.NewPolyline()
		}
		return geom.NewPolyline(append(hull, hull[0])...)
	default:
		return geom.NewPolyline()
	}
}

func vec(p geom.Point) geom.Vector { return geom.Vector{X: p.X, Y: p.Y} }

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// offsetSegment builds the octagonal hull of a straight segment per
// spec §4.4 ("Rectangle of length + cap-circles -> octagonal hull
// (segment approximated as rect first)"): stamp the closed-form
// circle-octagon (geom.Octagon) at each endpoint and take the convex
// hull of both octagons' vertices, the same cap-and-hull construction
// shapeHull already uses for ShapeComposite, generalized to two caps
// instead of N children.
func offsetSegment(p0, p1 geom.Point, halfWidth int64) geom.Polyline {
	chamfer := geom.ChamferLength(2 * halfWidth)
	capA := geom.Octagon(p0, halfWidth, chamfer)
	capB := geom.Octagon(p1, halfWidth, chamfer)
	pts := make([]geom.Point, 0, capA.Len()+capB.Len())
	pts = append(pts, capA.Points...)
	pts = append(pts, capB.Points...)
	hull := geom.ConvexHull(pts)
	if len(hull) == 0 {
		return geom.NewPolyline()
	}
	return geom.NewPolyline(append(hull, hull[0])...)
}

func offsetPath(path clipper.Path64, delta int64) geom.Polyline {
	co := clipper.NewClipperOffset(2.0, arcAngleStepDeg)
	co.AddPath(path, clipper.Round, clipper.ClosedPolygon)
	solution, err := co.Execute(float64(delta))
	if err != nil || len(solution) == 0 {
		return geom.NewPolyline()
	}
	return pathToPolyline(solution[0])
}

func pathToPolyline(path clipper.Path64) geom.Polyline {
	pts := make([]geom.Point, 0, len(path)+1)
	for _, p := range path {
		pts = append(pts, geom.Point{X: p.X, Y: p.Y})
	}
	if len(pts) > 0 && !pts[0].Equal(pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return geom.NewPolyline(pts...)
}

// arcHull builds the arc's offset band as a fixed-accuracy polyline
// (spec §4.4: "a fixed-accuracy polyline around the arc offset band"):
// an outer chain at radius+halfWidth and an inner chain at
// radius-halfWidth, each following the arc's own curvature
// (geom.Arc.SampleOffset), joined head-to-tail into a closed ring
// (geom.ClosedPolygon). Unlike a single convex hull over every sampled
// point, this follows the concave side of a >180° arc instead of
// bridging over it. A zero-radius (degenerate, collinear-points) arc
// falls back to the straight-segment hull. Denser sampling (smaller
// arcAngleStepDeg) tightens the approximation. The floats involved
// stay inside geom's own trig, not in any boolean offsetting engine.
func arcHull(a item.Arc, margin int64) geom.Polyline {
	g := a.Geometry()
	if g.Radius() == 0 {
		return offsetSegment(a.P0, a.P1, a.Width/2+margin)
	}
	n := int(math.Ceil(360.0 / arcAngleStepDeg))
	halfWidth := a.Width/2 + margin
	outer := g.SampleOffset(n, halfWidth)
	inner := g.SampleOffset(n, -halfWidth)
	return geom.NewPolyline(geom.ClosedPolygon(outer, inner)...)
}
