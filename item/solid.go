package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// ShapeKind tags the variant of a Solid's body shape, 
// "an arbitrary SHAPE (rectangle / circle / segment-as-rounded-rect /
// simple polygon / composite)".
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeRoundedSegment
	ShapePolygon
	ShapeComposite
)

// Shape is the tagged-union body of a Solid. Only the fields relevant
// to Kind are populated; the hull builder (package hull) switches on
// Kind to dispatch to the matching construction in this
// table.
type Shape struct {
	Kind ShapeKind

	// ShapeRect / ShapeRoundedSegment
	HalfW, HalfH int64 // rect half-extents, axis aligned before Orientation
	SegP0, SegP1 geom.Point
	Width int64 // rounded-segment width

	// ShapeCircle
	Radius int64

	// ShapePolygon
	Polygon []geom.Point // simple, non-self-intersecting, CCW

	// ShapeComposite
	Children []Shape
}

// BBox returns the non-rotated bounding box of the shape, in
// shape-local coordinates (the caller, Solid.BBox, applies Pos).
// Solid.Orientation is not applied here, nor by the hull package.
func (s Shape) BBox() geom.Rect {
	switch s.Kind {
	case ShapeRect:
		return geom.Rect{Min: geom.Point{X: -s.HalfW, Y: -s.HalfH}, Max: geom.Point{X: s.HalfW, Y: s.HalfH}}
	case ShapeCircle:
		return geom.Circle{Center: geom.Point{}, Radius: s.Radius}.BBox()
	case ShapeRoundedSegment:
		r := geom.Segment{P0: s.SegP0, P1: s.SegP1}.BBox()
		return r.Inflate(s.Width / 2)
	case ShapePolygon:
		r := geom.EmptyRect()
		for _, p := range s.Polygon {
			r = r.UnionPoint(p)
		}
		return r
	case ShapeComposite:
		r := geom.EmptyRect()
		for _, c := range s.Children {
			r = r.Union(c.BBox())
		}
		return r
	default:
		return geom.EmptyRect()
	}
}

// Solid is a fixed pad or keepout body.
type Solid struct {
	Base
	Pos geom.Point
	ShapeBody Shape
	Orientation int64 // tenths of a degree, board convention
	ExtraAnchors []geom.Point
	Routable bool
	PadToDieLength int64
	PadToDieDelay int64
	Hole *Hole
	NetID netid.ID
	LayerSet layer.Set
}

// NewSolid constructs a Solid and mints its UID. Routable defaults to
// true; callers building a keepout set it false after construction.
func NewSolid(gen *uid.Gen, pos geom.Point, shape Shape, layers layer.Set, net netid.ID) Solid {
	s := Solid{Pos: pos, ShapeBody: shape, LayerSet: layers, NetID: net, Routable: true}
	s.SetUID(gen.Next())
	return s
}

func (s Solid) Kind() Kind { return KindSolid }
func (s Solid) Net() netid.ID { return s.NetID }
func (s Solid) Layers() layer.Set { return s.LayerSet }

// Anchors returns the pad center plus any extra named anchor points
//.
func (s Solid) Anchors() []geom.Point {
	out := make([]geom.Point, 0, 1+len(s.ExtraAnchors))
	out = append(out, s.Pos)
	out = append(out, s.ExtraAnchors...)
	return out
}

func (s Solid) BBox() geom.Rect {
	local := s.ShapeBody.BBox()
	return geom.Rect{
		Min: s.Pos.Add(geom.Vector{X: local.Min.X, Y: local.Min.Y}),
		Max: s.Pos.Add(geom.Vector{X: local.Max.X, Y: local.Max.Y}),
	}
}
