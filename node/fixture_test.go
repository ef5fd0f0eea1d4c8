package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// fixtureConstructor mutates a fixture being assembled onto root. Mirrors
// the builder.Constructor shape: one function type, applied in order,
// closing over whatever parameters a test needs.
type fixtureConstructor func(root *Node)

// buildFixture applies each constructor to a fresh root in order, the way
// builder.BuildGraph applies its Constructors to a fresh core.Graph:
// one orchestrator, deterministic composition, no partial cleanup on
// failure since these constructors never fail (they're test fixtures).
func buildFixture(cons...fixtureConstructor) *Node {
	root := NewRoot()
	for _, c := range cons {
		c(root)
	}
	return root
}

// track declares a two-point Segment, the fixture-builder equivalent of
// impl_letters.go's declarative edge constructors.
func track(p0, p1 geom.Point, width int64, l layer.ID, net netid.ID) fixtureConstructor {
	return func(root *Node) {
		s, ok := item.NewSegment(root.gen, p0, p1, width, l, net)
		if !ok {
			return
		}
		root.Add(s)
	}
}

// pad declares a rectangular Solid at pos.
func pad(pos geom.Point, halfW, halfH int64, layers layer.Set, net netid.ID) fixtureConstructor {
	return func(root *Node) {
		root.Add(item.NewSolid(root.gen, pos, item.Shape{Kind: item.ShapeRect, HalfW: halfW, HalfH: halfH}, layers, net))
	}
}

// via declares a through or blind/buried Via at pos.
func via(pos geom.Point, layers layer.Set, diameter, drill int64, net netid.ID) fixtureConstructor {
	return func(root *Node) {
		root.Add(item.NewVia(root.gen, pos, layers, diameter, drill, net))
	}
}
