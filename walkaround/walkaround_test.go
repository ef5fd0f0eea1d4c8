package walkaround

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/stretchr/testify/require"
)

func TestWalkaroundRoutesAroundPad(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	obstacleNet := netid.ID(2)

	pad := item.NewSolid(root.Gen(), geom.Point{5000, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 1000, HalfH: 1000}, layer.Single(0), obstacleNet)
	root.Add(pad)

	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 200,
		Layer: 0,
		NetID: net,
	}

	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	results := Walkaround(root, resolver, ln, []Policy{PolicyClockwise, PolicyCounterClockwise, PolicyShortest}, Options{})

	for _, p := range []Policy{PolicyClockwise, PolicyCounterClockwise, PolicyShortest} {
		res, ok := results[p]
		require.True(t, ok)
		require.Contains(t, []Status{Done, AlmostDone}, res.Status)
		require.True(t, res.Line.Poly.SegmentCount() > 1, "expected a detour to be spliced in")
		require.False(t, segmentsCollideWithPad(root, res.Line, net))
	}
}

func segmentsCollideWithPad(n *node.Node, ln item.Line, net netid.ID) bool {
	for i := 0; i < ln.Poly.SegmentCount(); i++ {
		seg := ln.Poly.Segment(i)
		s, _ := item.NewSegment(n.Gen(), seg.P0, seg.P1, ln.Width, ln.Layer, net)
		if _, collides := n.CheckColliding(s, node.QueryOptions{ExcludeNet: net}); collides {
			return true
		}
	}
	return false
}

func TestWalkaroundNoCollisionReturnsDoneImmediately(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 200,
		Layer: 0,
		NetID: net,
	}
	results := Walkaround(root, nil, ln, []Policy{PolicyClockwise}, Options{})
	require.Equal(t, Done, results[PolicyClockwise].Status)
	require.Equal(t, ln.Poly.Len(), results[PolicyClockwise].Line.Poly.Len())
}
