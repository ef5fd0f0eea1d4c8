package optimizer

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

func TestOptimizeMergeColinearDropsStraightVertex(t *testing.T) {
	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{1000, 0}, geom.Point{2000, 0}),
		Width: 200,
		Layer: 0,
		NetID: netid.ID(1),
	}
	out := Optimize(nil, nil, ln, MergeColinear)
	require.Equal(t, 2, out.Poly.Len())
	require.True(t, out.Poly.First().Equal(ln.Poly.First()))
	require.True(t, out.Poly.Last().Equal(ln.Poly.Last()))
}

func TestOptimizeMergeSegmentsShortensDogleg(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 1000}, geom.Point{1000, 1000}, geom.Point{1000, 2000}),
		Width: 200,
		Layer: 0,
		NetID: net,
	}
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})

	before := CornerCost(ln.Poly)
	out := Optimize(root, resolver, ln, MergeSegments|MergeColinear)
	after := CornerCost(out.Poly)

	require.LessOrEqual(t, after, before)
	require.True(t, out.Poly.First().Equal(ln.Poly.First()))
	require.True(t, out.Poly.Last().Equal(ln.Poly.Last()))
}

func TestOptimizeNeverChangesEndpoints(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{500, 300}, geom.Point{900, 300}, geom.Point{1500, 900}),
		Width: 150,
		Layer: 0,
		NetID: net,
	}
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 150})
	out := Optimize(root, resolver, ln, EffortFull)
	require.True(t, out.Poly.First().Equal(ln.Poly.First()))
	require.True(t, out.Poly.Last().Equal(ln.Poly.Last()))
}

func TestOptimizeRejectsCandidateThatCollides(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	obstacleNet := netid.ID(2)

	// Both 45° bypass bend points ((800,800) and (800,0)) sit under an
	// obstacle, so MERGE_SEGMENTS must leave the original dogleg alone.
	obstacleA, _ := item.NewSegment(root.Gen(), geom.Point{750, 750}, geom.Point{850, 850}, 100, 0, obstacleNet)
	obstacleB, _ := item.NewSegment(root.Gen(), geom.Point{750, -50}, geom.Point{850, 50}, 100, 0, obstacleNet)
	root.Add(obstacleA)
	root.Add(obstacleB)

	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 800}, geom.Point{1600, 800}),
		Width: 100,
		Layer: 0,
		NetID: net,
	}
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 100})
	out := Optimize(root, resolver, ln, MergeSegments)
	require.True(t, out.Poly.First().Equal(ln.Poly.First()))
	require.True(t, out.Poly.Last().Equal(ln.Poly.Last()))
	require.Equal(t, ln.Poly.Len(), out.Poly.Len(), "both bypass candidates collide, so the dogleg must survive unchanged")
}

func TestCornerCostClassification(t *testing.T) {
	require.Equal(t, CornerStraight, classifyCorner(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{200, 0}))
	require.Equal(t, CornerRight, classifyCorner(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{100, 100}))
	require.Equal(t, CornerHalfFull, classifyCorner(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{0, 0}))
}

func TestFanoutCleanupReplacesShortPadToPad(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)

	padA := item.NewSolid(root.Gen(), geom.Point{0, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 100, HalfH: 100}, layer.Single(0), net)
	padB := item.NewSolid(root.Gen(), geom.Point{1500, 300}, item.Shape{Kind: item.ShapeRect, HalfW: 100, HalfH: 100}, layer.Single(0), net)
	root.Add(padA)
	root.Add(padB)

	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 300}, geom.Point{1500, 300}),
		Width: 200,
		Layer: 0,
		NetID: net,
	}
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 100})
	p := &pass{n: root, resolver: resolver, net: net, width: ln.Width, layer: 0, tol: defaultTolerance()}
	out := p.fanoutCleanup(ln)
	require.True(t, out.Poly.First().Equal(ln.Poly.First()))
	require.True(t, out.Poly.Last().Equal(ln.Poly.Last()))
	require.Contains(t, []geom.Point{{300, 300}, {1200, 0}}, out.Poly.Points[1], "the dogleg is replaced by a 45° two-segment route")
}
