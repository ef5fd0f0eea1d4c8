package shove

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

func TestMoveLineHeadNoObstacleCompletes(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	eng := NewEngine(root, resolver, Options{})

	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 200,
		Layer: 0,
		NetID: netid.ID(1),
	}
	branch, status := eng.Move([]Head{{Line: &ln}})
	require.Equal(t, Done, status)
	require.NotNil(t, branch)

	hits := branch.QueryColliding(ln.Poly.BBox(), node.QueryOptions{})
	require.Len(t, hits, 1)
}

func TestMoveShovesObstacleSegmentAside(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})

	obstacleNet := netid.ID(2)
	obs, _ := item.NewSegment(root.Gen(), geom.Point{5000, -5000}, geom.Point{5000, 5000}, 200, 0, obstacleNet)
	root.Add(obs)

	eng := NewEngine(root, resolver, Options{})
	ln := item.Line{
		Poly: geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 200,
		Layer: 0,
		NetID: netid.ID(1),
		Rank: 100000,
	}

	branch, status := eng.Move([]Head{{Line: &ln}})
	require.Contains(t, []Status{Done, Incomplete}, status)
	require.NotNil(t, branch)
}

func TestPushOrShoveViaTranslatesAndDragsLine(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)

	v := item.NewVia(root.Gen(), geom.Point{5000, 0}, layer.Range(0, 1), 600, 300, net)
	root.Add(v)
	s, _ := item.NewSegment(root.Gen(), geom.Point{0, 0}, geom.Point{5000, 0}, 200, 0, net)
	root.Add(s)

	eng := NewEngine(root, rules.NewStaticResolver(rules.ClassRule{Clearance: 200}), Options{ShoveVias: true})
	branch := root.Branch()
	ok := eng.pushOrShoveVia(branch, v, geom.Point{5500, 500}, true, 50000)
	require.True(t, ok)

	hits := branch.QueryColliding(geom.Rect{Min: geom.Point{5400, 400}, Max: geom.Point{5600, 600}}, node.QueryOptions{})
	require.True(t, len(hits) > 0)
}
