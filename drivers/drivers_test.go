package drivers

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
	"github.com/stretchr/testify/require"
)

func TestSegmentDriverDragsEndpointToCursor(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	seed := item.Line{
		Poly:  geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 200,
		Layer: 0,
		NetID: netid.ID(1),
	}
	d := NewSegmentDriver(root, resolver, seed, true, Config{})
	res := d.Drag(geom.Point{10000, 5000})
	require.Equal(t, Ready, res.Status)
	require.NotNil(t, res.Branch)
}

func TestViaDriverDragsIncidentLine(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	v := item.NewVia(root.Gen(), geom.Point{5000, 0}, layer.Range(0, 1), 600, 300, net)
	root.Add(v)
	s, _ := item.NewSegment(root.Gen(), geom.Point{0, 0}, geom.Point{5000, 0}, 200, 0, net)
	root.Add(s)

	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	d := NewViaDriver(root, resolver, v, Config{Shove: shove.Options{ShoveVias: true}})
	res := d.Drag(geom.Point{5500, 500})
	require.Contains(t, []Status{Ready, Pending}, res.Status)
	require.NotNil(t, res.Branch)
}

func TestComponentDriverBatchesHeads(t *testing.T) {
	root := node.NewRoot()
	net := netid.ID(1)
	anchor := geom.Point{0, 0}
	lines := []item.Line{{
		Poly:  geom.NewPolyline(geom.Point{0, 0}, geom.Point{1000, 0}),
		Width: 200,
		Layer: 0,
		NetID: net,
	}}
	vias := []item.Via{item.NewVia(root.Gen(), geom.Point{2000, 0}, layer.Range(0, 1), 600, 300, net)}

	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	d := NewComponentDriver(root, resolver, anchor, lines, vias, Config{})
	res := d.Drag(geom.Point{0, 3000})
	require.Contains(t, []Status{Ready, Pending}, res.Status)
	require.NotNil(t, res.Branch)
}

func TestDiffPairDriverKeepsLegsNonColliding(t *testing.T) {
	root := node.NewRoot()
	p := item.Line{
		Poly:  geom.NewPolyline(geom.Point{0, 0}, geom.Point{10000, 0}),
		Width: 150,
		Layer: 0,
		NetID: netid.ID(1),
	}
	n := item.Line{
		Poly:  geom.NewPolyline(geom.Point{0, 400}, geom.Point{10000, 400}),
		Width: 150,
		Layer: 0,
		NetID: netid.ID(2),
	}
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 150})
	d := NewDiffPairDriver(root, resolver, optimizer.DiffPair{P: p, N: n}, true, Config{Effort: optimizer.MergeColinear})
	res := d.Drag(geom.Point{10000, 2000})
	require.Contains(t, []Status{Ready, Pending}, res.Status)
	require.NotNil(t, res.Branch)
}
