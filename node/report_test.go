package node

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/stretchr/testify/require"
)

func TestRoutedLengthSumsSegments(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	s2 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{1000, 2000}, net)
	root.Add(s1)
	root.Add(s2)

	require.Equal(t, int64(3000), root.RoutedLength(net))
}

func TestGetUpdatedItemsReflectsBranchDiff(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	root.Add(s1)

	branch := root.Branch()
	s2 := newTestSegment(t, branch, geom.Point{1000, 0}, geom.Point{2000, 0}, net)
	branch.Add(s2)
	require.NoError(t, branch.Remove(s1))

	added, removed := branch.GetUpdatedItems()
	require.Len(t, added, 1)
	require.Len(t, removed, 1)
}

func TestFixupVirtualViaRemovedWhenSameLayer(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	s2 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{2000, 0}, net)
	root.Add(s1)
	root.Add(s2)

	vv := item.NewVirtualVia(root.gen, geom.Point{1000, 0}, layer.Single(0), 300, net)
	root.Add(vv)

	root.FixupVirtualVias(net)

	_, ok := root.FindJoint(geom.Point{1000, 0}, net)
	require.True(t, ok)
	require.Len(t, root.AllItemsInNet(net), 2)
}
