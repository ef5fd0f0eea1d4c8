package node

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/stretchr/testify/require"
)

func newTestSegment(t *testing.T, n *Node, p0, p1 geom.Point, net netid.ID) item.Segment {
	t.Helper()
	s, ok := item.NewSegment(n.gen, p0, p1, 200, 0, net)
	require.True(t, ok)
	return s
}

func TestAddRemoveVisibility(t *testing.T) {
	root := NewRoot()
	s := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, netid.ID(1))
	root.Add(s)

	hits := root.QueryColliding(s.BBox(), QueryOptions{})
	require.Len(t, hits, 1)

	require.NoError(t, root.Remove(s))
	hits = root.QueryColliding(s.BBox(), QueryOptions{})
	require.Len(t, hits, 0)
}

func TestBranchIsolationAndCommit(t *testing.T) {
	root := NewRoot()
	s := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, netid.ID(1))
	root.Add(s)

	branch := root.Branch()
	require.NoError(t, branch.Remove(s))
	require.Len(t, branch.QueryColliding(s.BBox(), QueryOptions{}), 0)
	require.Len(t, root.QueryColliding(s.BBox(), QueryOptions{}), 1)

	require.NoError(t, branch.Commit())
	require.Len(t, root.QueryColliding(s.BBox(), QueryOptions{}), 0)
}

func TestFindJointCorner(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	s2 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{2000, 0}, net)
	root.Add(s1)
	root.Add(s2)

	j, ok := root.FindJoint(geom.Point{1000, 0}, net)
	require.True(t, ok)
	require.True(t, j.IsCorner())
	require.Len(t, j.Links, 2)
}

func TestEdgeExclusionSuppressesCollision(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	other := netid.ID(2)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	pad := item.NewSolid(root.gen, geom.Point{1000, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 300, HalfH: 300}, layer.Single(0), other)
	root.Add(s1)
	root.Add(pad)

	_, collides := root.CheckColliding(s1, QueryOptions{})
	require.True(t, collides)

	root.AddEdgeExclusion(s1, pad)
	_, collides = root.CheckColliding(s1, QueryOptions{})
	require.False(t, collides)
}
