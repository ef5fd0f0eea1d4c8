package node

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/netid"
	"github.com/stretchr/testify/require"
)

func TestAssembleLineMergesThreeSegments(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	s2 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{2000, 0}, net)
	s3 := newTestSegment(t, root, geom.Point{2000, 0}, geom.Point{3000, 0}, net)
	root.Add(s1)
	root.Add(s2)
	root.Add(s3)

	ln := root.AssembleLine(s2, AssembleOptions{})
	require.Equal(t, geom.Point{0, 0}, ln.Poly.First())
	require.Equal(t, geom.Point{3000, 0}, ln.Poly.Last())
	require.Len(t, ln.Links, 3)
}

func TestAssembleLineStopsAtFanout(t *testing.T) {
	root := NewRoot()
	net := netid.ID(1)
	s1 := newTestSegment(t, root, geom.Point{0, 0}, geom.Point{1000, 0}, net)
	s2 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{2000, 0}, net)
	s3 := newTestSegment(t, root, geom.Point{1000, 0}, geom.Point{1000, 1000}, net)
	root.Add(s1)
	root.Add(s2)
	root.Add(s3)

	ln := root.AssembleLine(s1, AssembleOptions{})
	require.Equal(t, geom.Point{0, 0}, ln.Poly.First())
	require.Equal(t, geom.Point{1000, 0}, ln.Poly.Last())
	require.Len(t, ln.Links, 1)
}
