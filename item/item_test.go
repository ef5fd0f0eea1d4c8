package item

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
	"github.com/stretchr/testify/require"
)

func TestNewSegmentRejectsZeroLength(t *testing.T) {
	gen := &uid.Gen{}
	_, ok := NewSegment(gen, geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 1}, 200, 0, netid.Orphan)
	require.False(t, ok)
}

func TestSegmentUIDsAreUnique(t *testing.T) {
	gen := &uid.Gen{}
	s1, ok := NewSegment(gen, geom.Point{0, 0}, geom.Point{10, 0}, 200, 0, netid.Orphan)
	require.True(t, ok)
	s2, ok := NewSegment(gen, geom.Point{0, 0}, geom.Point{10, 0}, 200, 0, netid.Orphan)
	require.True(t, ok)
	require.NotEqual(t, s1.UID(), s2.UID())
}

func TestViaUniformRadius(t *testing.T) {
	gen := &uid.Gen{}
	v := NewVia(gen, geom.Point{0, 0}, layer.Range(0, 31), 600, 300, netid.Orphan)
	require.Equal(t, int64(300), v.RadiusOnLayer(5))
	require.Equal(t, int64(300), v.MaxRadius())
}

func TestVirtualViaNotRoutable(t *testing.T) {
	gen := &uid.Gen{}
	v := NewVirtualVia(gen, geom.Point{0, 0}, layer.Single(0), 400, netid.Orphan)
	require.True(t, v.IsVirtual)
	require.False(t, v.IsFree)
}

func TestLineBBoxIncludesVia(t *testing.T) {
	gen := &uid.Gen{}
	pl := geom.NewPolyline(geom.Point{0, 0}, geom.Point{1000, 0})
	v := NewVia(gen, geom.Point{2000, 0}, layer.Range(0, 1), 600, 300, netid.Orphan)
	ln := Line{Poly: pl, Width: 200, Via: &v}
	bb := ln.BBox()
	require.True(t, bb.Contains(geom.Point{2000, 0}))
}

func TestSolidAnchorsIncludesExtra(t *testing.T) {
	gen := &uid.Gen{}
	s := NewSolid(gen, geom.Point{0, 0}, Shape{Kind: ShapeRect, HalfW: 500, HalfH: 200}, layer.Single(0), netid.Orphan)
	s.ExtraAnchors = []geom.Point{{100, 0}}
	require.Len(t, s.Anchors(), 2)
}
