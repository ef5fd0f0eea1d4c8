package topology

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
	"github.com/stretchr/testify/require"
)

// fakeSource is a tiny in-memory JointSource used only by this
// package's tests, built declaratively the way lvlath's builder
// package assembles fixture graphs from a flat spec.
type fakeSource struct {
	joints map[geom.Point]Joint
	items []item.Item
}

func (f *fakeSource) JointAt(pos geom.Point, net netid.ID) (Joint, bool) {
	j, ok := f.joints[pos]
	return j, ok
}

func (f *fakeSource) ItemsOverlapping(bbox geom.Rect, l layer.ID, excludeNet netid.ID) []item.Item {
	var out []item.Item
	for _, it := range f.items {
		if !it.Layers().Contains(l) {
			continue
		}
		if !excludeNet.IsOrphan() && it.Net().Equal(excludeNet) {
			continue
		}
		if it.BBox().Intersects(bbox) {
			out = append(out, it)
		}
	}
	return out
}

func TestAssembleTrivialPathThreeSegments(t *testing.T) {
	gen := &uid.Gen{}
	s1, _ := item.NewSegment(gen, geom.Point{0, 0}, geom.Point{1000, 0}, 200, 0, netid.Orphan)
	s2, _ := item.NewSegment(gen, geom.Point{1000, 0}, geom.Point{2000, 0}, 200, 0, netid.Orphan)
	s3, _ := item.NewSegment(gen, geom.Point{2000, 0}, geom.Point{3000, 0}, 200, 0, netid.Orphan)

	src := &fakeSource{joints: map[geom.Point]Joint{
		{1000, 0}: {Links: []item.Linked{s1, s2}},
		{2000, 0}: {Links: []item.Linked{s2, s3}},
	}}

	path, terms := AssembleTrivialPath(src, s2, netid.Orphan)
	require.Len(t, path, 3)
	require.Equal(t, geom.Point{0, 0}, terms[0])
	require.Equal(t, geom.Point{3000, 0}, terms[1])
}

func TestAssembleClusterExpandsToTouchingPad(t *testing.T) {
	gen := &uid.Gen{}
	seed := item.NewSolid(gen, geom.Point{0, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 500, HalfH: 500}, layer.Single(0), netid.Orphan)
	neighbor := item.NewSolid(gen, geom.Point{900, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 500, HalfH: 500}, layer.Single(0), netid.Orphan)
	far := item.NewSolid(gen, geom.Point{100000, 0}, item.Shape{Kind: item.ShapeRect, HalfW: 500, HalfH: 500}, layer.Single(0), netid.Orphan)

	src := &fakeSource{items: []item.Item{seed, neighbor, far}}
	cluster := AssembleCluster(src, seed, 0, 4, netid.Orphan)
	require.Len(t, cluster, 2)
}
