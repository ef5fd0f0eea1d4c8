package hull

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/uid"
	"github.com/stretchr/testify/require"
)

func TestBuildViaHullIsCached(t *testing.T) {
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 200})
	gen := &uid.Gen{}
	v := item.NewVia(gen, geom.Point{0, 0}, layer.Range(0, 1), 600, 300, netid.ID(1))

	h1 := Build(resolver, v, 200, 0, 0)
	require.True(t, h1.Len() > 0)

	h2, ok := resolver.HullCache(v, 200, 0, 0)
	require.True(t, ok)
	require.Equal(t, h1.Len(), h2.Len())
}

func TestBuildSegmentHullEnclosesEndpoints(t *testing.T) {
	gen := &uid.Gen{}
	s, _ := item.NewSegment(gen, geom.Point{0, 0}, geom.Point{10000, 0}, 200, 0, netid.ID(1))
	h := Build(nil, s, 200, 0, 0)
	require.True(t, h.Len() > 2)
}
