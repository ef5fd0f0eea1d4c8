package index

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
	"github.com/stretchr/testify/require"
)

func TestGridInsertQueryRemove(t *testing.T) {
	g := NewGrid(DefaultCellSize)
	gen := &uid.Gen{}
	s, ok := item.NewSegment(gen, geom.Point{0, 0}, geom.Point{5000, 0}, 200, 0, netid.Orphan)
	require.True(t, ok)
	g.Insert(s)

	hits := g.Query(geom.Rect{Min: geom.Point{2000, -100}, Max: geom.Point{2100, 100}})
	require.Len(t, hits, 1)

	g.Remove(s)
	require.Equal(t, 0, g.Len())
	hits = g.Query(geom.Rect{Min: geom.Point{2000, -100}, Max: geom.Point{2100, 100}})
	require.Len(t, hits, 0)
}

func TestGridSpansMultipleCells(t *testing.T) {
	g := NewGrid(1000)
	gen := &uid.Gen{}
	v := item.NewVia(gen, geom.Point{0, 0}, layer.Range(0, 31), 600, 300, netid.Orphan)
	g.Insert(v)
	require.Equal(t, 1, g.Len())
	hits := g.Query(geom.Rect{Min: geom.Point{-10000, -10000}, Max: geom.Point{10000, 10000}})
	require.Len(t, hits, 1)
}
