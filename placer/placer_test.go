package placer

import (
	"testing"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/settings"
	"github.com/stretchr/testify/require"
)

func newTestConfig() Config {
	return Config{
		Width:    200,
		Layer:    0,
		Net:      netid.ID(1),
		Settings: settings.New(settings.WithMode(settings.ModeMarkObstacles)),
	}
}

func TestPlacerMarkObstaclesExtendsHeadToCursor(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 100})
	pl := New(root, resolver, geom.Point{0, 0}, newTestConfig())

	status := pl.Move(geom.Point{1000, 0})
	require.Equal(t, Done, status)
	require.True(t, pl.Head().Last().Equal(geom.Point{1000, 0}))
	require.Empty(t, pl.Obstacles())
}

func TestPlacerMarkObstaclesReportsCollision(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 100})
	obstacleNet := netid.ID(2)
	seg, ok := item.NewSegment(root.Gen(), geom.Point{400, -200}, geom.Point{400, 200}, 100, 0, obstacleNet)
	require.True(t, ok)
	root.Add(seg)

	pl := New(root, resolver, geom.Point{0, 0}, newTestConfig())
	status := pl.Move(geom.Point{1000, 0})
	require.Equal(t, Blocked, status)
	require.NotEmpty(t, pl.Obstacles())
}

func TestHandlePullbackDropsTailVertexOnAcuteTurn(t *testing.T) {
	pl := &Placer{
		tail: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 1000}),
		head: geom.NewPolyline(geom.Point{0, 1000}, geom.Point{700, 1700}),
	}
	before := pl.tail.Len() + pl.head.Len() - 1
	pl.handlePullback(geom.Point{700, 1700})
	after := pl.tail.Len() + pl.head.Len() - 1

	require.Equal(t, before-1, after, "an acute turn must drop exactly one shared vertex")
	require.True(t, pl.tail.Last().Equal(geom.Point{0, 0}), "tail's last shape is removed, collapsing it back to its anchor")
}

func TestHandlePullbackLeavesObtuseTurnAlone(t *testing.T) {
	// tail runs north; head swings back to (200,100), a turn wide enough
	// (>90° between the two direction vectors) to land in this package's
	// "obtuse" bucket, the one non-straight case handlePullback leaves be.
	pl := &Placer{
		tail: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 1000}),
		head: geom.NewPolyline(geom.Point{0, 1000}, geom.Point{200, 100}),
	}
	before := pl.tail.Len()
	pl.handlePullback(geom.Point{200, 100})
	require.Equal(t, before, pl.tail.Len(), "a wide (obtuse) swing must not trigger pullback")
}

func TestMergeHeadFoldsStableThreeSegmentHead(t *testing.T) {
	// A head with only straight interior corners carries no forbidden
	// (acute/right/half-full) bend, so three-or-more segments fold in.
	pl := &Placer{
		tail: geom.NewPolyline(geom.Point{0, 0}, geom.Point{0, 1000}),
		head: geom.NewPolyline(
			geom.Point{0, 1000}, geom.Point{0, 1800}, geom.Point{0, 2600}, geom.Point{0, 3000},
		),
	}
	pl.mergeHead()
	require.Equal(t, 5, pl.tail.Len())
	require.Equal(t, 1, pl.head.Len())
	require.True(t, pl.head.Last().Equal(geom.Point{0, 3000}))
}

func TestFixRouteCommitsSimplifiedChain(t *testing.T) {
	root := node.NewRoot()
	resolver := rules.NewStaticResolver(rules.ClassRule{Clearance: 100})
	pl := New(root, resolver, geom.Point{0, 0}, newTestConfig())

	require.Equal(t, Done, pl.Move(geom.Point{1000, 0}))

	ln, err := pl.FixRoute()
	require.NoError(t, err)
	require.True(t, ln.Poly.First().Equal(geom.Point{0, 0}))
	require.True(t, ln.Poly.Last().Equal(geom.Point{1000, 0}))
	require.NotEmpty(t, ln.Links)
}

func TestSimplifyNewLineDropsCollinearVertex(t *testing.T) {
	pl := geom.NewPolyline(geom.Point{0, 0}, geom.Point{500, 0}, geom.Point{1000, 0})
	out := simplifyNewLine(pl)
	require.Equal(t, 2, out.Len())
}

func TestReduceTailCollapsesRedundantWindow(t *testing.T) {
	pl := &Placer{
		cfg: Config{Width: 100, Net: netid.ID(1)},
		n:   node.NewRoot(),
		tail: geom.NewPolyline(
			geom.Point{0, 0}, geom.Point{0, 500}, geom.Point{500, 500}, geom.Point{500, 1000},
		),
	}
	before := pl.tail.SegmentCount()
	pl.reduceTail(geom.Point{500, 1000})
	require.LessOrEqual(t, pl.tail.SegmentCount(), before)
	require.True(t, pl.tail.First().Equal(geom.Point{0, 0}))
	require.True(t, pl.tail.Last().Equal(geom.Point{500, 1000}))
}
