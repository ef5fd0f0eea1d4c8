package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointDistance(t *testing.T) {
	p := Point{0, 0}
	q := Point{3, 4}
	require.Equal(t, int64(5), p.Distance(q))
}

func TestSegmentZeroLength(t *testing.T) {
	s := Segment{Point{1, 1}, Point{1, 1}}
	require.True(t, s.IsZeroLength())
	require.False(t, Segment{Point{0, 0}, Point{1, 0}}.IsZeroLength())
}

func TestSegmentIntersects(t *testing.T) {
	a := Segment{Point{-10, 0}, Point{10, 0}}
	b := Segment{Point{0, -10}, Point{0, 10}}
	p, ok := a.Intersects(b)
	require.True(t, ok)
	require.Equal(t, Point{0, 0}, p)

	c := Segment{Point{100, 100}, Point{200, 200}}
	_, ok = a.Intersects(c)
	require.False(t, ok)
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := Segment{Point{0, 0}, Point{10, 0}}
	require.Equal(t, int64(5), s.DistanceToPoint(Point{5, 5}))
	require.Equal(t, int64(5), s.DistanceToPoint(Point{-5, 0}))
	require.Equal(t, int64(5), s.DistanceToPoint(Point{15, 0}))
}

func TestRectUnionIntersects(t *testing.T) {
	r := Rect{Point{0, 0}, Point{10, 10}}
	s := Rect{Point{5, 5}, Point{20, 20}}
	require.True(t, r.Intersects(s))
	u := r.Union(s)
	require.Equal(t, Rect{Point{0, 0}, Point{20, 20}}, u)

	t2 := Rect{Point{100, 100}, Point{200, 200}}
	require.False(t, r.Intersects(t2))
}

func TestPolylineSimplifyCollinear(t *testing.T) {
	pl := NewPolyline(Point{0, 0}, Point{5, 0}, Point{10, 0}, Point{10, 10})
	simp, changed := pl.SimplifyCollinear()
	require.True(t, changed)
	require.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}}, simp.Points)
}

func TestPolylineSelfIntersects(t *testing.T) {
	pl := NewPolyline(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10}, Point{5, -5})
	_, _, ok := pl.SelfIntersects()
	require.True(t, ok)

	clean := NewPolyline(Point{0, 0}, Point{10, 0}, Point{10, 10})
	_, _, ok = clean.SelfIntersects()
	require.False(t, ok)
}

func TestOctagonHasEightVertices(t *testing.T) {
	oct := Octagon(Point{0, 0}, 1000, ChamferLength(2000))
	require.Equal(t, 9, len(oct.Points)) // closed loop repeats first point
}

func TestConvexHullSquare(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	hull := ConvexHull(pts)
	require.Len(t, hull, 4)
}

func TestMinTranslationVector(t *testing.T) {
	a := Rect{Point{0, 0}, Point{10, 10}}
	b := Rect{Point{5, 0}, Point{15, 10}}
	v, ok := MinTranslationVector(a, b)
	require.True(t, ok)
	require.Equal(t, int64(5), v.X)
}
