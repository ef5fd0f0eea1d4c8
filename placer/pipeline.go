package placer

import (
	"github.com/katalvlaran/pns/geom"
)

// combined returns tail and head concatenated into one chain (head's
// first point, equal to tail's last, is not duplicated).
func (p *Placer) combined() geom.Polyline {
	pts := make([]geom.Point, 0, p.tail.Len()+p.head.Len()-1)
	pts = append(pts, p.tail.Points...)
	if p.head.Len() > 1 {
		pts = append(pts, p.head.Points[1:]...)
	}
	return geom.NewPolyline(pts...)
}

// handleSelfIntersections is step 3: if head crosses tail, truncate
// tail to the earliest crossing and restart the head from there as a
// straight run to the cursor.
func (p *Placer) handleSelfIntersections(cursor geom.Point) {
	if p.tail.SegmentCount() == 0 || p.head.SegmentCount() == 0 {
		return
	}
	whole := p.combined()
	idx, at, hit := whole.SelfIntersects()
	if !hit || idx >= p.tail.SegmentCount() {
		return
	}
	p.tail = p.tail.Truncate(idx, at)
	p.head = geom.NewPolyline(at, cursor)
}

// cornerKind classifies the angle directly between two consecutive
// direction vectors a->b and b->c, plain-geometry style (0° =
// straight, <90° = acute, 90° = right, >90° but <180° = obtuse, 180° =
// half-full). This is deliberately the mirror image of the optimizer
// package's CornerKind, which names the *interior* angle of the same
// bend (its "obtuse" is this package's "acute", since interior =
// 180°−turn): §4.8's pullback test scenario ("tail ends north, head's
// first segment runs north-east -- an acute 45° angle between the two
// direction vectors -- pullback fires") only makes sense read against
// the raw between-vectors angle, not the optimizer's supplementary one.
type cornerKind uint8

const (
	cornerStraight cornerKind = iota
	cornerAcute
	cornerRight
	cornerObtuse
	cornerHalfFull
	cornerUndefined
)

func classify(a, b, c geom.Point) cornerKind {
	v1 := b.Sub(a)
	v2 := c.Sub(b)
	if v1.LengthSquared() == 0 || v2.LengthSquared() == 0 {
		return cornerUndefined
	}
	cross := v1.Cross(v2)
	dot := v1.Dot(v2)
	switch {
	case cross == 0 && dot > 0:
		return cornerStraight
	case cross == 0 && dot < 0:
		return cornerHalfFull
	case dot == 0:
		return cornerRight
	case dot > 0:
		return cornerAcute
	default:
		return cornerObtuse
	}
}

// pullbackTriggers is handlePullback's "acute/right/half-full" set --
// true obtuse (a wide, deliberate swing) is the one non-straight bend
// that does not force a pullback retry.
func pullbackTriggers(k cornerKind) bool {
	return k == cornerAcute || k == cornerRight || k == cornerHalfFull
}

// handlePullback is step 4: while the tail's last turn into the head's
// first segment is acute/right/half-full, drop the tail's last vertex
// and retry, "remove the tail's last shape and retry."
func (p *Placer) handlePullback(cursor geom.Point) {
	for p.tail.Len() >= 2 && p.head.Len() >= 2 {
		n := p.tail.Len()
		a := p.tail.Points[n-2]
		b := p.tail.Points[n-1]
		c := p.head.Points[1]
		if !pullbackTriggers(classify(a, b, c)) {
			return
		}
		p.tail = geom.NewPolyline(p.tail.Points[:n-1]...)
		p.head = geom.NewPolyline(p.tail.Last(), cursor)
	}
}
