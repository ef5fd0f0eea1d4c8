package optimizer

import "github.com/katalvlaran/pns/geom"

// CornerKind classifies the angle at one interior vertex of a polyline,
// the design document's corner-cost table.
type CornerKind uint8

const (
	CornerStraight CornerKind = iota
	CornerObtuse
	CornerRight
	CornerAcute
	CornerHalfFull
	CornerUndefined
)

// cornerCost is the per-junction cost table: "straight = 5,
// obtuse = 10, right = 30, acute = 50, half-full = 60, undefined = 100."
var cornerCost = map[CornerKind]int64{
	CornerStraight: 5,
	CornerObtuse: 10,
	CornerRight: 30,
	CornerAcute: 50,
	CornerHalfFull: 60,
	CornerUndefined: 100,
}

// classifyCorner returns the CornerKind of the angle turned at b,
// coming from a and heading to c. A zero-length incoming or outgoing
// edge (degenerate vertex) classifies as CornerUndefined -- the
// optimizer must never treat a collapsed vertex as a cheap straight.
func classifyCorner(a, b, c geom.Point) CornerKind {
	v1 := b.Sub(a)
	v2 := c.Sub(b)
	if v1.LengthSquared() == 0 || v2.LengthSquared() == 0 {
		return CornerUndefined
	}
	cross := v1.Cross(v2)
	dot := v1.Dot(v2)
	switch {
	case cross == 0 && dot > 0:
		return CornerStraight
	case cross == 0 && dot < 0:
		return CornerHalfFull // 180 degree reversal
	case dot == 0:
		return CornerRight
	case dot > 0:
		return CornerObtuse
	default:
		return CornerAcute
	}
}

// CornerCost returns the total corner-cost of poly, summing the cost
// of every interior vertex's angle.
func CornerCost(poly geom.Polyline) int64 {
	n := poly.Len()
	if n < 3 {
		return 0
	}
	var total int64
	for i := 1; i < n-1; i++ {
		total += cornerCost[classifyCorner(poly.Points[i-1], poly.Points[i], poly.Points[i+1])]
	}
	return total
}

// ObtuseCornerCount returns the number of interior vertices classified
// as anything but CornerStraight (CornerObtuse, CornerRight,
// CornerAcute, CornerHalfFull or CornerUndefined) -- the
// design document's LIMIT_CORNER_COUNT constraint counts these (a
// CornerStraight vertex, a collinear pass-through, is not a corner at
// all in that accounting).
func ObtuseCornerCount(poly geom.Polyline) int {
	n := poly.Len()
	if n < 3 {
		return 0
	}
	count := 0
	for i := 1; i < n-1; i++ {
		if classifyCorner(poly.Points[i-1], poly.Points[i], poly.Points[i+1]) != CornerStraight {
			count++
		}
	}
	return count
}

// cost bundles a candidate's corner-cost and length so "better" (the
// design document's acceptance rule) can be evaluated without
// recomputing either.
type cost struct {
	corner int64
	length int64
}

func costOf(poly geom.Polyline) cost {
	return cost{corner: CornerCost(poly), length: poly.Length()}
}

// tolerance bundles the configurable ratios a candidate is allowed to
// be "within" the original and still accepted, "both
// within configurable tolerance ratios".
type tolerance struct {
	CornerRatio float64 // e.g. 1.0 = no slack
	LengthRatio float64
}

func defaultTolerance() tolerance { return tolerance{CornerRatio: 1.0, LengthRatio: 1.0} }

// better reports whether cand strictly improves on base, or is within
// tol's tolerance on both axes while not regressing either -- the
// design document's "better" predicate: "new.corner < old.corner AND
// new.length < old.length OR both within configurable tolerance
// ratios."
func better(cand, base cost, tol tolerance) bool {
	if cand.corner < base.corner && cand.length < base.length {
		return true
	}
	cornerOK := float64(cand.corner) <= float64(base.corner)*tol.CornerRatio
	lengthOK := float64(cand.length) <= float64(base.length)*tol.LengthRatio
	return cornerOK && lengthOK && (cand.corner < base.corner || cand.length < base.length)
}
