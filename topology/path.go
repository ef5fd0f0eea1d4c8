package topology

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/netid"
)

// AssembleTrivialPath walks joint-to-joint across degree-2 ("trivial")
// joints in both directions from seed, returning the ordered chain and
// its two terminal points --. Grounded on lvlath/dfs's
// single-direction stack walk (dfs.go), run twice (once per anchor)
// since a trivial path, unlike a DFS tree, has exactly two ends.
func AssembleTrivialPath(src JointSource, seed item.Linked, net netid.ID) ([]item.Linked, [2]geom.Point) {
	anchors := seed.Anchors()
	if len(anchors) != 2 {
		p := anchors[0]
		return []item.Linked{seed}, [2]geom.Point{p, p}
	}

	fwd, t1 := walkTrivial(src, seed, anchors[1], net)
	bwd, t0 := walkTrivial(src, seed, anchors[0], net)

	full := make([]item.Linked, 0, len(bwd)+len(fwd)+1)
	for i := len(bwd) - 1; i >= 0; i-- {
		full = append(full, bwd[i])
	}
	full = append(full, seed)
	full = append(full, fwd...)
	return full, [2]geom.Point{t0, t1}
}

// walkTrivial walks from cur's anchor point `going` outward, crossing
// degree-2 unlocked joints, and returns the items visited (not
// including cur) plus the final terminal point.
func walkTrivial(src JointSource, cur item.Linked, going geom.Point, net netid.ID) ([]item.Linked, geom.Point) {
	var path []item.Linked
	anchor := going
	for {
		j, ok := src.JointAt(anchor, net)
		if !ok || len(j.Links) != 2 || j.Locked {
			return path, anchor
		}
		var next item.Linked
		for _, l := range j.Links {
			if l.UID() != cur.UID() {
				next = l
				break
			}
		}
		if next == nil {
			return path, anchor
		}
		na := otherAnchor(next, anchor)
		path = append(path, next)
		cur = next
		anchor = na
	}
}

func otherAnchor(it item.Linked, from geom.Point) geom.Point {
	anchors := it.Anchors()
	if len(anchors) < 2 {
		return anchors[0]
	}
	if anchors[0].Equal(from) {
		return anchors[1]
	}
	return anchors[0]
}

// AssembleTuningPath behaves like AssembleTrivialPath but trims any
// portion of the path lying strictly inside a pad in pads, and records
// a synthetic straight entry Segment from the trim point to that pad's
// anchor (, used by length tuning and diff-pair analysis;
// those features live in the host Non-goals, but the
// path-assembly primitive itself is in scope).
func AssembleTuningPath(src JointSource, seed item.Linked, net netid.ID, pads []item.Solid) ([]item.Linked, []geom.Segment) {
	path, terminals := AssembleTrivialPath(src, seed, net)
	var entries []geom.Segment

	trimEnd := func(fromFront bool) {
		for len(path) > 0 {
			var idx int
			if fromFront {
				idx = 0
			} else {
				idx = len(path) - 1
			}
			anchors := path[idx].Anchors()
			var pt geom.Point
			if fromFront {
				pt = terminals[0]
			} else {
				pt = terminals[1]
			}
			pad, ok := padContaining(pads, pt)
			if !ok {
				return
			}
			if len(anchors) == 2 && padContainsPoint(pad, anchors[0]) && padContainsPoint(pad, anchors[1]) {
				if fromFront {
					path = path[1:]
					terminals[0] = anchors[1]
				} else {
					path = path[:len(path)-1]
					terminals[1] = anchors[0]
				}
				continue
			}
			entries = append(entries, geom.Segment{P0: pt, P1: pad.Pos})
			return
		}
	}
	trimEnd(true)
	trimEnd(false)
	return path, entries
}

func padContaining(pads []item.Solid, p geom.Point) (item.Solid, bool) {
	for _, pad := range pads {
		if padContainsPoint(pad, p) {
			return pad, true
		}
	}
	return item.Solid{}, false
}

func padContainsPoint(pad item.Solid, p geom.Point) bool {
	return pad.BBox().Contains(p)
}
