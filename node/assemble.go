package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// AssembleLine walks the joint graph outward from seed in both
// directions, collecting every segment/arc chained to it through a
// two-link corner joint on the same net, layer and (unless
// opts.AllowWidthMismatch) width, and returns the result as a single
// item.Line. The walk mirrors topology.AssembleTrivialPath's
// shape but needs extra stop conditions topology's generic walker
// doesn't carry (locked-joint policy, width matching), so it is
// implemented directly against this branch's own joint map.
func (n *Node) AssembleLine(seed item.Linked, opts AssembleOptions) item.Line {
	anchors := seed.Anchors()
	if len(anchors) != 2 {
		return simplifyLine(buildLine([]item.Linked{seed}, anchors[0]))
	}
	net := seed.Net()

	fwd, t1, loopFwd := n.walkFrom(seed, anchors[1], net, opts)
	bwd, t0, loopBwd := n.walkFrom(seed, anchors[0], net, opts)

	chain := make([]item.Linked, 0, len(bwd)+len(fwd)+1)
	for i := len(bwd) - 1; i >= 0; i-- {
		chain = append(chain, bwd[i])
	}
	chain = append(chain, seed)
	chain = append(chain, fwd...)

	ln := buildLine(chain, t0)
	ln.Loop = (loopFwd || loopBwd) && t0.Equal(t1)

	if j, ok := n.FindJoint(t1, net); ok {
		if v := viaAt(j); v != nil {
			ln.Via = v
		}
	}
	if ln.Via == nil {
		if j, ok := n.FindJoint(t0, net); ok {
			if v := viaAt(j); v != nil {
				ln.Via = v
			}
		}
	}
	return simplifyLine(ln)
}

// walkFrom walks from seed's anchor point `going` outward across
// two-link joints, honoring opts, and reports whether the walk closed
// back on seed (a loop).
func (n *Node) walkFrom(seed item.Linked, going geom.Point, net netid.ID, opts AssembleOptions) ([]item.Linked, geom.Point, bool) {
	var path []item.Linked
	cur := seed
	anchor := going
	for {
		j, ok := n.FindJoint(anchor, net)
		if !ok || len(j.Links) != 2 {
			return path, anchor, false
		}
		if j.Locked && !opts.FollowLocked {
			return path, anchor, false
		}
		var next item.Linked
		for _, l := range j.Links {
			if l.UID() != cur.UID() {
				next = l
				break
			}
		}
		if next == nil {
			return path, anchor, false
		}
		nl, isTrack := layerOf(next)
		if !isTrack {
			return path, anchor, false // via or pad: not a corner
		}
		if cl, ok := layerOf(cur); ok && cl != nl {
			return path, anchor, false // layer change
		}
		if !widthCompatible(cur, next) && !opts.AllowWidthMismatch {
			return path, anchor, false
		}
		if next.UID() == seed.UID() {
			return path, anchor, true
		}
		na := otherAnchorOf(next, anchor)
		path = append(path, next)
		cur = next
		anchor = na
	}
}

func otherAnchorOf(it item.Linked, from geom.Point) geom.Point {
	anchors := it.Anchors()
	if len(anchors) < 2 {
		return anchors[0]
	}
	if anchors[0].Equal(from) {
		return anchors[1]
	}
	return anchors[0]
}

func widthCompatible(a, b item.Linked) bool {
	wa, oka := widthOf(a)
	wb, okb := widthOf(b)
	if !oka || !okb {
		return true
	}
	return wa == wb
}

func widthOf(it item.Linked) (int64, bool) {
	switch v := it.(type) {
	case item.Segment:
		return v.Width, true
	case item.Arc:
		return v.Width, true
	default:
		return 0, false
	}
}

func layerOf(it item.Linked) (layer.ID, bool) {
	switch v := it.(type) {
	case item.Segment:
		return v.Layer, true
	case item.Arc:
		return v.Layer, true
	default:
		return 0, false
	}
}

func viaAt(j *Joint) *item.Via {
	for _, l := range j.Links {
		if v, ok := l.(item.Via); ok {
			return &v
		}
	}
	return nil
}

// buildLine turns an ordered chain of linked items starting at start
// into an item.Line. Each Arc's two endpoint vertices are tagged with
// a shared, otherwise-unused group id in ArcIndex (
// "arc-index vertex tagging") so a later simplification pass never
// treats an arc's chord as a mergeable straight edge.
func buildLine(chain []item.Linked, start geom.Point) item.Line {
	pts := []geom.Point{start}
	arcIdx := []int{-1}
	cur := start
	var width int64
	var l layer.ID
	var net netid.ID
	nextArcGroup := 0
	for _, it := range chain {
		na := otherAnchorOf(it, cur)
		pts = append(pts, na)
		tag := -1
		if _, ok := it.(item.Arc); ok {
			tag = nextArcGroup
			nextArcGroup++
			arcIdx[len(arcIdx)-1] = tag
		}
		arcIdx = append(arcIdx, tag)
		if w, ok := widthOf(it); ok {
			width = w
		}
		if ll, ok := layerOf(it); ok {
			l = ll
		}
		net = it.Net()
		cur = na
	}
	return item.Line{
		Poly: geom.Polyline{Points: pts, ArcIndex: arcIdx},
		Width: width,
		Layer: l,
		NetID: net,
		Links: chain,
	}
}
