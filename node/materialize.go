package node

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
)

// PutLine commits ln's current polyline shape to n as a fresh chain of
// Segment items (and, if ln carries one, a trailing Via at the last
// point), first removing ln's old constituent Links/Via. This is the
// inverse of AssembleLine: where AssembleLine walks committed items
// into a transient Line, PutLine walks a transient Line's edited shape
// back into committed items, the way the shove and walkaround engines
// need to after reshaping a LINE.
//
// Every edge is committed as a Segment regardless of ln.Poly.ArcIndex:
// shove and walkaround only ever produce polyline detours, never
// re-derive a geometric arc from flattened samples.
func (n *Node) PutLine(ln item.Line) []item.Linked {
	for _, old := range ln.Links {
		_ = n.Remove(old)
	}
	if ln.Via != nil {
		_ = n.Remove(*ln.Via)
	}

	pts := ln.Poly.Points
	out := make([]item.Linked, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		s, ok := item.NewSegment(n.gen, pts[i], pts[i+1], ln.Width, ln.Layer, ln.NetID)
		if !ok {
			continue
		}
		n.Add(s)
		out = append(out, s)
	}
	if ln.Via != nil && len(pts) > 0 {
		v := ln.Via.WithPosition(pts[len(pts)-1])
		n.Add(v)
	}
	return out
}

// DragCorner moves one endpoint of a Linked item that currently
// terminates at from to to, replacing it in n, 
// pushOrShoveVia's "drag the matching corner of every incident line".
// Unrecognized item kinds (never Linked by anything but Segment/Arc/
// Via today) are returned unchanged.
func DragCorner(n *Node, it item.Linked, from, to geom.Point) item.Linked {
	switch v := it.(type) {
	case item.Segment:
		var out item.Segment
		if v.P0.Equal(from) {
			out = v.WithEndpoints(to, v.P1)
		} else {
			out = v.WithEndpoints(v.P0, to)
		}
		_ = n.Replace(v, out)
		return out
	case item.Arc:
		out := v.WithEndpoints(from, to)
		_ = n.Replace(v, out)
		return out
	case item.Via:
		out := v.WithPosition(to)
		_ = n.Replace(v, out)
		return out
	default:
		return it
	}
}
