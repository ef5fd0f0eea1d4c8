package drivers

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// DiffPairDriver is the diff-pair drag mode: both legs of a coupled
// pair move together as one batched shove episode, and settle through
// optimizer.OptimizeDiffPair rather than two independent Optimize
// passes so their gap is kept rather than let the two legs drift
// ("Component and diff-pair drivers batch multiple
// heads into one shove Move call"). This drives the coupled pair's
// geometry only; gateway placement and the diff-pair placer state
// machine stay out of scope per spec.md §1.
type DiffPairDriver struct {
	*session
	pair     optimizer.DiffPair
	dragLast bool
}

// NewDiffPairDriver starts a diff-pair drag of pair, with dragLast
// selecting which shared-side endpoint the cursor controls on both
// legs.
func NewDiffPairDriver(n *node.Node, resolver rules.Resolver, pair optimizer.DiffPair, dragLast bool, cfg Config) *DiffPairDriver {
	s := newSession(n, resolver, cfg)
	s.skipAutoOptimize = true
	return &DiffPairDriver{session: s, pair: pair, dragLast: dragLast}
}

// Drag moves both legs' driven endpoint to cursor, preserving each
// leg's original offset from the other at that end, and runs one
// batched shove episode over both.
func (d *DiffPairDriver) Drag(cursor geom.Point) Result {
	pOffset, nOffset := geom.Point{}, geom.Point{}
	if d.dragLast {
		pOffset, nOffset = d.pair.P.Poly.Last(), d.pair.N.Poly.Last()
	} else {
		pOffset, nOffset = d.pair.P.Poly.First(), d.pair.N.Poly.First()
	}
	gap := nOffset.Sub(pOffset) // N's original offset from P at the driven end

	p := d.endpointTo(d.pair.P, cursor)
	n := d.endpointTo(d.pair.N, cursor.Add(gap))

	res := d.move([]shove.Head{{Line: &p}, {Line: &n}})
	if res.Status == Rejected {
		return res
	}

	out := optimizer.OptimizeDiffPair(res.Branch, d.resolver, optimizer.DiffPair{P: p, N: n}, d.cfg.Effort)
	out.P.Links = res.Branch.PutLine(out.P)
	out.N.Links = res.Branch.PutLine(out.N)
	d.pair = out
	return res
}

func (d *DiffPairDriver) endpointTo(ln item.Line, cursor geom.Point) item.Line {
	pts := append([]geom.Point(nil), ln.Poly.Points...)
	if d.dragLast {
		pts[len(pts)-1] = cursor
	} else {
		pts[0] = cursor
	}
	ln.Poly = geom.NewPolyline(pts...)
	ln.Policy |= item.PolicyShove
	return ln
}
