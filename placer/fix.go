package placer

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
)

// FixRoute is the fix-on-click finalization: it runs simplifyNewLine
// over the combined tail+head chain, materializes the result as
// primitives on the placer's branch (or n if no shove branch is live,
// e.g. mark-obstacles mode), commits a live branch into its parent
// itself, and returns the resulting Line. The tail then holds the
// fixed chain and the head restarts at its last point.
func (p *Placer) FixRoute() (item.Line, error) {
	final := simplifyNewLine(p.combined())

	ln := item.Line{
		Poly:  final,
		Width: p.cfg.Width,
		Layer: p.cfg.Layer,
		NetID: p.cfg.Net,
	}

	// A live shove branch needs an explicit Commit to fold its edits
	// into p.n; mark-obstacles and walkaround modes write straight to
	// p.n (the root of this placer session), which has no parent to
	// commit into.
	target := p.branch
	if target == nil {
		target = p.n
		ln.Links = target.PutLine(ln)
	} else {
		ln.Links = target.PutLine(ln)
		if err := target.Commit(); err != nil {
			return item.Line{}, err
		}
	}

	p.tail = final
	p.head = geom.NewPolyline(final.Last())
	p.branch = nil

	return ln, nil
}

// simplifyNewLine merges collinear runs in the finished chain, the
// placer's collinear-merge-and-simplify pass over the new line's own
// joints before it is handed to PutLine.
func simplifyNewLine(pl geom.Polyline) geom.Polyline {
	if simplified, changed := pl.SimplifyCollinear(); changed {
		return simplified
	}
	return pl
}
