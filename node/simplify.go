package node

import "github.com/katalvlaran/pns/item"

// simplifyLine runs the pre-shove simplification pass of :
// collinear and zero-length segments are dropped from the assembled
// polyline whenever doing so does not change the line's endpoints or
// its arc tagging alignment.
func simplifyLine(ln item.Line) item.Line {
	simplified, changed := ln.Poly.SimplifyCollinear()
	if !changed {
		return ln
	}
	return ln.WithPoly(simplified)
}
