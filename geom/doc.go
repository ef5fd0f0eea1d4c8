// Package geom provides the exact, integer-coordinate 2D geometry used
// throughout the router core: points, segments, arcs, circles,
// rectangles and polylines, plus the handful of predicates (distance,
// intersection, bounding box, minimum translation vector) every other
// package builds on.
//
// All positions and widths are signed 64-bit integers in a fixed board
// unit (1 nanometre is the conventional choice for callers). Float64
// is used only inside a few helpers that round their results back to
// the integer grid: Arc.Center and Arc.SampleOffset, the crossing
// point of two segments, and PointInPolygon's ray-crossing test.
// Callers that need floats of their own (the hull builder's
// offsetting step) convert at their own boundary and convert back
// before results re-enter this package.
package geom
