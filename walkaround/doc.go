// Package walkaround implements the walkaround engine of :
// given a colliding LINE, it walks the line's crossing segment around
// the offending obstacle's HULL, clockwise or counterclockwise, until
// the line no longer collides or an iteration/time budget runs out.
//
// Grounded on lvlath/dijkstra's shortest-path-over-candidates shape:
// the "shortest" policy races the clockwise and counterclockwise
// results and, after preferring a result within the expansion budget
// and then a Done status, keeps the one with the lower total length, the same
// accept-the-cheaper-candidate idiom dijkstra.Dijkstra applies per
// relaxed edge, generalized here to two whole-path candidates instead
// of per-edge weights.
package walkaround
