// Package placer implements the line placer: head/tail extension
// during live routing (spec.md §4.8). A Placer maintains two
// polylines -- tail (already committed to the host but not yet fixed)
// and head (from tail's last point to the cursor) -- and on every
// cursor move runs the documented pipeline: routeHead, handle self-
// intersections, handle pullback, reduce the tail, merge head into
// tail, and optimize the tail/head transition.
//
// Grounded on shove.Engine's own per-episode shape for the shove-mode
// branch of routeHead (a fresh branch off the committed NODE per
// attempt, discarded unless it is the one the user fixes), and on
// lvlath/dijkstra's shortest-path-over-candidates idea generalized to
// reduceTail's small fixed candidate set: for each trailing window,
// largest first, evaluate the 2-segment replacement routes from the
// window's anchor to the tail's own last point and keep the first
// non-colliding, direction-preserving one. reduceTail does not use the
// cursor position: the reduced tail ends where it ended before.
package placer
