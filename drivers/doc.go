// Package drivers implements the per-mode drag front-ends: one type
// per drag mode (segment/corner, via, free-angle, component, diff-pair)
// translating a cursor event into a shove head set and a
// commit-or-springback decision, the way the shove engine itself stays
// decoupled from any particular drag UI.
//
// Grounded on shove.Engine's own façade shape (construct once per
// episode, feed it heads, read back a branch and a status) generalized
// one layer up: where shove.Head is "a line or a via", a driver is "the
// part of the application that knows how to build one from whatever the
// user is holding", mirrored on the thin per-algorithm entrypoints
// lvlath/bfs and lvlath/dijkstra wrap around the same underlying
// traversal core.
package drivers
