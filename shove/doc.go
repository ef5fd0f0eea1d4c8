// Package shove implements the push-and-shove engine of :
// given a set of drag heads, it walks a chain of colliding obstacles,
// pushing vias by their minimum translation vector and re-walking
// obstacle lines around the pusher's hull chain, until nothing
// collides or the iteration/time budget runs out.
//
// Grounded on lvlath/core.Graph's branch-and-merge idiom generalized
// from a single mutable graph to node.Node's copy-on-write branch
// tree: a Move call branches the current node the same way a Graph
// clone isolates speculative edits. On Done or Incomplete it records a
// springback tag and returns the branch uncommitted, leaving the commit
// to the caller; on Failed it returns nil and commits nothing.
package shove
