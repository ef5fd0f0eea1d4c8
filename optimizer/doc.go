// Package optimizer implements the line optimizer of the design
// document's "Optimizer" module: it takes one item.Line produced by
// the shove or walkaround engines and returns a possibly-improved
// Line -- fewer corners, shorter total length, a clean pad exit --
// without changing its endpoints or violating the constraints its
// caller registers.
//
// Grounded on lvlath/tsp.ThreeOpt's local-search shape (three_opt.go):
// both are "try replacing a sub-chain with a cheaper one, accept the
// move if a cost function strictly improves" loops over a fixed
// candidate neighborhood, evaluated in a first-improvement order
// rather than exhaustively.
package optimizer
