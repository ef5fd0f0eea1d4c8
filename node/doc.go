// Package node implements NODE, the branched, copy-on-write board
// world of /§4.1 (component E): items, the JOINT graph
// (component C), the spatial index (component D, via package index),
// and the LINE assembler (component G).
//
// Grounded on lvlath/core's Graph: core.Graph is a single mutable
// graph guarded by split muVert/muEdgeAdj locks; Node generalizes that
// into a tree of branches, each with its own lock pair, an "override"
// shadow set for parent items it has logically deleted, and a garbage
// set reaped at Commit. The adjacency-list idiom
// (map[string]map[string]map[string]struct{}) becomes the joint map
// (map[JointKey]*Joint, Joint.Links map[uid.ID]item.Linked); the
// atomic nextEdgeID counter becomes uid.Gen, shared down the whole
// branch tree from the root so IDs stay globally unique.
package node
