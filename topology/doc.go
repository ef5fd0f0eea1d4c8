// Package topology implements the cluster and path-assembly helpers of
// : AssembleCluster, AssembleTrivialPath and
// AssembleTuningPath.
//
// Grounded on lvlath's bfs/dfs packages: AssembleCluster is a
// breadth-first expansion over "touches within an area-expansion
// limit" exactly like bfs.BFS's visited-queue loop, generalized from
// graph-vertex neighbours to bbox-overlap neighbours; AssembleTrivialPath
// is a depth-first walk that, unlike dfs.DFS, stops at the first
// non-degree-2 joint rather than exhausting the graph. Neither type
// here is a core.Graph: topology operates against the small
// JointSource interface so it has no import-time dependency on
// package node, keeping node -> topology a one-way edge.
package topology
