// Package index implements the spatial index of /component D:
// a fast bounding-box query structure returning collision candidates.
//
// Grounded on lvlath/gridgraph's cell-bucket model (a 2D grid mapping
// cells to the items touching them, with neighbour expansion for
// connectivity queries): this package generalizes that from a dense
// [][]int grid of fixed W×H to a sparse map of board-unit cells, since
// a board's coordinate space is orders of magnitude larger than any
// grid gridgraph was built to hold densely.
package index
