package topology

import (
	"math"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// AssembleCluster returns seed plus every item reachable by repeated
// bbox-overlap expansion, restricted to layer l, excluding
// excludedNet, and capped by areaExpansionLimit relative to the
// seed's own bbox --. Grounded on lvlath/bfs's
// visited-queue loop (bfs.go), generalized from graph-neighbour
// expansion to bbox-overlap expansion with an area cap instead of a
// depth cap.
func AssembleCluster(src JointSource, seed item.Item, l layer.ID, areaExpansionLimit float64, excludedNet netid.ID) []item.Item {
	seedBB := seed.BBox()
	limitBB := inflateByAreaRatio(seedBB, areaExpansionLimit)

	visited := map[uint64]bool{uint64(seed.UID()): true}
	result := []item.Item{seed}
	frontier := []item.Item{seed}

	for len(frontier) > 0 {
		var next []item.Item
		for _, it := range frontier {
			for _, cand := range src.ItemsOverlapping(it.BBox(), l, excludedNet) {
				if visited[uint64(cand.UID())] {
					continue
				}
				if !limitBB.Intersects(cand.BBox()) {
					continue
				}
				visited[uint64(cand.UID())] = true
				result = append(result, cand)
				next = append(next, cand)
			}
		}
		frontier = next
	}
	return result
}

// inflateByAreaRatio grows r so its area is ratio times larger,
// keeping it centered, "bounding-box expansion
// limited by areaExpansionLimit". ratio <= 1 leaves r unchanged.
func inflateByAreaRatio(r geom.Rect, ratio float64) geom.Rect {
	if ratio <= 1 {
		return r
	}
	scale := math.Sqrt(ratio)
	w := float64(r.Max.X - r.Min.X)
	h := float64(r.Max.Y - r.Min.Y)
	dw := int64((w*scale - w) / 2)
	dh := int64((h*scale - h) / 2)
	return geom.Rect{
		Min: geom.Point{X: r.Min.X - dw, Y: r.Min.Y - dh},
		Max: geom.Point{X: r.Max.X + dw, Y: r.Max.Y + dh},
	}
}
