// Package rules implements RULE_RESOLVER : the host
// callback surface the core consults for clearance, net-class and
// diff-pair rules, plus a cache for built hulls so repeated walkaround/
// shove passes over the same obstacle don't rebuild its offset
// polygon. Grounded on lvlath/core.Graph's split-lock idiom applied to
// a single cache map guarded against concurrent host-thread readers
//.
package rules

import (
	"sync"

	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// ConstraintKind enumerates the constraint predicates 
// names (RESTRICT_AREA, RESTRICT_VERTEX_RANGE, PRESERVE_VERTEX,
// KEEP_TOPOLOGY, LIMIT_CORNER_COUNT).
type ConstraintKind uint8

const (
	RestrictArea ConstraintKind = iota
	RestrictVertexRange
	PreserveVertex
	KeepTopology
	LimitCornerCount
)

// Constraint is one optimizer constraint instance.
type Constraint struct {
	Kind ConstraintKind
	Area geom.Rect
	From, To int
	Vertex geom.Point
	Limit int
}

// Resolver is RULE_RESOLVER : the read-only rule surface
// the core consults while routing. A host implements this against its
// own net-class/design-rule tables.
type Resolver interface {
	// Clearance returns the required gap between items on net a and
	// net b (same net returns 0).
	Clearance(a, b netid.ID) int64

	// ClearanceEpsilon returns the small slack subtracted from
	// Clearance to absorb rounding in hull construction.
	ClearanceEpsilon() int64

	// QueryConstraint returns the optimizer constraints that apply to
	// net on layer l.
	QueryConstraint(net netid.ID, l layer.ID) []Constraint

	// HullCache returns a cached hull for it at the given clearance/
	// walkaround width/layer, if one has been built and not since
	// invalidated by ClearCacheForItems.
	HullCache(it item.Item, clearance, walkaroundWidth int64, l layer.ID) (geom.Polyline, bool)

	// StoreHull records a built hull for later HullCache lookups.
	StoreHull(it item.Item, clearance, walkaroundWidth int64, l layer.ID, hull geom.Polyline)

	// ClearCacheForItems invalidates every cached hull for the given
	// items, called after any of them is moved or replaced.
	ClearCacheForItems(items []item.Item)

	// DpNetPair returns the complementary net of a differential pair
	// partner, if net is one leg of a diff pair known to the host.
	DpNetPair(net netid.ID) (netid.ID, bool)

	// NetName returns a human-readable net name, for diagnostics only.
	NetName(net netid.ID) string
}

type hullKey struct {
	id uint64
	clearance, wWid int64
	layer layer.ID
}

// ClassRule is one net class's design rule row.
type ClassRule struct {
	TrackWidth int64
	Clearance int64
	ViaDiameter int64
	ViaDrill int64
	DiffPairGap int64
}

// StaticResolver is a concrete Resolver backed by a net-class table,
// for tests. Its hull cache is a plain map guarded by a dedicated
// mutex, split from the class-table lock the way core.Graph splits
// muVert from muEdgeAdj -- the class table changes only through the
// Set* methods, but the hull cache is written on every cache miss from
// whatever goroutine is walking.
type StaticResolver struct {
	muClasses sync.RWMutex
	classes map[netid.ID]ClassRule
	defClass ClassRule

	muCache sync.RWMutex
	cache map[hullKey]geom.Polyline

	epsilon int64
	names map[netid.ID]string
	dpPairs map[netid.ID]netid.ID
}

// NewStaticResolver returns a StaticResolver with def as the fallback
// class rule for any net not present in classes.
func NewStaticResolver(def ClassRule) *StaticResolver {
	return &StaticResolver{
		classes: make(map[netid.ID]ClassRule),
		defClass: def,
		cache: make(map[hullKey]geom.Polyline),
		epsilon: 10,
		names: make(map[netid.ID]string),
		dpPairs: make(map[netid.ID]netid.ID),
	}
}

// SetClassRule assigns net's class rule.
func (r *StaticResolver) SetClassRule(net netid.ID, rule ClassRule) {
	r.muClasses.Lock()
	defer r.muClasses.Unlock()
	r.classes[net] = rule
}

// SetNetName assigns net's display name.
func (r *StaticResolver) SetNetName(net netid.ID, name string) {
	r.muClasses.Lock()
	defer r.muClasses.Unlock()
	r.names[net] = name
}

// SetDiffPair registers a/b as complementary diff-pair legs.
func (r *StaticResolver) SetDiffPair(a, b netid.ID) {
	r.muClasses.Lock()
	defer r.muClasses.Unlock()
	r.dpPairs[a] = b
	r.dpPairs[b] = a
}

func (r *StaticResolver) classOf(net netid.ID) ClassRule {
	r.muClasses.RLock()
	defer r.muClasses.RUnlock()
	if c, ok := r.classes[net]; ok {
		return c
	}
	return r.defClass
}

func (r *StaticResolver) Clearance(a, b netid.ID) int64 {
	if a.Equal(b) {
		return 0
	}
	ca, cb := r.classOf(a).Clearance, r.classOf(b).Clearance
	if ca > cb {
		return ca
	}
	return cb
}

func (r *StaticResolver) ClearanceEpsilon() int64 { return r.epsilon }

func (r *StaticResolver) QueryConstraint(net netid.ID, l layer.ID) []Constraint { return nil }

func (r *StaticResolver) HullCache(it item.Item, clearance, walkaroundWidth int64, l layer.ID) (geom.Polyline, bool) {
	r.muCache.RLock()
	defer r.muCache.RUnlock()
	pl, ok := r.cache[hullKey{uint64(it.UID()), clearance, walkaroundWidth, l}]
	return pl, ok
}

func (r *StaticResolver) StoreHull(it item.Item, clearance, walkaroundWidth int64, l layer.ID, hull geom.Polyline) {
	r.muCache.Lock()
	defer r.muCache.Unlock()
	r.cache[hullKey{uint64(it.UID()), clearance, walkaroundWidth, l}] = hull
}

func (r *StaticResolver) ClearCacheForItems(items []item.Item) {
	r.muCache.Lock()
	defer r.muCache.Unlock()
	for _, it := range items {
		id := uint64(it.UID())
		for k := range r.cache {
			if k.id == id {
				delete(r.cache, k)
			}
		}
	}
}

func (r *StaticResolver) DpNetPair(net netid.ID) (netid.ID, bool) {
	r.muClasses.RLock()
	defer r.muClasses.RUnlock()
	other, ok := r.dpPairs[net]
	return other, ok
}

func (r *StaticResolver) NetName(net netid.ID) string {
	r.muClasses.RLock()
	defer r.muClasses.RUnlock()
	if name, ok := r.names[net]; ok {
		return name
	}
	return ""
}
