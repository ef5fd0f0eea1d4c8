package item

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/uid"
)

// ViaType distinguishes a through via from a blind/buried/micro via,
//.
type ViaType uint8

const (
	ViaThrough ViaType = iota
	ViaBlind
	ViaBuried
	ViaMicro
)

// StackMode selects how a Via's per-layer pad diameters are derived,
// and the GLOSSARY entry "Padstack".
type StackMode uint8

const (
	StackNormal StackMode = iota
	StackFrontInnerBack
	StackCustom
)

// Padstack maps a layer to the via's copper radius on that layer. For
// StackNormal every layer in the via's range maps to the same radius;
// Via.RadiusOnLayer resolves that case lazily instead of populating
// every entry, so StackNormal padstacks stay O(1) to build.
type Padstack map[layer.ID]int64

// Via is a cylindrical transition. A via with
// IsVirtual set is a VVIA inserted by FixupVirtualVias: it anchors a
// shove pivot but is never committed to the host (spec §3, §4.1).
type Via struct {
	Base
	Pos geom.Point
	LayerSet layer.Set
	Pad Padstack
	Uniform int64 // single-radius fast path for StackNormal, radius in board units
	Drill int64
	Type ViaType
	NetID netid.ID
	Stack StackMode
	Hole *Hole
	IsFree bool
	IsVirtual bool
}

// NewVia constructs a through via with a uniform diameter across its
// layer range and mints its UID.
func NewVia(gen *uid.Gen, pos geom.Point, layers layer.Set, diameter, drill int64, net netid.ID) Via {
	v := Via{
		Pos: pos,
		LayerSet: layers,
		Uniform: diameter / 2,
		Drill: drill,
		Type: ViaThrough,
		NetID: net,
		Stack: StackNormal,
	}
	v.SetUID(gen.Next())
	return v
}

// NewVirtualVia constructs a VVIA FixupVirtualVias:
// non-routable, never committed, radius large enough to cover the
// widest incident track plus a hull margin (caller-supplied).
func NewVirtualVia(gen *uid.Gen, pos geom.Point, layers layer.Set, radius int64, net netid.ID) Via {
	v := NewVia(gen, pos, layers, radius*2, 0, net)
	v.IsVirtual = true
	v.IsFree = false
	return v
}

func (v Via) Kind() Kind { return KindVia }
func (v Via) Net() netid.ID { return v.NetID }
func (v Via) Layers() layer.Set { return v.LayerSet }

func (v Via) Anchors() []geom.Point { return []geom.Point{v.Pos} }

// RadiusOnLayer returns the via's copper radius on l. For StackNormal
// this is Uniform regardless of l (spec §9's "uniformly require a
// layer argument" open question is resolved exactly this way: the
// argument is always required, and is ignored only when the shape is
// provably layer-independent, i.e. StackNormal).
func (v Via) RadiusOnLayer(l layer.ID) int64 {
	if v.Stack == StackNormal {
		return v.Uniform
	}
	if r, ok := v.Pad[l]; ok {
		return r
	}
	return v.Uniform
}

// MaxRadius returns the largest copper radius across the via's stack,
// used for the conservative BBox and for the via-fixup heuristic's
// "wider than the via's diameter" comparisons (spec §4.5 step 4).
func (v Via) MaxRadius() int64 {
	r := v.Uniform
	for _, pr := range v.Pad {
		if pr > r {
			r = pr
		}
	}
	return r
}

func (v Via) BBox() geom.Rect {
	return geom.Circle{Center: v.Pos, Radius: v.MaxRadius()}.BBox()
}

// WithPosition returns a copy of v translated to pos, keeping its UID
// and stack configuration -- used by pushOrShoveVia (spec §4.5.1).
func (v Via) WithPosition(pos geom.Point) Via {
	out := v
	out.Pos = pos
	return out
}
