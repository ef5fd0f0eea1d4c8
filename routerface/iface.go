// Package routerface implements ROUTER_IFACE : the
// callback surface a host implements so the core can resolve net
// names/codes, translate between its own layer numbering and the
// host's board layer numbering, and push ratline/debug display
// updates -- without the core ever importing a host package. No other
// package of this module imports routerface; NullIface is a no-op
// implementation for callers that have no host.
package routerface

import (
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
)

// DebugDecorator receives optional diagnostic shapes/labels emitted
// while routing, e.g. for a host's debug overlay. The default
// (NullIface.GetDebugDecorator) discards everything.
type DebugDecorator interface {
	AddPoint(p interface{}, color int)
	AddLine(pts interface{}, color int, width int64)
	Message(format string, args...interface{})
}

// Iface is ROUTER_IFACE.
type Iface interface {
	GetNetName(net netid.ID) string
	GetNetCode(name string) netid.ID
	GetOrphanedNetHandle() netid.ID

	GetPNSLayerFromBoardLayer(boardLayer int) layer.ID
	GetBoardLayerFromPNSLayer(l layer.ID) int

	IsFlashedOnLayer(it item.Item, l layer.ID) bool

	DisplayRatline(from, to item.Item, net netid.ID)
	DisplayPathLine(ln item.Line)

	CalculateRoutedPathLength(net netid.ID) int64
	CalculateRoutedPathDelay(net netid.ID) int64

	GetDebugDecorator() DebugDecorator
}

// NullIface is the no-op-by-default sink every internal package falls
// back to when a host hasn't supplied one.
type NullIface struct{}

func (NullIface) GetNetName(net netid.ID) string { return "" }
func (NullIface) GetNetCode(name string) netid.ID { return netid.Orphan }
func (NullIface) GetOrphanedNetHandle() netid.ID { return netid.Orphan }
func (NullIface) GetPNSLayerFromBoardLayer(b int) layer.ID { return layer.ID(b) }
func (NullIface) GetBoardLayerFromPNSLayer(l layer.ID) int { return int(l) }
func (NullIface) IsFlashedOnLayer(it item.Item, l layer.ID) bool {
	return it.Layers().Contains(l)
}
func (NullIface) DisplayRatline(from, to item.Item, net netid.ID) {}
func (NullIface) DisplayPathLine(ln item.Line) {}
func (NullIface) CalculateRoutedPathLength(net netid.ID) int64 { return 0 }
func (NullIface) CalculateRoutedPathDelay(net netid.ID) int64 { return 0 }
func (NullIface) GetDebugDecorator() DebugDecorator { return nullDecorator{} }

type nullDecorator struct{}

func (nullDecorator) AddPoint(p interface{}, color int) {}
func (nullDecorator) AddLine(pts interface{}, color int, width int64) {}
func (nullDecorator) Message(format string, args...interface{}) {}
