package drivers

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
	"github.com/katalvlaran/pns/rules"
	"github.com/katalvlaran/pns/shove"
)

// ViaDriver is the via drag mode: a single VIA follows the cursor and
// pushOrShoveVia (spec.md §4.5.1) drags every line incident at its old
// joint along with it.
type ViaDriver struct {
	*session
	via item.Via
}

// NewViaDriver starts a via drag of via.
func NewViaDriver(n *node.Node, resolver rules.Resolver, via item.Via, cfg Config) *ViaDriver {
	return &ViaDriver{session: newSession(n, resolver, cfg), via: via}
}

// Drag moves the via to cursor and runs one shove episode.
func (d *ViaDriver) Drag(cursor geom.Point) Result {
	return d.move([]shove.Head{{Via: &d.via, NewPos: cursor}})
}
