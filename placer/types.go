package placer

import (
	"github.com/katalvlaran/pns/layer"
	"github.com/katalvlaran/pns/netid"
	"github.com/katalvlaran/pns/optimizer"
	"github.com/katalvlaran/pns/settings"
	"github.com/katalvlaran/pns/shove"
	"github.com/katalvlaran/pns/walkaround"
)

// Status is one Move call's outcome.
type Status uint8

const (
	// Done means the head reached the cursor cleanly.
	Done Status = iota
	// Blocked means mark-obstacles mode found a collision; Obstacles
	// reports what the head would hit.
	Blocked
	// Incomplete means walkaround or shove ran out of its iteration/
	// time budget -- the design's "return INCOMPLETE; outer
	// driver falls back to mark-obstacles mode" error-table row.
	Incomplete
	// Failed means the shove attempt failed outright; the placer keeps
	// the previous head and the caller should fall back to a gentler
	// mode.
	Failed
)

// maxReduceTailWindow bounds how many trailing tail segments reduceTail
// tries to collapse in one pass ("the last N tail segments").
const maxReduceTailWindow = 6

// Config bundles the knobs a Placer needs beyond its live head/tail
// state.
type Config struct {
	Width    int64
	Layer    layer.ID
	Net      netid.ID
	Settings settings.RoutingSettings
	Shove    shove.Options
	Walk     walkaround.Options
	Effort   optimizer.Effort
}
