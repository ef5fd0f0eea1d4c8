// Package settings holds RoutingSettings, the plain configuration
// struct describes, built with functional options the way
// lvlath/core.NewGraph(opts...GraphOption) is -- this module's core
// has no on-disk format of its own; a host serializes the struct with
// whatever format it already uses (field tags are provided for that).
package settings

import "time"

// WalkaroundPolicy selects which direction(s) the walkaround engine
// tries around an obstacle's hull.
type WalkaroundPolicy uint8

const (
	PolicyClockwise WalkaroundPolicy = iota
	PolicyCounterClockwise
	PolicyShortest
)

// RoutingSettings configures the router core end to end.
// Every field has a conservative default applied by New; a host
// overrides only what it cares about via With* options.
type RoutingSettings struct {
	TrackWidth int64 `json:"track_width"`
	ViaDiameter int64 `json:"via_diameter"`
	ViaDrill int64 `json:"via_drill"`
	Clearance int64 `json:"clearance"`
	WalkaroundPolicies []WalkaroundPolicy `json:"walkaround_policies"`

	ShoveIterationLimit int `json:"shove_iteration_limit"`
	ShoveTimeLimit time.Duration `json:"shove_time_limit"`

	WalkaroundIterationLimit int `json:"walkaround_iteration_limit"`
	WalkaroundTimeLimit time.Duration `json:"walkaround_time_limit"`
	WalkaroundExpansionLimit int64 `json:"walkaround_expansion_limit"`

	ShoveVias bool `json:"shove_vias"`
	ShoveArcs bool `json:"shove_arcs"`
	SmoothDragged bool `json:"smooth_dragged"`
	OptimizeEntireLine bool `json:"optimize_entire_line"`
	RemoveLoops bool `json:"remove_loops"`

	CornerMode CornerMode `json:"corner_mode"`

	FreeAngleMode bool `json:"free_angle_mode"`

	// Mode selects the line placer's routeHead strategy: mode ∈
	// {mark-obstacles, shove, walkaround}.
	Mode RouteMode `json:"mode"`
}

// RouteMode is the placer's routeHead dispatch mode, the design's
// "mode ∈ {mark-obstacles, shove, walkaround}" persisted field.
type RouteMode uint8

const (
	ModeMarkObstacles RouteMode = iota
	ModeShove
	ModeWalkaround
)

// CornerMode selects the corner style a line placer inserts (the design
// §4.8, a detail left to the placer's cursor-to-head translation).
type CornerMode uint8

const (
	CornerMitered CornerMode = iota
	CornerRounded
	Corner45
	Corner90
)

// Option mutates a RoutingSettings being built, the same shape as
// core.GraphOption.
type Option func(*RoutingSettings)

// New returns a RoutingSettings with this documented defaults,
// then applies opts in order.
func New(opts...Option) RoutingSettings {
	s := RoutingSettings{
		TrackWidth: 200000,
		ViaDiameter: 600000,
		ViaDrill: 300000,
		Clearance: 200000,
		WalkaroundPolicies: []WalkaroundPolicy{PolicyShortest},
		ShoveIterationLimit: 250,
		ShoveTimeLimit: 1000 * time.Millisecond,
		WalkaroundIterationLimit: 40,
		WalkaroundTimeLimit: 100 * time.Millisecond,
		WalkaroundExpansionLimit: 10,
		ShoveVias: true,
		RemoveLoops: true,
		CornerMode: CornerMitered,
		Mode: ModeShove,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithTrackWidth(w int64) Option { return func(s *RoutingSettings) { s.TrackWidth = w } }
func WithViaDiameter(d int64) Option { return func(s *RoutingSettings) { s.ViaDiameter = d } }
func WithViaDrill(d int64) Option { return func(s *RoutingSettings) { s.ViaDrill = d } }
func WithClearance(c int64) Option { return func(s *RoutingSettings) { s.Clearance = c } }
func WithFreeAngle(on bool) Option { return func(s *RoutingSettings) { s.FreeAngleMode = on } }
func WithCornerMode(m CornerMode) Option {
	return func(s *RoutingSettings) { s.CornerMode = m }
}
func WithMode(m RouteMode) Option { return func(s *RoutingSettings) { s.Mode = m } }
func WithWalkaroundPolicies(p...WalkaroundPolicy) Option {
	return func(s *RoutingSettings) { s.WalkaroundPolicies = p }
}
func WithShoveLimits(iterations int, limit time.Duration) Option {
	return func(s *RoutingSettings) { s.ShoveIterationLimit = iterations; s.ShoveTimeLimit = limit }
}
