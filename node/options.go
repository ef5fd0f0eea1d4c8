package node

import "github.com/katalvlaran/pns/netid"

// QueryOptions narrows a collision or cluster query.
type QueryOptions struct {
	// ExcludeNet, if non-orphan, excludes items on that net from the
	// result (the usual case: don't collide a line with itself).
	ExcludeNet netid.ID

	// IncludeLocked, when false (the default), still returns locked
	// items -- locking only affects whether shove may move an item,
	// never whether it is reported as an obstacle.
	IncludeLocked bool
}

// AssembleOptions configures AssembleLine.
type AssembleOptions struct {
	// StopAtLocked is not consulted by AssembleLine: the walk stops at
	// a locked joint whenever FollowLocked is false, whatever this
	// field holds.
	StopAtLocked bool

	// FollowLocked, if true, walks straight through a locked joint as
	// if it were an ordinary corner.
	FollowLocked bool

	// AllowWidthMismatch permits the walk to continue across a corner
	// joint where the two segments have different widths. Default
	// behavior (false) stops the walk at a width change.
	AllowWidthMismatch bool
}
