package node

import "errors"

// Sentinel errors for node operations, in the teacher's style (one
// package-level var per failure mode, core/types.go).
var (
	// ErrForeignItem indicates Remove/Replace was called with an item
	// this Node cannot see at all (neither owned nor inherited).
	ErrForeignItem = errors.New("node: item not visible in this branch")

	// ErrWrongBranch indicates Commit was called on a root Node, which
	// has no parent to fold its edits into.
	ErrWrongBranch = errors.New("node: not a direct child of this branch")

	// ErrLockedJoint indicates an operation attempted to move or
	// remove something anchored at a locked joint.
	ErrLockedJoint = errors.New("node: joint is locked")
)
