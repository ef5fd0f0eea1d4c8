package shove

import (
	"github.com/katalvlaran/pns/geom"
	"github.com/katalvlaran/pns/item"
	"github.com/katalvlaran/pns/node"
)

// pushOrShoveVia is : translate v to target, dragging
// every line incident at its old joint along with it, and push each
// resulting line onto line_stack at rank.
func (e *Engine) pushOrShoveVia(branch *node.Node, v item.Via, target geom.Point, force bool, rank int) bool {
	if v.Locked || (!e.opts.ShoveVias && !force) {
		return false
	}
	j, hasJoint := branch.FindJoint(v.Pos, v.NetID)
	if hasJoint && j.Locked {
		return false
	}

	newPos := e.avoidJointCollision(branch, v, target)
	moved := v.WithPosition(newPos)
	if err := branch.Replace(v, moved); err != nil {
		return false
	}
	e.affectedArea = e.affectedArea.Union(moved.BBox())

	if !hasJoint {
		return true
	}
	for _, ln := range j.LinkSlice() {
		if ln.UID() == v.UID() {
			continue
		}
		dragged := node.DragCorner(branch, ln, v.Pos, newPos)
		full := branch.AssembleLine(dragged, node.AssembleOptions{})
		full.Rank = rank
		e.lineStack = append(e.lineStack, lineStackEntry{line: full, rank: rank})
	}
	return true
}

// avoidJointCollision walks target away from v's old position in small
// steps until no existing joint sits exactly at the candidate position,
// "vias never collide at their centers".
func (e *Engine) avoidJointCollision(branch *node.Node, v item.Via, target geom.Point) geom.Point {
	candidate := target
	step := geom.Vector{X: 50, Y: 50}
	for tries := 0; tries < 8; tries++ {
		if _, ok := branch.FindJoint(candidate, v.NetID); !ok {
			return candidate
		}
		candidate = candidate.Add(step)
	}
	return candidate
}
