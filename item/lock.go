package item

// WithLocked returns a copy of it with its Base.Locked flag set to
// locked, preserving identity (UID) and every other field. Used by
// node.FixupVirtualVias to lock both endpoints of a segment that
// anchors a via which must not be optimized away (
// "Locked-item handling").
func WithLocked(it Linked, locked bool) Linked {
	switch v := it.(type) {
	case Segment:
		v.Base.Locked = locked
		return v
	case Arc:
		v.Base.Locked = locked
		return v
	case Via:
		v.Base.Locked = locked
		return v
	default:
		return it
	}
}
