// Package item implements the ITEM hierarchy of : a tagged
// union over SEGMENT, ARC, VIA, SOLID and HOLE primitives, plus LINE,
// the transient polyline aggregate that is never itself stored in a
// NODE's index.
//
// Every primitive embeds Base, which carries the fields the spec lists
// as common to all linked items: an opaque ParentHandle (never a real
// pointer back to a host object, per the §9 design note), a
// source-item reference, shove rank, marker bits, link count and a
// monotonic UID minted from package uid.
package item
