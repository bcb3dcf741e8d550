package dump

import "reflect"

// identity distinguishes two objects by reference, never by contents. The
// type is part of the key so a struct and its first field, which share an
// address, do not collide.
type identity struct {
	ptr uintptr
	typ reflect.Type
}

// CycleGuard records object identities entered during one top-level
// traversal. An identity stays registered until Reset, so an object reachable
// twice within the same argument renders once and then as a marker, whether
// or not it forms a true cycle.
type CycleGuard struct {
	seen map[identity]struct{}
}

func NewCycleGuard() *CycleGuard {
	return &CycleGuard{seen: make(map[identity]struct{})}
}

// Enter registers v's identity and reports whether it was newly seen. Values
// without a stable identity (non-pointer objects are traversal-local copies)
// always report true: they cannot be reached twice.
func (g *CycleGuard) Enter(v reflect.Value) bool {
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return true
	}
	id := identity{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := g.seen[id]; ok {
		return false
	}
	g.seen[id] = struct{}{}
	return true
}

// Reset clears the registry. Called between top-level arguments so siblings
// do not share cycle state.
func (g *CycleGuard) Reset() {
	clear(g.seen)
}
