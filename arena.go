package tifc

// Arena is a grow-only allocator: everything allocated from it stays
// reachable until Release drops the whole set at once. Interiors, their
// sparse maps and the panel list live in the manager's arena so teardown
// is a single release after interior deinit has run.
//
// Unlike a byte-bump arena, allocations remain ordinary GC-visible values;
// the arena only fixes their lifetime to its own.
type Arena struct {
	held []any
}

// Alloc returns a zeroed T owned by the arena.
func Alloc[T any](a *Arena) *T {
	v := new(T)
	a.held = append(a.held, v)
	return v
}

// Keep ties an existing value's lifetime to the arena.
func (a *Arena) Keep(v any) {
	a.held = append(a.held, v)
}

// Len returns how many allocations the arena currently holds.
func (a *Arena) Len() int {
	return len(a.held)
}

// Release drops every allocation at once. The arena is reusable
// afterwards.
func (a *Arena) Release() {
	a.held = nil
}
