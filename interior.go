package tifc

// Interior is the content model inside a panel. Variants opt in to the
// operations they care about; InteriorBase supplies a stub for everything
// else. Events route top-down only: an interior never holds a reference
// back to its panel or parent.
type Interior interface {
	Init(arena *Arena)
	Deinit()
	Recalculate(panelArea Area)
	Render(d *Display)
	Enter(pos Position)
	Hover(pos Position)
	Leave(pos Position)
	RecvFocus()
	LostFocus()
	Scroll(pos Position, dir MouseButton)
	Press(pos Position, btn MouseButton)
	Release(pos Position, btn MouseButton)
	Keystroke(ev KeystrokeEvent)

	InteriorLayout() *InteriorLayout
}

// InteriorBase carries the grid layout and hover bookkeeping every variant
// shares, and provides the no-op defaults.
type InteriorBase struct {
	layout      InteriorLayout
	lastHovered int // area index under the cursor, -1 when none
}

// NewInteriorBase builds the shared part of an interior from grid options.
func NewInteriorBase(opts InteriorLayoutOpts) InteriorBase {
	return InteriorBase{
		layout:      NewInteriorLayout(opts),
		lastHovered: -1,
	}
}

// InteriorLayout exposes the grid solver state.
func (b *InteriorBase) InteriorLayout() *InteriorLayout {
	return &b.layout
}

// Init is a stub; variants needing arena allocations override it.
func (b *InteriorBase) Init(arena *Arena) {}

// Deinit is a stub.
func (b *InteriorBase) Deinit() {}

// Recalculate resolves the grid against the panel rectangle. Variants
// overriding it should call this first.
func (b *InteriorBase) Recalculate(panelArea Area) {
	b.layout.Recalculate(panelArea)
}

// Render is a stub.
func (b *InteriorBase) Render(d *Display) {}

// Enter records which grid area the cursor entered over.
func (b *InteriorBase) Enter(pos Position) {
	b.lastHovered = b.layout.PeekArea(pos)
}

// Hover records which grid area the cursor is over, -1 when none.
func (b *InteriorBase) Hover(pos Position) {
	b.lastHovered = b.layout.PeekArea(pos)
}

// Leave forgets the hovered area.
func (b *InteriorBase) Leave(pos Position) {
	b.lastHovered = -1
}

// RecvFocus is a stub.
func (b *InteriorBase) RecvFocus() {}

// LostFocus is a stub.
func (b *InteriorBase) LostFocus() {}

// Scroll is a stub.
func (b *InteriorBase) Scroll(pos Position, dir MouseButton) {}

// Press is a stub.
func (b *InteriorBase) Press(pos Position, btn MouseButton) {}

// Release is a stub.
func (b *InteriorBase) Release(pos Position, btn MouseButton) {}

// Keystroke is a stub.
func (b *InteriorBase) Keystroke(ev KeystrokeEvent) {}
