package tifc

// PanelManager owns the panel list. Insertion order is z-order: hit
// testing walks panels in that order and the first containing panel wins.
// At most one panel holds keyboard focus.
type PanelManager struct {
	panels      []*Panel
	lastHovered *Panel
	focused     int
	arena       Arena
}

// NewPanelManager creates an empty manager.
func NewPanelManager() *PanelManager {
	return &PanelManager{focused: -1}
}

// AddPanel creates a panel from opts inside the manager's arena and
// appends it.
func (pm *PanelManager) AddPanel(opts PanelOpts) *Panel {
	panel := newPanel(opts, &pm.arena)
	pm.panels = append(pm.panels, panel)
	return panel
}

// Panels returns the panels in insertion order.
func (pm *PanelManager) Panels() []*Panel {
	return pm.panels
}

// Deinit tears every interior down, then releases the arena.
func (pm *PanelManager) Deinit() {
	for _, p := range pm.panels {
		p.deinit()
	}
	pm.panels = nil
	pm.lastHovered = nil
	pm.focused = -1
	pm.arena.Release()
}

// Recalculate walks the panels in order; each one docks into the bounds
// left over by its predecessors.
func (pm *PanelManager) Recalculate(bounds Area) {
	for _, p := range pm.panels {
		p.Recalculate(&bounds)
	}
}

// Render draws the panels in insertion order, later panels on top.
func (pm *PanelManager) Render(d *Display) {
	for _, p := range pm.panels {
		p.Render(d)
	}
}

// Peek returns the first panel containing pos, or nil.
func (pm *PanelManager) Peek(pos Position) *Panel {
	for _, p := range pm.panels {
		if p.Contains(pos) {
			return p
		}
	}
	return nil
}

// Hover compares the panel under pos with the previously hovered one,
// emitting leave and enter on a change and hover otherwise.
func (pm *PanelManager) Hover(pos Position) {
	cur := pm.Peek(pos)
	if pm.lastHovered != cur {
		if pm.lastHovered != nil {
			pm.lastHovered.Leave(pos)
		}
		if cur != nil {
			cur.Enter(pos)
		}
	} else if cur != nil {
		cur.Hover(pos)
	}
	pm.lastHovered = cur
}

// Press routes a button press to the panel under pos.
func (pm *PanelManager) Press(pos Position, btn MouseButton) {
	if p := pm.Peek(pos); p != nil {
		p.Press(pos, btn)
	}
}

// Release routes a button release to the panel under pos.
func (pm *PanelManager) Release(pos Position, btn MouseButton) {
	if p := pm.Peek(pos); p != nil {
		p.Release(pos, btn)
	}
}

// Scroll routes wheel motion to the panel under pos.
func (pm *PanelManager) Scroll(pos Position, dir MouseButton) {
	if p := pm.Peek(pos); p != nil {
		p.Scroll(pos, dir)
	}
}

// Keystroke routes a key event to the focused panel; without one it is
// swallowed.
func (pm *PanelManager) Keystroke(ev KeystrokeEvent) {
	if pm.focused >= 0 && pm.focused < len(pm.panels) {
		pm.panels[pm.focused].Keystroke(ev)
	}
}

// Focused returns the focused panel index, -1 when none.
func (pm *PanelManager) Focused() int {
	return pm.focused
}

// SetFocused moves focus to the panel at index, firing the focus
// transitions.
func (pm *PanelManager) SetFocused(index int) {
	if index < 0 || index >= len(pm.panels) || index == pm.focused {
		return
	}
	if pm.focused >= 0 {
		pm.panels[pm.focused].lostFocus()
	}
	pm.focused = index
	pm.panels[pm.focused].recvFocus()
}

// ClearFocus drops focus entirely.
func (pm *PanelManager) ClearFocus() {
	if pm.focused >= 0 {
		pm.panels[pm.focused].lostFocus()
	}
	pm.focused = -1
}

// FocusNext moves focus to the next panel in insertion order, wrapping.
func (pm *PanelManager) FocusNext() {
	pm.moveFocus(1)
}

// FocusPrev moves focus to the previous panel, wrapping.
func (pm *PanelManager) FocusPrev() {
	pm.moveFocus(-1)
}

func (pm *PanelManager) moveFocus(delta int) {
	if len(pm.panels) == 0 {
		return
	}
	next := pm.focused + delta
	if pm.focused < 0 {
		if delta > 0 {
			next = 0
		} else {
			next = len(pm.panels) - 1
		}
	}
	next = (next + len(pm.panels)) % len(pm.panels)
	pm.SetFocused(next)
}
