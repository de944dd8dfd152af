package tifc

// ComponentDef assigns a child interior to one of the composite's grid
// areas.
type ComponentDef struct {
	AreaIndex int
	Interior  Interior
}

// CompositeInterior nests interiors, one per grid area, and routes events
// to the child whose area contains the position. Children are keyed by
// area index; they never see their parent.
type CompositeInterior struct {
	InteriorBase
	children    map[int]Interior
	lastHovered Interior
	focused     Interior
}

// NewComposite creates a composite interior. Assigning two children to the
// same area is a configuration error and panics.
func NewComposite(layout InteriorLayoutOpts, defs ...ComponentDef) *CompositeInterior {
	c := &CompositeInterior{
		InteriorBase: NewInteriorBase(layout),
		children:     make(map[int]Interior, len(defs)),
	}
	for _, def := range defs {
		if def.AreaIndex < 0 || def.AreaIndex >= len(c.layout.areas) {
			panic("composite: component assigned to an unknown area")
		}
		if _, taken := c.children[def.AreaIndex]; taken {
			panic("composite: area already holds a component")
		}
		c.children[def.AreaIndex] = def.Interior
	}
	return c
}

// Init initialises every child from the same arena.
func (c *CompositeInterior) Init(arena *Arena) {
	for _, child := range c.children {
		arena.Keep(child)
		child.Init(arena)
	}
}

// Deinit tears the children down.
func (c *CompositeInterior) Deinit() {
	for _, child := range c.children {
		child.Deinit()
	}
}

// Recalculate resolves the composite grid, then hands each child its area
// rectangle.
func (c *CompositeInterior) Recalculate(panelArea Area) {
	c.InteriorBase.Recalculate(panelArea)
	for idx, child := range c.children {
		area := &c.layout.areas[idx]
		if area.Visible() {
			child.Recalculate(area.Area)
		}
	}
}

// Render draws every child with a visible area.
func (c *CompositeInterior) Render(d *Display) {
	for i := range c.layout.areas {
		if !c.layout.areas[i].Visible() {
			continue
		}
		if child, ok := c.children[i]; ok {
			child.Render(d)
		}
	}
}

// childAt returns the child owning the area under pos, if any.
func (c *CompositeInterior) childAt(pos Position) Interior {
	idx := c.layout.PeekArea(pos)
	if idx < 0 {
		return nil
	}
	return c.children[idx]
}

// Hover tracks the hovered child, emitting leave and enter transitions
// when it changes.
func (c *CompositeInterior) Hover(pos Position) {
	c.InteriorBase.Hover(pos)

	cur := c.childAt(pos)
	if cur == nil {
		return
	}
	if c.lastHovered != cur {
		if c.lastHovered != nil {
			c.lastHovered.Leave(pos)
		}
		cur.Enter(pos)
	} else {
		cur.Hover(pos)
	}
	c.lastHovered = cur
}

// Leave forwards to the child the pointer was last over.
func (c *CompositeInterior) Leave(pos Position) {
	if c.lastHovered != nil {
		c.lastHovered.Leave(pos)
		c.lastHovered = nil
	}
}

// Scroll routes to the child under pos.
func (c *CompositeInterior) Scroll(pos Position, dir MouseButton) {
	if child := c.childAt(pos); child != nil {
		child.Scroll(pos, dir)
	}
}

// Press routes to the child under pos and moves the composite's inner
// focus to it.
func (c *CompositeInterior) Press(pos Position, btn MouseButton) {
	child := c.childAt(pos)
	if child == nil {
		return
	}
	if btn == Mouse1 && c.focused != child {
		if c.focused != nil {
			c.focused.LostFocus()
		}
		c.focused = child
	}
	child.Press(pos, btn)
}

// Release routes to the child under pos.
func (c *CompositeInterior) Release(pos Position, btn MouseButton) {
	if child := c.childAt(pos); child != nil {
		child.Release(pos, btn)
	}
}

// RecvFocus restores focus to the last focused child.
func (c *CompositeInterior) RecvFocus() {
	if c.focused != nil {
		c.focused.RecvFocus()
	}
}

// LostFocus propagates to the focused child.
func (c *CompositeInterior) LostFocus() {
	if c.focused != nil {
		c.focused.LostFocus()
	}
}

// Keystroke routes to the focused child; without one it is swallowed.
func (c *CompositeInterior) Keystroke(ev KeystrokeEvent) {
	if c.focused != nil {
		c.focused.Keystroke(ev)
	}
}
