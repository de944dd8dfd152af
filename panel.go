package tifc

// PanelOpts configures a panel: where it docks, how it looks and what it
// contains.
type PanelOpts struct {
	Title    string
	Layout   PanelLayout
	Style    Style
	Border   BorderSet
	Interior Interior
}

// Panel is one rectangular region of the display owning a single
// interior. The manager hands it bounds; the panel resolves its area and
// forwards rendering and input positionally.
type Panel struct {
	title    string
	layout   PanelLayout
	style    Style
	border   BorderSet
	area     Area
	interior Interior
}

func newPanel(opts PanelOpts, arena *Arena) *Panel {
	p := Alloc[Panel](arena)
	p.title = opts.Title
	p.layout = opts.Layout
	p.style = opts.Style
	p.border = opts.Border
	p.area = InvalidArea
	p.interior = opts.Interior
	if p.interior != nil {
		arena.Keep(p.interior)
		p.interior.Init(arena)
	}
	return p
}

// Area returns the resolved panel rectangle.
func (p *Panel) Area() Area {
	return p.area
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// Interior returns the owned interior.
func (p *Panel) Interior() Interior {
	return p.interior
}

// Contains reports whether pos falls inside the resolved area.
func (p *Panel) Contains(pos Position) bool {
	return p.area.Valid() && p.area.Contains(pos)
}

// Recalculate claims space from bounds and lays the interior out inside
// it.
func (p *Panel) Recalculate(bounds *Area) {
	p.area = calcPanelArea(p.layout, bounds)
	if p.area.Valid() && p.interior != nil {
		p.interior.Recalculate(p.area)
	}
}

// Render draws the border, the title centred on the top border row, and
// the interior.
func (p *Panel) Render(d *Display) {
	if !p.area.Valid() {
		return
	}
	d.DrawBorder(p.style, p.border, p.area)
	if p.title != "" {
		titleArea := p.area
		titleArea.Second.Y = titleArea.First.Y
		d.DrawStringCentered(p.title, titleArea, p.style)
	}
	if p.interior != nil {
		p.interior.Render(d)
	}
}

func (p *Panel) deinit() {
	if p.interior != nil {
		p.interior.Deinit()
	}
}

// Enter forwards pointer entry to the interior.
func (p *Panel) Enter(pos Position) {
	if p.interior != nil {
		p.interior.Enter(pos)
	}
}

// Hover forwards pointer motion to the interior.
func (p *Panel) Hover(pos Position) {
	if p.interior != nil {
		p.interior.Hover(pos)
	}
}

// Leave forwards pointer exit to the interior.
func (p *Panel) Leave(pos Position) {
	if p.interior != nil {
		p.interior.Leave(pos)
	}
}

// Press forwards a button press to the interior.
func (p *Panel) Press(pos Position, btn MouseButton) {
	if p.interior != nil {
		p.interior.Press(pos, btn)
	}
}

// Release forwards a button release to the interior.
func (p *Panel) Release(pos Position, btn MouseButton) {
	if p.interior != nil {
		p.interior.Release(pos, btn)
	}
}

// Scroll forwards wheel motion to the interior.
func (p *Panel) Scroll(pos Position, dir MouseButton) {
	if p.interior != nil {
		p.interior.Scroll(pos, dir)
	}
}

// Keystroke forwards a key event to the interior.
func (p *Panel) Keystroke(ev KeystrokeEvent) {
	if p.interior != nil {
		p.interior.Keystroke(ev)
	}
}

func (p *Panel) recvFocus() {
	if p.interior != nil {
		p.interior.RecvFocus()
	}
}

func (p *Panel) lostFocus() {
	if p.interior != nil {
		p.interior.LostFocus()
	}
}
