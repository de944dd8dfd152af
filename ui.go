package tifc

import "errors"

// UI wires the display, the input decoder and the panel manager into one
// event loop. Mouse positions arrive zero-based from the decoder and pass
// through to the manager unchanged.
type UI struct {
	display *Display
	term    *Terminal
	input   *Input
	pm      *PanelManager
	hooks   Hooks
	exit    bool
}

// NewUI builds a UI over the controlling terminal.
func NewUI() (*UI, error) {
	display, err := NewDisplay(nil)
	if err != nil {
		return nil, err
	}
	return newUI(display, NewTerminal(nil)), nil
}

func newUI(display *Display, term *Terminal) *UI {
	u := &UI{
		display: display,
		term:    term,
		input:   NewInput(),
		pm:      NewPanelManager(),
	}
	u.hooks = Hooks{
		OnHover:     u.onHover,
		OnPress:     u.onPress,
		OnRelease:   u.onRelease,
		OnScroll:    u.onScroll,
		OnKeystroke: u.onKeystroke,
	}
	return u
}

// Display returns the owned display.
func (u *UI) Display() *Display {
	return u.display
}

// PanelManager returns the owned panel manager.
func (u *UI) PanelManager() *PanelManager {
	return u.pm
}

// AddPanel creates a panel on the manager.
func (u *UI) AddPanel(opts PanelOpts) *Panel {
	return u.pm.AddPanel(opts)
}

// Run enters raw mode and drives the event loop until an exit request or
// an unrecoverable input error. The terminal is restored on every exit
// path; a clean exit returns nil.
func (u *UI) Run() error {
	if err := u.term.EnterRaw(); err != nil {
		return err
	}
	defer u.term.Restore()
	defer u.pm.Deinit()
	defer u.display.StopResizeHandler()

	u.display.SetResizeHandler(func(d *Display) {
		u.pm.Recalculate(d.Bounds())
	})
	u.pm.Recalculate(u.display.Bounds())

	for !u.exit {
		u.render()
		if err := u.input.HandleEvents(&u.hooks); err != nil {
			u.display.Erase()
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	u.display.Erase()
	return nil
}

func (u *UI) render() {
	u.display.Clear()
	u.pm.Render(u.display)
	if err := u.display.Render(); err != nil {
		logger.Debug("ui: render failed", "err", err)
	}
}

func (u *UI) onHover(ev MouseEvent) {
	u.pm.Hover(ev.Pos)
}

func (u *UI) onPress(ev MouseEvent) {
	u.pm.Press(ev.Pos, ev.Button)
}

func (u *UI) onRelease(ev MouseEvent) {
	u.pm.Release(ev.Pos, ev.Button)
}

func (u *UI) onScroll(ev MouseEvent) {
	u.pm.Scroll(ev.Pos, ev.Button)
}

// onKeystroke handles the session keys, then forwards to the focused
// panel: Ctrl+D exits, Tab and Shift-Tab cycle panel focus.
func (u *UI) onKeystroke(ev KeystrokeEvent) {
	if ev.Code == KeyD && ev.Mod&ModCtrl != 0 {
		u.exit = true
		return
	}
	if ev.Code == KeyTab {
		if ev.Mod&ModShift != 0 {
			u.pm.FocusPrev()
		} else {
			u.pm.FocusNext()
		}
		return
	}
	u.pm.Keystroke(ev)
}
