package tifc

import "testing"

// addRecorderPanel registers a docked panel backed by a recorder interior.
func addRecorderPanel(pm *PanelManager, name string, events *[]string, layout PanelLayout) *Panel {
	return pm.AddPanel(PanelOpts{
		Title:    name,
		Layout:   layout,
		Border:   BorderRounded,
		Interior: newRecorder(name, events),
	})
}

func twoPanelManager(events *[]string) *PanelManager {
	pm := NewPanelManager()
	addRecorderPanel(pm, "top", events, PanelLayout{
		Align: AlignTop, Method: SizeRelative, Size: Position{Y: 50},
	})
	addRecorderPanel(pm, "bottom", events, PanelLayout{
		Align: AlignBot, Method: SizeRelative, Size: Position{Y: 100},
	})
	pm.Recalculate(Area{Second: Position{X: 79, Y: 23}})
	return pm
}

func TestPanelManager(t *testing.T) {
	t.Run("RecalculateDocksInOrder", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		top := pm.Panels()[0].Area()
		bottom := pm.Panels()[1].Area()

		if top.Second.Y+1 != bottom.First.Y {
			t.Errorf("panels should tile: top ends %d, bottom starts %d",
				top.Second.Y, bottom.First.Y)
		}
		if bottom.Second.Y != 23 {
			t.Errorf("bottom should reach the last row, got %d", bottom.Second.Y)
		}
	})

	t.Run("HitTestInInsertionOrder", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		if got := pm.Peek(Position{X: 5, Y: 5}); got != pm.Panels()[0] {
			t.Error("expected the top panel")
		}
		if got := pm.Peek(Position{X: 5, Y: 20}); got != pm.Panels()[1] {
			t.Error("expected the bottom panel")
		}
		if got := pm.Peek(Position{X: 200, Y: 200}); got != nil {
			t.Error("expected no panel outside the display")
		}
	})

	t.Run("HoverEmitsLeaveThenEnter", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		pm.Hover(Position{X: 5, Y: 5})
		pm.Hover(Position{X: 5, Y: 6})
		pm.Hover(Position{X: 5, Y: 20})

		assertEvents(t, events, []string{
			"top:enter", "top:hover", "top:leave", "bottom:enter",
		})
	})

	t.Run("HoverOffPanelsEmitsLeave", func(t *testing.T) {
		var events []string
		pm := NewPanelManager()
		addRecorderPanel(pm, "only", &events, PanelLayout{
			Align: AlignCenter, Method: SizeFixed, Size: Position{X: 10, Y: 5},
		})
		pm.Recalculate(Area{Second: Position{X: 79, Y: 23}})

		center := pm.Panels()[0].Area().First
		pm.Hover(center)
		pm.Hover(Position{X: 0, Y: 0})

		assertEvents(t, events, []string{"only:enter", "only:leave"})
	})

	t.Run("PressReleaseScrollRoute", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		pm.Press(Position{X: 1, Y: 1}, Mouse1)
		pm.Release(Position{X: 1, Y: 1}, Mouse1)
		pm.Scroll(Position{X: 1, Y: 20}, ScrollDown)

		assertEvents(t, events, []string{"top:press", "top:release", "bottom:scroll"})
	})

	t.Run("KeystrokeNeedsFocus", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		pm.Keystroke(KeystrokeEvent{Code: KeyA})
		assertEvents(t, events, nil)

		pm.SetFocused(0)
		pm.Keystroke(KeystrokeEvent{Code: KeyA})
		assertEvents(t, events, []string{"top:focus", "top:key"})
	})

	t.Run("FocusCyclingFiresTransitions", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		pm.FocusNext() // none -> 0
		pm.FocusNext() // 0 -> 1
		pm.FocusNext() // wraps to 0
		pm.FocusPrev() // back to 1

		assertEvents(t, events, []string{
			"top:focus",
			"top:blur", "bottom:focus",
			"bottom:blur", "top:focus",
			"top:blur", "bottom:focus",
		})
		if pm.Focused() != 1 {
			t.Errorf("expected focus on 1, got %d", pm.Focused())
		}
	})

	t.Run("ClearFocus", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)

		pm.SetFocused(1)
		pm.ClearFocus()
		pm.Keystroke(KeystrokeEvent{Code: KeyA})

		assertEvents(t, events, []string{"bottom:focus", "bottom:blur"})
		if pm.Focused() != -1 {
			t.Errorf("expected no focus, got %d", pm.Focused())
		}
	})

	t.Run("DeinitReleasesEverything", func(t *testing.T) {
		var events []string
		pm := twoPanelManager(&events)
		if pm.arena.Len() == 0 {
			t.Fatal("expected arena-held allocations")
		}

		pm.Deinit()
		if len(events) != 2 {
			t.Errorf("expected both interiors deinitialised, got %v", events)
		}
		if pm.arena.Len() != 0 {
			t.Error("expected arena released")
		}
		if len(pm.Panels()) != 0 {
			t.Error("expected panel list cleared")
		}
	})

	t.Run("RenderSkipsInvalidPanels", func(t *testing.T) {
		var events []string
		pm := NewPanelManager()
		addRecorderPanel(pm, "huge", &events, PanelLayout{
			Align: AlignCenter,
		})
		addRecorderPanel(pm, "starved", &events, PanelLayout{
			Align: AlignTop, Method: SizeFixed, Size: Position{Y: 3},
		})
		pm.Recalculate(Area{Second: Position{X: 19, Y: 9}})

		if pm.Panels()[1].Area().Valid() {
			t.Fatal("second panel should have no space")
		}

		d := NewVirtualDisplay(nil, Position{X: 20, Y: 10})
		pm.Render(d) // must not touch the display for the starved panel

		if pm.Peek(Position{X: 5, Y: 5}) != pm.Panels()[0] {
			t.Error("hit test should ignore the starved panel")
		}
	})
}
