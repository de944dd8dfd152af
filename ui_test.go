package tifc

import (
	"bytes"
	"testing"
)

func testUI(events *[]string) *UI {
	var out bytes.Buffer
	u := newUI(NewVirtualDisplay(&out, Position{X: 40, Y: 12}), NewTerminal(&out))
	addRecorderPanel(u.PanelManager(), "top", events, PanelLayout{
		Align: AlignTop, Method: SizeRelative, Size: Position{Y: 50},
	})
	addRecorderPanel(u.PanelManager(), "bottom", events, PanelLayout{
		Align: AlignBot, Method: SizeRelative, Size: Position{Y: 100},
	})
	u.pm.Recalculate(u.display.Bounds())
	return u
}

func TestUI(t *testing.T) {
	t.Run("CtrlDRequestsExit", func(t *testing.T) {
		var events []string
		u := testUI(&events)

		u.onKeystroke(KeystrokeEvent{Code: KeyD, Mod: ModCtrl, Stroke: 0x04})
		if !u.exit {
			t.Error("expected exit request")
		}
		assertEvents(t, events, nil)
	})

	t.Run("PlainDIsForwarded", func(t *testing.T) {
		var events []string
		u := testUI(&events)
		u.pm.SetFocused(0)
		events = nil

		u.onKeystroke(KeystrokeEvent{Code: KeyD, Stroke: 'd'})
		if u.exit {
			t.Error("plain d must not exit")
		}
		assertEvents(t, events, []string{"top:key"})
	})

	t.Run("TabCyclesFocus", func(t *testing.T) {
		var events []string
		u := testUI(&events)

		u.onKeystroke(KeystrokeEvent{Code: KeyTab, Stroke: '\t'})
		if u.pm.Focused() != 0 {
			t.Fatalf("expected focus 0, got %d", u.pm.Focused())
		}
		u.onKeystroke(KeystrokeEvent{Code: KeyTab, Stroke: '\t'})
		if u.pm.Focused() != 1 {
			t.Fatalf("expected focus 1, got %d", u.pm.Focused())
		}
		u.onKeystroke(KeystrokeEvent{Code: KeyTab, Mod: ModShift, Stroke: '\t'})
		if u.pm.Focused() != 0 {
			t.Fatalf("expected focus back on 0, got %d", u.pm.Focused())
		}
	})

	t.Run("MouseEventsReachPanels", func(t *testing.T) {
		var events []string
		u := testUI(&events)

		u.onHover(MouseEvent{Motion: MotionMoving, Pos: Position{X: 3, Y: 2}})
		u.onPress(MouseEvent{Button: Mouse1, Pos: Position{X: 3, Y: 2}})
		u.onRelease(MouseEvent{Button: Mouse1, Pos: Position{X: 3, Y: 2}})
		u.onScroll(MouseEvent{Button: ScrollDown, Pos: Position{X: 3, Y: 9}})

		assertEvents(t, events, []string{
			"top:enter", "top:press", "top:release", "bottom:scroll",
		})
	})

	t.Run("RenderDiffGoesQuiet", func(t *testing.T) {
		var out bytes.Buffer
		u := newUI(NewVirtualDisplay(&out, Position{X: 20, Y: 6}), NewTerminal(&out))
		u.AddPanel(PanelOpts{
			Title:  "p",
			Layout: PanelLayout{Align: AlignCenter},
			Border: BorderRounded,
		})
		u.pm.Recalculate(u.display.Bounds())

		u.render()
		if out.Len() == 0 {
			t.Fatal("first frame should draw the panel")
		}
		out.Reset()
		u.render()
		if out.Len() != 0 {
			t.Errorf("identical frame emitted %q", out.String())
		}
	})
}
