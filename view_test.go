package tifc

import "testing"

func testViewLayout(rows int) InteriorLayoutOpts {
	areas := make([]AreaDef, rows)
	for i := range areas {
		areas[i] = AreaDef{Column: Span{0, 0}, Row: Span{i, i}}
	}
	return InteriorLayoutOpts{
		Columns:    1,
		Rows:       rows,
		ColumnDefs: []TrackDef{{Size: 100, Method: SizeRelative}},
		RowDefs:    []TrackDef{{Size: 2, Count: rows}},
		Areas:      areas,
	}
}

func testViewSource(items []string, calls *[]int) DataSource {
	return DataSource{
		Data:   items,
		Amount: func(data any) int { return len(data.([]string)) },
		Render: func(d *Display, area Area, data any, limit, index int, hovered bool) {
			*calls = append(*calls, index)
		},
	}
}

func TestView(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	t.Run("ScrollClampsToDataSize", func(t *testing.T) {
		var calls []int
		v := NewView(testViewLayout(3), testViewSource(items, &calls))
		v.Recalculate(Area{Second: Position{X: 9, Y: 5}}) // 3 areas fit

		// Scrolling up at the top is a no-op.
		v.Scroll(Position{}, ScrollUp)
		if v.Offset() != 0 {
			t.Fatalf("expected offset 0, got %d", v.Offset())
		}

		// 10 items, 3 visible areas: the window bottoms out at 7.
		for i := 0; i < 20; i++ {
			v.Scroll(Position{}, ScrollDown)
		}
		if v.Offset() != 7 {
			t.Errorf("expected offset 7, got %d", v.Offset())
		}

		v.Scroll(Position{}, ScrollUp)
		if v.Offset() != 6 {
			t.Errorf("expected offset 6, got %d", v.Offset())
		}
	})

	t.Run("RenderPassesShiftedIndices", func(t *testing.T) {
		var calls []int
		v := NewView(testViewLayout(3), testViewSource(items, &calls))
		v.Recalculate(Area{Second: Position{X: 9, Y: 5}})

		d := NewVirtualDisplay(nil, Position{X: 10, Y: 6})
		v.Scroll(Position{}, ScrollDown)
		v.Scroll(Position{}, ScrollDown)
		calls = nil
		v.Render(d)

		want := []int{2, 3, 4}
		if len(calls) != len(want) {
			t.Fatalf("expected %d render calls, got %d", len(want), len(calls))
		}
		for i := range want {
			if calls[i] != want[i] {
				t.Errorf("call %d: expected index %d, got %d", i, want[i], calls[i])
			}
		}
	})

	t.Run("RecalculateResetsScroll", func(t *testing.T) {
		var calls []int
		v := NewView(testViewLayout(3), testViewSource(items, &calls))
		v.Recalculate(Area{Second: Position{X: 9, Y: 5}})

		v.Scroll(Position{}, ScrollDown)
		v.Recalculate(Area{Second: Position{X: 9, Y: 5}})
		if v.Offset() != 0 {
			t.Errorf("expected offset reset on recalculate, got %d", v.Offset())
		}
	})

	t.Run("HoverMarksArea", func(t *testing.T) {
		var calls []int
		v := NewView(testViewLayout(3), testViewSource(items, &calls))
		v.Recalculate(Area{Second: Position{X: 9, Y: 5}})

		v.Hover(Position{X: 2, Y: 3}) // second area: rows 2-3
		if v.lastHovered != 1 {
			t.Errorf("expected area 1 hovered, got %d", v.lastHovered)
		}
	})

	t.Run("InvisibleAreasAreSkipped", func(t *testing.T) {
		var calls []int
		v := NewView(testViewLayout(5), testViewSource(items, &calls))
		// Room for two tracks only.
		v.Recalculate(Area{Second: Position{X: 9, Y: 3}})

		d := NewVirtualDisplay(nil, Position{X: 10, Y: 4})
		v.Render(d)
		if len(calls) != 2 {
			t.Errorf("expected 2 visible areas rendered, got %d", len(calls))
		}
	})
}
