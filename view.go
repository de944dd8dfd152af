package tifc

// AreaRenderFunc draws one data item into one grid area. index is the data
// position (area index plus scroll offset); hovered is true only for the
// area under the cursor.
type AreaRenderFunc func(d *Display, area Area, data any, limit, index int, hovered bool)

// DataSource feeds a view interior: an opaque payload, its item count and
// a per-area renderer.
type DataSource struct {
	Data   any
	Amount func(data any) int
	Render AreaRenderFunc
}

// ViewInterior renders a scrollable data source into its grid areas, one
// item per visible area.
type ViewInterior struct {
	InteriorBase
	source       DataSource
	scrollOffset int
}

// NewView creates a view interior over the given grid and data source.
func NewView(layout InteriorLayoutOpts, source DataSource) *ViewInterior {
	return &ViewInterior{
		InteriorBase: NewInteriorBase(layout),
		source:       source,
	}
}

func (v *ViewInterior) amount() int {
	if v.source.Amount == nil {
		return 0
	}
	return v.source.Amount(v.source.Data)
}

// Recalculate resolves the grid and resets the scroll position to the top.
func (v *ViewInterior) Recalculate(panelArea Area) {
	v.InteriorBase.Recalculate(panelArea)
	v.clampScroll(0)
}

// Render walks the visible areas, handing each its data index.
func (v *ViewInterior) Render(d *Display) {
	if v.source.Render == nil {
		return
	}
	limit := v.amount()
	for i := range v.layout.areas {
		area := &v.layout.areas[i]
		if !area.Visible() {
			continue
		}
		hovered := i == v.lastHovered
		v.source.Render(d, area.Area, v.source.Data, limit, i+v.scrollOffset, hovered)
	}
}

// Scroll moves the window one item up or down, bounded by the data size.
func (v *ViewInterior) Scroll(pos Position, dir MouseButton) {
	if dir == ScrollUp {
		if v.scrollOffset == 0 {
			return
		}
		v.scrollOffset--
		return
	}
	v.scrollOffset++
	v.clampScroll(v.amount())
}

// Offset returns the current scroll offset.
func (v *ViewInterior) Offset() int {
	return v.scrollOffset
}

// clampScroll keeps the offset within max(0, limit - valid areas).
func (v *ViewInterior) clampScroll(limit int) {
	validAreas := v.layout.CountValidAreas()
	maxOffset := 0
	if limit > validAreas {
		maxOffset = limit - validAreas
	}
	if v.scrollOffset >= maxOffset {
		v.scrollOffset = maxOffset
	}
}
