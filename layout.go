package tifc

// Align positions a panel inside the remaining bounds. Edge alignments
// dock the panel and shrink the bounds for the panels that follow;
// AlignCenter consumes everything that is left.
type Align uint8

const (
	AlignCenter Align = 0
	AlignTop    Align = 1 << iota
	AlignBot
	AlignLeft
	AlignRight
	AlignHCenter
	AlignVCenter
)

// SizeMethod selects how a size value is interpreted.
type SizeMethod uint8

const (
	// SizeFixed sizes are cell counts.
	SizeFixed SizeMethod = iota
	// SizeRelative sizes are percentages of the available dimension,
	// never resolving below two cells.
	SizeRelative
)

// minPanelSize is the smallest extent a relative panel resolves to, and
// the smallest residue worth leaving behind: anything thinner is consumed
// by the docking panel.
const minPanelSize = 2

// PanelLayout describes how a panel claims space from the bounds handed
// down by the panel manager.
type PanelLayout struct {
	Align  Align
	Method SizeMethod
	Size   Position
}

// resolveSize converts a layout size to cells along one axis.
func resolveSize(method SizeMethod, size, available int) int {
	if method != SizeRelative {
		return size
	}
	resolved := size * available / 100
	if resolved < minPanelSize {
		resolved = minPanelSize
	}
	return resolved
}

// calcPanelArea places one panel inside bounds and shrinks bounds by the
// docked region. A bounds without room produces InvalidArea and leaves
// bounds untouched.
func calcPanelArea(layout PanelLayout, bounds *Area) Area {
	if !bounds.Valid() {
		return InvalidArea
	}
	hsize := bounds.Second.X - bounds.First.X
	vsize := bounds.Second.Y - bounds.First.Y
	if hsize == 0 || vsize == 0 {
		return InvalidArea
	}

	w := resolveSize(layout.Method, layout.Size.X, bounds.Width())
	h := resolveSize(layout.Method, layout.Size.Y, bounds.Height())

	panel := Area{}
	switch {
	case layout.Align == AlignCenter:
		centralizeVertical(h, &panel, bounds)
		centralizeHorizontal(w, &panel, bounds)
		*bounds = InvalidArea // no free space left
	case layout.Align == AlignTop|AlignHCenter:
		centralizeHorizontal(w, &panel, bounds)
		dockToTop(h, &panel, bounds)
	case layout.Align == AlignBot|AlignHCenter:
		centralizeHorizontal(w, &panel, bounds)
		dockToBot(h, &panel, bounds)
	case layout.Align == AlignLeft|AlignVCenter:
		centralizeVertical(h, &panel, bounds)
		dockToLeft(w, &panel, bounds)
	case layout.Align == AlignRight|AlignVCenter:
		centralizeVertical(h, &panel, bounds)
		dockToRight(w, &panel, bounds)
	case layout.Align&(AlignTop|AlignBot) != 0:
		fillHorizontal(&panel, bounds)
		if h == 0 {
			fillVertical(&panel, bounds)
			*bounds = InvalidArea
		} else if layout.Align&AlignTop != 0 {
			dockToTop(h, &panel, bounds)
		} else {
			dockToBot(h, &panel, bounds)
		}
	case layout.Align&(AlignLeft|AlignRight) != 0:
		fillVertical(&panel, bounds)
		if w == 0 {
			fillHorizontal(&panel, bounds)
			*bounds = InvalidArea
		} else if layout.Align&AlignLeft != 0 {
			dockToLeft(w, &panel, bounds)
		} else {
			dockToRight(w, &panel, bounds)
		}
	}

	return panel
}

// clampDock bounds a requested extent to what is available and absorbs
// residues too thin to host another panel.
func clampDock(size, available int) int {
	if size > available {
		size = available
	}
	if available-size < minPanelSize {
		size = available
	}
	return size
}

func centralizeVertical(h int, panel, bounds *Area) {
	panel.First.Y = bounds.First.Y
	panel.Second.Y = bounds.Second.Y
	if h > 0 && h < panel.Second.Y-panel.First.Y+1 {
		padding := panel.Second.Y - panel.First.Y + 1 - h
		top := padding / 2
		panel.First.Y += top
		panel.Second.Y -= padding - top
	}
}

func centralizeHorizontal(w int, panel, bounds *Area) {
	panel.First.X = bounds.First.X
	panel.Second.X = bounds.Second.X
	if w > 0 && w < panel.Second.X-panel.First.X+1 {
		padding := panel.Second.X - panel.First.X + 1 - w
		left := padding / 2
		panel.First.X += left
		panel.Second.X -= padding - left
	}
}

func dockToTop(h int, panel, bounds *Area) {
	h = clampDock(h, bounds.Height())
	panel.First.Y = bounds.First.Y
	panel.Second.Y = panel.First.Y + h - 1
	bounds.First.Y = panel.Second.Y + 1
	if bounds.First.Y > bounds.Second.Y {
		*bounds = InvalidArea
	}
}

func dockToBot(h int, panel, bounds *Area) {
	h = clampDock(h, bounds.Height())
	panel.Second.Y = bounds.Second.Y
	panel.First.Y = panel.Second.Y - h + 1
	bounds.Second.Y = panel.First.Y - 1
	if bounds.First.Y > bounds.Second.Y {
		*bounds = InvalidArea
	}
}

func dockToLeft(w int, panel, bounds *Area) {
	w = clampDock(w, bounds.Width())
	panel.First.X = bounds.First.X
	panel.Second.X = panel.First.X + w - 1
	bounds.First.X = panel.Second.X + 1
	if bounds.First.X > bounds.Second.X {
		*bounds = InvalidArea
	}
}

func dockToRight(w int, panel, bounds *Area) {
	w = clampDock(w, bounds.Width())
	panel.Second.X = bounds.Second.X
	panel.First.X = panel.Second.X - w + 1
	bounds.Second.X = panel.First.X - 1
	if bounds.First.X > bounds.Second.X {
		*bounds = InvalidArea
	}
}

func fillVertical(panel, bounds *Area) {
	panel.First.Y = bounds.First.Y
	panel.Second.Y = bounds.Second.Y
}

func fillHorizontal(panel, bounds *Area) {
	panel.First.X = bounds.First.X
	panel.Second.X = bounds.Second.X
}
