package tifc

// minTrackSize is the smallest extent a grid track resolves to; a residue
// thinner than this is consumed by the preceding track.
const minTrackSize = 1

// TrackDef sizes a run of grid tracks. Count unrolls the definition over
// that many consecutive tracks (zero means one).
type TrackDef struct {
	Size   int
	Method SizeMethod
	Count  int
}

// AreaDef places an interior area on the track grid: an inclusive range of
// column tracks and one of row tracks.
type AreaDef struct {
	Column, Row Span
}

// InteriorArea is a grid placement together with the cell rectangle it
// resolved to. Area is InvalidArea while the placement has no space.
type InteriorArea struct {
	Def  AreaDef
	Area Area
}

// Visible reports whether the area resolved to actual cells.
func (ia *InteriorArea) Visible() bool {
	return ia.Area.Valid()
}

// Padding is the gap between the panel rectangle and the grid, usually the
// panel border.
type Padding struct {
	Left, Right, Top, Bot int
}

// BorderPadding leaves one cell on every side.
var BorderPadding = Padding{Left: 1, Right: 1, Top: 1, Bot: 1}

// InteriorLayoutOpts configures a grid: per-axis track definitions and the
// areas spanning them.
type InteriorLayoutOpts struct {
	Columns, Rows int
	ColumnDefs    []TrackDef
	RowDefs       []TrackDef
	Areas         []AreaDef
	Padding       Padding
}

// InteriorLayout is the grid solver state of one interior: unrolled track
// definitions, the spans they resolved to, and the configured areas.
type InteriorLayout struct {
	tracks  []TrackDef // unrolled, one entry per track: columns then rows
	spans   []Span     // same indexing as tracks
	areas   []InteriorArea
	columns int
	rows    int
	padding Padding
}

// NewInteriorLayout unrolls the counted definitions and registers the
// areas. The grid starts unresolved; Recalculate assigns cells.
func NewInteriorLayout(opts InteriorLayoutOpts) InteriorLayout {
	l := InteriorLayout{
		tracks:  make([]TrackDef, 0, opts.Columns+opts.Rows),
		spans:   make([]Span, opts.Columns+opts.Rows),
		columns: opts.Columns,
		rows:    opts.Rows,
		padding: opts.Padding,
	}
	l.tracks = unrollDefs(l.tracks, opts.ColumnDefs, opts.Columns)
	l.tracks = unrollDefs(l.tracks, opts.RowDefs, opts.Rows)
	for _, def := range opts.Areas {
		l.AddArea(def)
	}
	return l
}

// unrollDefs expands counted definitions into per-track entries. A Count
// below one covers a single track.
func unrollDefs(dst []TrackDef, defs []TrackDef, amount int) []TrackDef {
	di, rept := 0, 0
	for i := 0; i < amount; i++ {
		count := defs[di].Count
		if count < 1 {
			count = 1
		}
		if rept == count {
			rept = 0
			if di+1 < len(defs) {
				di++
			}
		}
		rept++
		dst = append(dst, defs[di])
	}
	return dst
}

// AddArea registers an area over the track grid. Ranges must fit the grid.
func (l *InteriorLayout) AddArea(def AreaDef) {
	if def.Column.Start > def.Column.End || def.Row.Start > def.Row.End ||
		def.Column.End >= l.columns || def.Row.End >= l.rows {
		panic("interior layout: area definition outside the track grid")
	}
	l.areas = append(l.areas, InteriorArea{Def: def, Area: InvalidArea})
}

// Recalculate resolves every track span and area rectangle for the given
// panel rectangle.
func (l *InteriorLayout) Recalculate(panelArea Area) {
	width := panelArea.Width() - l.padding.Left - l.padding.Right
	height := panelArea.Height() - l.padding.Top - l.padding.Bot
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	calcSpans(panelArea.First.X+l.padding.Left, width,
		l.tracks[:l.columns], l.spans[:l.columns])
	calcSpans(panelArea.First.Y+l.padding.Top, height,
		l.tracks[l.columns:], l.spans[l.columns:])

	l.calcAreas()
}

// calcSpans hands out cells to tracks in order. A relative track takes its
// percentage of the full length (at least one cell); a track that would
// leave less than a cell behind absorbs the remainder; tracks beyond the
// exhausted length become invalid.
func calcSpans(start, length int, tracks []TrackDef, spans []Span) {
	total := length
	for i := range tracks {
		if length == 0 {
			spans[i] = InvalidSpan
			continue
		}

		size := tracks[i].Size
		if tracks[i].Method == SizeRelative {
			size = tracks[i].Size * total / 100
			if size < minTrackSize {
				size = minTrackSize
			}
		}
		if length < size || length-size < minTrackSize {
			size = length
		}

		spans[i] = Span{Start: start, End: start + size - 1}
		start += size
		length -= size
	}
}

// calcAreas resolves each area to the union of its spanned tracks. An
// endpoint on an invalid span invalidates the whole area.
func (l *InteriorLayout) calcAreas() {
	columns := l.spans[:l.columns]
	rows := l.spans[l.columns:]

	for i := range l.areas {
		area := &l.areas[i]
		startCol := columns[area.Def.Column.Start]
		endCol := columns[area.Def.Column.End]
		startRow := rows[area.Def.Row.Start]
		endRow := rows[area.Def.Row.End]

		if !startCol.Valid() || !endCol.Valid() ||
			!startRow.Valid() || !endRow.Valid() {
			area.Area = InvalidArea
			continue
		}

		area.Area = Area{
			First:  Position{X: startCol.Start, Y: startRow.Start},
			Second: Position{X: endCol.End, Y: endRow.End},
		}
	}
}

// Areas exposes the resolved areas in registration order.
func (l *InteriorLayout) Areas() []InteriorArea {
	return l.areas
}

// CountValidAreas returns how many areas currently resolve to cells.
func (l *InteriorLayout) CountValidAreas() int {
	count := 0
	for i := range l.areas {
		if l.areas[i].Visible() {
			count++
		}
	}
	return count
}

// PeekArea returns the index of the first area containing pos, or -1.
func (l *InteriorLayout) PeekArea(pos Position) int {
	for i := range l.areas {
		if l.areas[i].Visible() && l.areas[i].Area.Contains(pos) {
			return i
		}
	}
	return -1
}
