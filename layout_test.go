package tifc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanelPlacement(t *testing.T) {
	fullBounds := func() Area {
		return Area{Second: Position{X: 79, Y: 23}}
	}

	t.Run("TopRelativeDocksAndShrinks", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{
			Align:  AlignTop,
			Method: SizeRelative,
			Size:   Position{Y: 50},
		}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, Area{
			First:  Position{X: 0, Y: 0},
			Second: Position{X: 79, Y: 11},
		}, area)
		require.Equal(t, Area{
			First:  Position{X: 0, Y: 12},
			Second: Position{X: 79, Y: 23},
		}, bounds)
	})

	t.Run("SecondPanelTakesRemainder", func(t *testing.T) {
		bounds := fullBounds()
		top := PanelLayout{Align: AlignTop, Method: SizeRelative, Size: Position{Y: 50}}
		bot := PanelLayout{Align: AlignBot, Method: SizeRelative, Size: Position{Y: 100}}

		calcPanelArea(top, &bounds)
		area := calcPanelArea(bot, &bounds)

		require.Equal(t, Area{
			First:  Position{X: 0, Y: 12},
			Second: Position{X: 79, Y: 23},
		}, area)
		require.False(t, bounds.Valid(), "no space should remain")
	})

	t.Run("LeftFixedDock", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{Align: AlignLeft, Method: SizeFixed, Size: Position{X: 20}}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, Area{
			First:  Position{X: 0, Y: 0},
			Second: Position{X: 19, Y: 23},
		}, area)
		require.Equal(t, 20, bounds.First.X)
	})

	t.Run("CenterConsumesEverything", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{Align: AlignCenter, Method: SizeFixed, Size: Position{X: 20, Y: 10}}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, 20, area.Width())
		require.Equal(t, 10, area.Height())
		require.Equal(t, Area{
			First:  Position{X: 30, Y: 7},
			Second: Position{X: 49, Y: 16},
		}, area)
		require.False(t, bounds.Valid())
	})

	t.Run("TopCenteredCombination", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{
			Align:  AlignTop | AlignHCenter,
			Method: SizeFixed,
			Size:   Position{X: 40, Y: 5},
		}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, Area{
			First:  Position{X: 20, Y: 0},
			Second: Position{X: 59, Y: 4},
		}, area)
		require.Equal(t, 5, bounds.First.Y)
		require.Equal(t, 0, bounds.First.X, "horizontal bounds stay intact")
	})

	t.Run("ThinResidueIsAbsorbed", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{Align: AlignTop, Method: SizeFixed, Size: Position{Y: 23}}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, 24, area.Height(), "1-row residue should be consumed")
		require.False(t, bounds.Valid())
	})

	t.Run("RelativeMinimumIsTwoCells", func(t *testing.T) {
		bounds := fullBounds()
		layout := PanelLayout{Align: AlignTop, Method: SizeRelative, Size: Position{Y: 1}}
		area := calcPanelArea(layout, &bounds)

		require.Equal(t, minPanelSize, area.Height())
	})

	t.Run("ExhaustedBoundsYieldInvalidArea", func(t *testing.T) {
		bounds := fullBounds()
		calcPanelArea(PanelLayout{Align: AlignCenter}, &bounds)
		area := calcPanelArea(PanelLayout{Align: AlignTop, Method: SizeFixed, Size: Position{Y: 3}}, &bounds)
		require.False(t, area.Valid())
	})

	t.Run("ZeroSizedBoundsYieldInvalidArea", func(t *testing.T) {
		bounds := Area{Second: Position{X: 0, Y: 0}}
		area := calcPanelArea(PanelLayout{Align: AlignTop, Method: SizeFixed, Size: Position{Y: 3}}, &bounds)
		require.False(t, area.Valid())
	})

	t.Run("ResolvedAreasStayInsideBounds", func(t *testing.T) {
		layouts := []PanelLayout{
			{Align: AlignTop, Method: SizeRelative, Size: Position{Y: 30}},
			{Align: AlignLeft, Method: SizeFixed, Size: Position{X: 10}},
			{Align: AlignBot | AlignHCenter, Method: SizeFixed, Size: Position{X: 30, Y: 4}},
			{Align: AlignCenter},
		}
		original := fullBounds()
		bounds := original
		for _, l := range layouts {
			area := calcPanelArea(l, &bounds)
			if !area.Valid() {
				continue
			}
			require.True(t, area.First.X <= area.Second.X)
			require.True(t, area.First.Y <= area.Second.Y)
			require.True(t, original.Contains(area.First))
			require.True(t, original.Contains(area.Second))
		}
	})
}

func TestInteriorLayout(t *testing.T) {
	t.Run("FixedTracks", func(t *testing.T) {
		l := NewInteriorLayout(InteriorLayoutOpts{
			Columns:    1,
			Rows:       3,
			ColumnDefs: []TrackDef{{Size: 100, Method: SizeRelative}},
			RowDefs:    []TrackDef{{Size: 3, Count: 3}},
			Areas: []AreaDef{
				{Column: Span{0, 0}, Row: Span{0, 0}},
				{Column: Span{0, 0}, Row: Span{1, 1}},
				{Column: Span{0, 0}, Row: Span{2, 2}},
			},
			Padding: BorderPadding,
		})
		l.Recalculate(Area{Second: Position{X: 19, Y: 11}})

		areas := l.Areas()
		require.Equal(t, Area{Position{1, 1}, Position{18, 3}}, areas[0].Area)
		require.Equal(t, Area{Position{1, 4}, Position{18, 6}}, areas[1].Area)
		require.Equal(t, Area{Position{1, 7}, Position{18, 9}}, areas[2].Area)
		require.Equal(t, 3, l.CountValidAreas())
	})

	t.Run("TracksBeyondSpaceGoInvalid", func(t *testing.T) {
		l := NewInteriorLayout(InteriorLayoutOpts{
			Columns:    1,
			Rows:       4,
			ColumnDefs: []TrackDef{{Size: 100, Method: SizeRelative}},
			RowDefs:    []TrackDef{{Size: 3, Count: 4}},
			Areas: []AreaDef{
				{Column: Span{0, 0}, Row: Span{0, 0}},
				{Column: Span{0, 0}, Row: Span{3, 3}},
			},
		})
		// Only 6 rows: tracks 0-1 fit, the rest get nothing.
		l.Recalculate(Area{Second: Position{X: 9, Y: 5}})

		areas := l.Areas()
		require.True(t, areas[0].Visible())
		require.False(t, areas[1].Visible(), "area over an invalid span is invalid")
		require.Equal(t, 1, l.CountValidAreas())
	})

	t.Run("SpannedArea", func(t *testing.T) {
		l := NewInteriorLayout(InteriorLayoutOpts{
			Columns:    2,
			Rows:       2,
			ColumnDefs: []TrackDef{{Size: 50, Method: SizeRelative, Count: 2}},
			RowDefs:    []TrackDef{{Size: 50, Method: SizeRelative, Count: 2}},
			Areas: []AreaDef{
				{Column: Span{0, 1}, Row: Span{0, 0}},
			},
		})
		l.Recalculate(Area{Second: Position{X: 9, Y: 9}})

		area := l.Areas()[0].Area
		require.Equal(t, 0, area.First.X)
		require.Equal(t, 9, area.Second.X, "area spans both column tracks")
	})

	t.Run("PeekArea", func(t *testing.T) {
		l := NewInteriorLayout(InteriorLayoutOpts{
			Columns:    2,
			Rows:       1,
			ColumnDefs: []TrackDef{{Size: 50, Method: SizeRelative, Count: 2}},
			RowDefs:    []TrackDef{{Size: 100, Method: SizeRelative}},
			Areas: []AreaDef{
				{Column: Span{0, 0}, Row: Span{0, 0}},
				{Column: Span{1, 1}, Row: Span{0, 0}},
			},
		})
		l.Recalculate(Area{Second: Position{X: 9, Y: 2}})

		require.Equal(t, 0, l.PeekArea(Position{X: 1, Y: 1}))
		require.Equal(t, 1, l.PeekArea(Position{X: 8, Y: 1}))
		require.Equal(t, -1, l.PeekArea(Position{X: 50, Y: 50}))
	})

	t.Run("ZeroLengthMakesAllInvalid", func(t *testing.T) {
		l := NewInteriorLayout(InteriorLayoutOpts{
			Columns:    1,
			Rows:       1,
			ColumnDefs: []TrackDef{{Size: 100, Method: SizeRelative}},
			RowDefs:    []TrackDef{{Size: 100, Method: SizeRelative}},
			Areas:      []AreaDef{{Column: Span{0, 0}, Row: Span{0, 0}}},
			Padding:    BorderPadding,
		})
		// A 2x2 panel minus one cell of padding per side leaves nothing.
		l.Recalculate(Area{Second: Position{X: 1, Y: 1}})
		require.Equal(t, 0, l.CountValidAreas())
	})

	t.Run("UnrollCountedDefs", func(t *testing.T) {
		tracks := unrollDefs(nil, []TrackDef{
			{Size: 5, Count: 2},
			{Size: 7},
		}, 4)
		require.Len(t, tracks, 4)
		require.Equal(t, 5, tracks[0].Size)
		require.Equal(t, 5, tracks[1].Size)
		require.Equal(t, 7, tracks[2].Size)
		require.Equal(t, 7, tracks[3].Size, "last def repeats for leftover tracks")
	})
}
