package tifc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// dispBuffers is the depth of the buffer ring. Two in practice: the active
// frame being drawn and the previous frame to diff against.
const dispBuffers = 2

// ResizeHook is invoked from the render path after a window-size change has
// been observed and the cached size refreshed.
type ResizeHook func(d *Display)

// Display is a double-buffered character grid. Drawing operations write
// into the active buffer only; RenderArea emits the difference against the
// previous frame and swaps the buffers.
type Display struct {
	bufs   [dispBuffers][]Cell
	active int
	size   Position

	out io.Writer
	buf bytes.Buffer // frame assembly, written out in one call

	sizeFn func() (Position, error)

	resizeDetected atomic.Bool
	onResize       ResizeHook
	sigCh          chan os.Signal
}

// NewDisplay creates a display writing to w (os.Stdout when nil), sized
// from the controlling terminal.
func NewDisplay(w io.Writer) (*Display, error) {
	if w == nil {
		w = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	sizeFn := func() (Position, error) { return terminalSize(fd) }

	size, err := sizeFn()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}

	d := &Display{out: w, size: size, sizeFn: sizeFn}
	d.alloc()
	return d, nil
}

// NewVirtualDisplay creates a display of a fixed size with no terminal
// behind it. Used for headless rendering and tests.
func NewVirtualDisplay(w io.Writer, size Position) *Display {
	d := &Display{
		out:    w,
		size:   size,
		sizeFn: func() (Position, error) { return size, nil },
	}
	d.alloc()
	return d
}

func (d *Display) alloc() {
	n := d.size.X * d.size.Y
	for i := range d.bufs {
		d.bufs[i] = make([]Cell, n)
		for j := range d.bufs[i] {
			d.bufs[i][j] = emptyCell
		}
	}
}

// Size returns the cached terminal size.
func (d *Display) Size() Position {
	return d.size
}

// Bounds returns the full display rectangle.
func (d *Display) Bounds() Area {
	return Area{Second: Position{X: d.size.X - 1, Y: d.size.Y - 1}}
}

// SetResizeHandler installs hook and begins listening for SIGWINCH. The
// signal path only flips an atomic flag; the hook runs on the render path.
func (d *Display) SetResizeHandler(hook ResizeHook) {
	d.onResize = hook
	if d.sigCh == nil {
		d.sigCh = make(chan os.Signal, 1)
		signal.Notify(d.sigCh, syscall.SIGWINCH)
		go func() {
			for range d.sigCh {
				d.resizeDetected.Store(true)
			}
		}()
	}
}

// StopResizeHandler detaches the SIGWINCH listener.
func (d *Display) StopResizeHandler() {
	if d.sigCh != nil {
		signal.Stop(d.sigCh)
		close(d.sigCh)
		d.sigCh = nil
	}
}

func (d *Display) index(pos Position) int {
	return pos.Y*d.size.X + pos.X
}

func (d *Display) checkBounds(pos Position) {
	if pos.X < 0 || pos.X >= d.size.X || pos.Y < 0 || pos.Y >= d.size.Y {
		panic(fmt.Sprintf("display: write at (%d,%d) outside %dx%d",
			pos.X, pos.Y, d.size.X, d.size.Y))
	}
}

// SetChar writes a code point into the active buffer. Writing outside the
// display is a programming error and panics.
func (d *Display) SetChar(pos Position, ch rune) {
	d.checkBounds(pos)
	d.bufs[d.active][d.index(pos)].Ch = ch
}

// SetStyle writes a style into the active buffer.
func (d *Display) SetStyle(pos Position, style Style) {
	d.checkBounds(pos)
	d.bufs[d.active][d.index(pos)].Style = style
}

// Get returns the active-buffer cell at pos.
func (d *Display) Get(pos Position) Cell {
	d.checkBounds(pos)
	return d.bufs[d.active][d.index(pos)]
}

// Clear resets the whole active buffer to blank cells.
func (d *Display) Clear() {
	d.ClearArea(d.Bounds())
}

// ClearArea fills area with blank cells in the active buffer, clipped to
// the display size.
func (d *Display) ClearArea(area Area) {
	active := d.bufs[d.active]
	for y := area.First.Y; y <= area.Second.Y && y < d.size.Y; y++ {
		for x := area.First.X; x <= area.Second.X && x < d.size.X; x++ {
			active[y*d.size.X+x] = emptyCell
		}
	}
}

// FillArea paints area with spaces in the given style.
func (d *Display) FillArea(style Style, area Area) {
	for y := area.First.Y; y <= area.Second.Y; y++ {
		for x := area.First.X; x <= area.Second.X; x++ {
			pos := Position{X: x, Y: y}
			d.SetStyle(pos, style)
			d.SetChar(pos, ' ')
		}
	}
}

// DrawBorder draws a border along the edges of area with the given glyph
// set.
func (d *Display) DrawBorder(style Style, border BorderSet, area Area) {
	for y := area.First.Y; y <= area.Second.Y; y++ {
		for x := area.First.X; x <= area.Second.X; x++ {
			pos := Position{X: x, Y: y}
			switch {
			case x == area.First.X && y == area.First.Y:
				d.setBorder(border.TopLeft, pos, style)
			case x == area.Second.X && y == area.First.Y:
				d.setBorder(border.TopRight, pos, style)
			case x == area.Second.X && y == area.Second.Y:
				d.setBorder(border.BotRight, pos, style)
			case x == area.First.X && y == area.Second.Y:
				d.setBorder(border.BotLeft, pos, style)
			case x == area.First.X || x == area.Second.X:
				d.setBorder(border.Vertical, pos, style)
			case y == area.First.Y || y == area.Second.Y:
				d.setBorder(border.Horizontal, pos, style)
			}
		}
	}
}

func (d *Display) setBorder(ch rune, pos Position, style Style) {
	d.SetStyle(pos, style)
	d.SetChar(pos, ch)
}

// DrawString writes s starting at pos, clipped to the display edge.
// Double-width runes occupy two cells; the trailing cell holds a zero rune
// the renderer skips.
func (d *Display) DrawString(s string, pos Position, style Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if pos.X+w > d.size.X {
			return
		}
		d.SetChar(pos, r)
		d.SetStyle(pos, style)
		if w == 2 {
			filler := Position{X: pos.X + 1, Y: pos.Y}
			d.SetChar(filler, 0)
			d.SetStyle(filler, style)
		}
		pos.X += w
	}
}

// DrawStringCentered writes s centred horizontally in area, on its middle
// row, truncating when it does not fit.
func (d *Display) DrawStringCentered(s string, area Area, style Style) {
	hmax := area.Second.X - area.First.X
	pos := Position{Y: (area.First.Y + area.Second.Y) / 2}

	size := runewidth.StringWidth(s)
	if hmax <= size {
		pos.X = area.First.X
		s = runewidth.Truncate(s, hmax, "")
	} else {
		pos.X = area.First.X + (hmax-size)/2
	}
	d.DrawString(s, pos, style)
}

// TextAlign selects the placement of a string inside an area.
type TextAlign uint8

const (
	TextAlignCenter TextAlign = iota
	TextAlignTopCenter
	TextAlignBotCenter
	TextAlignLeftMiddle
	TextAlignRightMiddle
)

// DrawStringAligned writes s into area at the requested alignment. When the
// area is narrower than the string, left alignment truncates from the end;
// the centred and right alignments truncate from the start.
func (d *Display) DrawStringAligned(s string, area Area, style Style, align TextAlign) {
	hmax := area.Second.X - area.First.X
	vmax := area.Second.Y - area.First.Y
	size := runewidth.StringWidth(s)
	pos := Position{}

	centerH := func() {
		pos.X = area.First.X
		if size <= hmax {
			pos.X += (hmax - size) / 2
		} else {
			s = tailTruncate(s, hmax)
			size = hmax
		}
	}
	clipLeft := func() {
		pos.X = area.First.X
		if size > hmax {
			s = runewidth.Truncate(s, hmax, "")
			size = hmax
		}
	}
	clipRight := func() {
		pos.X = area.First.X
		if size > hmax {
			s = tailTruncate(s, hmax)
			size = hmax
		} else {
			pos.X += hmax - size + 1
		}
	}

	switch align {
	case TextAlignCenter:
		pos.Y = area.First.Y + vmax/2
		centerH()
	case TextAlignTopCenter:
		pos.Y = area.First.Y
		centerH()
	case TextAlignBotCenter:
		pos.Y = area.Second.Y
		centerH()
	case TextAlignLeftMiddle:
		pos.Y = area.First.Y + vmax/2
		clipLeft()
	case TextAlignRightMiddle:
		pos.Y = area.First.Y + vmax/2
		clipRight()
	}

	d.DrawString(s, pos, style)
}

// tailTruncate keeps the trailing columns of s, dropping runes from the
// front until it fits.
func tailTruncate(s string, max int) string {
	for s != "" && runewidth.StringWidth(s) > max {
		_, n := utf8.DecodeRuneInString(s)
		s = s[n:]
	}
	return s
}

// Render diffs and emits the entire display, then flushes.
func (d *Display) Render() error {
	return d.RenderArea(d.Bounds())
}

// RenderArea walks area row-major, emitting every cell that differs from
// the previous frame: the cell's style (when non-empty), a 1-based cursor
// position, the code point, and a style reset. A pending window resize
// refreshes the cached size, runs the resize hook and forces a reprint of
// every visited cell. The buffers swap afterwards.
func (d *Display) RenderArea(area Area) error {
	forceReprint := false
	if d.resizeDetected.CompareAndSwap(true, false) {
		size, err := d.sizeFn()
		if err != nil {
			return fmt.Errorf("query terminal size: %w", err)
		}
		if size != d.size {
			d.size = size
			d.alloc()
		}
		if d.onResize != nil {
			d.onResize(d)
		}
		forceReprint = true
	}

	prev := (d.active + dispBuffers - 1) % dispBuffers
	active := d.bufs[d.active]
	previous := d.bufs[prev]

	d.buf.Reset()
	for y := area.First.Y; y <= area.Second.Y && y < d.size.Y; y++ {
		for x := area.First.X; x <= area.Second.X && x < d.size.X; x++ {
			i := y*d.size.X + x
			if !forceReprint && active[i] == previous[i] {
				continue
			}
			if active[i].Ch == 0 {
				// Trailing half of a double-width rune.
				continue
			}
			d.writeCell(active[i], x, y)
		}
	}

	d.active = (d.active + 1) % dispBuffers

	if d.buf.Len() == 0 {
		return nil
	}
	if _, err := d.out.Write(d.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (d *Display) writeCell(c Cell, x, y int) {
	if c.Style != "" {
		d.buf.WriteString(string(c.Style))
	}
	d.buf.WriteString("\x1b[")
	writeInt(&d.buf, y+1)
	d.buf.WriteByte(';')
	writeInt(&d.buf, x+1)
	d.buf.WriteByte('H')
	d.buf.WriteRune(c.Ch)
	d.buf.WriteString(styleReset)
}

// writeInt appends a non-negative integer without allocating.
func writeInt(buf *bytes.Buffer, n int) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	buf.Write(scratch[i:])
}

// Erase clears the real terminal screen immediately, bypassing the
// buffers.
func (d *Display) Erase() error {
	_, err := io.WriteString(d.out, clearScreen)
	return err
}
