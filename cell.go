package tifc

import "strconv"

// Style is an opaque terminal escape sequence emitted verbatim before a
// cell's code point. The empty style emits nothing. Callers may supply any
// byte sequence their terminal understands; NewStyle builds common SGR
// sequences.
type Style string

// styleReset returns the terminal to its default rendition after every
// styled cell.
const styleReset = "\x1b[0m"

// Cell is a single character cell: one code point plus its style. Cells
// compare by value; the diff renderer relies on that.
type Cell struct {
	Ch    rune
	Style Style
}

// emptyCell is what cleared cells hold.
var emptyCell = Cell{Ch: ' '}

// StyleBuilder assembles an SGR escape sequence. Start one with NewStyle;
// a zero StyleBuilder lacks the escape prefix and does not produce a valid
// sequence. Done returns the finished Style.
type StyleBuilder struct {
	params []byte
}

// NewStyle starts a style sequence. The sequence always begins with a reset
// parameter so styles are self-contained.
func NewStyle() *StyleBuilder {
	return &StyleBuilder{params: []byte("\x1b[0")}
}

func (sb *StyleBuilder) param(n int) *StyleBuilder {
	sb.params = append(sb.params, ';')
	sb.params = strconv.AppendInt(sb.params, int64(n), 10)
	return sb
}

// Bold enables bold text.
func (sb *StyleBuilder) Bold() *StyleBuilder { return sb.param(1) }

// Dim enables faint text.
func (sb *StyleBuilder) Dim() *StyleBuilder { return sb.param(2) }

// Italic enables italic text.
func (sb *StyleBuilder) Italic() *StyleBuilder { return sb.param(3) }

// Underline enables underlined text.
func (sb *StyleBuilder) Underline() *StyleBuilder { return sb.param(4) }

// Inverse swaps foreground and background.
func (sb *StyleBuilder) Inverse() *StyleBuilder { return sb.param(7) }

// Fg sets one of the 16 basic foreground colours (0-15).
func (sb *StyleBuilder) Fg(index int) *StyleBuilder {
	if index >= 8 {
		return sb.param(90 + index - 8)
	}
	return sb.param(30 + index)
}

// Bg sets one of the 16 basic background colours (0-15).
func (sb *StyleBuilder) Bg(index int) *StyleBuilder {
	if index >= 8 {
		return sb.param(100 + index - 8)
	}
	return sb.param(40 + index)
}

// Fg256 sets a foreground colour from the 256-colour palette.
func (sb *StyleBuilder) Fg256(index int) *StyleBuilder {
	return sb.param(38).param(5).param(index)
}

// Bg256 sets a background colour from the 256-colour palette.
func (sb *StyleBuilder) Bg256(index int) *StyleBuilder {
	return sb.param(48).param(5).param(index)
}

// FgRGB sets a 24-bit foreground colour.
func (sb *StyleBuilder) FgRGB(r, g, b int) *StyleBuilder {
	return sb.param(38).param(2).param(r).param(g).param(b)
}

// BgRGB sets a 24-bit background colour.
func (sb *StyleBuilder) BgRGB(r, g, b int) *StyleBuilder {
	return sb.param(48).param(2).param(r).param(g).param(b)
}

// Done terminates and returns the sequence.
func (sb *StyleBuilder) Done() Style {
	return Style(append(sb.params, 'm'))
}

// BorderSet holds the six glyphs a border is drawn with.
type BorderSet struct {
	TopLeft, TopRight, BotRight, BotLeft rune
	Vertical, Horizontal                 rune
}

// Predefined border glyph sets.
var (
	BorderRounded = BorderSet{'╭', '╮', '╯', '╰', '│', '─'}
	BorderSquare  = BorderSet{'┌', '┐', '┘', '└', '│', '─'}
	BorderDouble  = BorderSet{'╔', '╗', '╝', '╚', '║', '═'}
	BorderBlock   = BorderSet{'▛', '▜', '▟', '▙', '▍', '▃'}
	BorderDashed  = BorderSet{'╭', '╮', '╯', '╰', '┆', '┄'}
)
