package tifc

// TextInputState drives the field's rendition.
type TextInputState uint8

const (
	TextInputInactive TextInputState = iota
	TextInputActive
	TextInputError
)

// TextInputAction is invoked when the field submits its content.
type TextInputAction struct {
	Submit func(text string, data any)
	Data   any
}

// TextInputStyles holds one border set and style per field state, plus the
// caret rendition.
type TextInputStyles struct {
	Borders [3]BorderSet
	Styles  [3]Style
	Caret   Style
}

// DefaultTextInputStyles mirrors the classic rendition: a plain border
// when idle, a double border when active, an alarm block border on error.
func DefaultTextInputStyles() TextInputStyles {
	errStyle := NewStyle().Fg(0).Bg(1).Done()
	return TextInputStyles{
		Borders: [3]BorderSet{BorderSquare, BorderDouble, BorderBlock},
		Styles: [3]Style{
			NewStyle().Fg(7).Done(),
			NewStyle().Fg(7).Done(),
			errStyle,
		},
		Caret: errStyle,
	}
}

// TextInputInterior is a single-line editable field. The visible window is
// the first grid area minus its border; caret and offset keep the edit
// point inside that window while the text scrolls beneath it.
type TextInputInterior struct {
	InteriorBase
	text   []byte
	caret  int // cursor offset within the window
	offset int // first rendered byte
	state  TextInputState
	action TextInputAction
	styles TextInputStyles
}

// NewTextInput creates a text input field interior.
func NewTextInput(layout InteriorLayoutOpts, action TextInputAction, styles TextInputStyles) *TextInputInterior {
	return &TextInputInterior{
		InteriorBase: NewInteriorBase(layout),
		action:       action,
		styles:       styles,
	}
}

// Text returns the current content.
func (t *TextInputInterior) Text() string {
	return string(t.text)
}

// State returns the field state.
func (t *TextInputInterior) State() TextInputState {
	return t.state
}

// SetError flips the field into its error rendition.
func (t *TextInputInterior) SetError() {
	t.state = TextInputError
}

// Deinit releases the text buffer.
func (t *TextInputInterior) Deinit() {
	t.text = nil
}

// windowLength is the editable width: the field area minus the border
// columns on both ends.
func (t *TextInputInterior) windowLength() int {
	if len(t.layout.areas) == 0 || !t.layout.areas[0].Visible() {
		return 0
	}
	width := t.layout.areas[0].Area.Width()
	if width <= 2 {
		return 0
	}
	return width - 2
}

// Render draws the field: border and fill per state, overflow indicators,
// the visible text window, and the caret when active.
func (t *TextInputInterior) Render(d *Display) {
	if len(t.layout.areas) == 0 || !t.layout.areas[0].Visible() {
		return
	}
	area := t.layout.areas[0].Area
	window := t.windowLength()

	style := t.styles.Styles[t.state]
	d.FillArea(style, area)
	d.DrawBorder(style, t.styles.Borders[t.state], area)

	midY := area.First.Y + area.Height()/2

	// Overflow indicators replace the border cell at mid height.
	if t.offset > 0 {
		d.SetChar(Position{X: area.First.X, Y: midY}, '<')
	}
	if len(t.text)-t.offset > window {
		d.SetChar(Position{X: area.Second.X, Y: midY}, '>')
	}

	visible := len(t.text) - t.offset
	if visible > window {
		visible = window
	}
	textArea := area
	textArea.First.X++
	d.DrawStringAligned(string(t.text[t.offset:t.offset+visible]),
		textArea, t.styles.Styles[0], TextAlignLeftMiddle)

	if t.state == TextInputInactive {
		return
	}
	d.SetStyle(Position{X: area.First.X + 1 + t.caret, Y: midY}, t.styles.Caret)
}

// RecvFocus activates the field.
func (t *TextInputInterior) RecvFocus() {
	t.state = TextInputActive
}

// LostFocus deactivates the field.
func (t *TextInputInterior) LostFocus() {
	t.state = TextInputInactive
}

// Press focuses the field on a left click.
func (t *TextInputInterior) Press(pos Position, btn MouseButton) {
	if btn == Mouse1 {
		t.RecvFocus()
	}
}

// moveLeft shifts the edit point one position towards the start.
func (t *TextInputInterior) moveLeft() {
	if t.caret > 0 {
		t.caret--
	} else if t.offset > 0 {
		t.offset--
	}
}

// moveRight shifts the edit point towards the end, scrolling the window
// once the caret hits its edge.
func (t *TextInputInterior) moveRight(window int) {
	if t.caret < window {
		t.caret++
	} else {
		t.offset++
	}
}

// Keystroke edits the field.
func (t *TextInputInterior) Keystroke(ev KeystrokeEvent) {
	window := t.windowLength()
	posFromStart := t.offset + t.caret

	switch ev.Code {
	case KeyLeft:
		t.moveLeft()

	case KeyRight:
		if t.caret < len(t.text)-t.offset {
			t.moveRight(window)
		}

	case KeyBackspace:
		if len(t.text) > 0 && posFromStart > 0 {
			t.text = append(t.text[:posFromStart-1], t.text[posFromStart:]...)
			t.moveLeft()
		}

	case KeyDelete:
		if len(t.text) > 0 && posFromStart < len(t.text) {
			t.text = append(t.text[:posFromStart], t.text[posFromStart+1:]...)
		}

	case KeyReturn:
		if t.action.Submit != nil {
			t.action.Submit(string(t.text), t.action.Data)
		}

	case KeyEsc:
		// Swallowed: the field keeps its content.

	default:
		if ev.Stroke == 0 || isControlByte(ev.Stroke) {
			return
		}
		t.text = append(t.text, 0)
		copy(t.text[posFromStart+1:], t.text[posFromStart:])
		t.text[posFromStart] = ev.Stroke
		t.moveRight(window)
	}
}
