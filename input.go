package tifc

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const (
	// inputQueueSize is the capacity of the byte queue between the OS
	// read path and the decoder.
	inputQueueSize = 4 * 1024

	// inputBufferSize bounds a single read from the OS and a single
	// drain of the queue.
	inputBufferSize = 256

	// mouseOffset is subtracted from X10 mouse report coordinates.
	mouseOffset = 0x20
)

// EscTimeout is the quiet interval after a lone ESC byte before it is
// reported as the Escape key rather than the start of an escape sequence.
const EscTimeout = 10 * time.Millisecond

// MouseButton identifies the button carried by a mouse report.
type MouseButton uint8

const (
	Mouse1 MouseButton = iota
	Mouse2
	Mouse3
	MouseNone

	// Wheel motion arrives as button 1/2 with scrolling motion.
	ScrollUp   = Mouse1
	ScrollDown = Mouse2
)

// MouseMotion classifies a mouse report.
type MouseMotion uint8

const (
	MotionStatic MouseMotion = iota + 1
	MotionMoving
	MotionScrolling
)

// KeystrokeEvent is a decoded keyboard event. Stroke is the raw final byte
// for printable keys, useful for text entry.
type KeystrokeEvent struct {
	Code   KeyCode
	Mod    Modifier
	Stroke byte
}

// MouseEvent is a decoded mouse report with a zero-based position.
type MouseEvent struct {
	Button MouseButton
	Mod    Modifier
	Motion MouseMotion
	Pos    Position
}

// Hooks is the callback table the decoder dispatches into. Nil entries are
// skipped.
type Hooks struct {
	OnHover     func(ev MouseEvent)
	OnPress     func(ev MouseEvent)
	OnRelease   func(ev MouseEvent)
	OnDragBegin func(begin MouseEvent)
	OnDrag      func(begin, moved MouseEvent)
	OnDragEnd   func(begin, end MouseEvent)
	OnScroll    func(ev MouseEvent)
	OnKeystroke func(ev KeystrokeEvent)
	OnPaste     func(text []byte)
}

// Decoder states. One state per position inside the recognised sequences:
//
//	ESC                          keystroke (after quiet interval) / Alt prefix
//	ESC [ M b x y                mouse report
//	ESC [ A|B|C|D|F|H            navigation
//	ESC [ 1 ; m A|B|C|D|F|H      modified navigation
//	ESC [ 1 ; m P|Q|R|S          modified F1-F4
//	ESC O P|Q|R|S                F1-F4
//	ESC [ 5|6 [; m] ~            page up / page down
//	ESC [ 3 [; m] ~              delete
//	ESC [ 2 ~                    insert
//	ESC [ 1 5|7|8|9 [; m] ~      F5-F8
//	ESC [ 2 0|1|3|4 [; m] ~      F9-F12
//	ESC [ 200 ~ ... ESC [ 201 ~  bracketed paste
type state uint8

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateMouseBtn
	stateMouseCol
	stateMouseRow
	stateDigit2   // CSI 2 seen: insert, F9-F12 or paste start
	stateDigit20  // CSI 20 seen: F9 or paste start
	stateDigit200 // CSI 200 seen: paste start pending ~
	statePasteBody
	statePasteEsc
	statePasteCSI
	statePasteEnd2
	statePasteEnd20
	statePasteEnd201
	stateDigit1      // CSI 1 seen: modified keys or F5-F8
	stateModifier    // consumes the modifier byte after CSI 1;
	stateModFinal    // final selector of a modified sequence
	stateNavTilde    // CSI 5/6 seen, optional ;modifier then ~
	stateNavModifier // consumes the modifier byte of a nav sequence
	stateNavFinal    // terminating ~ of a modified nav sequence
	stateTilde       // CSI n pending its ~, optional ;modifier
	stateTildeSemi   // consumes the modifier byte of a CSI n;m~ sequence
	stateTildeMod    // terminating ~ after a consumed modifier; kept for
	// symmetry with the nav path but unreachable: stateTildeSemi returns
	// to stateTilde, which consumes the ~ itself
	stateSS3
)

// Input owns one decoding session: the readiness multiplexer, the byte
// queue and the sequence state machine.
type Input struct {
	fd    int
	poll  *poller
	queue *CircBuf

	st            state
	escapePressed bool
	ke            KeystrokeEvent
	eventBuf      [3]byte
	paste         []byte

	prevMouse MouseEvent
	lastMouse MouseEvent
	pressed   MouseEvent
	released  MouseEvent
	drag      bool
}

// NewInput creates a decoder reading from standard input.
func NewInput() *Input {
	fd := int(os.Stdin.Fd())
	return &Input{
		fd:    fd,
		poll:  newPoller(fd),
		queue: NewCircBuf(inputQueueSize),
	}
}

// AddDescriptor registers an auxiliary descriptor; its readable bytes are
// absorbed into buf whenever HandleEvents observes readiness.
func (in *Input) AddDescriptor(fd int, buf *CircBuf) {
	in.poll.add(fd, buf)
}

// HandleEvents blocks until input arrives or the escape timeout expires,
// then drains and decodes pending bytes, dispatching one callback per
// recognised sequence.
func (in *Input) HandleEvents(h *Hooks) error {
	n, err := in.poll.wait(int(EscTimeout / time.Millisecond))
	if err != nil {
		return err
	}
	if n == 0 {
		in.onTimeout(h)
		return nil
	}

	for i := range in.poll.fds {
		if !in.poll.readable(i) {
			continue
		}
		fd := int(in.poll.fds[i].Fd)
		if fd == in.fd {
			if err := in.read(); err != nil {
				return err
			}
			if err := in.process(h); err != nil {
				return err
			}
			continue
		}
		if buf := in.poll.aux[fd]; buf != nil {
			in.readAux(fd, buf)
		}
	}
	return nil
}

// read pulls bytes from the OS into the queue, bounded by the queue's free
// space.
func (in *Input) read() error {
	space := in.queue.WriteAvailable()
	if space == 0 {
		return ErrQueueFull
	}
	toRead := min(space, inputBufferSize)

	var buf [inputBufferSize]byte
	n, err := unix.Read(in.fd, buf[:toRead])
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if n > 0 {
		in.queue.Write(buf[:n])
	}
	return nil
}

func (in *Input) readAux(fd int, dst *CircBuf) {
	space := dst.WriteAvailable()
	if space == 0 {
		return
	}
	var buf [inputBufferSize]byte
	n, err := unix.Read(fd, buf[:min(space, inputBufferSize)])
	if err != nil || n <= 0 {
		return
	}
	dst.Write(buf[:n])
}

// process drains up to inputBufferSize queued bytes through the state
// machine.
func (in *Input) process(h *Hooks) error {
	var buf [inputBufferSize]byte
	n := in.queue.Read(buf[:])
	for i := 0; i < n; i++ {
		in.feed(h, buf[i])
	}
	return nil
}

// onTimeout fires the escape-disambiguation tick: a lone ESC still parked
// in the machine is reported as the Escape key.
func (in *Input) onTimeout(h *Hooks) {
	if in.escapePressed && in.ke.Stroke == 0x1b {
		in.st = stateGround
		in.ke.Code = KeyEsc
		in.emitKeystroke(h)
	}
	in.escapePressed = false
}

// parseError resets the machine without emitting; the session continues.
func (in *Input) parseError(b byte) {
	logger.Debug("input: unexpected byte in sequence",
		"byte", fmt.Sprintf("%#02x", b), "state", in.st)
	in.st = stateGround
}

func (in *Input) emitKeystroke(h *Hooks) {
	if h.OnKeystroke != nil {
		h.OnKeystroke(in.ke)
	}
}

// feed advances the state machine by one byte.
func (in *Input) feed(h *Hooks, b byte) {
	in.ke.Stroke = b

	switch in.st {
	case stateGround:
		in.ke.Mod = 0
		switch b {
		case 0x1b:
			in.st = stateEscape
			in.escapePressed = true
		case 0x7f:
			in.ke.Code = KeyBackspace
			in.emitKeystroke(h)
		default:
			code, ok := mapASCII(b)
			if !ok {
				in.parseError(b)
				return
			}
			in.ke.Code = code
			if isUpper(b) || isShiftedSymbol(b) {
				in.ke.Mod |= ModShift
			}
			if isControlByte(b) {
				in.ke.Mod |= ModCtrl
			}
			in.emitKeystroke(h)
		}

	case stateEscape:
		switch b {
		case 0x1b:
			in.st = stateGround
			in.escapePressed = false
			in.ke.Code = KeyEsc
			in.emitKeystroke(h)
		case '[':
			in.st = stateCSI
		case 'O':
			in.st = stateSS3
		default:
			in.st = stateGround
			code, ok := mapASCII(b)
			if !ok {
				in.parseError(b)
				return
			}
			in.ke.Code = code
			in.ke.Mod |= ModAlt
			if isUpper(b) || isShiftedSymbol(b) {
				in.ke.Mod |= ModShift
			}
			if isControlByte(b) {
				in.ke.Mod |= ModCtrl
			}
			in.emitKeystroke(h)
		}

	case stateCSI:
		switch b {
		case '0':
			in.st = stateGround
		case '1':
			in.st = stateDigit1
		case '2':
			in.st = stateDigit2
		case '3':
			in.ke.Code = KeyDelete
			in.st = stateTilde
		case '5', '6':
			code, _ := mapNav(b)
			in.ke.Code = code
			in.st = stateNavTilde
		case 'M':
			in.st = stateMouseBtn
		case 'A', 'B', 'C', 'D', 'F', 'H':
			code, _ := mapNav(b)
			in.ke.Code = code
			in.emitKeystroke(h)
			in.st = stateGround
		default:
			code, ok := mapASCII(b)
			if !ok {
				in.parseError(b)
				return
			}
			in.ke.Code = code
			in.emitKeystroke(h)
			in.st = stateGround
		}

	case stateMouseBtn:
		in.eventBuf[0] = b
		in.st = stateMouseCol
	case stateMouseCol:
		in.eventBuf[1] = b
		in.st = stateMouseRow
	case stateMouseRow:
		in.eventBuf[2] = b
		in.st = stateGround
		in.handleMouse(h)

	case stateDigit2:
		switch b {
		case '0':
			in.st = stateDigit20
		case '1', '3', '4':
			code, _ := mapFK(b)
			in.ke.Code = code
			in.st = stateTilde
		case '~':
			in.ke.Code = KeyInsert
			in.st = stateGround
			in.emitKeystroke(h)
		default:
			in.parseError(b)
		}

	case stateDigit20:
		switch b {
		case '0':
			in.st = stateDigit200
		case ';':
			// F9 with a modifier: CSI 20;m~
			in.ke.Code = KeyF9
			in.st = stateTildeSemi
		case '~':
			in.ke.Code = KeyF9
			in.st = stateGround
			in.emitKeystroke(h)
		default:
			in.parseError(b)
		}

	case stateDigit200:
		if b != '~' {
			in.parseError(b)
			return
		}
		in.paste = in.paste[:0]
		in.st = statePasteBody

	case statePasteBody:
		if b == 0x1b {
			in.st = statePasteEsc
			return
		}
		in.paste = append(in.paste, b)

	case statePasteEsc:
		if b != '[' {
			in.parseError(b)
			return
		}
		in.st = statePasteCSI
	case statePasteCSI:
		if b != '2' {
			in.parseError(b)
			return
		}
		in.st = statePasteEnd2
	case statePasteEnd2:
		if b != '0' {
			in.parseError(b)
			return
		}
		in.st = statePasteEnd20
	case statePasteEnd20:
		if b != '1' {
			in.parseError(b)
			return
		}
		in.st = statePasteEnd201
	case statePasteEnd201:
		if b != '~' {
			in.parseError(b)
			return
		}
		in.st = stateGround
		if h.OnPaste != nil {
			h.OnPaste(in.paste)
		}

	case stateDigit1:
		switch b {
		case ';':
			in.st = stateModifier
		case '5', '7', '8', '9':
			code, _ := mapFK(b)
			in.ke.Code = code
			in.st = stateTilde
		default:
			in.parseError(b)
		}

	case stateModifier:
		in.ke.Mod = Modifier((b - 0x31) & 0x7)
		in.st = stateModFinal

	case stateModFinal:
		in.st = stateGround
		switch b {
		case 'P', 'Q', 'R', 'S':
			code, _ := mapFK(b)
			in.ke.Code = code
			in.emitKeystroke(h)
		default:
			code, ok := mapNav(b)
			if !ok {
				in.parseError(b)
				return
			}
			in.ke.Code = code
			in.emitKeystroke(h)
		}

	case stateNavTilde:
		switch b {
		case ';':
			in.st = stateNavModifier
		case '~':
			in.st = stateGround
			in.emitKeystroke(h)
		default:
			in.parseError(b)
		}

	case stateNavModifier:
		in.ke.Mod = Modifier((b - 0x31) & 0x7)
		in.st = stateNavFinal

	case stateNavFinal:
		if b != '~' {
			in.parseError(b)
			return
		}
		in.st = stateGround
		in.emitKeystroke(h)

	case stateTilde:
		switch b {
		case ';':
			in.st = stateTildeSemi
		case '~':
			in.st = stateGround
			in.emitKeystroke(h)
		default:
			in.parseError(b)
		}

	case stateTildeSemi:
		in.ke.Mod = Modifier((b - 0x31) & 0x7)
		in.st = stateTilde

	case stateTildeMod:
		if b != '~' {
			in.parseError(b)
			return
		}
		in.st = stateGround
		in.emitKeystroke(h)

	case stateSS3:
		code, ok := mapFK(b)
		if !ok {
			in.parseError(b)
			return
		}
		in.ke.Code = code
		in.st = stateGround
		in.emitKeystroke(h)

	default:
		in.parseError(b)
	}
}

// decodeMouse unpacks an X10 report: two button bits, three modifier bits
// and two motion bits in the first byte, then offset coordinates
// converted to zero-based.
func decodeMouse(buf [3]byte) MouseEvent {
	return MouseEvent{
		Button: MouseButton(buf[0] & 0x3),
		Mod:    Modifier((buf[0] >> 2) & 0x7),
		Motion: MouseMotion((buf[0] >> 5) & 0x3),
		Pos: Position{
			X: int(buf[1]) - mouseOffset - 1,
			Y: int(buf[2]) - mouseOffset - 1,
		},
	}
}

// handleMouse folds the raw report stream into press, drag, release,
// hover and scroll events.
func (in *Input) handleMouse(h *Hooks) {
	event := decodeMouse(in.eventBuf)

	in.prevMouse = in.lastMouse
	in.lastMouse = event

	prev := in.prevMouse
	last := in.lastMouse

	if (prev.Motion == MotionStatic || prev.Motion == MotionMoving) &&
		prev.Button == MouseNone && last.Button != MouseNone {
		in.pressed = last
		if h.OnPress != nil {
			h.OnPress(in.pressed)
		}
	}

	if prev.Motion == MotionStatic && prev.Button != MouseNone {
		if last.Motion == MotionMoving && last.Button != MouseNone {
			in.drag = true
			if h.OnDragBegin != nil {
				h.OnDragBegin(in.pressed)
			}
		}
	}

	if in.drag {
		if h.OnDrag != nil {
			h.OnDrag(in.pressed, in.lastMouse)
		}
	} else if last.Motion == MotionMoving {
		if h.OnHover != nil {
			h.OnHover(in.lastMouse)
		}
	}

	if (prev.Motion == MotionStatic || prev.Motion == MotionMoving) &&
		prev.Button != MouseNone {
		if last.Motion == MotionStatic && last.Button == MouseNone {
			in.released = last
			if !in.drag {
				if h.OnRelease != nil {
					h.OnRelease(in.pressed)
				}
			} else {
				in.drag = false
				if h.OnDragEnd != nil {
					h.OnDragEnd(in.pressed, in.released)
				}
			}
		}
	}

	if last.Motion == MotionScrolling {
		if h.OnScroll != nil {
			h.OnScroll(last)
		}
	}
}

// DisplayOverlay renders the last mouse event at pos for debugging.
func (in *Input) DisplayOverlay(d *Display, pos Position) {
	last := in.lastMouse
	motion := "static"
	switch last.Motion {
	case MotionMoving:
		motion = "moving"
	case MotionScrolling:
		motion = "scroll"
	}
	d.DrawString(fmt.Sprintf("btn:%d mod:%03b %s (%d,%d)",
		last.Button, last.Mod, motion, last.Pos.X, last.Pos.Y), pos, "")
}
