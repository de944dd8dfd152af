package tifc

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Terminal control sequences for screen, cursor, mouse and paste modes.
// Cell rendering adds its own cursor-positioning and style-reset sequences.
const (
	altScreenOn  = "\x1b[?1049h"
	altScreenOff = "\x1b[?1049l"
	cursorHide   = "\x1b[?25l"
	cursorShow   = "\x1b[?25h"
	mouseOn      = "\x1b[?1003h"
	mouseOff     = "\x1b[?1003l"
	pasteModeOn  = "\x1b[?2004h"
	pasteModeOff = "\x1b[?2004l"
	clearScreen  = "\x1b[2J"
	cursorHome   = "\x1b[H"
)

// Terminal owns the tty state for an input session: raw mode, the
// alternate screen, mouse reporting and bracketed paste. Restore must run
// on every exit path.
type Terminal struct {
	fd   int
	out  io.Writer
	orig *unix.Termios
	raw  bool
}

// NewTerminal prepares terminal control over the given writer (os.Stdout
// when nil).
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{fd: int(os.Stdin.Fd()), out: w}
}

// EnterRaw switches the terminal to raw mode and turns on the alternate
// screen, mouse reporting and bracketed paste.
func (t *Terminal) EnterRaw() error {
	if t.raw {
		return nil
	}

	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.orig = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	t.raw = true

	t.writeString(altScreenOn)
	t.writeString(clearScreen)
	t.writeString(cursorHome)
	t.writeString(cursorHide)
	t.writeString(mouseOn)
	t.writeString(pasteModeOn)
	return nil
}

// Restore turns mouse reporting and bracketed paste off, leaves the
// alternate screen, shows the cursor and puts the terminal back into
// cooked mode.
func (t *Terminal) Restore() error {
	if !t.raw {
		return nil
	}

	t.writeString(pasteModeOff)
	t.writeString(mouseOff)
	t.writeString(cursorShow)
	t.writeString(altScreenOff)

	if t.orig != nil {
		if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.orig); err != nil {
			return fmt.Errorf("restore termios: %w", err)
		}
	}
	t.raw = false
	return nil
}

func (t *Terminal) writeString(s string) {
	io.WriteString(t.out, s)
}

// terminalSize queries the window size for fd.
func terminalSize(fd int) (Position, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Position{}, err
	}
	return Position{X: int(ws.Col), Y: int(ws.Row)}, nil
}
