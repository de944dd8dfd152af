package tifc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// poller is the readiness multiplexer the decoder blocks on. Standard
// input is always registered; auxiliary descriptors each drain into their
// own ring buffer.
type poller struct {
	fds []unix.PollFd
	aux map[int]*CircBuf
}

func newPoller(stdinFd int) *poller {
	return &poller{
		fds: []unix.PollFd{{Fd: int32(stdinFd), Events: unix.POLLIN}},
		aux: make(map[int]*CircBuf),
	}
}

// add registers an auxiliary descriptor whose readable bytes are absorbed
// into buf.
func (p *poller) add(fd int, buf *CircBuf) {
	p.fds = append(p.fds, unix.PollFd{Fd: int32(fd), Events: unix.POLLIN})
	p.aux[fd] = buf
}

// wait blocks until a registered descriptor is readable or the timeout
// expires, retrying transparently on signal interruption. It returns the
// number of ready descriptors; zero means the timeout fired.
func (p *poller) wait(timeoutMs int) (int, error) {
	for {
		n, err := unix.Poll(p.fds, timeoutMs)
		if err == nil {
			return n, nil
		}
		if err != unix.EINTR {
			return 0, fmt.Errorf("poll: %w", err)
		}
		// Interrupted by a signal; retry.
	}
}

// readable reports whether the descriptor at index i has input pending.
func (p *poller) readable(i int) bool {
	return p.fds[i].Revents&unix.POLLIN != 0
}
