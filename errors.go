package tifc

import "errors"

var (
	// ErrQueueFull is returned when the input queue has no room for
	// freshly read bytes; the session cannot make progress until the
	// queue drains.
	ErrQueueFull = errors.New("input queue is full")

	// ErrExit denotes a user request to end the session. The event loop
	// treats it as a clean exit: Run returns nil, not ErrExit.
	ErrExit = errors.New("exit requested")
)
