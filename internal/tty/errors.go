package tty

import "errors"

var (
	// ErrUnavailableTerminal indicates the terminal cannot report its size
	// or cannot be switched into raw/alternate mode.
	ErrUnavailableTerminal = errors.New("tty: terminal unavailable")

	// ErrWriteFailure indicates the output stream rejected a frame.
	ErrWriteFailure = errors.New("tty: write failed")
)

// Error wraps a terminal failure with the operation that caused it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "tty: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
