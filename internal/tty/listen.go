package tty

import (
	"bytes"
	"errors"
	"io"

	"github.com/muesli/cancelreader"
)

const keyCtrlC = 0x03

// Canceller is notified once the user asks to stop.
type Canceller interface {
	Cancel()
}

// KeyListener watches raw stdin bytes for Ctrl-C.
type KeyListener struct {
	r    cancelreader.CancelReader
	done chan struct{}
	err  error
}

// ListenKeys starts reading in on a new goroutine. The first Ctrl-C byte
// cancels c and ends the listener; EOF or Stop end it without cancelling.
func ListenKeys(in io.Reader, c Canceller) (*KeyListener, error) {
	r, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, &Error{Op: "listen", Err: err}
	}
	l := &KeyListener{r: r, done: make(chan struct{})}
	go l.loop(c)
	return l, nil
}

func (l *KeyListener) loop(c Canceller) {
	defer close(l.done)
	buf := make([]byte, 64)
	for {
		n, err := l.r.Read(buf)
		if n > 0 && bytes.IndexByte(buf[:n], keyCtrlC) >= 0 {
			c.Cancel()
			return
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) && !errors.Is(err, io.EOF) {
				l.err = err
			}
			return
		}
	}
}

// Done is closed when the listener goroutine has exited.
func (l *KeyListener) Done() <-chan struct{} {
	return l.done
}

// Stop interrupts a blocked read and waits for the goroutine to exit.
// Readers that cannot be interrupted are left to finish on their own.
func (l *KeyListener) Stop() error {
	if !l.r.Cancel() {
		select {
		case <-l.done:
		default:
			return nil
		}
	}
	<-l.done
	cerr := l.r.Close()
	if l.err != nil {
		return l.err
	}
	return cerr
}
