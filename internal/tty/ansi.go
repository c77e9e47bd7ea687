package tty

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/san-kum/glint/internal/frame"
	"golang.org/x/term"
)

// ANSIScreen buffers cursor-addressed, 24-bit coloured cell writes and
// hands them to the output stream in a single Write per Flush.
type ANSIScreen struct {
	out   io.Writer
	inFd  int
	outFd int

	pending bytes.Buffer
	modes   *termenv.Output
	scratch []byte
	// bounds clips Set; the zero value leaves writes unclipped.
	bounds Geometry

	oldState *term.State
}

// NewANSIScreen drives the terminal attached to in/out.
func NewANSIScreen(in, out *os.File) *ANSIScreen {
	return newANSIScreen(out, int(in.Fd()), int(out.Fd()))
}

// NewANSIWriter renders to an arbitrary writer. It has no terminal behind
// it, so Size and Init fail with ErrUnavailableTerminal.
func NewANSIWriter(w io.Writer) *ANSIScreen {
	return newANSIScreen(w, -1, -1)
}

func newANSIScreen(w io.Writer, inFd, outFd int) *ANSIScreen {
	s := &ANSIScreen{
		out:     w,
		inFd:    inFd,
		outFd:   outFd,
		scratch: make([]byte, 0, 32),
	}
	s.modes = termenv.NewOutput(&s.pending, termenv.WithProfile(termenv.TrueColor))
	return s
}

// Size queries the terminal and clips later writes to the result.
func (s *ANSIScreen) Size() (Geometry, error) {
	g, err := Query(s.outFd)
	if err != nil {
		return Geometry{}, err
	}
	s.bounds = g
	return g, nil
}

// SetBounds clips writes to g without querying a terminal.
func (s *ANSIScreen) SetBounds(g Geometry) {
	s.bounds = g
}

// Init puts stdin into raw mode, switches to the alternate screen, hides
// the cursor and clears it.
func (s *ANSIScreen) Init() error {
	if s.inFd < 0 || !term.IsTerminal(s.inFd) {
		return &Error{Op: "init", Err: fmt.Errorf("%w: stdin is not a terminal", ErrUnavailableTerminal)}
	}
	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return &Error{Op: "init", Err: fmt.Errorf("%w: %w", ErrUnavailableTerminal, err)}
	}
	s.oldState = old

	s.modes.AltScreen()
	s.modes.HideCursor()
	s.modes.ClearScreen()
	return s.Flush()
}

// Fini restores the main screen and the cursor, clears, and leaves raw
// mode. It is safe to call after a failed Init.
func (s *ANSIScreen) Fini() error {
	s.modes.ExitAltScreen()
	s.modes.ShowCursor()
	s.modes.ClearScreen()
	err := s.Flush()

	if s.oldState != nil {
		if rerr := term.Restore(s.inFd, s.oldState); rerr != nil && err == nil {
			err = &Error{Op: "restore", Err: rerr}
		}
		s.oldState = nil
	}
	return err
}

// Set queues a cursor move, a foreground colour and the glyph for (x, y).
func (s *ANSIScreen) Set(x, y int, c frame.Cell) {
	if x < 0 || y < 0 {
		return
	}
	if s.bounds.Valid() && (x >= s.bounds.Width || y >= s.bounds.Height) {
		return
	}
	b := s.scratch[:0]
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(y+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x+1), 10)
	b = append(b, "H\x1b[38;2;"...)
	b = strconv.AppendInt(b, int64(c.Color.R), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(c.Color.G), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(c.Color.B), 10)
	b = append(b, 'm')
	s.scratch = b
	s.pending.Write(b)
	s.pending.WriteRune(c.Glyph)
}

func (s *ANSIScreen) Clear() {
	s.modes.ClearScreen()
}

// Flush writes everything queued since the last flush as one Write.
func (s *ANSIScreen) Flush() error {
	if s.pending.Len() == 0 {
		return nil
	}
	_, err := s.out.Write(s.pending.Bytes())
	s.pending.Reset()
	if err != nil {
		return &Error{Op: "flush", Err: fmt.Errorf("%w: %w", ErrWriteFailure, err)}
	}
	return nil
}
