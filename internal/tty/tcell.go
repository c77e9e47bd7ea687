package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/glint/internal/frame"
)

// TcellScreen adapts a tcell.Screen to the animation screen contract.
type TcellScreen struct {
	screen tcell.Screen
}

// NewTcellScreen opens the controlling terminal through tcell.
func NewTcellScreen() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &Error{Op: "init", Err: fmt.Errorf("%w: %w", ErrUnavailableTerminal, err)}
	}
	return &TcellScreen{screen: s}, nil
}

// WrapTcell uses an existing screen, e.g. tcell.NewSimulationScreen.
func WrapTcell(s tcell.Screen) *TcellScreen {
	return &TcellScreen{screen: s}
}

func (t *TcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return &Error{Op: "init", Err: fmt.Errorf("%w: %w", ErrUnavailableTerminal, err)}
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini clears the screen and hands the terminal back.
func (t *TcellScreen) Fini() error {
	t.screen.Clear()
	t.screen.Show()
	t.screen.Fini()
	return nil
}

func (t *TcellScreen) Size() (Geometry, error) {
	w, h := t.screen.Size()
	return NewGeometry(w, h)
}

func (t *TcellScreen) Set(x, y int, c frame.Cell) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
	t.screen.SetContent(x, y, c.Glyph, nil, style)
}

func (t *TcellScreen) Clear() {
	t.screen.Clear()
}

// Flush pushes the frame to the terminal. tcell reports no write errors.
func (t *TcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

// Listen polls tcell events on its own goroutine and cancels c on Ctrl-C.
// The goroutine exits on Ctrl-C or once the screen is finalised.
func (t *TcellScreen) Listen(c Canceller) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
				c.Cancel()
				return
			}
		}
	}()
	return done
}
