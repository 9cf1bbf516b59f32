// Package clipboard writes converted tables to the system clipboard, with a
// terminal escape sequence fallback for remote sessions.
package clipboard

import (
	"errors"
	"io"
	"sync"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"go.uber.org/multierr"
)

// ErrUnavailable is returned when no clipboard mechanism is present.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard. Implementations must not panic.
type Writer interface {
	WriteText(s string) error
}

// Reader reads text from a clipboard.
type Reader interface {
	ReadText() (string, error)
}

// System uses the platform clipboard (pbcopy, xclip, xsel, wl-copy, win32).
type System struct{}

func (System) ReadText() (string, error) {
	if sysclip.Unsupported {
		return "", ErrUnavailable
	}
	return sysclip.ReadAll()
}

func (System) WriteText(s string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	return sysclip.WriteAll(s)
}

// OSC52 asks the terminal to set the clipboard by writing an OSC 52
// sequence to Out. It works over SSH but cannot report success.
type OSC52 struct {
	Out  io.Writer
	Tmux bool
}

func (o OSC52) WriteText(s string) error {
	if o.Out == nil {
		return ErrUnavailable
	}
	seq := osc52.New(s)
	if o.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// Chain tries each writer in order and stops at the first success.
type Chain []Writer

func (c Chain) WriteText(s string) error {
	if len(c) == 0 {
		return ErrUnavailable
	}
	var errs []error
	for _, w := range c {
		err := w.WriteText(s)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

// Memory keeps the last written text. Used in tests and as a last resort.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	m.n++
	return nil
}

func (m *Memory) ReadText() (string, error) { return m.Text(), nil }

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Func adapts a function to Writer.
type Func func(string) error

func (f Func) WriteText(s string) error { return f(s) }
