package input

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// TerminalSource reads single bytes from a terminal in raw mode, so keys
// arrive without waiting for enter and without echo.
type TerminalSource struct {
	f     *os.File
	state *term.State
	buf   [1]byte
}

// OpenTerminal puts f into raw mode. Call Restore before exiting.
func OpenTerminal(f *os.File) (*TerminalSource, error) {
	fd := f.Fd()
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("input: %s is not a terminal", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("input: raw mode: %w", err)
	}
	return &TerminalSource{f: f, state: state}, nil
}

// ReadKey blocks for one byte.
func (t *TerminalSource) ReadKey() (rune, error) {
	n, err := t.f.Read(t.buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.ErrNoProgress
	}
	return rune(t.buf[0]), nil
}

// Restore returns the terminal to the mode it had before OpenTerminal.
func (t *TerminalSource) Restore() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.f.Fd(), t.state); err != nil {
		return fmt.Errorf("input: restore terminal: %w", err)
	}
	t.state = nil
	return nil
}
