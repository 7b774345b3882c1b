package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ledmatrix/internal/render"
)

const cell = "  "

// Grid draws a strip buffer as rows of colored blocks, un-mapping every LED
// through layout so the picture matches the physical matrix. Rows are joined
// with "\n".
func Grid(r *lipgloss.Renderer, layout render.Layout, strip []render.RGB) string {
	w, h := layout.Width(), layout.Height()
	rows := make([][]string, h)
	for y := range rows {
		rows[y] = make([]string, w)
		for x := range rows[y] {
			rows[y][x] = cell
		}
	}
	styles := make(map[render.RGB]lipgloss.Style)
	for i, c := range strip {
		if i >= layout.Cells() {
			break
		}
		if c == render.Black {
			continue
		}
		st, ok := styles[c]
		if !ok {
			st = r.NewStyle().Background(lipgloss.Color(c.Hex()))
			styles[c] = st
		}
		x, y := layout.Coords(i)
		rows[y][x] = st.Render(cell)
	}
	lines := make([]string, h)
	for y, row := range rows {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// Terminal shows the matrix in an ANSI terminal, redrawing in place.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	layout   render.Layout
	renderer *lipgloss.Renderer
	pending  []render.RGB
	drawn    bool
}

// NewTerminal writes frames to w. Output is always in true color, since the
// writer may be a raw-mode terminal that termenv cannot probe.
func NewTerminal(w io.Writer, layout render.Layout) *Terminal {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	return &Terminal{w: w, layout: layout, renderer: r, pending: make([]render.RGB, layout.Cells())}
}

// SetPixel stages c at strip index i.
func (t *Terminal) SetPixel(i int, c render.RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.pending) {
		return
	}
	t.pending[i] = c
}

// Show draws the staged strip over the previous frame.
func (t *Terminal) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var b strings.Builder
	if t.drawn {
		fmt.Fprintf(&b, "\x1b[%dA", t.layout.Height())
	}
	b.WriteString(strings.ReplaceAll(Grid(t.renderer, t.layout, t.pending), "\n", "\r\n"))
	b.WriteString("\r\n")
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("display: terminal: %w", err)
	}
	t.drawn = true
	return nil
}

// Close implements io.Closer.
func (t *Terminal) Close() error { return nil }
