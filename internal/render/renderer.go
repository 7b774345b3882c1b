package render

import (
	"errors"
	"fmt"
)

// ErrFrameSize reports a frame whose dimensions do not match the layout.
var ErrFrameSize = errors.New("render: frame size does not match matrix")

// Sink is the display capability the renderer drives: buffered pixel writes
// addressed by strip index followed by one flush.
type Sink interface {
	SetPixel(index int, c RGB)
	Show() error
}

// Renderer translates logical frames into strip order and pushes them to a sink.
type Renderer struct {
	layout Layout
	sink   Sink
}

// NewRenderer binds a layout to the sink that receives its pixels.
func NewRenderer(layout Layout, sink Sink) *Renderer {
	return &Renderer{layout: layout, sink: sink}
}

// Layout returns the addressing used by the renderer.
func (r *Renderer) Layout() Layout { return r.layout }

// Show writes every cell of f to its strip slot and flushes the sink once. A
// failed flush blanks the display before the error is returned; a blanking
// failure is joined to the original error.
func (r *Renderer) Show(f *Frame) error {
	w, h := r.layout.Width(), r.layout.Height()
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrFrameSize)
	}
	if f.W != w || f.H != h || len(f.Pix) != w*h {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, f.W, f.H, w, h)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r.sink.SetPixel(r.layout.Index(col, row), f.Pix[row*w+col])
		}
	}
	if err := r.sink.Show(); err != nil {
		err = fmt.Errorf("render: show frame: %w", err)
		if berr := r.Blank(); berr != nil {
			return errors.Join(err, berr)
		}
		return err
	}
	return nil
}

// Blank turns every LED off.
func (r *Renderer) Blank() error {
	for i := 0; i < r.layout.Cells(); i++ {
		r.sink.SetPixel(i, Black)
	}
	if err := r.sink.Show(); err != nil {
		return fmt.Errorf("render: blank: %w", err)
	}
	return nil
}
