package render

import "fmt"

// RGB is one LED color; each channel is a raw 0-255 drive level.
type RGB struct {
	R, G, B uint8
}

// Black is the off color.
var Black = RGB{}

// Scale multiplies every channel by f, clamping to the channel range.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: scaleChannel(c.R, f), G: scaleChannel(c.G, f), B: scaleChannel(c.B, f)}
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func scaleChannel(v uint8, f float64) uint8 {
	x := float64(v) * f
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// Frame is a logical W×H color buffer stored in row-major order. Simulations
// build a fresh frame per tick and hand it to a Renderer.
type Frame struct {
	W, H int
	Pix  []RGB
}

// NewFrame allocates an all-black frame.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Pix: make([]RGB, w*h)}
}

// At returns the color at (x, y).
func (f *Frame) At(x, y int) RGB { return f.Pix[y*f.W+x] }

// Set stores c at (x, y). Out of range writes are dropped.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.Pix[y*f.W+x] = c
}

// Fill paints every cell with c.
func (f *Frame) Fill(c RGB) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}
