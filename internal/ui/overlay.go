//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"ledmatrix/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws wiring aids on top of the matrix: the serpentine path the
// strip takes (key 1) and each LED's strip index (key 2).
type Overlay struct {
	layout    render.Layout
	scale     int
	showPath  bool
	showIndex bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(layout render.Layout, scale int) *Overlay {
	o := &Overlay{layout: layout, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlays.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPath = !o.showPath
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showIndex = !o.showIndex
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showPath {
		o.drawPath(screen, scale)
	}
	if o.showIndex {
		o.drawIndices(screen, scale)
	}
}

func (o *Overlay) center(i, scale int) (float64, float64) {
	col, row := o.layout.Coords(i)
	return (float64(col) + 0.5) * float64(scale), (float64(row) + 0.5) * float64(scale)
}

func (o *Overlay) drawPath(screen *ebiten.Image, scale int) {
	n := o.layout.Cells()
	if n == 0 {
		return
	}
	thickness := math.Max(1, float64(scale)*0.08)
	for i := 0; i+1 < n; i++ {
		t := float64(i) / float64(n)
		x1, y1 := o.center(i, scale)
		x2, y2 := o.center(i+1, scale)
		o.drawLine(screen, x1, y1, x2, y2, thickness, pathColor(t))
	}
	x, y := o.center(0, scale)
	o.drawPoint(screen, x, y, float64(scale)*0.3, color.RGBA{R: 255, G: 255, B: 255, A: 220})
}

func (o *Overlay) drawIndices(screen *ebiten.Image, scale int) {
	face := basicfont.Face7x13
	for i := 0; i < o.layout.Cells(); i++ {
		label := strconv.Itoa(i)
		bounds := text.BoundString(face, label)
		cx, cy := o.center(i, scale)
		x := int(cx) - bounds.Dx()/2
		y := int(cy) + bounds.Dy()/2
		text.Draw(screen, label, face, x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// pathColor fades from blue at the data input to orange at the strip's end.
func pathColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(60 + 195*t)),
		G: uint8(math.Round(140 + 20*t)),
		B: uint8(math.Round(255 - 215*t)),
		A: 200,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
