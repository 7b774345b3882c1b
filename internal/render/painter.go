//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a strip buffer into a single image, one texel per LED,
// placed where the LED sits on the matrix.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for layout.
func NewGridPainter(layout Layout) *GridPainter {
	w, h := layout.Width(), layout.Height()
	return &GridPainter{layout: layout, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads strip and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, strip []RGB, scale int) {
	if len(strip) != gp.layout.Cells() {
		return
	}
	FillStripRGBA(gp.buf, gp.layout, strip)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.layout.Width(), gp.layout.Height() }
