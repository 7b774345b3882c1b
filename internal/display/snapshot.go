package display

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/google/uuid"

	"ledmatrix/internal/render"
)

// Snapshot writes every Nth frame as a PNG that looks like the lit matrix:
// one round dot per LED with a soft glow.
type Snapshot struct {
	dir    string
	layout render.Layout
	scale  int
	every  int

	pending []render.RGB
	shows   int
	written int
}

// NewSnapshot creates a fresh run directory under root.
func NewSnapshot(root string, layout render.Layout, scale, every int) (*Snapshot, error) {
	if scale < 4 {
		scale = 4
	}
	if every < 1 {
		every = 1
	}
	dir := filepath.Join(root, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("display: snapshot dir: %w", err)
	}
	return &Snapshot{dir: dir, layout: layout, scale: scale, every: every, pending: make([]render.RGB, layout.Cells())}, nil
}

// Dir returns the directory frames are written to.
func (s *Snapshot) Dir() string { return s.dir }

// Written reports how many PNGs have been saved.
func (s *Snapshot) Written() int { return s.written }

// SetPixel stages c at strip index i.
func (s *Snapshot) SetPixel(i int, c render.RGB) {
	if i < 0 || i >= len(s.pending) {
		return
	}
	s.pending[i] = c
}

// Show saves the staged strip when this is an Nth flush.
func (s *Snapshot) Show() error {
	s.shows++
	if (s.shows-1)%s.every != 0 {
		return nil
	}
	path := filepath.Join(s.dir, fmt.Sprintf("frame-%06d.png", s.written))
	if err := imaging.Save(s.draw(), path); err != nil {
		return fmt.Errorf("display: snapshot: %w", err)
	}
	s.written++
	return nil
}

func (s *Snapshot) draw() image.Image {
	w, h := s.layout.Width()*s.scale, s.layout.Height()*s.scale
	dc := gg.NewContext(w, h)
	radius := float64(s.scale) * 0.35
	for i, c := range s.pending {
		if c == render.Black {
			continue
		}
		x, y := s.layout.Coords(i)
		cx := (float64(x) + 0.5) * float64(s.scale)
		cy := (float64(y) + 0.5) * float64(s.scale)
		dc.SetRGB255(int(c.R), int(c.G), int(c.B))
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
	}
	dots := dc.Image()
	glow := imaging.Blur(dots, float64(s.scale)/4)

	out := imaging.New(w, h, color.Black)
	out = imaging.Overlay(out, glow, image.Pt(0, 0), 1)
	out = imaging.Overlay(out, dots, image.Pt(0, 0), 1)
	return out
}

// Close implements io.Closer.
func (s *Snapshot) Close() error { return nil }
