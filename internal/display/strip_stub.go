//go:build !ws281x

package display

import (
	"fmt"

	"ledmatrix/internal/render"
)

// Strip is unavailable without the ws281x build tag.
type Strip struct{}

// NewStrip reports that hardware support was not compiled in.
func NewStrip(count, pin, brightness int) (*Strip, error) {
	return nil, fmt.Errorf("display: ws281x sink: %w (build with -tags ws281x)", ErrUnsupported)
}

func (s *Strip) SetPixel(int, render.RGB) {}
func (s *Strip) Show() error              { return ErrUnsupported }
func (s *Strip) Close() error             { return nil }
