//go:build !ws281x

package display

import (
	"errors"
	"testing"

	"ledmatrix/internal/render"
)

func TestStripNeedsBuildTag(t *testing.T) {
	layout, _ := render.NewLayout(11, 14)
	_, err := Open(Options{Kind: KindStrip, Layout: layout, PowerLine: -1})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}
