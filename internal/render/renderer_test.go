package render

import (
	"errors"
	"testing"
)

type recordingSink struct {
	pix     []RGB
	shows   int
	failOn  int
	showErr error
}

func newRecordingSink(n int) *recordingSink {
	return &recordingSink{pix: make([]RGB, n)}
}

func (s *recordingSink) SetPixel(i int, c RGB) { s.pix[i] = c }

func (s *recordingSink) Show() error {
	s.shows++
	if s.showErr != nil && s.shows >= s.failOn {
		return s.showErr
	}
	return nil
}

func TestShowWritesStripOrder(t *testing.T) {
	layout, _ := NewLayout(3, 4)
	sink := newRecordingSink(layout.Cells())
	r := NewRenderer(layout, sink)

	f := NewFrame(3, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			f.Set(x, y, RGB{R: uint8(x), G: uint8(y), B: 1})
		}
	}
	if err := r.Show(f); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if sink.shows != 1 {
		t.Fatalf("shows = %d, want 1", sink.shows)
	}
	for i, c := range sink.pix {
		col, row := layout.Coords(i)
		want := RGB{R: uint8(col), G: uint8(row), B: 1}
		if c != want {
			t.Fatalf("strip[%d] = %+v, want %+v", i, c, want)
		}
	}
	// Column 1 is reversed: its first strip slot holds the bottom row.
	if got := sink.pix[4]; got.R != 1 || got.G != 3 {
		t.Fatalf("strip[4] = %+v, want column 1 row 3", got)
	}
}

func TestShowRejectsWrongSize(t *testing.T) {
	layout, _ := NewLayout(3, 4)
	sink := newRecordingSink(layout.Cells())
	r := NewRenderer(layout, sink)

	if err := r.Show(NewFrame(4, 3)); !errors.Is(err, ErrFrameSize) {
		t.Fatalf("err = %v, want ErrFrameSize", err)
	}
	if err := r.Show(nil); !errors.Is(err, ErrFrameSize) {
		t.Fatalf("nil frame err = %v, want ErrFrameSize", err)
	}
	if sink.shows != 0 {
		t.Fatalf("sink flushed %d times for rejected frames", sink.shows)
	}
}

func TestShowFailureBlanksAndKeepsError(t *testing.T) {
	layout, _ := NewLayout(2, 2)
	unreachable := errors.New("strip unreachable")
	sink := newRecordingSink(layout.Cells())
	sink.showErr = unreachable
	sink.failOn = 2
	r := NewRenderer(layout, sink)

	f := NewFrame(2, 2)
	f.Fill(RGB{R: 9})
	if err := r.Show(f); err != nil {
		t.Fatalf("first show: %v", err)
	}

	err := r.Show(f)
	if !errors.Is(err, unreachable) {
		t.Fatalf("err = %v, want wrapped sink error", err)
	}
	// The flush failed and the blanking attempt failed too; both are reported.
	if sink.shows != 3 {
		t.Fatalf("shows = %d, want 3 (frame, failed frame, blank attempt)", sink.shows)
	}
	for i, c := range sink.pix {
		if c != Black {
			t.Fatalf("pixel %d = %+v after blank attempt", i, c)
		}
	}
}

func TestBlank(t *testing.T) {
	layout, _ := NewLayout(2, 3)
	sink := newRecordingSink(layout.Cells())
	for i := range sink.pix {
		sink.pix[i] = RGB{R: 1, G: 2, B: 3}
	}
	if err := NewRenderer(layout, sink).Blank(); err != nil {
		t.Fatalf("Blank: %v", err)
	}
	for i, c := range sink.pix {
		if c != Black {
			t.Fatalf("pixel %d = %+v, want black", i, c)
		}
	}
}

func TestFillBinaryAndPalette(t *testing.T) {
	f := NewFrame(2, 2)
	on := RGB{R: 10, G: 20, B: 30}
	FillBinary(f, []uint8{1, 0, 0, 1}, on)
	if f.At(0, 0) != on || f.At(1, 0) != Black || f.At(1, 1) != on {
		t.Fatalf("FillBinary produced %+v", f.Pix)
	}

	palette := []RGB{{}, {R: 1}, {G: 2}}
	FillPalette(f, []uint8{0, 1, 2, 9}, palette)
	if f.At(1, 1) != palette[2] {
		t.Fatalf("overflow value should clamp to last palette entry, got %+v", f.At(1, 1))
	}
}

func TestFillStripRGBA(t *testing.T) {
	layout, _ := NewLayout(2, 2)
	strip := []RGB{{R: 1}, {R: 2}, {R: 3}, {R: 4}}
	buf := make([]byte, 4*layout.Cells())
	FillStripRGBA(buf, layout, strip)
	// Strip 2 is column 1 bottom row, strip 3 is column 1 top row.
	if buf[(0*2+1)*4] != 4 || buf[(1*2+1)*4] != 3 {
		t.Fatalf("unexpected RGBA buffer %v", buf)
	}
}
