package render

import (
	"errors"
	"testing"
)

func TestIndexSerpentine(t *testing.T) {
	layout, err := NewLayout(11, 14)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if layout.Cells() != 154 {
		t.Fatalf("cells = %d, want 154", layout.Cells())
	}

	seen := make([]bool, layout.Cells())
	for col := 0; col < 11; col++ {
		for row := 0; row < 14; row++ {
			got := layout.Index(col, row)
			want := col*14 + row
			if col%2 == 1 {
				want = col*14 + (14 - 1 - row)
			}
			if got != want {
				t.Fatalf("Index(%d,%d) = %d, want %d", col, row, got, want)
			}
			if got < 0 || got >= len(seen) {
				t.Fatalf("Index(%d,%d) = %d out of range", col, row, got)
			}
			if seen[got] {
				t.Fatalf("index %d produced twice", got)
			}
			seen[got] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never produced", i)
		}
	}
}

func TestCoordsInvertsIndex(t *testing.T) {
	layout, err := NewLayout(11, 14)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	for i := 0; i < layout.Cells(); i++ {
		col, row := layout.Coords(i)
		if got := layout.Index(col, row); got != i {
			t.Fatalf("Index(Coords(%d)) = %d (col=%d row=%d)", i, got, col, row)
		}
	}
}

func TestColumnBoundaries(t *testing.T) {
	layout, _ := NewLayout(3, 4)
	cases := []struct {
		col, row, want int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{1, 3, 4},
		{1, 0, 7},
		{2, 0, 8},
		{2, 3, 11},
	}
	for _, tc := range cases {
		if got := layout.Index(tc.col, tc.row); got != tc.want {
			t.Errorf("Index(%d,%d) = %d, want %d", tc.col, tc.row, got, tc.want)
		}
	}
}

func TestNewLayoutRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 14}, {11, 0}, {-1, 5}} {
		if _, err := NewLayout(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewLayout(%d,%d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}
