package ripples

import (
	"testing"
	"time"
)

func TestChannelClocks(t *testing.T) {
	cases := []struct {
		tick int
		want [3]int
	}{
		{0, [3]int{0, 0, 0}},
		{1, [3]int{1, 0, 0}},
		{2, [3]int{1, 1, 0}},
		{3, [3]int{1, 1, 1}},
		{7, [3]int{3, 2, 2}},
	}
	for _, tc := range cases {
		if got := channelClocks(tc.tick); got != tc.want {
			t.Fatalf("tick %d: clocks = %v, want %v", tc.tick, got, tc.want)
		}
	}
}

func TestBandAroundCenter(t *testing.T) {
	c := circle{cx: 5, cy: 7, period: 3, offset: 3}
	// clock 0 with offset 3 gives tt = 0, so the band covers dist in [0, 0.3].
	if !c.band(5, 7, 11, 0) {
		t.Fatal("center should be on the ring at tt=0")
	}
	if c.band(0, 0, 11, 0) {
		t.Fatal("far corner should be off the ring at tt=0")
	}
	// clock 1 gives tt = 1/3: the center is inside the ring and off.
	if c.band(5, 7, 11, 1) {
		t.Fatal("center should be inside the ring at tt=1/3")
	}
	// dist 4/11 ≈ 0.36 is within [1/3, 1/3+0.3].
	if !c.band(9, 7, 11, 1) {
		t.Fatal("cell at distance 4 should be on the ring at tt=1/3")
	}
}

func TestStepProducesOnlyRingLevels(t *testing.T) {
	r := New(DefaultConfig())
	r.Reset(9)
	for i := 0; i < 20; i++ {
		if !r.Step() {
			t.Fatal("ripples should never end")
		}
		f := r.Frame(time.Time{})
		for _, c := range f.Pix {
			for _, v := range []uint8{c.R, c.G, c.B} {
				if v != 0 && v != ringLevel {
					t.Fatalf("channel value %d, want 0 or %d", v, ringLevel)
				}
			}
		}
	}
}

func TestCentersStayOnBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drift = 5
	r := New(cfg)
	for i := 0; i < 200; i++ {
		r.Step()
		for _, c := range r.circles {
			if c.cx < 0 || c.cx >= 11 || c.cy < 0 || c.cy >= 14 {
				t.Fatalf("center (%v,%v) left the board", c.cx, c.cy)
			}
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a, b := New(DefaultConfig()), New(DefaultConfig())
	a.Reset(4)
	b.Reset(4)
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	fa, fb := a.Frame(time.Time{}), b.Frame(time.Time{})
	for i := range fa.Pix {
		if fa.Pix[i] != fb.Pix[i] {
			t.Fatalf("pixel %d differs between identical seeds", i)
		}
	}
}

func TestWrap(t *testing.T) {
	if got := wrap(-0.5, 11); got != 10.5 {
		t.Fatalf("wrap(-0.5) = %v", got)
	}
	if got := wrap(11, 11); got != 0 {
		t.Fatalf("wrap(11) = %v", got)
	}
}
