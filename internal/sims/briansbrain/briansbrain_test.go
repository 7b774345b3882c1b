package briansbrain

import (
	"testing"
	"time"
)

func emptyBrain(w, h int) *Brain {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return New(cfg)
}

func TestCellLifecycle(t *testing.T) {
	b := emptyBrain(6, 6)
	// Two firing cells side by side light up the cells above and below them.
	b.cur[2*6+2] = stateOn
	b.cur[2*6+3] = stateOn

	if !b.Step() {
		t.Fatal("grid went quiet too early")
	}
	if b.cur[2*6+2] != stateDying || b.cur[2*6+3] != stateDying {
		t.Fatal("firing cells should start dying")
	}
	for _, idx := range []int{1*6 + 2, 1*6 + 3, 3*6 + 2, 3*6 + 3} {
		if b.cur[idx] != stateOn {
			t.Fatalf("cell %d = %d, want firing", idx, b.cur[idx])
		}
	}
}

func TestStepReportsDeadGrid(t *testing.T) {
	b := emptyBrain(5, 5)
	b.cur[12] = stateDying
	if b.Step() {
		t.Fatal("a grid with only a dying cell should go quiet")
	}
	if b.Step() {
		t.Fatal("dead grid reported activity")
	}
}

func TestFrameUsesPalette(t *testing.T) {
	b := emptyBrain(3, 3)
	b.cur[0] = stateOn
	b.cur[1] = stateDying
	f := b.Frame(time.Time{})
	if f.At(0, 0) != palette[stateOn] || f.At(1, 0) != palette[stateDying] || f.At(2, 0) != palette[stateDead] {
		t.Fatalf("unexpected colors %+v", f.Pix[:3])
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "9", "density": "0", "interval_ms": "10"})
	if c.Width != 9 || c.Height != 14 || c.Density != 4 || c.Interval != 10*time.Millisecond {
		t.Fatalf("unexpected config %+v", c)
	}
}
