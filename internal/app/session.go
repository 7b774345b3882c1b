package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
	pcore "ledmatrix/pkg/core"
)

// Session owns one program across many runs. It starts runs, steps them,
// restarts them when they end and logs each run under its own id. Apart from
// Configure, a Session is used from a single goroutine.
type Session struct {
	sim    core.Sim
	logger *slog.Logger

	seed  int64
	seeds *pcore.RNG

	runID    string
	runSeed  int64
	runs     int
	score    int
	ended    bool
	endedAt  time.Time
	lastSnap core.ParameterSnapshot

	mu      sync.Mutex
	pending map[string]string
}

// NewSession wraps sim. The first run uses seed and later runs derive their
// seeds from it, so a whole session replays from one number.
func NewSession(sim core.Sim, seed int64, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{sim: sim, logger: logger, seed: seed, seeds: pcore.NewRNG(seed)}
}

// Sim returns the wrapped program.
func (s *Session) Sim() core.Sim { return s.sim }

// RunID identifies the current run in logs.
func (s *Session) RunID() string { return s.runID }

// Runs counts the runs started so far.
func (s *Session) Runs() int { return s.runs }

// Ended reports whether the current run has finished and is waiting to restart.
func (s *Session) Ended() bool { return s.ended }

// Interval returns how long to wait before the next tick.
func (s *Session) Interval() time.Duration { return s.sim.Interval() }

// Configure queues program parameters for the next run. It is safe to call
// from another goroutine.
func (s *Session) Configure(cfg map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = cfg
}

// Begin starts a new run.
func (s *Session) Begin(now time.Time) {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	if pending != nil {
		if c, ok := s.sim.(core.Configurable); ok {
			c.Configure(pending)
		}
	}

	if s.runs == 0 {
		s.runSeed = s.seed
	} else {
		s.runSeed = s.seeds.Int64()
	}
	s.sim.Reset(s.runSeed)
	s.runs++
	s.runID = uuid.NewString()
	s.ended = false
	s.lastSnap = core.ParameterSnapshot{}
	s.score = 0

	attrs := []any{"run", s.runID, "sim", s.sim.Name(), "seed", s.runSeed}
	if p, ok := s.sim.(core.ParameterProvider); ok {
		s.lastSnap = p.Parameters()
		attrs = append(attrs, "params", s.lastSnap)
	}
	s.logger.Info("run started", attrs...)
}

// Tick advances the program one step. When a run ends it is logged and its
// final frame stays up; a new run begins on a later Tick, once the program's
// restart delay has passed.
func (s *Session) Tick(now time.Time) {
	if s.ended {
		if now.Sub(s.endedAt) >= s.restartDelay() {
			s.Begin(now)
		}
		return
	}

	running := s.sim.Step()
	s.logChanges()
	if running {
		return
	}

	attrs := []any{"run", s.runID, "sim", s.sim.Name()}
	if o, ok := s.sim.(core.Outcomer); ok {
		attrs = append(attrs, "outcome", o.Outcome())
	}
	s.logger.Info("run finished", attrs...)

	s.ended = true
	s.endedAt = now
}

func (s *Session) restartDelay() time.Duration {
	if r, ok := s.sim.(core.Restarter); ok {
		return r.RestartDelay()
	}
	return 0
}

func (s *Session) logChanges() {
	if sc, ok := s.sim.(core.Scorer); ok && sc.Score() != s.score {
		s.score = sc.Score()
		s.logger.Info("score", "run", s.runID, "score", s.score, "interval", s.sim.Interval())
	}

	p, ok := s.sim.(core.ParameterProvider)
	if !ok || !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	snap := p.Parameters()
	if snap.Equal(s.lastSnap) {
		return
	}
	s.lastSnap = snap
	s.logger.Debug("state", "run", s.runID, "params", snap)
}

// HandleKey passes r to the program. It reports whether the key asks to quit.
func (s *Session) HandleKey(r rune) bool {
	if h, ok := s.sim.(core.KeyHandler); ok {
		return h.HandleKey(r)
	}
	return false
}

// Frame renders the program at now.
func (s *Session) Frame(now time.Time) *render.Frame {
	return s.sim.Frame(now)
}
