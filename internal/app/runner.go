package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ledmatrix/internal/render"
)

// ErrQuit is returned by Run when the program asked to quit.
var ErrQuit = errors.New("app: quit requested")

// KeySource hands over at most one pending key.
type KeySource interface {
	TakeKey() (rune, bool)
}

// Runner is the fixed-interval loop shared by every program: take a key, step,
// render, sleep for the program's current interval.
type Runner struct {
	Session  *Session
	Renderer *render.Renderer
	Keys     KeySource // optional
	Logger   *slog.Logger

	// Now and Sleep default to the wall clock.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run drives the session until ctx is done, the program quits or the sink
// fails. The display is blanked on every exit path. Cancellation returns nil,
// a quit returns ErrQuit.
func (r *Runner) Run(ctx context.Context) (err error) {
	now, sleep := r.Now, r.Sleep
	if now == nil {
		now = time.Now
	}
	if sleep == nil {
		sleep = sleepContext
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sinkFailed := false
	defer func() {
		if sinkFailed {
			// Show already tried to blank.
			return
		}
		if berr := r.Renderer.Blank(); berr != nil {
			err = errors.Join(err, berr)
		}
	}()

	t := now()
	r.Session.Begin(t)
	if err := r.Renderer.Show(r.Session.Frame(t)); err != nil {
		sinkFailed = true
		return err
	}

	for {
		if err := sleep(ctx, r.Session.Interval()); err != nil {
			logger.Debug("runner stopped", "reason", err)
			return nil
		}
		if r.Keys != nil {
			if key, ok := r.Keys.TakeKey(); ok && r.Session.HandleKey(key) {
				logger.Info("quit requested", "run", r.Session.RunID())
				return ErrQuit
			}
		}
		t = now()
		r.Session.Tick(t)
		if err := r.Renderer.Show(r.Session.Frame(t)); err != nil {
			sinkFailed = true
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
