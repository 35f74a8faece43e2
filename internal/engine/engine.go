// Package engine owns the running simulation. It holds the only copy of the
// state, drives the periodic tick, schedules alert auto-dismissal and fans
// each frame out to the registered renderers.
//
// All state changes happen under one mutex, so ticks, timer callbacks and
// manual controls coming from other goroutines never interleave.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
)

const (
	// DefaultInterval is the tick period.
	DefaultInterval = time.Second
)

// Options configures an Engine. Zero values get defaults.
type Options struct {
	// Source feeds the random walk. Defaults to a clock-seeded PCG source.
	Source sim.Source
	// Clock reads the current time. Defaults to time.Now.
	Clock func() time.Time
	// Interval between ticks in Run.
	Interval time.Duration
	// AlertDuration is how long a popup stays before auto-dismissal.
	AlertDuration time.Duration
	// Renderers receive a frame after every applied change.
	Renderers []sim.Renderer
	Logger    logger.Logger
	// AfterFunc schedules alert expiry. Defaults to time.AfterFunc.
	AfterFunc AfterFunc
	// TimeRange is the initial time-range selection.
	TimeRange sim.TimeRange
}

// Engine is the state owner.
type Engine struct {
	mu     sync.Mutex
	state  sim.State
	src    sim.Source
	timers map[uint64]Timer

	now           func() time.Time
	afterFunc     AfterFunc
	interval      time.Duration
	alertDuration time.Duration
	log           logger.Logger

	// renderMu orders frames: it is taken before mu is released, so renderers
	// see frames in the order the state produced them.
	renderMu  sync.Mutex
	renderers []sim.Renderer
}

// New builds the startup state and registers the renderers. Nothing ticks
// until Run is called.
func New(opts Options) *Engine {
	if opts.Source == nil {
		opts.Source = sim.NewSource(0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.AlertDuration <= 0 {
		opts.AlertDuration = sim.AlertDuration
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = RealAfterFunc
	}

	state := sim.NewState(opts.Source, opts.Clock())
	state.TimeRange = opts.TimeRange

	renderers := make([]sim.Renderer, len(opts.Renderers))
	copy(renderers, opts.Renderers)

	return &Engine{
		state:         state,
		src:           opts.Source,
		timers:        make(map[uint64]Timer),
		now:           opts.Clock,
		afterFunc:     opts.AfterFunc,
		interval:      opts.Interval,
		alertDuration: opts.AlertDuration,
		log:           opts.Logger,
		renderers:     renderers,
	}
}

// AddRenderer registers r for subsequent frames.
func (e *Engine) AddRenderer(r sim.Renderer) {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()
	e.renderers = append(e.renderers, r)
}

// Interval returns the tick period.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Run draws the first frame, then ticks every Interval until ctx is done.
// Pending alert timers are stopped on the way out.
func (e *Engine) Run(ctx context.Context) error {
	e.publish(func(*sim.State) bool { return true })

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	defer e.stopTimers()

	e.log.Debug("engine running, interval %s", e.interval)
	for {
		select {
		case <-ctx.Done():
			e.log.Debug("engine stopped")
			return nil
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Tick applies one simulation step. A paused engine does nothing and draws
// nothing.
func (e *Engine) Tick() sim.Effects {
	var fx sim.Effects
	e.publish(func(s *sim.State) bool {
		if s.Paused {
			return false
		}
		next, effects := sim.Step(*s, e.src, e.now())
		*s = next
		fx = effects
		if fx.AlertShown != 0 {
			e.scheduleExpiry(fx.AlertShown)
			e.log.Debug("alert %d shown: %s", fx.AlertShown, s.Alert.Message)
		}
		return true
	})
	return fx
}

// TogglePause flips the pause flag and returns the new value.
func (e *Engine) TogglePause() bool {
	var paused bool
	e.publish(func(s *sim.State) bool {
		paused = s.TogglePause()
		return true
	})
	if paused {
		e.log.Info("simulation paused")
	} else {
		e.log.Info("simulation resumed")
	}
	return paused
}

// DismissAlert hides the popup. Calling it with no popup showing is a no-op
// apart from a redraw.
func (e *Engine) DismissAlert() {
	e.publish(func(s *sim.State) bool {
		if s.Alert.Visible {
			e.cancelExpiry(s.Alert.Generation)
		}
		s.DismissAlert()
		return true
	})
}

// ExpireAlert is the auto-dismiss callback for generation gen. It reports
// whether it hid anything; a stale generation leaves a newer popup alone.
func (e *Engine) ExpireAlert(gen uint64) bool {
	var hidden bool
	e.publish(func(s *sim.State) bool {
		delete(e.timers, gen)
		hidden = s.ExpireAlert(gen)
		return hidden
	})
	if !hidden {
		e.log.Debug("stale expiry for alert %d ignored", gen)
	}
	return hidden
}

// SelectTimeRange records the cosmetic time-range choice.
func (e *Engine) SelectTimeRange(r sim.TimeRange) {
	e.publish(func(s *sim.State) bool {
		s.TimeRange = r
		return true
	})
}

// SelectMenu records the cosmetic navigation choice.
func (e *Engine) SelectMenu(m sim.MenuItem) {
	e.publish(func(s *sim.State) bool {
		s.Menu = m
		return true
	})
}

// Frame presents the current state.
func (e *Engine) Frame() sim.Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sim.Present(e.state, e.now())
}

// State returns a deep copy of the current state.
func (e *Engine) State() sim.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// publish runs mutate under the state lock and, when it reports a change,
// renders the resulting frame to every renderer.
func (e *Engine) publish(mutate func(s *sim.State) bool) {
	e.mu.Lock()
	if !mutate(&e.state) {
		e.mu.Unlock()
		return
	}
	frame := sim.Present(e.state, e.now())
	e.renderMu.Lock()
	e.mu.Unlock()
	defer e.renderMu.Unlock()

	for _, r := range e.renderers {
		if err := r.Render(frame); err != nil {
			e.log.Warn("render failed: %v", err)
		}
	}
}

// scheduleExpiry is called with mu held.
func (e *Engine) scheduleExpiry(gen uint64) {
	e.timers[gen] = e.afterFunc(e.alertDuration, func() {
		e.ExpireAlert(gen)
	})
}

// cancelExpiry is called with mu held.
func (e *Engine) cancelExpiry(gen uint64) {
	if t, ok := e.timers[gen]; ok {
		t.Stop()
		delete(e.timers, gen)
	}
}

func (e *Engine) stopTimers() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for gen, t := range e.timers {
		t.Stop()
		delete(e.timers, gen)
	}
}
