// Package sim drives headless runs of a world: a fixed-step loop that
// feeds scheduled spawns in, records frames, and accumulates metrics.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/spawn"
	"github.com/san-kum/ballsim/internal/world"
)

type Config struct {
	Dt       float64
	Duration float64
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	return nil
}

// Frame is one recorded snapshot of the run.
type Frame struct {
	T      float64
	Bodies []physics.Body
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
}

// Observer is called once per step with the snapshot about to be recorded.
type Observer interface {
	OnStep(bodies []physics.Body, t float64)
}

type Runner struct {
	world     *world.World
	scheduler *spawn.Scheduler
	metrics   []metrics.Metric
	observers []Observer
}

func NewRunner(w *world.World, sched *spawn.Scheduler) *Runner {
	return &Runner{
		world:     w,
		scheduler: sched,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

func (r *Runner) World() *world.World         { return r.world }
func (r *Runner) Scheduler() *spawn.Scheduler { return r.scheduler }

// Seed seeds the world with n scattered bodies before the loop starts.
func (r *Runner) Seed(n int) {
	if r.scheduler == nil {
		return
	}
	for _, req := range r.scheduler.Burst(n, r.world.Arena()) {
		r.world.Spawn(req.X, req.Y, req.R, req.VX, req.VY)
	}
}

// Run advances the world for cfg.Duration simulated seconds, recording a
// frame per step. The partial result is returned on cancellation.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.Frames = append(result.Frames, Frame{T: t, Bodies: r.world.Snapshot()})

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			r.finalize(result)
			return result, ctx.Err()
		default:
		}

		if r.scheduler != nil {
			for _, req := range r.scheduler.Poll(t, r.world.Arena()) {
				r.world.Spawn(req.X, req.Y, req.R, req.VX, req.VY)
			}
		}

		r.world.Step(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		snap := r.world.Snapshot()
		for _, m := range r.metrics {
			m.Observe(snap, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(snap, t)
		}
		result.Frames = append(result.Frames, Frame{T: t, Bodies: snap})
	}

	r.finalize(result)
	return result, nil
}

func (r *Runner) finalize(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// Factory builds an independent runner for a given seed. Each ensemble
// member gets its own world and scheduler so runs never share state.
type Factory func(seed int64) (*Runner, error)

// DefaultFactory wires a runner from a ready world constructor and spawn
// options, with the default metric set attached.
func DefaultFactory(newWorld func() (*world.World, error), opts spawn.Options, initial int) Factory {
	return func(seed int64) (*Runner, error) {
		w, err := newWorld()
		if err != nil {
			return nil, err
		}
		sched, err := spawn.NewScheduler(opts, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		r := NewRunner(w, sched)
		for _, m := range metrics.Default() {
			r.AddMetric(m)
		}
		r.Seed(initial)
		return r, nil
	}
}
