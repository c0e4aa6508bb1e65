// Package spawn provides the event sources that feed new bodies into the
// world: a random-interval scheduler for automatic drops and a pointer flick
// gesture. Both are plain request producers driven by the caller's loop, so
// the core stays free of timers and fully deterministic under an injected
// random source.
package spawn

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/ballsim/internal/physics"
)

// Request describes one body to add to the world.
type Request struct {
	X, Y   float64
	R      float64
	VX, VY float64
}

type Options struct {
	IntervalMin float64 // seconds between scheduled drops, lower bound
	IntervalMax float64
	RadiusMin   float64
	RadiusMax   float64
	DropJitter  float64 // max |vx| given to a scheduled drop, units/s
}

func DefaultOptions() Options {
	return Options{
		IntervalMin: 0.5,
		IntervalMax: 2.0,
		RadiusMin:   8,
		RadiusMax:   36,
		DropJitter:  40,
	}
}

func (o Options) Validate() error {
	if o.IntervalMin <= 0 || o.IntervalMax < o.IntervalMin {
		return fmt.Errorf("spawn interval bounds invalid: [%f, %f]", o.IntervalMin, o.IntervalMax)
	}
	if o.RadiusMin <= 0 || o.RadiusMax < o.RadiusMin {
		return fmt.Errorf("spawn radius bounds invalid: [%f, %f]", o.RadiusMin, o.RadiusMax)
	}
	return nil
}

// Scheduler emits drop requests at randomized intervals. It works on
// simulated seconds supplied by the caller, never wall clocks, so headless
// runs and tests replay exactly under a fixed seed.
type Scheduler struct {
	opts    Options
	rng     *rand.Rand
	next    float64
	started bool
}

func NewScheduler(opts Options, rng *rand.Rand) (*Scheduler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{opts: opts, rng: rng}, nil
}

// Poll returns the requests due at simulated time now. The first call arms
// the schedule; a long gap between polls yields one request per elapsed
// interval.
func (s *Scheduler) Poll(now float64, arena physics.Arena) []Request {
	if !s.started {
		s.started = true
		s.next = now + s.interval()
		return nil
	}
	var due []Request
	for now >= s.next {
		due = append(due, s.drop(arena))
		s.next += s.interval()
	}
	return due
}

// Burst produces n requests scattered over the upper half of the arena,
// used to seed the initial population.
func (s *Scheduler) Burst(n int, arena physics.Arena) []Request {
	reqs := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		r := s.radius()
		reqs = append(reqs, Request{
			X:  r + s.rng.Float64()*(arena.Width-2*r),
			Y:  r + s.rng.Float64()*(arena.Height/2-r),
			R:  r,
			VX: s.jitter(),
		})
	}
	return reqs
}

// drop places a body just above the top edge so it falls into view.
func (s *Scheduler) drop(arena physics.Arena) Request {
	r := s.radius()
	return Request{
		X:  r + s.rng.Float64()*(arena.Width-2*r),
		Y:  -r,
		R:  r,
		VX: s.jitter(),
	}
}

func (s *Scheduler) interval() float64 {
	return s.opts.IntervalMin + s.rng.Float64()*(s.opts.IntervalMax-s.opts.IntervalMin)
}

func (s *Scheduler) radius() float64 {
	return s.opts.RadiusMin + s.rng.Float64()*(s.opts.RadiusMax-s.opts.RadiusMin)
}

func (s *Scheduler) jitter() float64 {
	return (s.rng.Float64() - 0.5) * 2 * s.opts.DropJitter
}
