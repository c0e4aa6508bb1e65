// Package world owns the simulation state: the arena, the capacity-bounded
// body population and the fixed parameters. Step, Spawn, Clear and Resize are
// its only mutators; rendering reads snapshots.
package world

import (
	"fmt"
	"sync"

	"github.com/san-kum/ballsim/internal/physics"
)

// World is safe for concurrent use: the driving loop steps it while timer or
// input events spawn, clear and resize. Every mutator holds the mutex for its
// whole duration, so a spawn never interleaves with an in-progress step.
type World struct {
	mu        sync.Mutex
	arena     physics.Arena
	params    physics.Params
	maxBodies int
	bodies    []*physics.Body
	pool      *bodyPool
}

func New(arena physics.Arena, params physics.Params, maxBodies int) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if maxBodies < 1 {
		return nil, fmt.Errorf("max bodies must be at least 1, got %d", maxBodies)
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("arena must have positive dimensions, got %gx%g", arena.Width, arena.Height)
	}
	return &World{
		arena:     arena,
		params:    params,
		maxBodies: maxBodies,
		bodies:    make([]*physics.Body, 0, maxBodies),
		pool:      newBodyPool(),
	}, nil
}

// Step advances the whole population by one frame delta. The delta is clamped
// to MaxDt (tab-stall guard) and divided across Substeps; each substep runs
// integration, boundary resolution and then every unique pair in ascending
// index order.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if dt > w.params.MaxDt {
		dt = w.params.MaxDt
	}
	sub := dt / float64(w.params.Substeps)

	for s := 0; s < w.params.Substeps; s++ {
		for _, b := range w.bodies {
			physics.Integrate(b, &w.params, sub)
		}
		for _, b := range w.bodies {
			physics.ResolveBoundary(b, w.arena, &w.params)
		}
		for i := 0; i < len(w.bodies); i++ {
			for j := i + 1; j < len(w.bodies); j++ {
				physics.ResolvePair(w.bodies[i], w.bodies[j], &w.params)
			}
		}
	}
}

// Spawn appends a new body. At capacity the oldest body (index 0) is evicted
// first, so the population is always a suffix of the spawn sequence.
func (w *World) Spawn(x, y, r, vx, vy float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := w.pool.get()
	if err := b.Init(x, y, r, vx, vy); err != nil {
		w.pool.put(b)
		return err
	}

	w.bodies = append(w.bodies, b)
	if len(w.bodies) > w.maxBodies {
		oldest := w.bodies[0]
		copy(w.bodies, w.bodies[1:])
		w.bodies = w.bodies[:len(w.bodies)-1]
		w.pool.put(oldest)
	}
	return nil
}

// Clear empties the population. The stepper never observes a partial clear.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.bodies {
		w.pool.put(b)
	}
	w.bodies = w.bodies[:0]
}

// Resize updates the arena used by the boundary resolver. Non-positive
// dimensions are ignored.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.mu.Lock()
	w.arena = physics.Arena{Width: width, Height: height}
	w.mu.Unlock()
}

func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}

func (w *World) Arena() physics.Arena {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.arena
}

func (w *World) Params() physics.Params {
	return w.params
}

// Snapshot returns a copy of the current bodies for rendering or metrics.
// The copy decouples readers from subsequent steps.
func (w *World) Snapshot() []physics.Body {
	return w.SnapshotInto(nil)
}

// SnapshotInto reuses buf when it has capacity, for per-frame render loops.
func (w *World) SnapshotInto(buf []physics.Body) []physics.Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	buf = buf[:0]
	for _, b := range w.bodies {
		buf = append(buf, *b)
	}
	return buf
}

// KineticEnergy sums ½·m·v² over the population.
func (w *World) KineticEnergy() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	total := 0.0
	for _, b := range w.bodies {
		total += b.KineticEnergy()
	}
	return total
}
