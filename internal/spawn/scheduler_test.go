package spawn

import (
	"math/rand"
	"testing"

	"github.com/san-kum/ballsim/internal/physics"
)

var testArena = physics.Arena{Width: 800, Height: 600}

func TestSchedulerDeterministicUnderFixedSeed(t *testing.T) {
	opts := DefaultOptions()
	a, _ := NewScheduler(opts, rand.New(rand.NewSource(42)))
	b, _ := NewScheduler(opts, rand.New(rand.NewSource(42)))

	for now := 0.0; now < 30; now += 0.016 {
		ra := a.Poll(now, testArena)
		rb := b.Poll(now, testArena)
		if len(ra) != len(rb) {
			t.Fatalf("request counts diverged at t=%f: %d vs %d", now, len(ra), len(rb))
		}
		for i := range ra {
			if ra[i] != rb[i] {
				t.Fatalf("requests diverged at t=%f: %+v vs %+v", now, ra[i], rb[i])
			}
		}
	}
}

func TestSchedulerRespectsIntervalBounds(t *testing.T) {
	opts := DefaultOptions()
	opts.IntervalMin = 0.5
	opts.IntervalMax = 2.0
	s, _ := NewScheduler(opts, rand.New(rand.NewSource(7)))

	var times []float64
	for now := 0.0; now < 60; now += 0.01 {
		for range s.Poll(now, testArena) {
			times = append(times, now)
		}
	}

	if len(times) < 10 {
		t.Fatalf("expected a steady stream of spawns, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		gap := times[i] - times[i-1]
		// Poll granularity adds up to one tick of slack.
		if gap < opts.IntervalMin-0.011 || gap > opts.IntervalMax+0.011 {
			t.Errorf("spawn gap %f outside [%f, %f]", gap, opts.IntervalMin, opts.IntervalMax)
		}
	}
}

func TestSchedulerDropsEnterFromAboveWithinBounds(t *testing.T) {
	opts := DefaultOptions()
	s, _ := NewScheduler(opts, rand.New(rand.NewSource(3)))

	seen := 0
	for now := 0.0; now < 120 && seen < 50; now += 0.01 {
		for _, req := range s.Poll(now, testArena) {
			seen++
			if req.R < opts.RadiusMin || req.R > opts.RadiusMax {
				t.Errorf("radius %f outside [%f, %f]", req.R, opts.RadiusMin, opts.RadiusMax)
			}
			if req.X < req.R || req.X > testArena.Width-req.R {
				t.Errorf("drop x=%f not inside the arena for r=%f", req.X, req.R)
			}
			if req.Y != -req.R {
				t.Errorf("drop should start just above the top edge, got y=%f", req.Y)
			}
			if req.VX < -opts.DropJitter || req.VX > opts.DropJitter {
				t.Errorf("drop jitter %f outside ±%f", req.VX, opts.DropJitter)
			}
		}
	}
	if seen < 50 {
		t.Fatalf("expected at least 50 drops, got %d", seen)
	}
}

func TestSchedulerBurst(t *testing.T) {
	s, _ := NewScheduler(DefaultOptions(), rand.New(rand.NewSource(1)))

	reqs := s.Burst(12, testArena)
	if len(reqs) != 12 {
		t.Fatalf("expected 12 requests, got %d", len(reqs))
	}
	for _, req := range reqs {
		if req.X < req.R || req.X > testArena.Width-req.R {
			t.Errorf("burst x=%f outside the arena", req.X)
		}
		if req.Y < req.R || req.Y > testArena.Height {
			t.Errorf("burst y=%f outside the arena", req.Y)
		}
	}
}

func TestSchedulerRejectsBadOptions(t *testing.T) {
	bad := DefaultOptions()
	bad.IntervalMax = 0.1 // below IntervalMin
	if _, err := NewScheduler(bad, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for inverted interval bounds")
	}

	bad = DefaultOptions()
	bad.RadiusMin = 0
	if _, err := NewScheduler(bad, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for zero radius bound")
	}
}
