// Package metrics accumulates scalar summaries over the frames of a run.
package metrics

import "github.com/san-kum/ballsim/internal/physics"

type Metric interface {
	Name() string
	Observe(bodies []physics.Body, t float64)
	Value() float64
	Reset()
}

// Default is the metric set attached to headless runs.
func Default() []Metric {
	return []Metric{
		NewKineticEnergy(),
		NewMaxOverlap(),
		NewPopulation(),
	}
}
