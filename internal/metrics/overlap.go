package metrics

import "github.com/san-kum/ballsim/internal/physics"

// MaxOverlap reports the worst residual interpenetration seen across the
// run; a healthy solver keeps it near zero.
type MaxOverlap struct {
	max float64
}

func NewMaxOverlap() *MaxOverlap {
	return &MaxOverlap{}
}

func (m *MaxOverlap) Name() string { return "max_overlap" }

func (m *MaxOverlap) Observe(bodies []physics.Body, t float64) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if pen := physics.Overlap(&bodies[i], &bodies[j]); pen > m.max {
				m.max = pen
			}
		}
	}
}

func (m *MaxOverlap) Value() float64 { return m.max }

func (m *MaxOverlap) Reset() { m.max = 0 }
