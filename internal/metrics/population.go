package metrics

import "github.com/san-kum/ballsim/internal/physics"

// Population reports the mean body count over the run.
type Population struct {
	total   int
	samples int
}

func NewPopulation() *Population {
	return &Population{}
}

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(bodies []physics.Body, t float64) {
	p.total += len(bodies)
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *Population) Reset() {
	p.total = 0
	p.samples = 0
}
