package metrics

import "github.com/san-kum/ballsim/internal/physics"

// KineticEnergy reports the mean total kinetic energy over the run.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{}
}

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(bodies []physics.Body, t float64) {
	sum := 0.0
	for i := range bodies {
		sum += bodies[i].KineticEnergy()
	}
	k.total += sum
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Total returns the instantaneous kinetic energy of a snapshot.
func Total(bodies []physics.Body) float64 {
	sum := 0.0
	for i := range bodies {
		sum += bodies[i].KineticEnergy()
	}
	return sum
}
