package physics

import (
	"fmt"
	"math"
)

// Params are the process-wide simulation constants. They are read-only after
// construction; tunings come from config presets or flags.
type Params struct {
	Gravity        float64 // downward acceleration, units/s²
	Restitution    float64 // fraction of normal speed kept per bounce, [0,1]
	GroundFriction float64 // tangential damping factor while resting on the floor
	AirDrag        float64 // exponential velocity decay coefficient
	PairFriction   float64 // Coulomb clamp on tangential impulse, relative to |j|

	MaxDt    float64 // per-frame timestep clamp, s
	Substeps int     // subdivisions of each frame delta, ≥ 1

	FrictionVelThreshold  float64 // |vy| below this counts as resting contact, units/s
	FrictionStopThreshold float64 // |vx| below this snaps to zero, units/s
	FloorEpsilon          float64 // distance from the floor that counts as contact
}

func DefaultParams() Params {
	return Params{
		Gravity:               1800,
		Restitution:           0.84,
		GroundFriction:        0.08,
		AirDrag:               0.0002,
		PairFriction:          0.02,
		MaxDt:                 1.0 / 30.0,
		Substeps:              1,
		FrictionVelThreshold:  50,
		FrictionStopThreshold: 2,
		FloorEpsilon:          0.5,
	}
}

func (p Params) Validate() error {
	if p.Restitution < 0 || p.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0,1], got %f", p.Restitution)
	}
	if p.MaxDt <= 0 {
		return fmt.Errorf("max timestep must be positive, got %f", p.MaxDt)
	}
	if p.Substeps < 1 {
		return fmt.Errorf("substeps must be at least 1, got %d", p.Substeps)
	}
	for name, v := range map[string]float64{
		"gravity":         p.Gravity,
		"ground friction": p.GroundFriction,
		"air drag":        p.AirDrag,
		"pair friction":   p.PairFriction,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s must be finite and non-negative, got %f", name, v)
		}
	}
	return nil
}
