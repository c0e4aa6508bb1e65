package physics

import (
	"fmt"
	"math"
)

// Body is a rigid circle. Mass is derived from the radius at creation and
// never changes afterward.
type Body struct {
	X, Y   float64 // center position
	VX, VY float64 // velocity, units/s
	R      float64 // radius, > 0
	Mass   float64 // π·R², set by NewBody
}

func NewBody(x, y, r, vx, vy float64) (*Body, error) {
	b := &Body{}
	if err := b.Init(x, y, r, vx, vy); err != nil {
		return nil, err
	}
	return b, nil
}

// Init (re)initializes a body in place, deriving mass from the radius.
// Pooled allocations go through here.
func (b *Body) Init(x, y, r, vx, vy float64) error {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("radius must be positive and finite, got %v", r)
	}
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	b.R = r
	b.Mass = math.Pi * r * r
	return nil
}

func (b *Body) InvMass() float64 { return 1.0 / b.Mass }

func (b *Body) Speed() float64 { return math.Hypot(b.VX, b.VY) }

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
}

// Overlap returns how far two circles interpenetrate along their center
// line, or 0 if they do not touch.
func Overlap(a, b *Body) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := math.Sqrt(dx*dx + dy*dy)
	pen := a.R + b.R - d
	if pen < 0 {
		return 0
	}
	return pen
}
