package physics

import "math"

// Arena is the rectangular region bodies are confined to. It is mutated only
// through World.Resize and read by the boundary resolver every substep.
type Arena struct {
	Width, Height float64
}

// ResolveBoundary clamps a body inside the arena, reflecting the velocity
// component normal to each crossed wall scaled by restitution. The four
// checks are independent; a corner hit is clamped on both axes. After the
// bottom wall, near-resting bodies get tangential ground friction with a
// stop threshold so they do not micro-slide forever.
func ResolveBoundary(b *Body, a Arena, p *Params) {
	if b.X-b.R < 0 {
		b.X = b.R
		b.VX = -b.VX * p.Restitution
	}
	if b.X+b.R > a.Width {
		b.X = a.Width - b.R
		b.VX = -b.VX * p.Restitution
	}
	if b.Y-b.R < 0 {
		b.Y = b.R
		b.VY = -b.VY * p.Restitution
	}
	if b.Y+b.R > a.Height {
		b.Y = a.Height - b.R
		b.VY = -b.VY * p.Restitution
	}

	onFloor := a.Height-(b.Y+b.R) <= p.FloorEpsilon
	if onFloor && math.Abs(b.VY) < p.FrictionVelThreshold {
		b.VX *= 1 - p.GroundFriction
		if math.Abs(b.VX) < p.FrictionStopThreshold {
			b.VX = 0
		}
	}
}
