package physics

import "math"

// Integrate advances one body through a time slice: gravity, isotropic
// exponential air drag, then position. The drag factor is recomputed per call
// so each substep decays independently; the caller passes the substep dt,
// not the frame dt.
func Integrate(b *Body, p *Params, dt float64) {
	b.VY += p.Gravity * dt

	decay := math.Exp(-p.AirDrag * dt * 1000)
	b.VX *= decay
	b.VY *= decay

	b.X += b.VX * dt
	b.Y += b.VY * dt
}
