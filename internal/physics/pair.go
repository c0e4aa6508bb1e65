package physics

import "math"

// ResolvePair detects and resolves the collision between two circles.
// Positions are depenetrated first, split in inverse proportion to mass, then
// a restitution impulse is exchanged along the collision normal and a
// Coulomb-clamped friction impulse along its perpendicular. Bodies already
// separating get the positional fix only. Coincident centers are unresolvable
// and skipped.
func ResolvePair(a, b *Body, p *Params) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d2 := dx*dx + dy*dy
	rsum := a.R + b.R
	if d2 == 0 || d2 >= rsum*rsum {
		return
	}

	d := math.Sqrt(d2)
	nx := dx / d
	ny := dy / d
	penetration := rsum - d

	invA := a.InvMass()
	invB := b.InvMass()
	invSum := invA + invB

	// Depenetrate: the heavier body moves less.
	corrA := penetration * invA / invSum
	corrB := penetration * invB / invSum
	a.X -= nx * corrA
	a.Y -= ny * corrA
	b.X += nx * corrB
	b.Y += ny * corrB

	rvx := b.VX - a.VX
	rvy := b.VY - a.VY
	velAlongNormal := rvx*nx + rvy*ny
	if velAlongNormal >= 0 {
		return
	}

	j := -(1 + p.Restitution) * velAlongNormal / invSum
	a.VX -= nx * j * invA
	a.VY -= ny * j * invA
	b.VX += nx * j * invB
	b.VY += ny * j * invB

	// Friction along the tangent, clamped to mu·|j|.
	tx := -ny
	ty := nx
	rvx = b.VX - a.VX
	rvy = b.VY - a.VY
	velAlongTangent := rvx*tx + rvy*ty
	jt := -velAlongTangent / invSum
	maxJt := p.PairFriction * math.Abs(j)
	if jt > maxJt {
		jt = maxJt
	} else if jt < -maxJt {
		jt = -maxJt
	}
	a.VX -= tx * jt * invA
	a.VY -= ty * jt * invA
	b.VX += tx * jt * invB
	b.VY += ty * jt * invB
}
