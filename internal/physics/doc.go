// Package physics implements the rigid-circle dynamics used by the world
// stepper: per-body integration under gravity and air drag, rectangular
// boundary resolution with restitution and ground friction, and pairwise
// circle-circle collision response.
//
// All three operations mutate bodies in place and have no failure modes;
// numerical degeneracies (coincident centers, zero-length tangents) are
// handled by skipping rather than erroring.
//
// The coordinate system is screen-style: y grows downward, the floor is the
// line y = arena.Height and gravity is a positive y acceleration.
package physics
