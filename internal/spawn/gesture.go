package spawn

const (
	// MinDragDuration floors the press-to-release time used for the flick
	// velocity, so an instant tap cannot divide by a near-zero duration.
	MinDragDuration = 0.03

	// FlickGain scales drag distance over drag duration into release velocity.
	FlickGain = 1.5
)

// Gesture tracks one pointer drag. Press then Release yield a spawn request
// whose velocity follows the drag.
type Gesture struct {
	active     bool
	x0, y0, t0 float64
}

func (g *Gesture) Press(x, y, t float64) {
	g.active = true
	g.x0, g.y0, g.t0 = x, y, t
}

func (g *Gesture) Active() bool { return g.active }

// Origin returns the press point of the drag in progress.
func (g *Gesture) Origin() (x, y float64) { return g.x0, g.y0 }

// Release ends the drag and returns the resulting request with the given
// radius. It reports false when no press preceded it.
func (g *Gesture) Release(x, y, t, r float64) (Request, bool) {
	if !g.active {
		return Request{}, false
	}
	g.active = false

	dur := t - g.t0
	if dur < MinDragDuration {
		dur = MinDragDuration
	}
	return Request{
		X:  x,
		Y:  y,
		R:  r,
		VX: (x - g.x0) / dur * FlickGain,
		VY: (y - g.y0) / dur * FlickGain,
	}, true
}
