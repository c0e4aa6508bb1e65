package spawn

import (
	"math"
	"testing"
)

func TestGestureFlickVelocityFollowsDrag(t *testing.T) {
	var g Gesture
	g.Press(100, 100, 1.0)
	req, ok := g.Release(200, 150, 1.5, 12)

	if !ok {
		t.Fatal("expected a request after press/release")
	}
	if req.X != 200 || req.Y != 150 || req.R != 12 {
		t.Errorf("unexpected spawn placement: %+v", req)
	}

	wantVX := 100 / 0.5 * FlickGain
	wantVY := 50 / 0.5 * FlickGain
	if math.Abs(req.VX-wantVX) > 1e-9 || math.Abs(req.VY-wantVY) > 1e-9 {
		t.Errorf("expected velocity (%f, %f), got (%f, %f)", wantVX, wantVY, req.VX, req.VY)
	}
}

func TestGestureFloorsDegenerateDuration(t *testing.T) {
	var g Gesture
	g.Press(0, 0, 2.0)
	req, ok := g.Release(10, 0, 2.0, 10) // instant tap

	if !ok {
		t.Fatal("expected a request")
	}
	want := 10 / MinDragDuration * FlickGain
	if math.Abs(req.VX-want) > 1e-9 {
		t.Errorf("expected floored velocity %f, got %f", want, req.VX)
	}
	if math.IsInf(req.VX, 0) || math.IsNaN(req.VX) {
		t.Error("flick velocity must stay finite for instant release")
	}
}

func TestGestureReleaseWithoutPress(t *testing.T) {
	var g Gesture
	if _, ok := g.Release(10, 10, 1.0, 10); ok {
		t.Error("release without press should not produce a request")
	}
}

func TestGestureResetsAfterRelease(t *testing.T) {
	var g Gesture
	g.Press(0, 0, 0)
	if !g.Active() {
		t.Fatal("expected gesture active after press")
	}
	g.Release(5, 5, 1, 10)
	if g.Active() {
		t.Error("expected gesture inactive after release")
	}
	if _, ok := g.Release(5, 5, 2, 10); ok {
		t.Error("second release should not produce a request")
	}
}
