package viz

import (
	"github.com/san-kum/ballsim/internal/physics"
)

// Scene maps arena coordinates onto a braille canvas. The scale is
// uniform on both axes so circles stay round on screen.
type Scene struct {
	canvas *Canvas
	arena  physics.Arena
	scale  float64
}

// NewScene sizes a scene for a terminal region of cols x rows cells.
func NewScene(arena physics.Arena, cols, rows int) *Scene {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	pxW := float64(cols * 2)
	pxH := float64(rows * 4)
	scale := pxW / arena.Width
	if s := pxH / arena.Height; s < scale {
		scale = s
	}

	return &Scene{
		canvas: NewCanvas(cols, rows),
		arena:  arena,
		scale:  scale,
	}
}

// Project converts an arena point to sub-pixel canvas coordinates.
func (s *Scene) Project(x, y float64) (int, int) {
	return int(x * s.scale), int(y * s.scale)
}

// Unproject converts a terminal cell back to arena coordinates, used to
// map pointer events onto the world.
func (s *Scene) Unproject(col, row int) (float64, float64) {
	return float64(col*2) / s.scale, float64(row*4) / s.scale
}

// Render draws the frame and returns it as terminal text.
func (s *Scene) Render(bodies []physics.Body) string {
	s.canvas.Clear()
	s.drawWalls()
	for i := range bodies {
		b := &bodies[i]
		cx, cy := s.Project(b.X, b.Y)
		r := int(b.R * s.scale)
		s.canvas.FillCircle(cx, cy, r)
	}
	return s.canvas.String()
}

// RenderWithDrag overlays the current flick drag as a line from the
// press point to the cursor.
func (s *Scene) RenderWithDrag(bodies []physics.Body, x0, y0, x1, y1 float64) string {
	s.canvas.Clear()
	s.drawWalls()
	for i := range bodies {
		b := &bodies[i]
		cx, cy := s.Project(b.X, b.Y)
		r := int(b.R * s.scale)
		s.canvas.FillCircle(cx, cy, r)
	}
	ax, ay := s.Project(x0, y0)
	bx, by := s.Project(x1, y1)
	s.canvas.DrawLine(ax, ay, bx, by)
	return s.canvas.String()
}

func (s *Scene) drawWalls() {
	w, h := s.Project(s.arena.Width, s.arena.Height)
	s.canvas.DrawLine(0, 0, w-1, 0)
	s.canvas.DrawLine(0, h-1, w-1, h-1)
	s.canvas.DrawLine(0, 0, 0, h-1)
	s.canvas.DrawLine(w-1, 0, w-1, h-1)
}
