package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

var bodyPalette = []string{
	"#00ff88", "#00ccff", "#ffcc00", "#ff00ff", "#ff4444", "#88ff00",
}

// SceneSVG renders the final frame of a run as circles in arena
// coordinates, with a faded trajectory trail per body.
func SceneSVG(path string, arena physics.Arena, result *sim.Result) error {
	if len(result.Frames) == 0 {
		return fmt.Errorf("no frames to export")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, arena.Width, arena.Height, arena.Width, arena.Height))

	final := result.Frames[len(result.Frames)-1]

	for i := range final.Bodies {
		color := bodyPalette[i%len(bodyPalette)]
		writeTrail(&sb, result.Frames, i, color)
	}

	for i, b := range final.Bodies {
		color := bodyPalette[i%len(bodyPalette)]
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, b.X, b.Y, b.R, color))
	}

	sb.WriteString("</svg>")
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// writeTrail emits the path of body idx across every frame in which it
// exists. Spawns and evictions shift indices, so the trail only follows
// frames that still hold a body at idx.
func writeTrail(sb *strings.Builder, frames []sim.Frame, idx int, color string) {
	var points []string
	for _, f := range frames {
		if idx >= len(f.Bodies) {
			continue
		}
		b := f.Bodies[idx]
		points = append(points, fmt.Sprintf("%.1f,%.1f", b.X, b.Y))
	}
	if len(points) < 2 {
		return
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.3" d="M%s"/>
`, color, strings.Join(points, " L")))
}
