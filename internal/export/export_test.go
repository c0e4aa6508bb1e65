package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

func testResult(t *testing.T) *sim.Result {
	t.Helper()
	b1, err := physics.NewBody(100, 100, 10, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := physics.NewBody(200, 150, 20, 0, -30)
	if err != nil {
		t.Fatal(err)
	}
	return &sim.Result{
		Frames: []sim.Frame{
			{T: 0, Bodies: []physics.Body{*b1, *b2}},
			{T: 0.01, Bodies: []physics.Body{*b1, *b2}},
		},
		Metrics:    map[string]float64{"kinetic_energy": 42.5},
		StepsTaken: 1,
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	res := testResult(t)

	if err := JSON(path, "default", 0.01, 0.01, res); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var data runRecord
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatal(err)
	}
	if data.Preset != "default" {
		t.Errorf("expected preset default, got %q", data.Preset)
	}
	if len(data.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(data.Frames))
	}
	if len(data.Frames[0].Bodies) != 2 {
		t.Errorf("expected 2 bodies, got %d", len(data.Frames[0].Bodies))
	}
	if data.Metrics["kinetic_energy"] != 42.5 {
		t.Errorf("metrics not preserved: %v", data.Metrics)
	}
}

func TestCSVLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")
	res := testResult(t)

	if err := CSV(path, res); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// Header plus 2 bodies x 2 frames.
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "t" || rows[0][6] != "r" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "0" || rows[2][1] != "1" {
		t.Errorf("body indices wrong: %v %v", rows[1], rows[2])
	}
}

func TestSceneSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.svg")
	arena := physics.Arena{Width: 800, Height: 600}

	if err := SceneSVG(path, arena, testResult(t)); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(raw)

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("output is not an svg document")
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 circles, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, "<path") {
		t.Error("expected trajectory trails")
	}
}

func TestSceneSVGEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.svg")
	arena := physics.Arena{Width: 800, Height: 600}

	if err := SceneSVG(path, arena, &sim.Result{}); err == nil {
		t.Error("expected error for empty result")
	}
}
