// Package export writes recorded runs to JSON, CSV, and SVG.
package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/ballsim/internal/sim"
)

type bodyRecord struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	R  float64 `json:"r"`
}

type frameRecord struct {
	T      float64      `json:"t"`
	Bodies []bodyRecord `json:"bodies"`
}

type runRecord struct {
	Preset   string             `json:"preset,omitempty"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Frames   []frameRecord      `json:"frames"`
	Metrics  map[string]float64 `json:"metrics"`
}

func buildRecord(preset string, dt, duration float64, result *sim.Result) runRecord {
	data := runRecord{
		Preset:   preset,
		Dt:       dt,
		Duration: duration,
		Steps:    result.StepsTaken,
		Frames:   make([]frameRecord, len(result.Frames)),
		Metrics:  result.Metrics,
	}
	for i, f := range result.Frames {
		fr := frameRecord{T: f.T, Bodies: make([]bodyRecord, len(f.Bodies))}
		for j, b := range f.Bodies {
			fr.Bodies[j] = bodyRecord{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, R: b.R}
		}
		data.Frames[i] = fr
	}
	return data
}

func JSON(path, preset string, dt, duration float64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildRecord(preset, dt, duration, result))
}

func JSONStdout(preset string, dt, duration float64, result *sim.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildRecord(preset, dt, duration, result))
}
