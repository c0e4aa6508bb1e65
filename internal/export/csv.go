package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/san-kum/ballsim/internal/sim"
)

// CSV writes one row per body per frame: t, index, x, y, vx, vy, r.
func CSV(path string, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"t", "body", "x", "y", "vx", "vy", "r"}); err != nil {
		return err
	}

	for _, f := range result.Frames {
		for i, b := range f.Bodies {
			row := []string{
				strconv.FormatFloat(f.T, 'f', 6, 64),
				strconv.Itoa(i),
				strconv.FormatFloat(b.X, 'f', 4, 64),
				strconv.FormatFloat(b.Y, 'f', 4, 64),
				strconv.FormatFloat(b.VX, 'f', 4, 64),
				strconv.FormatFloat(b.VY, 'f', 4, 64),
				strconv.FormatFloat(b.R, 'f', 4, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}
