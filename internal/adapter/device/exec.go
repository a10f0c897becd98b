// Package device obtains weight readings from an external scale executable.
package device

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"bmistation/internal/domain"
)

// The scale program prints its reading as plain text; the first decimal
// number in the output is taken as the weight in kilograms.
var weightPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExecReader reads a weight by running a configured executable.
type ExecReader struct {
	path    string
	timeout time.Duration
}

var _ domain.DeviceReader = (*ExecReader)(nil)

// NewExecReader creates an ExecReader for the executable at path. Each read
// is bounded by timeout.
func NewExecReader(path string, timeout time.Duration) *ExecReader {
	return &ExecReader{path: path, timeout: timeout}
}

// ReadWeight runs the scale executable once and returns the parsed weight.
// Any failure to run the program or to parse a finite positive number from
// its output is a device error; a bad reading is never coerced.
func (r *ExecReader) ReadWeight(ctx context.Context, userID string) (float64, error) {
	if r.path == "" {
		return 0, fmt.Errorf("%w: scale executable not configured", domain.ErrDevice)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, r.path).CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("%w: scale executable failed: %v", domain.ErrDevice, err)
	}
	return parseWeight(string(out))
}

func parseWeight(out string) (float64, error) {
	match := weightPattern.FindString(out)
	if match == "" {
		return 0, fmt.Errorf("%w: no numeric weight in scale output %q", domain.ErrDevice, out)
	}
	weight, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable weight %q", domain.ErrDevice, match)
	}
	if weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return 0, fmt.Errorf("%w: invalid weight reading %v", domain.ErrDevice, weight)
	}
	return weight, nil
}
