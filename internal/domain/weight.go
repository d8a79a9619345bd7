package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxWeight is the largest accepted weight value.
const MaxWeight = 1400

// ErrInvalidWeight is returned by ParseWeight for text that does not name a
// weight in (0, MaxWeight].
var ErrInvalidWeight = errors.New("invalid weight")

// ParseWeight parses user-entered weight text into a value rounded to one
// decimal place. A comma is accepted as the decimal separator. The tie-break
// is half away from zero: "179.95" parses to 180.0.
func ParseWeight(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return 0, ErrInvalidWeight
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidWeight
	}
	if v <= 0 || v > MaxWeight {
		return 0, ErrInvalidWeight
	}
	return roundTenth(v), nil
}

// FormatWeight renders a stored weight for the input field: at most one
// decimal, no trailing ".0".
func FormatWeight(v float64) string {
	return strconv.FormatFloat(roundTenth(v), 'f', -1, 64)
}

// roundTenth rounds half away from zero at the first decimal. The nudge
// keeps decimal .x5 inputs from landing just under the halfway mark after
// the binary conversion; values are always positive and far too small for
// it to flip a non-tie.
func roundTenth(v float64) float64 {
	return math.Round(v*10+1e-9) / 10
}
