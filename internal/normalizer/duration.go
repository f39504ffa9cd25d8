package normalizer

import (
	"math"
	"strconv"
	"strings"

	"logscrub/internal/literal"
)

// SanitizeDuration coerces a loosely typed duration into a non-negative
// whole number of seconds. Every occurrence of the unit marker 's' is
// stripped, the remainder is parsed numerically, parse failures default to
// 0, negatives clamp to 0, and fractions truncate. Total over all inputs.
func SanitizeDuration(v literal.Value) int {
	s := strings.ReplaceAll(v.Text(), "s", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if f < 0 {
		return 0
	}
	// Values beyond the int range would wrap negative on conversion.
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}
