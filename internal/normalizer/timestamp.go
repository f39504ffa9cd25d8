package normalizer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"logscrub/internal/literal"
)

// isoLayout is the canonical output form. Values are converted to UTC
// before formatting, so the Z suffix is literal.
const isoLayout = "2006-01-02T15:04:05Z"

// matcher attempts one recognized timestamp encoding.
type matcher func(s string) (time.Time, bool)

// TimestampNormalizer converts raw timestamps to canonical UTC ISO-8601.
// The matchers run in fixed priority order and the first match wins: epoch
// seconds, then DD/MM/YYYY HH:MM:SS, then permissive ISO-8601. An all-digit
// value is therefore always read as an epoch, even if it was meant as some
// other compact numeric encoding.
type TimestampNormalizer struct {
	matchers []matcher
}

// NewTimestampNormalizer returns a normalizer with the standard matcher
// order.
func NewTimestampNormalizer() *TimestampNormalizer {
	return &TimestampNormalizer{
		matchers: []matcher{matchEpochSeconds, matchDayMonthYear, matchISO8601},
	}
}

// Normalize returns the canonical form and true, or "" and false when the
// value is missing or matches none of the recognized encodings. Callers
// drop rows on a false return; an event without a usable time is
// analytically useless.
func (n *TimestampNormalizer) Normalize(v literal.Value) (string, bool) {
	if v.IsNull() {
		return "", false
	}

	s := strings.TrimSpace(v.Text())
	if s == "" {
		return "", false
	}

	for _, m := range n.matchers {
		if t, ok := m(s); ok {
			return t.UTC().Format(isoLayout), true
		}
	}
	return "", false
}

// matchEpochSeconds accepts a digit string with at most one decimal point,
// read as seconds since the Unix epoch. Fractional seconds are allowed and
// truncated. Values past year 9999 cannot render as a four-digit ISO year
// and are rejected rather than matched.
func matchEpochSeconds(s string) (time.Time, bool) {
	if !isDigits(strings.Replace(s, ".", "", 1)) {
		return time.Time{}, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f >= math.MaxInt64 {
		return time.Time{}, false
	}

	t := time.Unix(int64(f), 0).UTC()
	if t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

// matchDayMonthYear accepts the exact positional form DD/MM/YYYY HH:MM:SS,
// treated as already UTC.
func matchDayMonthYear(s string) (time.Time, bool) {
	t, err := time.Parse("02/01/2006 15:04:05", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isoInputLayouts are tried in order. Layouts without a zone parse as UTC.
var isoInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func matchISO8601(s string) (time.Time, bool) {
	for _, layout := range isoInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
