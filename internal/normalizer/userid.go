package normalizer

import (
	"strings"

	"logscrub/internal/literal"
)

// NormalizeUserID canonicalizes a raw user identifier. A trimmed digit-only
// value becomes "U-<digits>"; anything else passes through trimmed, which
// makes already-prefixed ids like "U-54321" idempotent. The event filter
// guarantees the value is neither missing nor a sentinel, so this is total.
func NormalizeUserID(v literal.Value) string {
	s := strings.TrimSpace(v.Text())
	if isDigits(s) {
		return "U-" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
