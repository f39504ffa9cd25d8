package normalizer

import (
	"testing"

	"logscrub/internal/literal"
)

func TestNormalizeUserID(t *testing.T) {
	tests := []struct {
		name string
		in   literal.Value
		want string
	}{
		{"numeric id", literal.NumberValue(12345), "U-12345"},
		{"digit string", literal.StringValue("987"), "U-987"},
		{"digit string with whitespace", literal.StringValue("  987  "), "U-987"},
		{"already prefixed", literal.StringValue("U-54321"), "U-54321"},
		{"mixed alphanumeric", literal.StringValue("abc123"), "abc123"},
		{"trimmed passthrough", literal.StringValue("  user-x  "), "user-x"},
		{"fractional number", literal.NumberValue(12.5), "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUserID(tt.in); got != tt.want {
				t.Errorf("NormalizeUserID(%v) = %q, want %q", tt.in.Text(), got, tt.want)
			}
		})
	}
}

func TestNormalizeUserID_Idempotent(t *testing.T) {
	once := NormalizeUserID(literal.NumberValue(12345))
	twice := NormalizeUserID(literal.StringValue(once))
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}
