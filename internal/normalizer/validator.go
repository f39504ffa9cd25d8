package normalizer

import (
	"fmt"
	"strings"

	"logscrub/internal/models"
)

// Invariant names reported in violations.
const (
	InvariantUserID     = "user_id_present"
	InvariantTimestamp  = "timestamp_present"
	InvariantDuration   = "duration_non_negative"
	InvariantDeviceType = "device_type_matches_platform"
)

// Violation records one invariant failure on one row of the final batch.
type Violation struct {
	Invariant string
	Row       int
	LogID     string
}

// IntegrityError reports every invariant violation found in the final
// batch. It is fatal: the pipeline produces no output when it fires.
type IntegrityError struct {
	Violations []Violation
}

func (e *IntegrityError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "integrity check failed: %d violation(s)", len(e.Violations))
	for _, v := range e.Violations {
		fmt.Fprintf(&sb, "; %s at row %d (log_id=%s)", v.Invariant, v.Row, v.LogID)
	}
	return sb.String()
}

// IntegrityValidator is the final gate over the cleaned batch. Given the
// upstream stage contracts it should never fire; it exists to catch
// regressions in them. With strict enabled it also re-checks the
// device-type derivation, which holds by construction.
type IntegrityValidator struct {
	strict bool
}

// NewIntegrityValidator returns a validator; strict enables the defensive
// device-type check.
func NewIntegrityValidator(strict bool) *IntegrityValidator {
	return &IntegrityValidator{strict: strict}
}

// Validate checks every row and returns nil or an *IntegrityError listing
// all violations.
func (v *IntegrityValidator) Validate(batch []models.CleanEntry) error {
	var violations []Violation

	for i, row := range batch {
		if row.UserID == "" {
			violations = append(violations, Violation{InvariantUserID, i, row.LogID})
		}
		if row.Timestamp == "" {
			violations = append(violations, Violation{InvariantTimestamp, i, row.LogID})
		}
		if row.SessionDurationSec < 0 {
			violations = append(violations, Violation{InvariantDuration, i, row.LogID})
		}
		if v.strict && row.DeviceType != row.DevicePlatform.DeviceType() {
			violations = append(violations, Violation{InvariantDeviceType, i, row.LogID})
		}
	}

	if len(violations) > 0 {
		return &IntegrityError{Violations: violations}
	}
	return nil
}
