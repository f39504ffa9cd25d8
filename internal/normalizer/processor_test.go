package normalizer

import (
	"testing"

	"logscrub/internal/config"
	"logscrub/internal/literal"
	"logscrub/internal/logger"
	"logscrub/internal/models"
)

func testProcessor(t *testing.T) *Processor {
	t.Helper()
	return NewProcessor(config.DefaultConfig().Pipeline.Rules, false, logger.NewDiscardLogger())
}

func rawEntry(logID, timestamp string, userID literal.Value, platform, eventType, duration string) models.RawEntry {
	return models.RawEntry{
		models.FieldLogID:     literal.StringValue(logID),
		models.FieldTimestamp: literal.StringValue(timestamp),
		models.FieldUserID:    userID,
		models.FieldPlatform:  literal.StringValue(platform),
		models.FieldEventType: literal.StringValue(eventType),
		models.FieldDuration:  literal.StringValue(duration),
	}
}

func TestProcessor_Run_FullyValidRow(t *testing.T) {
	p := testProcessor(t)

	batch := []models.RawEntry{
		rawEntry("L1", "1760961600", literal.NumberValue(12345), "android", "login", "300s"),
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("expected 1 clean row, got %d", len(clean))
	}

	want := models.CleanEntry{
		LogID:              "L1",
		Timestamp:          "2025-10-20T12:00:00Z",
		UserID:             "U-12345",
		DeviceType:         models.DeviceMobile,
		DevicePlatform:     models.PlatformAndroid,
		EventType:          "login",
		SessionDurationSec: 300,
	}
	if clean[0] != want {
		t.Errorf("clean row = %+v, want %+v", clean[0], want)
	}
}

// One excluded event, one guest user, one unparseable timestamp, one valid
// row: exactly the valid row survives.
func TestProcessor_Run_EndToEndDropRules(t *testing.T) {
	p := testProcessor(t)

	batch := []models.RawEntry{
		rawEntry("L1", "1760961600", literal.NumberValue(1), "android", "ad_load", "10"),
		rawEntry("L2", "1760961600", literal.StringValue("guest"), "ios", "login", "10"),
		rawEntry("L3", "invalid_date", literal.NumberValue(3), "web", "click", "10"),
		rawEntry("L4", "20/10/2025 10:00:00", literal.StringValue("U-54321"), "WebApp", "purchase", "450.9"),
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("expected exactly 1 surviving row, got %d", len(clean))
	}

	got := clean[0]
	if got.LogID != "L4" {
		t.Errorf("surviving row = %q, want L4", got.LogID)
	}
	if got.UserID != "U-54321" {
		t.Errorf("UserID = %q, want U-54321", got.UserID)
	}
	if got.DevicePlatform != models.PlatformWeb || got.DeviceType != models.DeviceDesktop {
		t.Errorf("platform/device = %q/%q, want Web/Desktop", got.DevicePlatform, got.DeviceType)
	}
	if got.SessionDurationSec != 450 {
		t.Errorf("SessionDurationSec = %d, want 450", got.SessionDurationSec)
	}
	if got.Timestamp != "2025-10-20T10:00:00Z" {
		t.Errorf("Timestamp = %q, want 2025-10-20T10:00:00Z", got.Timestamp)
	}
}

// A whitespace-only user id is a disguised empty sentinel. The filter must
// drop that row instead of letting the trimmed-empty id reach validation
// and fail the whole batch.
func TestProcessor_Run_WhitespaceUserDropped(t *testing.T) {
	p := testProcessor(t)

	batch := []models.RawEntry{
		rawEntry("L1", "1760961600", literal.StringValue("   "), "android", "login", "10"),
		rawEntry("L2", "1760961600", literal.NumberValue(7), "ios", "click", "20"),
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(clean))
	}
	if clean[0].LogID != "L2" {
		t.Errorf("surviving row = %q, want L2", clean[0].LogID)
	}
}

// Rows whose epoch lands past year 9999 are unparseable, and absurd
// durations clamp instead of wrapping negative. Neither corrupts the batch.
func TestProcessor_Run_ExtremeNumericValues(t *testing.T) {
	p := testProcessor(t)

	batch := []models.RawEntry{
		rawEntry("L1", "253402300800000", literal.NumberValue(1), "android", "login", "10"),
		rawEntry("L2", "1760961600", literal.NumberValue(2), "ios", "click", "1e300"),
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(clean))
	}
	if clean[0].LogID != "L2" {
		t.Errorf("surviving row = %q, want L2", clean[0].LogID)
	}
	if clean[0].SessionDurationSec < 0 {
		t.Errorf("SessionDurationSec = %d, want non-negative", clean[0].SessionDurationSec)
	}
}

func TestProcessor_Run_MissingFields(t *testing.T) {
	p := testProcessor(t)

	// Absent event_type and absent user_id both drop the row.
	batch := []models.RawEntry{
		{
			models.FieldLogID:     literal.StringValue("L1"),
			models.FieldTimestamp: literal.StringValue("1760961600"),
			models.FieldUserID:    literal.NumberValue(1),
		},
		{
			models.FieldLogID:     literal.StringValue("L2"),
			models.FieldTimestamp: literal.StringValue("1760961600"),
			models.FieldEventType: literal.StringValue("login"),
		},
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 0 {
		t.Errorf("expected empty batch, got %d rows", len(clean))
	}
}

func TestProcessor_Run_DefaultsAndFallthroughs(t *testing.T) {
	p := testProcessor(t)

	batch := []models.RawEntry{
		{
			models.FieldLogID:     literal.NumberValue(99),
			models.FieldTimestamp: literal.StringValue("2025-10-21T08:30:00+02:00"),
			models.FieldUserID:    literal.StringValue("abc-1"),
			models.FieldPlatform:  literal.StringValue("blackberry"),
			models.FieldEventType: literal.StringValue("view"),
			models.FieldDuration:  literal.StringValue("oops"),
		},
	}

	clean, err := p.Run(batch)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(clean) != 1 {
		t.Fatalf("expected 1 row, got %d", len(clean))
	}

	got := clean[0]
	if got.LogID != "99" {
		t.Errorf("LogID = %q, want 99", got.LogID)
	}
	if got.UserID != "abc-1" {
		t.Errorf("UserID = %q, want passthrough abc-1", got.UserID)
	}
	if got.DevicePlatform != models.PlatformOther || got.DeviceType != models.DeviceOther {
		t.Errorf("platform/device = %q/%q, want Other/Other", got.DevicePlatform, got.DeviceType)
	}
	if got.SessionDurationSec != 0 {
		t.Errorf("SessionDurationSec = %d, want defaulted 0", got.SessionDurationSec)
	}
	if got.Timestamp != "2025-10-21T06:30:00Z" {
		t.Errorf("Timestamp = %q, want UTC-converted 2025-10-21T06:30:00Z", got.Timestamp)
	}
}

func TestProcessor_Run_InputBatchUntouched(t *testing.T) {
	p := testProcessor(t)

	row := rawEntry("L1", "1760961600", literal.StringValue("  42  "), "android", "login", "300s")
	batch := []models.RawEntry{row}

	if _, err := p.Run(batch); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Stages build fresh collections; the raw batch keeps its raw values.
	v, _ := batch[0].Field(models.FieldUserID)
	if v.Text() != "  42  " {
		t.Errorf("raw user_id mutated to %q", v.Text())
	}
}
