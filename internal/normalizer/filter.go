package normalizer

import (
	"strings"

	"logscrub/internal/models"
)

// EventFilter drops rows that are analytically irrelevant. It runs before
// any field normalization, so the normalizers only ever see values they can
// handle.
type EventFilter struct {
	excludedEvents map[string]struct{}
	invalidUserIDs map[string]struct{}
}

// NewEventFilter builds a filter from the configured exclusion sets.
func NewEventFilter(excludedEvents, invalidUserIDs []string) *EventFilter {
	f := &EventFilter{
		excludedEvents: make(map[string]struct{}, len(excludedEvents)),
		invalidUserIDs: make(map[string]struct{}, len(invalidUserIDs)),
	}
	for _, e := range excludedEvents {
		f.excludedEvents[e] = struct{}{}
	}
	for _, u := range invalidUserIDs {
		f.invalidUserIDs[u] = struct{}{}
	}
	return f
}

// DropIrrelevantEvents removes rows whose event type is excluded, missing
// or null. Surviving rows are unchanged.
func (f *EventFilter) DropIrrelevantEvents(batch []models.RawEntry) []models.RawEntry {
	kept := make([]models.RawEntry, 0, len(batch))
	for _, row := range batch {
		v, ok := row.Field(models.FieldEventType)
		if !ok || v.IsNull() {
			continue
		}
		if _, excluded := f.excludedEvents[v.Text()]; excluded {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// DropInvalidUsers removes rows whose user id is missing, null, or one of
// the configured sentinel values. The id is trimmed before the sentinel
// lookup so a padded or whitespace-only id matches the same sentinel the
// normalizer would later reduce it to. Surviving rows are unchanged.
func (f *EventFilter) DropInvalidUsers(batch []models.RawEntry) []models.RawEntry {
	kept := make([]models.RawEntry, 0, len(batch))
	for _, row := range batch {
		v, ok := row.Field(models.FieldUserID)
		if !ok || v.IsNull() {
			continue
		}
		if _, invalid := f.invalidUserIDs[strings.TrimSpace(v.Text())]; invalid {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
