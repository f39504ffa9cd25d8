// Package normalizer turns raw log entries into canonical, validated
// records.
package normalizer

import (
	"logscrub/internal/config"
	"logscrub/internal/logger"
	"logscrub/internal/models"
)

// draft carries a row between stages: the raw fields on the way in and the
// canonical fields as each stage fills them.
type draft struct {
	raw   models.RawEntry
	clean models.CleanEntry
}

// Processor runs the cleaning stages over a whole batch in fixed order.
// Each stage consumes the previous stage's complete output and builds a
// fresh collection; no row is mutated once a stage has emitted it, and no
// stage starts before the previous one has finished the entire batch.
type Processor struct {
	filter     *EventFilter
	platforms  *PlatformNormalizer
	timestamps *TimestampNormalizer
	integrity  *IntegrityValidator
	log        *logger.Logger
}

// NewProcessor builds a processor from the configured cleaning rules.
func NewProcessor(rules config.Rules, strict bool, log *logger.Logger) *Processor {
	return &Processor{
		filter:     NewEventFilter(rules.ExcludedEvents, rules.InvalidUserIDs),
		platforms:  NewPlatformNormalizer(rules.PlatformAliases),
		timestamps: NewTimestampNormalizer(),
		integrity:  NewIntegrityValidator(strict),
		log:        log,
	}
}

// Run cleans a whole batch. It returns the canonical rows, or an
// *IntegrityError when the final batch violates an invariant, in which
// case no rows are returned.
func (p *Processor) Run(batch []models.RawEntry) ([]models.CleanEntry, error) {
	rows := p.filter.DropIrrelevantEvents(batch)
	p.log.Debug("filtered irrelevant events", "before", len(batch), "after", len(rows))

	kept := p.filter.DropInvalidUsers(rows)
	p.log.Debug("filtered invalid users", "before", len(rows), "after", len(kept))

	drafts := p.normalizeUserIDs(kept)
	drafts = p.normalizePlatforms(drafts)
	drafts = p.sanitizeDurations(drafts)

	before := len(drafts)
	drafts = p.normalizeTimestamps(drafts)
	p.log.Debug("normalized timestamps", "before", before, "after", len(drafts))

	drafts = p.deriveDeviceTypes(drafts)

	clean := make([]models.CleanEntry, 0, len(drafts))
	for _, d := range drafts {
		clean = append(clean, d.clean)
	}

	if err := p.integrity.Validate(clean); err != nil {
		return nil, err
	}

	p.log.Info("batch cleaned", "input_rows", len(batch), "output_rows", len(clean))
	return clean, nil
}

// normalizeUserIDs promotes surviving raw rows into drafts, canonicalizing
// the user id and carrying the passthrough scalars over verbatim.
func (p *Processor) normalizeUserIDs(batch []models.RawEntry) []draft {
	out := make([]draft, 0, len(batch))
	for _, row := range batch {
		id, _ := row.Field(models.FieldLogID)
		user, _ := row.Field(models.FieldUserID)
		event, _ := row.Field(models.FieldEventType)

		out = append(out, draft{
			raw: row,
			clean: models.CleanEntry{
				LogID:     id.Text(),
				UserID:    NormalizeUserID(user),
				EventType: event.Text(),
			},
		})
	}
	return out
}

func (p *Processor) normalizePlatforms(batch []draft) []draft {
	out := make([]draft, 0, len(batch))
	for _, d := range batch {
		v, _ := d.raw.Field(models.FieldPlatform)
		d.clean.DevicePlatform = p.platforms.Normalize(v)
		out = append(out, d)
	}
	return out
}

func (p *Processor) sanitizeDurations(batch []draft) []draft {
	out := make([]draft, 0, len(batch))
	for _, d := range batch {
		v, _ := d.raw.Field(models.FieldDuration)
		d.clean.SessionDurationSec = SanitizeDuration(v)
		out = append(out, d)
	}
	return out
}

// normalizeTimestamps is the one stage that removes rows on failure: a row
// whose timestamp matches no recognized encoding is dropped, not defaulted.
func (p *Processor) normalizeTimestamps(batch []draft) []draft {
	out := make([]draft, 0, len(batch))
	for _, d := range batch {
		v, _ := d.raw.Field(models.FieldTimestamp)
		ts, ok := p.timestamps.Normalize(v)
		if !ok {
			p.log.Debug("dropping row with unparseable timestamp", "log_id", d.clean.LogID)
			continue
		}
		d.clean.Timestamp = ts
		out = append(out, d)
	}
	return out
}

func (p *Processor) deriveDeviceTypes(batch []draft) []draft {
	out := make([]draft, 0, len(batch))
	for _, d := range batch {
		d.clean.DeviceType = d.clean.DevicePlatform.DeviceType()
		out = append(out, d)
	}
	return out
}
