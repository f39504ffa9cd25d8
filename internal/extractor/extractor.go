// Package extractor loads raw log entries from a source file. The source
// assigns a list of per-event mappings to a top-level name, written in the
// literal dialect handled by internal/literal.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"logscrub/internal/literal"
	"logscrub/internal/models"
)

// ErrExtraction is the umbrella for every fatal loader failure. All errors
// returned by this package match it via errors.Is.
var ErrExtraction = errors.New("extraction failed")

// Specific extraction failures.
var (
	ErrReadSource         = errors.New("cannot read source file")
	ErrAssignmentNotFound = errors.New("no top-level logs assignment found")
	ErrNotAList           = errors.New("logs literal is not a list")
	ErrEntryNotAMap       = errors.New("log entry is not a mapping")
)

// assignPattern matches the top-level assignment that binds the event list.
var assignPattern = regexp.MustCompile(`(?m)^\s*logs\s*=`)

// Extract parses the full text of a source file into raw entries, in source
// order. Any failure is fatal; no partial batch is returned.
func Extract(content string) ([]models.RawEntry, error) {
	loc := assignPattern.FindStringIndex(content)
	if loc == nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, ErrAssignmentNotFound)
	}

	root, err := literal.Parse(content[loc[1]:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	items, ok := root.Items()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, ErrNotAList)
	}

	entries := make([]models.RawEntry, 0, len(items))
	for i, item := range items {
		fields, ok := item.Entries()
		if !ok {
			return nil, fmt.Errorf("%w: %w at index %d", ErrExtraction, ErrEntryNotAMap, i)
		}

		entry := make(models.RawEntry, len(fields))
		for _, f := range fields {
			entry[f.Key] = f.Value
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ExtractFile reads path and extracts its entries.
func ExtractFile(path string) ([]models.RawEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrExtraction, ErrReadSource, err)
	}

	return Extract(string(content))
}
