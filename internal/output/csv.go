// Package output writes cleaned datasets to delimited files.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"logscrub/internal/models"
)

// Columns is the canonical output column order.
var Columns = []string{
	models.FieldLogID,
	models.FieldTimestamp,
	models.FieldUserID,
	"device_type",
	models.FieldPlatform,
	models.FieldEventType,
	models.FieldDuration,
}

// ErrUnknownColumn indicates a requested column outside the canonical set.
var ErrUnknownColumn = errors.New("unknown output column")

// Writer writes cleaned entries as a CSV table with a header row.
type Writer struct {
	columns []string
}

// NewWriter returns a writer emitting the full canonical column set.
func NewWriter() *Writer {
	return &Writer{columns: Columns}
}

// NewWriterWithColumns returns a writer emitting only the selected columns,
// in canonical relative order regardless of the order requested.
func NewWriterWithColumns(selected []string) (*Writer, error) {
	want := make(map[string]struct{}, len(selected))
	for _, col := range selected {
		known := false
		for _, c := range Columns {
			if col == c {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
		want[col] = struct{}{}
	}

	cols := make([]string, 0, len(want))
	for _, c := range Columns {
		if _, ok := want[c]; ok {
			cols = append(cols, c)
		}
	}
	return &Writer{columns: cols}, nil
}

// WriteFile writes the batch to path, creating parent directories as
// needed.
func (w *Writer) WriteFile(path string, entries []models.CleanEntry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := w.Write(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes the header and one row per entry.
func (w *Writer) Write(dst io.Writer, entries []models.CleanEntry) error {
	cw := csv.NewWriter(dst)

	if err := cw.Write(w.columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(w.columns))
	for _, e := range entries {
		for i, col := range w.columns {
			row[i] = fieldValue(e, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func fieldValue(e models.CleanEntry, col string) string {
	switch col {
	case models.FieldLogID:
		return e.LogID
	case models.FieldTimestamp:
		return e.Timestamp
	case models.FieldUserID:
		return e.UserID
	case "device_type":
		return string(e.DeviceType)
	case models.FieldPlatform:
		return string(e.DevicePlatform)
	case models.FieldEventType:
		return e.EventType
	case models.FieldDuration:
		return strconv.Itoa(e.SessionDurationSec)
	default:
		return ""
	}
}
