// Package formatter renders cleaned entries as aligned text tables for
// preview logging.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"logscrub/internal/models"
	"logscrub/internal/output"
)

// PreviewTable renders up to limit entries as an aligned monospace table
// with a header row and a separator, suitable for dumping a sample of the
// cleaned dataset to the log. A non-positive limit renders nothing but the
// header.
func PreviewTable(entries []models.CleanEntry, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if limit > len(entries) {
		limit = len(entries)
	}

	rows := make([][]string, 0, limit+1)
	rows = append(rows, output.Columns)
	for _, e := range entries[:limit] {
		rows = append(rows, []string{
			e.LogID,
			e.Timestamp,
			e.UserID,
			string(e.DeviceType),
			string(e.DevicePlatform),
			e.EventType,
			strconv.Itoa(e.SessionDurationSec),
		})
	}

	// Column widths use display width, not byte length, so wide runes in
	// free-form fields keep the table aligned.
	widths := make([]int, len(output.Columns))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(rows[0])

	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return strings.TrimRight(sb.String(), "\n")
}
