package schedule

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Show is one event parsed from an inventory column header of the form
// "City - MM/DD/YY ($7.00/head)".
type Show struct {
	City string
	Date time.Time
	// PerHead is the per-head price hint from the header. It is kept
	// for display only; item prices always come from the SKU ledger.
	PerHead *float64
}

const sep = " - "

// Two-digit-year date as it appears in the export headers.
const dateLayout = "01/02/06"

var perHeadRe = regexp.MustCompile(`\(\$(\d+(?:\.\d+)?)/head\)`)

// Extract parses show descriptors out of inventory column names, in
// column order. Columns without the separator are plain metadata and
// skipped silently; a qualifying column that fails to parse is skipped
// with a warning. Returns an error only when no column yields a show.
func Extract(columns []string, log *slog.Logger) ([]Show, error) {
	shows := make([]Show, 0, len(columns))
	for _, col := range columns {
		if !strings.Contains(col, sep) {
			continue
		}
		parts := strings.Split(col, sep)
		if len(parts) < 2 {
			log.Warn("column does not match expected format 'City - MM/DD/YY'", "column", col)
			continue
		}

		city := strings.TrimSpace(parts[0])

		rest := strings.TrimSpace(parts[1])
		dateToken := rest
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			dateToken = rest[:i]
		}
		date, err := time.Parse(dateLayout, dateToken)
		if err != nil {
			log.Warn("cannot parse show date, skipping column", "column", col, "date", dateToken, "err", err)
			continue
		}

		show := Show{City: city, Date: date}
		if m := perHeadRe.FindStringSubmatch(col); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				show.PerHead = &v
			}
		}
		shows = append(shows, show)
	}

	if len(shows) == 0 {
		return nil, fmt.Errorf("no valid show columns found in inventory file")
	}
	return shows, nil
}

// FormatShowDate renders a show date as M/D/YYYY without zero padding,
// the format used throughout the enriched dataset.
func FormatShowDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
