package venue

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tour ledger column layout: Band, Show Date, City, ST, Venue, Nights,
// Type, Capacity, Attn; trailing columns vary by source and are ignored.
const minLedgerColumns = 9

// LoadLedger reads the tour ledger CSV. The feed arrives both with and
// without a header row; a leading "Band" cell marks a header.
func LoadLedger(path string) ([]TourRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tour ledger: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadLedger(f)
}

// ReadLedger parses tour ledger rows from r.
func ReadLedger(r io.Reader) ([]TourRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read tour ledger: %w", err)
	}

	out := make([]TourRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], "\ufeff")
		}
		if i == 0 && len(row) > 0 && strings.TrimSpace(row[0]) == "Band" {
			continue
		}
		if len(row) < minLedgerColumns {
			continue
		}
		out = append(out, TourRecord{
			Band:       strings.TrimSpace(row[0]),
			ShowDate:   strings.TrimSpace(row[1]),
			City:       strings.TrimSpace(row[2]),
			State:      strings.TrimSpace(row[3]),
			Venue:      strings.TrimSpace(row[4]),
			Capacity:   coerceInt(row[7]),
			Attendance: coerceInt(row[8]),
		})
	}
	return out, nil
}

// coerceInt mirrors the lenient numeric handling of the source feed:
// anything that does not parse counts as 0.
func coerceInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
