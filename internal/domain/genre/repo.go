package genre

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Map resolves a band name to its genre. The reference CSV carries the
// genre under two key columns, the legacy exact name ("Band Name") and
// the roster alias ("MH band"); both resolve to the same row.
type Map struct {
	byBand map[string]string
}

const (
	legacyKeyColumn = "Band Name"
	aliasKeyColumn  = "MH band"
	genreColumn     = "Genre"
)

// Load reads the genre reference CSV. The file must have a header row
// with a Genre column and at least one of the two band key columns.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genre map: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read genre map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("genre map %s is empty", path)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	legacyIdx, aliasIdx, genreIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case legacyKeyColumn:
			legacyIdx = i
		case aliasKeyColumn:
			aliasIdx = i
		case genreColumn:
			genreIdx = i
		}
	}
	if genreIdx < 0 {
		return nil, fmt.Errorf("genre map %s has no %q column", path, genreColumn)
	}
	if legacyIdx < 0 && aliasIdx < 0 {
		return nil, fmt.Errorf("genre map %s has no band key column (%q or %q)", path, legacyKeyColumn, aliasKeyColumn)
	}

	m := &Map{byBand: make(map[string]string, len(rows))}
	for _, row := range rows[1:] {
		if genreIdx >= len(row) {
			continue
		}
		g := strings.TrimSpace(row[genreIdx])
		if g == "" {
			continue
		}
		for _, idx := range []int{legacyIdx, aliasIdx} {
			if idx < 0 || idx >= len(row) {
				continue
			}
			band := strings.TrimSpace(row[idx])
			if band == "" {
				continue
			}
			if _, ok := m.byBand[band]; !ok {
				m.byBand[band] = g
			}
		}
	}
	return m, nil
}

// Lookup returns the genre for an exact band name.
func (m *Map) Lookup(band string) (string, bool) {
	g, ok := m.byBand[band]
	return g, ok
}

// Bands lists every known band key, for diagnostics when a lookup fails.
func (m *Map) Bands() []string {
	out := make([]string, 0, len(m.byBand))
	for b := range m.byBand {
		out = append(out, b)
	}
	return out
}
