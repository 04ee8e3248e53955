package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tourline/merch-forecast/internal/domain/genre"
	"github.com/tourline/merch-forecast/internal/domain/inventory"
	"github.com/tourline/merch-forecast/internal/domain/price"
	"github.com/tourline/merch-forecast/internal/domain/records"
	"github.com/tourline/merch-forecast/internal/domain/schedule"
	"github.com/tourline/merch-forecast/internal/domain/venue"
	"github.com/tourline/merch-forecast/internal/infra/metrics"
)

// Pipeline turns one raw inventory extract into the enriched per-item
// per-show dataset. The reference ledgers are read-only snapshots loaded
// once per run; processing is sequential end to end.
type Pipeline struct {
	log    *slog.Logger
	genres *genre.Map
	tours  []venue.TourRecord
	prices []price.Record
}

// New assembles a pipeline over loaded reference data.
func New(log *slog.Logger, genres *genre.Map, tours []venue.TourRecord, prices []price.Record) *Pipeline {
	return &Pipeline{log: log, genres: genres, tours: tours, prices: prices}
}

// ProcessFile expands, enriches and returns the records for one
// inventory file. A band with no genre mapping fails the whole file;
// unmatched venues and unresolved prices are warned and left at their
// defaults.
func (p *Pipeline) ProcessFile(path, band string) ([]records.OutputRecord, error) {
	table, err := inventory.ReadTable(path)
	if err != nil {
		return nil, err
	}

	shows, err := schedule.Extract(table.Columns, p.log)
	if err != nil {
		return nil, err
	}
	p.log.Info("parsed show columns", "file", filepath.Base(path), "shows", len(shows))

	g, ok := p.genres.Lookup(band)
	if !ok {
		return nil, fmt.Errorf("no genre found for band: %s", band)
	}

	lines, err := inventory.ParseLines(table)
	if err != nil {
		return nil, err
	}

	matcher := venue.NewMatcher(p.tours, band, p.log)
	resolver := price.NewResolver(p.prices, band, p.log)
	p.log.Info("reference lookups built", "band", band,
		"venue_keys", matcher.Size(), "skus", resolver.Size())

	recs := inventory.Expand(band, g, lines, shows)
	venueHits, priceHits := 0, 0
	for i := range recs {
		// Expansion is lines-outer, shows-inner, so record i belongs to
		// line i/len(shows); the SKU travels with the line.
		ln := lines[i/len(shows)]

		rec, matched := matcher.Enrich(recs[i])
		if matched {
			venueHits++
		} else {
			metrics.CitiesUnmatched.Inc()
		}
		rec, resolved := resolver.Resolve(rec, ln.SKU)
		if resolved {
			priceHits++
		} else {
			metrics.PricesUnresolved.Inc()
		}
		recs[i] = rec
	}
	metrics.RowsExpanded.Add(float64(len(recs)))

	p.log.Info("inventory file processed", "file", filepath.Base(path),
		"lines", len(lines), "shows", len(shows), "rows", len(recs),
		"venue_matches", venueHits, "prices_resolved", priceHits)
	return recs, nil
}

// BandFromFilename derives the band name from an inventory filename the
// way the upload tooling names files: underscores separate words,
// each word capitalized ("air_supply.csv" -> "Air Supply").
func BandFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.Split(base, "_")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
