package price

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

// Record is one row of the price ledger: Band Name, SKU, Price.
type Record struct {
	Band  string
	SKU   string
	Price float64
}

// LoadLedger reads the price ledger CSV, skipping rows whose price does
// not parse.
func LoadLedger(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price ledger: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadLedger(f)
}

// ReadLedger parses price ledger rows from r. A header row starting
// with "Band Name" is skipped.
func ReadLedger(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read price ledger: %w", err)
	}

	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		if len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], "\ufeff")
		}
		if i == 0 && strings.TrimSpace(row[0]) == "Band Name" {
			continue
		}
		p, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(row[2]), "$"), 64)
		if err != nil {
			continue
		}
		out = append(out, Record{
			Band:  strings.TrimSpace(row[0]),
			SKU:   strings.TrimSpace(row[1]),
			Price: p,
		})
	}
	return out, nil
}

// Resolver fills item prices by exact SKU lookup within one band's
// ledger rows. There is deliberately no fallback: a line without a SKU,
// or a SKU absent from the ledger, keeps an unresolved price.
type Resolver struct {
	log   *slog.Logger
	band  string
	bySKU map[string]float64
}

// NewResolver indexes ledger rows for the band's canonical or alias
// name. The first row for a SKU wins.
func NewResolver(ledger []Record, band string, log *slog.Logger) *Resolver {
	r := &Resolver{log: log, band: band, bySKU: make(map[string]float64)}
	alias := records.BandAlias(band)
	for _, rec := range ledger {
		if rec.Band != band && rec.Band != alias {
			continue
		}
		if rec.SKU == "" {
			continue
		}
		if _, ok := r.bySKU[rec.SKU]; !ok {
			r.bySKU[rec.SKU] = rec.Price
		}
	}
	return r
}

// Size reports how many SKUs are indexed for the band.
func (r *Resolver) Size() int { return len(r.bySKU) }

// Resolve returns a copy of rec with the product price filled when the
// SKU resolves. The second return value reports whether a price was
// found.
func (r *Resolver) Resolve(rec records.OutputRecord, sku string) (records.OutputRecord, bool) {
	if sku == "" {
		return rec, false
	}
	p, ok := r.bySKU[sku]
	if !ok {
		r.log.Warn("no price for SKU", "sku", sku, "band", r.band, "item", rec.ItemName)
		return rec, false
	}
	if rec.ProductPrice == nil {
		v := p
		rec.ProductPrice = &v
	}
	return rec, true
}
