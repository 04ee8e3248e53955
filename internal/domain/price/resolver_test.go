package price

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLedger() []Record {
	return []Record{
		{Band: "Deftones (MH)", SKU: "TS-M-001", Price: 35},
		{Band: "Deftones", SKU: "TS-L-002", Price: 38.5},
		{Band: "Air Supply", SKU: "TS-M-001", Price: 1},
		{Band: "Deftones (MH)", SKU: "TS-M-001", Price: 99}, // duplicate, first wins
	}
}

func TestResolver_ExactSKUMatch(t *testing.T) {
	r := NewResolver(testLedger(), "Deftones", discardLogger())

	rec, ok := r.Resolve(records.OutputRecord{ItemName: "Tee"}, "TS-M-001")
	if !ok {
		t.Fatal("expected a price for TS-M-001")
	}
	if rec.ProductPrice == nil || *rec.ProductPrice != 35 {
		t.Errorf("price = %v, want 35 (band-filtered, first row wins)", rec.ProductPrice)
	}
}

func TestResolver_NoSKUAlwaysUnresolved(t *testing.T) {
	r := NewResolver(testLedger(), "Deftones", discardLogger())

	rec, ok := r.Resolve(records.OutputRecord{ItemName: "Tee"}, "")
	if ok || rec.ProductPrice != nil {
		t.Errorf("line without SKU must stay unresolved, got %v", rec.ProductPrice)
	}
}

func TestResolver_UnknownSKUUnresolved(t *testing.T) {
	r := NewResolver(testLedger(), "Deftones", discardLogger())

	rec, ok := r.Resolve(records.OutputRecord{ItemName: "Hoodie"}, "HD-XL-404")
	if ok || rec.ProductPrice != nil {
		t.Errorf("unknown SKU must stay unresolved, got %v", rec.ProductPrice)
	}
}

func TestReadLedger_SkipsHeaderAndBadPrices(t *testing.T) {
	in := strings.NewReader(
		"Band Name,SKU,Price\n" +
			"Deftones,TS-L-002,$38.50\n" +
			"Deftones,TS-M-003,n/a\n")

	recs, err := ReadLedger(in)
	if err != nil {
		t.Fatalf("ReadLedger: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].SKU != "TS-L-002" || recs[0].Price != 38.5 {
		t.Errorf("got %+v", recs[0])
	}
}
