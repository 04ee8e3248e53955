package inventory

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tourline/merch-forecast/internal/domain/schedule"
)

const sampleCSV = "\ufeffItem Name,Product Type,Size,SKU,Boston - 09/12/25 ($7.00/head),Chicago - 10/01/25\n" +
	"Logo Tee,T-Shirt,M,TS-M-001,12,8\n" +
	",T-Shirt,L,TS-L-002,0,0\n" +
	"Tour Poster,Poster,,,3,1\n"

func TestReadCSVTable_StripsBOM(t *testing.T) {
	table, err := ReadCSVTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSVTable: %v", err)
	}
	if table.Columns[0] != "Item Name" {
		t.Errorf("first column = %q, want Item Name", table.Columns[0])
	}
	if len(table.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(table.Rows))
	}
}

func TestParseLines_SkipsEmptyAndDefaultsSize(t *testing.T) {
	table, err := ReadCSVTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	lines, err := ParseLines(table)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (empty item name skipped)", len(lines))
	}
	if lines[0].SKU != "TS-M-001" || lines[0].Size != "M" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Size != DefaultSize {
		t.Errorf("missing size = %q, want %q", lines[1].Size, DefaultSize)
	}
	if lines[1].SKU != "" {
		t.Errorf("missing SKU should stay empty, got %q", lines[1].SKU)
	}
}

func TestParseLines_RequiredColumnMissing(t *testing.T) {
	table := &Table{Columns: []string{"Product Type", "Size"}}
	if _, err := ParseLines(table); err == nil {
		t.Fatal("expected error when Item Name column is missing")
	}
}

func TestExpand_RowCountIsLinesTimesShows(t *testing.T) {
	table, err := ReadCSVTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	lines, err := ParseLines(table)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	shows, err := schedule.Extract(table.Columns, log)
	if err != nil {
		t.Fatal(err)
	}

	recs := Expand("Deftones", "Metal", lines, shows)
	if want := len(lines) * len(shows); len(recs) != want {
		t.Fatalf("got %d records, want %d", len(recs), want)
	}

	first := recs[0]
	if first.ArtistName != "Deftones" || first.Genre != "Metal" {
		t.Errorf("band/genre = %q/%q", first.ArtistName, first.Genre)
	}
	if first.VenueCity != "Boston" || first.ShowDate != schedule.FormatShowDate(time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("city/date = %q/%q", first.VenueCity, first.ShowDate)
	}
	if first.VenueName != "" || first.Attendance != 0 || first.ProductPrice != nil {
		t.Errorf("enrichment fields must start at defaults: %+v", first)
	}

	// lines-outer, shows-inner: record 1 is the same line at the second show.
	if recs[1].ItemName != recs[0].ItemName || recs[1].VenueCity != "Chicago" {
		t.Errorf("expansion order wrong: %+v", recs[1])
	}
}
