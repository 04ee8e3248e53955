package predict

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScaler() Scaler {
	return Scaler{
		"attendance":    {Center: 500, Scale: 250},
		"product price": {Center: 20, Scale: 5},
	}
}

// testEncoder builds a vocabulary where every expected normalized value
// sits at index 1, after the sentinel at index 0.
func testEncoder(t *testing.T) *Encoder {
	t.Helper()
	classes := map[string][]string{
		"artistName":      {UnknownCategory, "deftones"},
		"Genre":           {UnknownCategory, "metal"},
		"Show Day":        {UnknownCategory, "12"},
		"Show Month":      {UnknownCategory, "9"},
		"Day of Week Num": {UnknownCategory, "4"},
		"venue name":      {UnknownCategory, "paradise rock club"},
		"venue state":     {UnknownCategory, "ma"},
		"venue city":      {UnknownCategory, "boston"},
		"productType":     {UnknownCategory, "t-shirt"},
		"product size":    {UnknownCategory, "m"},
	}
	return NewEncoder(classes)
}

func testRecord() records.OutputRecord {
	price := 25.0
	return records.OutputRecord{
		ArtistName:   "Deftones",
		Genre:        "Metal",
		ShowDate:     "9/12/2025",
		VenueName:    "Paradise Rock Club",
		VenueCity:    "Boston",
		VenueState:   "MA",
		Attendance:   1000,
		ProductSize:  "M",
		ProductType:  "T-Shirt",
		ProductPrice: &price,
		ItemName:     "Logo Tee",
	}
}

func TestBuildFeatures_ScalesAndEncodes(t *testing.T) {
	fs, err := BuildFeatures([]records.OutputRecord{testRecord()}, testScaler(), testEncoder(t), discard())
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}
	if len(fs.Rows) != 1 || len(fs.Kept) != 1 || len(fs.Dropped) != 0 {
		t.Fatalf("rows=%d kept=%v dropped=%v", len(fs.Rows), fs.Kept, fs.Dropped)
	}

	row := fs.Rows[0]
	if len(row) != len(NumericalFeatures)+len(CategoricalFeatures) {
		t.Fatalf("row width = %d, want %d", len(row), len(NumericalFeatures)+len(CategoricalFeatures))
	}
	// (1000-500)/250 and (25-20)/5.
	if row[0] != 2 || row[1] != 1 {
		t.Errorf("scaled numericals = %v, %v; want 2, 1", row[0], row[1])
	}
	// 9/12/2025 is a Friday: Show Day 12, Show Month 9, weekday 4. All
	// vocabularies put the expected value at index 1.
	for i := 2; i < len(row); i++ {
		if row[i] != 1 {
			t.Errorf("encoded %s = %v, want 1", CategoricalFeatures[i-2], row[i])
		}
	}
}

func TestBuildFeatures_UnknownValueUsesSentinel(t *testing.T) {
	rec := testRecord()
	rec.ArtistName = "Air Supply"

	fs, err := BuildFeatures([]records.OutputRecord{rec}, testScaler(), testEncoder(t), discard())
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}
	if got := fs.Rows[0][2]; got != 0 {
		t.Errorf("unseen artist encoded as %v, want sentinel index 0", got)
	}
}

func TestBuildFeatures_DropsBadRows(t *testing.T) {
	noPrice := testRecord()
	noPrice.ProductPrice = nil

	badDate := testRecord()
	badDate.ShowDate = "not a date"

	recs := []records.OutputRecord{noPrice, testRecord(), badDate}
	fs, err := BuildFeatures(recs, testScaler(), testEncoder(t), discard())
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}
	if len(fs.Kept) != 1 || fs.Kept[0] != 1 {
		t.Errorf("kept = %v, want [1]", fs.Kept)
	}
	if len(fs.Dropped) != 2 || fs.Dropped[0] != 0 || fs.Dropped[1] != 2 {
		t.Errorf("dropped = %v, want [0 2]", fs.Dropped)
	}
}

func TestBuildFeatures_MissingVocabularyIsError(t *testing.T) {
	enc := NewEncoder(map[string][]string{"artistName": {UnknownCategory}})
	if _, err := BuildFeatures([]records.OutputRecord{testRecord()}, testScaler(), enc, discard()); err == nil {
		t.Fatal("expected error for encoder with missing feature vocabularies")
	}
}

func TestBuildFeatures_MissingSentinelIsError(t *testing.T) {
	enc := testEncoder(t)
	enc.classes["Genre"] = []string{"metal"}
	enc.index["Genre"] = map[string]int{"metal": 0}

	rec := testRecord()
	rec.Genre = "Ska"
	if _, err := BuildFeatures([]records.OutputRecord{rec}, testScaler(), enc, discard()); err == nil {
		t.Fatal("expected error when vocabulary lacks the unknown-category class")
	}
}

func TestBuildFeatures_MissingScalerFeatureUsesRawValue(t *testing.T) {
	scaler := Scaler{"attendance": {Center: 500, Scale: 250}}
	fs, err := BuildFeatures([]records.OutputRecord{testRecord()}, scaler, testEncoder(t), discard())
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}
	if got := fs.Rows[0][1]; got != 25 {
		t.Errorf("unscaled price = %v, want raw 25", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Boston ", "boston"},
		{"T-Shirt", "t-shirt"},
		{"Rock Club", "rock club"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeCategory(tt.in); got != tt.want {
			t.Errorf("normalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScaleParams_ZeroScaleCentersOnly(t *testing.T) {
	p := ScaleParams{Center: 10, Scale: 0}
	if got := p.Transform(12); got != 2 {
		t.Errorf("Transform(12) = %v, want 2", got)
	}
}

func TestNumericalValue_NilPriceIsNaN(t *testing.T) {
	rec := testRecord()
	rec.ProductPrice = nil
	if v := numericalValue(rec, "product price"); !math.IsNaN(v) {
		t.Errorf("nil price = %v, want NaN", v)
	}
}
