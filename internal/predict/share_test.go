package predict

import (
	"testing"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

func predRecord(itemName string, qty int) records.PredictionRecord {
	rec := testRecord()
	rec.ItemName = itemName
	return records.PredictionRecord{OutputRecord: rec, PredictedSalesQuantity: qty}
}

func TestApplyCategoryShares(t *testing.T) {
	recs := []records.PredictionRecord{
		predRecord("Tee S", 10),
		predRecord("Tee M", 20),
		predRecord("Tee L", 30),
	}
	ApplyCategoryShares(recs)

	want := []float64{16.67, 33.33, 50}
	for i, w := range want {
		if recs[i].PercentOfCategory != w {
			t.Errorf("record %d share = %v, want %v", i, recs[i].PercentOfCategory, w)
		}
	}
}

func TestApplyCategoryShares_ZeroTotal(t *testing.T) {
	recs := []records.PredictionRecord{
		predRecord("Tee S", 0),
		predRecord("Tee M", 0),
	}
	ApplyCategoryShares(recs)
	for i, r := range recs {
		if r.PercentOfCategory != 0 {
			t.Errorf("record %d share = %v, want 0 for a zero-total group", i, r.PercentOfCategory)
		}
	}
}

func TestApplyCategoryShares_GroupsByArtistDateAndType(t *testing.T) {
	poster := predRecord("Tour Poster", 10)
	poster.ProductType = "Poster"
	otherShow := predRecord("Tee M", 5)
	otherShow.ShowDate = "10/1/2025"

	recs := []records.PredictionRecord{
		predRecord("Tee S", 10),
		predRecord("Tee M", 10),
		poster,
		otherShow,
	}
	ApplyCategoryShares(recs)

	if recs[0].PercentOfCategory != 50 || recs[1].PercentOfCategory != 50 {
		t.Errorf("tee shares = %v, %v; want 50, 50", recs[0].PercentOfCategory, recs[1].PercentOfCategory)
	}
	if recs[2].PercentOfCategory != 100 {
		t.Errorf("poster share = %v, want 100 (only member of its group)", recs[2].PercentOfCategory)
	}
	if recs[3].PercentOfCategory != 100 {
		t.Errorf("other-show share = %v, want 100", recs[3].PercentOfCategory)
	}
}
