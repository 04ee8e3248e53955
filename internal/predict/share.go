package predict

import (
	"math"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

type categoryKey struct {
	artist      string
	showDate    string
	productType string
}

// ApplyCategoryShares fills each record's percentage of its category
// group's total predicted quantity. Groups are keyed by artist, show
// date and product type. A group whose total is zero has no meaningful
// shares; every member reports 0 instead of propagating a division by
// zero.
func ApplyCategoryShares(recs []records.PredictionRecord) {
	totals := make(map[categoryKey]int)
	for _, r := range recs {
		totals[shareKey(r)] += r.PredictedSalesQuantity
	}
	for i := range recs {
		total := totals[shareKey(recs[i])]
		if total == 0 {
			recs[i].PercentOfCategory = 0
			continue
		}
		share := float64(recs[i].PredictedSalesQuantity) / float64(total) * 100
		recs[i].PercentOfCategory = round2(share)
	}
}

func shareKey(r records.PredictionRecord) categoryKey {
	return categoryKey{artist: r.ArtistName, showDate: r.ShowDate, productType: r.ProductType}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
