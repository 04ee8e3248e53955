package records

import (
	"encoding/csv"
	"io"
	"strconv"
)

// EnrichedHeader is the column order of the enriched dataset written by
// the pipeline, matching the row-creation order of the source files.
var EnrichedHeader = []string{
	"artistName", "Genre", "showDate", "venue name", "venue city",
	"venue state", "attendance", "product size", "productType",
	"product price", "Item Name",
}

// PredictionHeader is the column order of the final prediction export.
var PredictionHeader = []string{
	"artistName", "Genre", "showDate", "venue name", "venue state",
	"venue city", "productType", "product size", "attendance",
	"product price", "Item Name", "predicted_sales_quantity",
	"%_item_sales_per_category",
}

// WriteEnrichedCSV writes records in EnrichedHeader order. An unresolved
// price is written as an empty cell.
func WriteEnrichedCSV(w io.Writer, recs []OutputRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EnrichedHeader); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.ArtistName, r.Genre, r.ShowDate, r.VenueName, r.VenueCity,
			r.VenueState, strconv.Itoa(r.Attendance), r.ProductSize,
			r.ProductType, formatPrice(r.ProductPrice), r.ItemName,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePredictionsCSV writes prediction records in PredictionHeader order.
func WritePredictionsCSV(w io.Writer, recs []PredictionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PredictionHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(predictionRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func predictionRow(r PredictionRecord) []string {
	return []string{
		r.ArtistName, r.Genre, r.ShowDate, r.VenueName, r.VenueState,
		r.VenueCity, r.ProductType, r.ProductSize,
		strconv.Itoa(r.Attendance), formatPrice(r.ProductPrice),
		r.ItemName, strconv.Itoa(r.PredictedSalesQuantity),
		strconv.FormatFloat(r.PercentOfCategory, 'f', 2, 64),
	}
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
