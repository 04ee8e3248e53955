package records

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WritePredictionsWorkbook saves prediction records as an Excel workbook
// with the same columns as the CSV export.
func WritePredictionsWorkbook(path string, recs []PredictionRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, len(PredictionHeader))
	for i, h := range PredictionHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, r := range recs {
		var price interface{}
		if r.ProductPrice != nil {
			price = *r.ProductPrice
		} else {
			price = ""
		}
		row := []interface{}{
			r.ArtistName, r.Genre, r.ShowDate, r.VenueName, r.VenueState,
			r.VenueCity, r.ProductType, r.ProductSize, r.Attendance,
			price, r.ItemName, r.PredictedSalesQuantity, r.PercentOfCategory,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(path)
}
