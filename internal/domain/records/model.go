package records

// Field names follow the historical forecasting dataset exactly, spaces
// and casing included, so CSV output and the prediction API stay
// byte-compatible with files produced by earlier tooling.

// OutputRecord is one expanded inventory row for one show. Venue fields
// and the price start at their defaults and are filled by enrichment; a
// pass never overwrites a field that is already set.
type OutputRecord struct {
	ArtistName   string   `json:"artistName"`
	Genre        string   `json:"Genre"`
	ShowDate     string   `json:"showDate"`
	VenueName    string   `json:"venue name"`
	VenueCity    string   `json:"venue city"`
	VenueState   string   `json:"venue state"`
	Attendance   int      `json:"attendance"`
	ProductSize  string   `json:"product size"`
	ProductType  string   `json:"productType"`
	ProductPrice *float64 `json:"product price"`
	ItemName     string   `json:"Item Name"`
}

// PredictionRecord extends an OutputRecord with the model output and the
// item's share of predicted sales within its product category.
type PredictionRecord struct {
	OutputRecord
	PredictedSalesQuantity int     `json:"predicted_sales_quantity"`
	PercentOfCategory      float64 `json:"%_item_sales_per_category"`
}

// bandAliasSuffix marks tour-ledger and price-ledger rows belonging to
// the in-house roster; "Deftones" and "Deftones (MH)" are the same band.
const bandAliasSuffix = " (MH)"

// BandAlias returns the aliased form of a canonical band name.
func BandAlias(band string) string {
	return band + bandAliasSuffix
}
