package venue

// TourRecord is one row of the tour ledger feed. Capacity and
// attendance are coerced to 0 when the source cell is not numeric.
type TourRecord struct {
	Band       string
	ShowDate   string
	City       string
	State      string
	Venue      string
	Capacity   int
	Attendance int
}
