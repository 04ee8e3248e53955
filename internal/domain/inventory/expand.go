package inventory

import (
	"github.com/tourline/merch-forecast/internal/domain/records"
	"github.com/tourline/merch-forecast/internal/domain/schedule"
)

// Expand emits one OutputRecord per (line, show) pair, lines outer and
// shows inner, so record i belongs to line i/len(shows). Duplicate show
// columns or SKUs simply yield duplicate rows; no dedup happens here.
// Venue fields, attendance and price start at their defaults and are
// filled by later enrichment passes.
func Expand(band, genre string, lines []Line, shows []schedule.Show) []records.OutputRecord {
	out := make([]records.OutputRecord, 0, len(lines)*len(shows))
	for _, ln := range lines {
		for _, sh := range shows {
			out = append(out, records.OutputRecord{
				ArtistName:  band,
				Genre:       genre,
				ShowDate:    schedule.FormatShowDate(sh.Date),
				VenueCity:   sh.City,
				ProductSize: ln.Size,
				ProductType: ln.ProductType,
				ItemName:    ln.ItemName,
			})
		}
	}
	return out
}
