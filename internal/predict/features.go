package predict

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

// The model's input schema is rigid: these names, in this order, with
// numerical columns first. The categorical calendar features are derived
// from the show date before encoding.
var (
	NumericalFeatures = []string{"attendance", "product price"}

	CategoricalFeatures = []string{
		"artistName", "Genre", "Show Day", "Show Month", "Day of Week Num",
		"venue name", "venue state", "venue city", "productType", "product size",
	}
)

// UnknownCategory substitutes any categorical value absent from a
// feature's trained vocabulary.
const UnknownCategory = "unknown_category"

var showDateLayouts = []string{"1/2/2006", "2006-01-02"}

// FeatureSet is the model-ready form of a record batch. Kept holds the
// original indexes of rows that survived the missing-value drop, aligned
// with Rows; Dropped holds the rest.
type FeatureSet struct {
	Rows    [][]float64
	Kept    []int
	Dropped []int
}

// BuildFeatures scales, encodes and assembles records into a feature
// matrix. Rows with an unresolvable date or price are dropped rather
// than sent to the model. Structural mismatches with the fitted
// artifacts (missing vocabulary, missing sentinel) are hard errors.
func BuildFeatures(recs []records.OutputRecord, scaler Scaler, encoder *Encoder, log *slog.Logger) (*FeatureSet, error) {
	for _, feat := range CategoricalFeatures {
		if !encoder.Has(feat) {
			return nil, fmt.Errorf("encoder artifact has no vocabulary for feature %q", feat)
		}
	}

	fs := &FeatureSet{}
	for i, rec := range recs {
		row := make([]float64, 0, len(NumericalFeatures)+len(CategoricalFeatures))

		for _, feat := range NumericalFeatures {
			v := numericalValue(rec, feat)
			if params, ok := scaler[feat]; ok {
				v = params.Transform(v)
			} else {
				log.Warn("feature not found in scaler artifact, using raw value", "feature", feat)
			}
			row = append(row, v)
		}

		date, dateOK := parseShowDate(rec.ShowDate)
		if !dateOK {
			log.Warn("cannot parse show date for inference", "showDate", rec.ShowDate, "item", rec.ItemName)
		}

		encodeFailed := false
		for _, feat := range CategoricalFeatures {
			raw, ok := categoricalValue(rec, feat, date, dateOK)
			if !ok {
				encodeFailed = true
				break
			}
			norm := normalizeCategory(raw)
			idx, found := encoder.Encode(feat, norm)
			if !found {
				idx, found = encoder.Encode(feat, UnknownCategory)
				if !found {
					return nil, fmt.Errorf("encoder vocabulary for %q has no %q class", feat, UnknownCategory)
				}
			}
			row = append(row, float64(idx))
		}

		if encodeFailed || hasNaN(row) {
			fs.Dropped = append(fs.Dropped, i)
			continue
		}
		fs.Kept = append(fs.Kept, i)
		fs.Rows = append(fs.Rows, row)
	}
	return fs, nil
}

func numericalValue(rec records.OutputRecord, feature string) float64 {
	switch feature {
	case "attendance":
		return float64(rec.Attendance)
	case "product price":
		if rec.ProductPrice == nil {
			return math.NaN()
		}
		return *rec.ProductPrice
	}
	return math.NaN()
}

// categoricalValue returns the raw text for a categorical feature. The
// calendar features depend on a parsed show date; when the date failed
// to parse they report not-ok so the row is dropped.
func categoricalValue(rec records.OutputRecord, feature string, date time.Time, dateOK bool) (string, bool) {
	switch feature {
	case "artistName":
		return rec.ArtistName, true
	case "Genre":
		return rec.Genre, true
	case "Show Day":
		if !dateOK {
			return "", false
		}
		return strconv.Itoa(date.Day()), true
	case "Show Month":
		if !dateOK {
			return "", false
		}
		return strconv.Itoa(int(date.Month())), true
	case "Day of Week Num":
		if !dateOK {
			return "", false
		}
		return strconv.Itoa(weekdayIndex(date)), true
	case "venue name":
		return rec.VenueName, true
	case "venue state":
		return rec.VenueState, true
	case "venue city":
		return rec.VenueCity, true
	case "productType":
		return rec.ProductType, true
	case "product size":
		return rec.ProductSize, true
	}
	return "", false
}

// weekdayIndex maps a date to the 0=Monday .. 6=Sunday convention the
// model was trained with.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// normalizeCategory mirrors the training-time text cleanup: trim,
// collapse non-breaking spaces, lower-case.
func normalizeCategory(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func parseShowDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range showDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
