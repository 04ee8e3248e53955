package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RowsExpanded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_rows_expanded_total",
		Help: "Output rows produced by inventory expansion.",
	})

	CitiesUnmatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_cities_unmatched_total",
		Help: "Expanded rows whose city found no tour ledger entry.",
	})

	PricesUnresolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_prices_unresolved_total",
		Help: "Expanded rows left without a SKU price.",
	})

	PredictRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_predict_requests_total",
		Help: "Prediction API requests received.",
	})

	RecordsPredicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_records_predicted_total",
		Help: "Records returned by successful prediction requests.",
	})
)
