package predict

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

// Requests above the threshold run in fixed-size sequential batches to
// bound peak memory; batching never changes output order or values.
const (
	batchThreshold = 100
	batchSize      = 100
)

// ErrNotReady is returned when the model artifacts are not loaded.
var ErrNotReady = errors.New("model artifacts not loaded")

// Service runs feature assembly and model inference over record
// collections. The inference context is read-only and shared.
type Service struct {
	inf *InferenceContext
	log *slog.Logger
}

// NewService wraps a loaded inference context; inf may be nil, leaving
// the service in the degraded not-ready state.
func NewService(inf *InferenceContext, log *slog.Logger) *Service {
	return &Service{inf: inf, log: log}
}

// Ready reports whether the model artifacts are loaded.
func (s *Service) Ready() bool { return s.inf != nil }

// Inference exposes the loaded artifacts for introspection endpoints.
func (s *Service) Inference() *InferenceContext { return s.inf }

// Predict produces one PredictionRecord per input record, in input
// order. Large inputs are processed in sequential batches; any batch
// failure fails the whole request with no partial results. Category
// shares are not computed here; see ApplyCategoryShares.
func (s *Service) Predict(recs []records.OutputRecord) ([]records.PredictionRecord, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}

	if len(recs) <= batchThreshold {
		return s.predictBatch(recs)
	}

	s.log.Info("processing prediction request in batches",
		"records", len(recs), "batch_size", batchSize)
	out := make([]records.PredictionRecord, 0, len(recs))
	for start := 0; start < len(recs); start += batchSize {
		end := start + batchSize
		if end > len(recs) {
			end = len(recs)
		}
		batch, err := s.predictBatch(recs[start:end])
		if err != nil {
			return nil, fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (s *Service) predictBatch(recs []records.OutputRecord) ([]records.PredictionRecord, error) {
	fs, err := BuildFeatures(recs, s.inf.Scaler, s.inf.Encoder, s.log)
	if err != nil {
		return nil, fmt.Errorf("feature adaptation: %w", err)
	}

	preds, err := s.inf.Model.Predict(fs.Rows)
	if err != nil {
		return nil, fmt.Errorf("model inference: %w", err)
	}

	out := make([]records.PredictionRecord, len(recs))
	for i, rec := range recs {
		out[i] = records.PredictionRecord{OutputRecord: rec}
	}
	for i, idx := range fs.Kept {
		// Rounded, not clamped: a model trained on non-negative targets
		// is assumed, and negative outputs pass through as returned.
		out[idx].PredictedSalesQuantity = int(math.Round(preds[i]))
	}
	for _, idx := range fs.Dropped {
		s.log.Warn("record dropped from inference, predicted quantity defaults to 0",
			"item", recs[idx].ItemName, "showDate", recs[idx].ShowDate)
	}
	return out, nil
}
