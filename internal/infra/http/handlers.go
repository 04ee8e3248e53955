package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourline/merch-forecast/internal/domain/records"
	"github.com/tourline/merch-forecast/internal/infra/metrics"
	"github.com/tourline/merch-forecast/internal/predict"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type predictResponse struct {
	Status      string                     `json:"status"`
	Data        []records.PredictionRecord `json:"data"`
	RecordCount int                        `json:"record_count"`
}

type modelInfoResponse struct {
	Status                   string   `json:"status"`
	ModelType                string   `json:"model_type"`
	CategoricalFeatures      []string `json:"categorical_features"`
	NumericalFeatures        []string `json:"numerical_features"`
	InputCategoricalFeatures []string `json:"input_categorical_features"`
	InputNumericalFeatures   []string `json:"input_numerical_features"`
}

// handleHealth distinguishes artifact unavailability from request
// errors: a degraded service answers 500 here but still serves routes.
func (s *Server) handleHealth(c echo.Context) error {
	if !s.svc.Ready() {
		return c.JSON(http.StatusInternalServerError,
			statusResponse{Status: "error", Message: "Models not loaded"})
	}
	return c.JSON(http.StatusOK,
		statusResponse{Status: "ok", Message: "API is healthy, models are loaded"})
}

func (s *Server) handleModelInfo(c echo.Context) error {
	if !s.svc.Ready() {
		return c.JSON(http.StatusInternalServerError,
			statusResponse{Status: "error", Message: "Models not loaded"})
	}
	inf := s.svc.Inference()
	return c.JSON(http.StatusOK, modelInfoResponse{
		Status:                   "success",
		ModelType:                inf.Model.Type(),
		CategoricalFeatures:      inf.Encoder.Features(),
		NumericalFeatures:        inf.Scaler.Features(),
		InputCategoricalFeatures: predict.CategoricalFeatures,
		InputNumericalFeatures:   predict.NumericalFeatures,
	})
}

// handlePredict runs the full inference sequence over the posted
// records. The request either fully succeeds or fully fails; there is
// no partial-success response.
func (s *Server) handlePredict(c echo.Context) error {
	metrics.PredictRequests.Inc()

	if !s.svc.Ready() {
		return c.JSON(http.StatusInternalServerError,
			statusResponse{Status: "error", Message: "Models not loaded"})
	}

	var recs []records.OutputRecord
	if err := c.Bind(&recs); err != nil {
		return c.JSON(http.StatusBadRequest,
			statusResponse{Status: "error", Message: "invalid request body: " + err.Error()})
	}
	if len(recs) == 0 {
		return c.JSON(http.StatusBadRequest,
			statusResponse{Status: "error", Message: "No data provided"})
	}

	s.log.Info("prediction request received", "records", len(recs))

	preds, err := s.svc.Predict(recs)
	if err != nil {
		s.log.Error("prediction failed", "err", err)
		return c.JSON(http.StatusInternalServerError,
			statusResponse{Status: "error", Message: err.Error()})
	}
	predict.ApplyCategoryShares(preds)

	metrics.RecordsPredicted.Add(float64(len(preds)))
	return c.JSON(http.StatusOK, predictResponse{
		Status:      "success",
		Data:        preds,
		RecordCount: len(preds),
	})
}
