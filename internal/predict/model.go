package predict

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is the loaded regression model. Implementations must reject
// feature matrices whose width does not match the trained feature set.
type Model interface {
	Predict(rows [][]float64) ([]float64, error)
	Type() string
	NumFeatures() int
}

// LinearModel is a fitted linear regression: output = intercept +
// dot(coefficients, row). Feature names are kept in training order for
// shape validation and diagnostics.
type LinearModel struct {
	ModelType    string    `json:"type"`
	Features     []string  `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// LoadModel reads a model artifact from path.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if m.ModelType != "linear" {
		return nil, fmt.Errorf("unsupported model type %q", m.ModelType)
	}
	if len(m.Features) != len(m.Coefficients) {
		return nil, fmt.Errorf("model artifact has %d features but %d coefficients",
			len(m.Features), len(m.Coefficients))
	}
	return &m, nil
}

func (m *LinearModel) Type() string     { return m.ModelType }
func (m *LinearModel) NumFeatures() int { return len(m.Coefficients) }

// Predict evaluates the model row by row.
func (m *LinearModel) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(m.Coefficients) {
			return nil, fmt.Errorf("feature row has %d columns, model expects %d",
				len(row), len(m.Coefficients))
		}
		v := m.Intercept
		for j, x := range row {
			v += m.Coefficients[j] * x
		}
		out[i] = v
	}
	return out, nil
}
