package predict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// The trained artifacts are exported from the training pipeline as three
// JSON files: per-feature robust-scaler parameters, per-feature label
// vocabularies, and the model itself. They are read-only for the whole
// process lifetime.
const (
	scalerFile  = "scaler.json"
	encoderFile = "encoder.json"
	modelFile   = "model.json"
)

// ScaleParams holds one feature's pre-fitted scaler: center subtracted,
// then divided by scale.
type ScaleParams struct {
	Center float64 `json:"center"`
	Scale  float64 `json:"scale"`
}

// Scaler maps a numerical feature name to its fitted parameters.
type Scaler map[string]ScaleParams

// Transform applies the fitted scaling to one value. A zero scale
// (constant training column) degrades to centering only.
func (p ScaleParams) Transform(v float64) float64 {
	if p.Scale == 0 {
		return v - p.Center
	}
	return (v - p.Center) / p.Scale
}

// Features lists the scaler's feature names, sorted.
func (s Scaler) Features() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Encoder holds each categorical feature's fitted vocabulary. A value's
// encoded form is its index within the class list.
type Encoder struct {
	classes map[string][]string
	index   map[string]map[string]int
}

// NewEncoder builds an Encoder from per-feature class lists.
func NewEncoder(classes map[string][]string) *Encoder {
	e := &Encoder{classes: classes, index: make(map[string]map[string]int, len(classes))}
	for feat, cs := range classes {
		idx := make(map[string]int, len(cs))
		for i, c := range cs {
			if _, ok := idx[c]; !ok {
				idx[c] = i
			}
		}
		e.index[feat] = idx
	}
	return e
}

// Has reports whether the feature has a fitted vocabulary.
func (e *Encoder) Has(feature string) bool {
	_, ok := e.index[feature]
	return ok
}

// Encode returns the index of value within the feature's vocabulary.
func (e *Encoder) Encode(feature, value string) (int, bool) {
	idx, ok := e.index[feature]
	if !ok {
		return 0, false
	}
	i, ok := idx[value]
	return i, ok
}

// Features lists the encoder's feature names, sorted.
func (e *Encoder) Features() []string {
	out := make([]string, 0, len(e.classes))
	for f := range e.classes {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// InferenceContext bundles the three loaded artifacts. It is built once
// at startup and passed by reference; a nil context is the typed "not
// ready" state reported by the health check.
type InferenceContext struct {
	Scaler  Scaler
	Encoder *Encoder
	Model   Model
}

// LoadArtifacts reads the artifact trio from dir.
func LoadArtifacts(dir string) (*InferenceContext, error) {
	var scaler Scaler
	if err := readJSON(filepath.Join(dir, scalerFile), &scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	var classes map[string][]string
	if err := readJSON(filepath.Join(dir, encoderFile), &classes); err != nil {
		return nil, fmt.Errorf("load encoder: %w", err)
	}

	model, err := LoadModel(filepath.Join(dir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	return &InferenceContext{Scaler: scaler, Encoder: NewEncoder(classes), Model: model}, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
