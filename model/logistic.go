package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// LogisticModel is a binary logistic classifier deserialized from a JSON
// artifact produced out of band by the training pipeline.
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Load reads and validates an artifact file.
func (m *LogisticModel) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded LogisticModel
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return fmt.Errorf("corrupt model artifact: %w", err)
	}
	if len(loaded.Weights) != len(FeatureNames()) {
		return fmt.Errorf("artifact has %d weights, want %d", len(loaded.Weights), len(FeatureNames()))
	}
	m.Weights = loaded.Weights
	m.Bias = loaded.Bias
	return nil
}

// Save writes the artifact file.
func (m *LogisticModel) Save(path string) error {
	if len(m.Weights) == 0 {
		return errors.New("model has no weights")
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// PredictProba returns [P(legit), P(fraud)] for one feature vector.
func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	if len(m.Weights) == 0 {
		return nil, errors.New("model has no weights")
	}
	if len(features) != len(m.Weights) {
		return nil, fmt.Errorf("got %d features, want %d", len(features), len(m.Weights))
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * features[i]
	}
	p := sigmoid(z)
	return []float64{1 - p, p}, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
