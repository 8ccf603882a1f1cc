package model

import "errors"

// Classifier scores one feature vector and returns per-class probabilities.
// Index 1 is the fraud class.
type Classifier interface {
	PredictProba(features []float64) ([]float64, error)
}

// ErrUnavailable is returned by Score when the artifact never loaded.
var ErrUnavailable = errors.New("model not loaded")
