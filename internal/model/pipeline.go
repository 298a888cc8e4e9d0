// Package model trains, persists and serves the career classifier: a feature
// standardizer followed by a multinomial logistic regression.
package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrStorageUnavailable is returned when the artifact cannot be read or written.
	ErrStorageUnavailable = errors.New("model storage unavailable")
	// ErrMalformedArtifact is returned when a stored artifact cannot be decoded or has the wrong shape.
	ErrMalformedArtifact = errors.New("malformed model artifact")
)

// Scaler standardizes features to zero mean and unit variance.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// FitScaler computes per-feature mean and population standard deviation.
// Constant features get a scale of 1.
func FitScaler(rows [][]float64, dim int) Scaler {
	s := Scaler{
		Mean:  make([]float64, dim),
		Scale: make([]float64, dim),
	}

	column := make([]float64, len(rows))
	for j := range dim {
		for i, row := range rows {
			column[i] = row[j]
		}
		mean, std := stat.PopMeanStdDev(column, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		s.Mean[j] = mean
		s.Scale[j] = std
	}

	return s
}

// Transform returns the standardized copy of x.
func (s Scaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out
}

// Softmax is a multinomial linear classifier: one weight row and bias per class.
type Softmax struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// Probabilities returns the class distribution for an already standardized x.
func (c Softmax) Probabilities(x []float64) []float64 {
	logits := make([]float64, len(c.Weights))
	for k, w := range c.Weights {
		logits[k] = c.Bias[k] + floats.Dot(w, x)
	}
	return softmaxInPlace(logits)
}

func softmaxInPlace(logits []float64) []float64 {
	lse := floats.LogSumExp(logits)
	for k, z := range logits {
		logits[k] = math.Exp(z - lse)
	}
	return logits
}

// Pipeline is the trained artifact: scaler plus classifier, with the class
// labels in index order.
type Pipeline struct {
	Labels     []string `json:"labels"`
	Scaler     Scaler   `json:"scaler"`
	Classifier Softmax  `json:"classifier"`
}

// Dim returns the expected feature count.
func (p *Pipeline) Dim() int { return len(p.Scaler.Mean) }

// PredictProba returns the probability of every label for the raw feature vector.
func (p *Pipeline) PredictProba(features []float64) ([]float64, error) {
	if len(features) != p.Dim() {
		return nil, fmt.Errorf("expected %d features, got %d", p.Dim(), len(features))
	}
	return p.Classifier.Probabilities(p.Scaler.Transform(features)), nil
}

// Validate checks that all parts of the pipeline agree on their shape.
func (p *Pipeline) Validate(dim int) error {
	classes := len(p.Labels)
	switch {
	case classes == 0:
		return errors.New("no labels")
	case len(p.Scaler.Mean) != dim || len(p.Scaler.Scale) != dim:
		return fmt.Errorf("scaler expects %d features, got mean=%d scale=%d", dim, len(p.Scaler.Mean), len(p.Scaler.Scale))
	case len(p.Classifier.Weights) != classes || len(p.Classifier.Bias) != classes:
		return fmt.Errorf("classifier has %d weight rows and %d biases for %d labels", len(p.Classifier.Weights), len(p.Classifier.Bias), classes)
	}

	for j, scale := range p.Scaler.Scale {
		if scale == 0 || !finite(scale) || !finite(p.Scaler.Mean[j]) {
			return fmt.Errorf("scaler feature %d is not usable", j)
		}
	}
	for k, row := range p.Classifier.Weights {
		if len(row) != dim {
			return fmt.Errorf("weight row %d has %d features, want %d", k, len(row), dim)
		}
		for _, w := range row {
			if !finite(w) {
				return fmt.Errorf("weight row %d is not finite", k)
			}
		}
		if !finite(p.Classifier.Bias[k]) {
			return fmt.Errorf("bias %d is not finite", k)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
