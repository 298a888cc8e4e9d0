package model

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/synth"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

const (
	DefaultSamplesPerCareer = 140
	DefaultMaxIterations    = 250
	// DefaultC is the inverse L2 regularization strength.
	DefaultC = 1.0
)

// TrainConfig controls synthetic training.
type TrainConfig struct {
	Seed             uint64
	SamplesPerCareer int
	MaxIterations    int
	C                float64
}

// DefaultTrainConfig returns the reference configuration.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Seed:             synth.DefaultSeed,
		SamplesPerCareer: DefaultSamplesPerCareer,
		MaxIterations:    DefaultMaxIterations,
		C:                DefaultC,
	}
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.SamplesPerCareer <= 0 {
		c.SamplesPerCareer = DefaultSamplesPerCareer
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.C <= 0 {
		c.C = DefaultC
	}
	return c
}

// Trainer produces a fitted pipeline.
type Trainer interface {
	Train() (*Pipeline, error)
}

// SyntheticTrainer fits the pipeline on samples drawn around the catalog profiles.
type SyntheticTrainer struct {
	catalog *careers.Catalog
	config  TrainConfig
	logger  *zap.Logger
}

// NewSyntheticTrainer creates a trainer for catalog.
func NewSyntheticTrainer(catalog *careers.Catalog, config TrainConfig, logger *zap.Logger) *SyntheticTrainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyntheticTrainer{
		catalog: catalog,
		config:  config.withDefaults(),
		logger:  logger,
	}
}

// Train synthesizes the dataset with a fresh random stream and fits the pipeline.
func (t *SyntheticTrainer) Train() (*Pipeline, error) {
	started := time.Now()

	samples, err := synth.New(t.catalog, t.config.Seed).Dataset(t.config.SamplesPerCareer)
	if err != nil {
		return nil, fmt.Errorf("synthesize training set: %w", err)
	}

	rows := make([][]float64, len(samples))
	labels := make([]int, len(samples))
	for i, s := range samples {
		rows[i] = s.Features
		labels[i] = s.Label
	}

	pipeline, result, err := Fit(rows, labels, t.catalog.Names(), careers.FeatureCount, t.config)
	if err != nil {
		return nil, err
	}

	t.logger.Info("trained career classifier",
		zap.Int("samples", len(samples)),
		zap.Int("classes", t.catalog.Len()),
		zap.String("status", result.Status.String()),
		zap.Int("iterations", result.MajorIterations),
		zap.Float64("loss", result.F),
		zap.Duration("elapsed", time.Since(started)),
	)

	return pipeline, nil
}

// Fit standardizes rows and fits a multinomial logistic regression with an L2
// penalty on the weights (the intercepts are not penalized). The objective is
// the mean negative log-likelihood plus ||W||^2 / (2*C*n), which has the same
// minimizer as the summed form used by common ML libraries.
func Fit(rows [][]float64, labels []int, names []string, dim int, config TrainConfig) (*Pipeline, *optimize.Result, error) {
	config = config.withDefaults()

	n := len(rows)
	classes := len(names)
	if n == 0 || n != len(labels) {
		return nil, nil, fmt.Errorf("training set has %d rows and %d labels", n, len(labels))
	}
	for i, y := range labels {
		if y < 0 || y >= classes {
			return nil, nil, fmt.Errorf("label %d of row %d is out of range", y, i)
		}
		if len(rows[i]) != dim {
			return nil, nil, fmt.Errorf("row %d has %d features, want %d", i, len(rows[i]), dim)
		}
	}

	scaler := FitScaler(rows, dim)
	standardized := make([][]float64, n)
	for i, row := range rows {
		standardized[i] = scaler.Transform(row)
	}

	obj := &objective{
		x:       standardized,
		y:       labels,
		classes: classes,
		dim:     dim,
		penalty: 1 / (config.C * float64(n)),
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			return obj.evaluate(params, nil)
		},
		Grad: func(grad, params []float64) {
			obj.evaluate(params, grad)
		},
	}
	settings := &optimize.Settings{
		MajorIterations:   config.MaxIterations,
		GradientThreshold: 1e-6,
	}

	result, err := optimize.Minimize(problem, make([]float64, classes*(dim+1)), settings, &optimize.LBFGS{})
	if result == nil {
		return nil, nil, fmt.Errorf("fit classifier: %w", err)
	}
	// A line search that stops making progress still leaves the best location found.
	if err != nil && result.Status != optimize.Failure {
		return nil, nil, fmt.Errorf("fit classifier: %w", err)
	}
	for _, v := range result.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, errors.New("fit classifier: diverged")
		}
	}

	weights, bias := obj.unpack(result.X)
	return &Pipeline{
		Labels:     append([]string(nil), names...),
		Scaler:     scaler,
		Classifier: Softmax{Weights: weights, Bias: bias},
	}, result, nil
}

// objective is the penalized multinomial log-loss. Parameters are laid out as
// classes*dim weights followed by classes biases.
type objective struct {
	x       [][]float64
	y       []int
	classes int
	dim     int
	penalty float64
}

func (o *objective) unpack(params []float64) ([][]float64, []float64) {
	weights := make([][]float64, o.classes)
	for k := range o.classes {
		weights[k] = append([]float64(nil), params[k*o.dim:(k+1)*o.dim]...)
	}
	bias := append([]float64(nil), params[o.classes*o.dim:]...)
	return weights, bias
}

// evaluate returns the loss and, when grad is not nil, stores the gradient in it.
func (o *objective) evaluate(params, grad []float64) float64 {
	if grad != nil {
		for i := range grad {
			grad[i] = 0
		}
	}

	n := float64(len(o.x))
	biasOffset := o.classes * o.dim
	logits := make([]float64, o.classes)

	var loss float64
	for i, x := range o.x {
		for k := range o.classes {
			z := params[biasOffset+k]
			w := params[k*o.dim : (k+1)*o.dim]
			for j, v := range x {
				z += w[j] * v
			}
			logits[k] = z
		}
		probs := softmaxInPlace(logits)
		loss -= math.Log(math.Max(probs[o.y[i]], 1e-300))

		if grad == nil {
			continue
		}
		for k, p := range probs {
			diff := p
			if k == o.y[i] {
				diff -= 1
			}
			diff /= n
			row := grad[k*o.dim : (k+1)*o.dim]
			for j, v := range x {
				row[j] += diff * v
			}
			grad[biasOffset+k] += diff
		}
	}
	loss /= n

	for idx := range biasOffset {
		w := params[idx]
		loss += 0.5 * o.penalty * w * w
		if grad != nil {
			grad[idx] += o.penalty * w
		}
	}

	return loss
}
