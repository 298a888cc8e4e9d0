// Package ranking combines classifier probabilities with interest affinities
// and selects the best matching careers.
package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/interest"
	"github.com/spigell/career-mentor/internal/model"

	"go.uber.org/zap"
)

const (
	// BoostStrength is the relative increase applied at maximum affinity.
	BoostStrength = 0.20
	// TopN is the number of careers returned by PredictTop3.
	TopN = 3
)

// ErrModelUnavailable is returned when the classifier cannot be loaded or used.
var ErrModelUnavailable = errors.New("career model unavailable")

// ModelSource provides the trained pipeline.
type ModelSource interface {
	Load() (*model.Pipeline, error)
}

// Result is a career with its boosted probability.
type Result struct {
	Career      careers.Label `json:"career"`
	Probability float64       `json:"prob"`
}

// Ranking holds every intermediate distribution of a prediction, in catalog order.
type Ranking struct {
	Base     []float64
	Boosted  []float64
	Affinity []float64
	Top      []Result
}

// Engine ranks careers for a set of scores and interests.
type Engine struct {
	catalog *careers.Catalog
	models  ModelSource
	scorer  *interest.Scorer
	logger  *zap.Logger
}

// NewEngine creates an engine. A nil catalog uses the default one.
func NewEngine(catalog *careers.Catalog, models ModelSource, logger *zap.Logger) *Engine {
	if catalog == nil {
		catalog = careers.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: catalog,
		models:  models,
		scorer:  interest.NewScorer(catalog),
		logger:  logger,
	}
}

// PredictTop3 returns the three most likely careers, most likely first.
func (e *Engine) PredictTop3(scores careers.Scores, interests string) ([]Result, error) {
	ranking, err := e.Rank(scores, interests)
	if err != nil {
		return nil, err
	}
	return ranking.Top, nil
}

// Rank clamps scores, runs the classifier, applies the interest boost and
// selects the top careers.
func (e *Engine) Rank(scores careers.Scores, interests string) (*Ranking, error) {
	if e.models == nil {
		return nil, fmt.Errorf("%w: no model source", ErrModelUnavailable)
	}

	pipeline, err := e.models.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	base, err := pipeline.PredictProba(scores.Vector())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	if len(base) != e.catalog.Len() {
		return nil, fmt.Errorf("%w: classifier returned %d classes for %d careers", ErrModelUnavailable, len(base), e.catalog.Len())
	}

	affinity := e.scorer.Vector(interests)
	boosted := Boost(base, affinity)

	labels := e.catalog.Labels()
	order := make([]int, len(boosted))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return boosted[order[a]] > boosted[order[b]]
	})

	n := min(TopN, len(order))
	top := make([]Result, 0, n)
	for _, idx := range order[:n] {
		top = append(top, Result{Career: labels[idx], Probability: boosted[idx]})
	}

	e.logger.Debug("ranked careers",
		zap.String("top", top[0].Career.String()),
		zap.Float64("prob", top[0].Probability),
		zap.Float64s("affinity", affinity),
	)

	return &Ranking{
		Base:     base,
		Boosted:  boosted,
		Affinity: affinity,
		Top:      top,
	}, nil
}

// Boost multiplies every probability by 1 + BoostStrength*affinity and
// renormalizes. A zero total is returned unnormalized.
func Boost(base, affinity []float64) []float64 {
	out := make([]float64, len(base))
	var total float64
	for i, p := range base {
		out[i] = p * (1 + BoostStrength*affinity[i])
		total += out[i]
	}
	if total == 0 {
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
