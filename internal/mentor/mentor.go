// Package mentor runs a full assessment: ranking, enrichment and history.
package mentor

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/history"
	"github.com/spigell/career-mentor/internal/insights"
	"github.com/spigell/career-mentor/internal/logger"
	"github.com/spigell/career-mentor/internal/ranking"

	"go.uber.org/zap"
)

// Ranker produces the top careers for a set of scores.
type Ranker interface {
	PredictTop3(scores careers.Scores, interests string) ([]ranking.Result, error)
}

// Recorder persists assessments.
type Recorder interface {
	Save(ctx context.Context, user string, scores careers.Scores, interests string, top []history.Entry) (*history.Assessment, error)
}

// Card is a ranked career prepared for display.
type Card struct {
	Career  string        `json:"career"`
	Percent float64       `json:"percent"`
	Roadmap []string      `json:"roadmap"`
	Info    insights.Info `json:"info"`
}

// Report is the outcome of an assessment.
type Report struct {
	Top          Card   `json:"top"`
	Others       []Card `json:"others"`
	AssessmentID string `json:"assessment_id,omitempty"`
}

// Cards returns every card, best first.
func (r *Report) Cards() []Card {
	return append([]Card{r.Top}, r.Others...)
}

// Service wires the ranking engine with roadmaps, insights and history.
type Service struct {
	ranker   Ranker
	catalog  *careers.Catalog
	insights *insights.Catalog
	recorder Recorder
	logger   *zap.Logger
}

// Deps are the collaborators of a Service. Recorder may be nil to skip saving.
type Deps struct {
	Ranker   Ranker
	Catalog  *careers.Catalog
	Insights *insights.Catalog
	Recorder Recorder
	Logger   *zap.Logger
}

// New creates a Service.
func New(deps Deps) *Service {
	if deps.Catalog == nil {
		deps.Catalog = careers.Default()
	}
	if deps.Insights == nil {
		deps.Insights = insights.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Service{
		ranker:   deps.Ranker,
		catalog:  deps.Catalog,
		insights: deps.Insights,
		recorder: deps.Recorder,
		logger:   deps.Logger,
	}
}

// Assess ranks careers for the user and, when a recorder is configured and
// user is not empty, stores the assessment.
func (s *Service) Assess(ctx context.Context, user string, scores careers.Scores, interests string) (*Report, error) {
	top, err := s.ranker.PredictTop3(scores, interests)
	if err != nil {
		return nil, fmt.Errorf("predict careers: %w", err)
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("predict careers: empty ranking")
	}

	names := make([]string, len(top))
	for i, r := range top {
		names[i] = r.Career.String()
	}
	infos := s.insights.Lookup(names)

	cards := make([]Card, len(top))
	for i, r := range top {
		cards[i] = Card{
			Career:  names[i],
			Percent: r.Probability * 100,
			Roadmap: s.catalog.Roadmap(names[i]),
			Info:    infos[i],
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Percent > cards[j].Percent
	})

	report := &Report{Top: cards[0], Others: cards[1:]}

	if s.recorder != nil && user != "" {
		entries := make([]history.Entry, len(cards))
		for i, c := range cards {
			entries[i] = history.Entry{Career: c.Career, Probability: Round(c.Percent/100, 6)}
		}
		saved, err := s.recorder.Save(ctx, user, scores, interests, entries)
		if err != nil {
			return nil, fmt.Errorf("save assessment: %w", err)
		}
		report.AssessmentID = saved.ID
	}

	fields := append(logger.AssessmentFields(user, report.AssessmentID),
		zap.String("top", report.Top.Career),
		zap.Float64("percent", report.Top.Percent),
	)
	s.logger.Info("assessment complete", fields...)

	return report, nil
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
