// Package interest turns free-text interests into per-career affinity scores.
package interest

import (
	"strings"

	"github.com/spigell/career-mentor/internal/careers"
)

// Affinity levels in increasing order.
const (
	None   = 0.0
	Low    = 0.3
	Medium = 0.6
	High   = 1.0
)

// Affinity maps every career to one of the affinity levels.
type Affinity map[careers.Label]float64

// Scorer counts keyword hits per career.
type Scorer struct {
	catalog *careers.Catalog
}

// NewScorer creates a scorer over catalog. A nil catalog uses the default one.
func NewScorer(catalog *careers.Catalog) *Scorer {
	if catalog == nil {
		catalog = careers.Default()
	}
	return &Scorer{catalog: catalog}
}

// StepAffinity maps a keyword hit count to an affinity level.
func StepAffinity(hits int) float64 {
	switch {
	case hits >= 3:
		return High
	case hits == 2:
		return Medium
	case hits == 1:
		return Low
	default:
		return None
	}
}

// Hits returns how many keywords of label occur in text as substrings.
func (s *Scorer) Hits(label careers.Label, text string) int {
	text = strings.ToLower(text)
	hits := 0
	for _, kw := range s.catalog.Keywords(label) {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

// Scores returns the affinity of every career in the catalog for text.
func (s *Scorer) Scores(text string) Affinity {
	text = strings.ToLower(text)

	out := make(Affinity, s.catalog.Len())
	for _, label := range s.catalog.Labels() {
		out[label] = StepAffinity(s.Hits(label, text))
	}
	return out
}

// Vector returns the affinities in catalog order.
func (s *Scorer) Vector(text string) []float64 {
	scores := s.Scores(text)
	out := make([]float64, 0, len(scores))
	for _, label := range s.catalog.Labels() {
		out = append(out, scores[label])
	}
	return out
}

// ScoresByCareer returns the affinity per career name using the default catalog.
func ScoresByCareer(text string) map[string]float64 {
	scores := NewScorer(nil).Scores(text)
	out := make(map[string]float64, len(scores))
	for label, v := range scores {
		out[label.String()] = v
	}
	return out
}
