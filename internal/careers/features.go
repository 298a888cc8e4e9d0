package careers

import (
	"fmt"
	"math"
	"sort"
)

const (
	// FeatureCount is the classifier input width: eight user scores plus BaselineFeature.
	FeatureCount = 9
	// BaselineFeature is the constant ninth component kept for shape compatibility.
	BaselineFeature = 15.0

	MinScore = 0.0
	MaxScore = 100.0
)

// Scores are the self-rated aptitudes a user supplies, each expected in [0,100].
type Scores struct {
	Math          float64 `json:"math" mapstructure:"math"`
	Science       float64 `json:"science" mapstructure:"science"`
	English       float64 `json:"english" mapstructure:"english"`
	Arts          float64 `json:"arts" mapstructure:"arts"`
	Coding        float64 `json:"coding" mapstructure:"coding"`
	Design        float64 `json:"design" mapstructure:"design"`
	Leadership    float64 `json:"leadership" mapstructure:"leadership"`
	Communication float64 `json:"communication" mapstructure:"communication"`
}

// NamedScore pairs a score with its display name.
type NamedScore struct {
	Name  string
	Value float64
}

// ScoreNames lists the user score names in feature order.
var ScoreNames = [FeatureCount - 1]string{
	"Math", "Science", "English", "Arts", "Coding", "Design", "Leadership", "Communication",
}

// ScoresFromSlice builds Scores from values in feature order.
func ScoresFromSlice(values []float64) (Scores, error) {
	if len(values) != len(ScoreNames) {
		return Scores{}, fmt.Errorf("expected %d scores, got %d", len(ScoreNames), len(values))
	}
	return Scores{
		Math:          values[0],
		Science:       values[1],
		English:       values[2],
		Arts:          values[3],
		Coding:        values[4],
		Design:        values[5],
		Leadership:    values[6],
		Communication: values[7],
	}, nil
}

// Slice returns the scores in feature order without clamping.
func (s Scores) Slice() []float64 {
	return []float64{s.Math, s.Science, s.English, s.Arts, s.Coding, s.Design, s.Leadership, s.Communication}
}

// Clamped returns a copy with every score clamped to [MinScore, MaxScore].
func (s Scores) Clamped() Scores {
	values := s.Slice()
	for i := range values {
		values[i] = Clamp(values[i])
	}
	clamped, _ := ScoresFromSlice(values)
	return clamped
}

// Vector returns the classifier input: the clamped scores followed by BaselineFeature.
func (s Scores) Vector() []float64 {
	vec := make([]float64, 0, FeatureCount)
	vec = append(vec, s.Clamped().Slice()...)
	return append(vec, BaselineFeature)
}

// Strongest returns the n highest scores, highest first. Equal values keep feature order.
func (s Scores) Strongest(n int) []NamedScore {
	values := s.Slice()
	named := make([]NamedScore, 0, len(values))
	for i, v := range values {
		named = append(named, NamedScore{Name: ScoreNames[i], Value: v})
	}
	sort.SliceStable(named, func(i, j int) bool {
		return named[i].Value > named[j].Value
	})
	if n >= 0 && n < len(named) {
		named = named[:n]
	}
	return named
}

// Clamp limits v to [MinScore, MaxScore]. NaN is treated as MinScore.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinScore
	}
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
