package interest

import (
	"strings"
	"testing"

	"github.com/spigell/career-mentor/internal/careers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAffinity(t *testing.T) {
	tests := []struct {
		hits int
		want float64
	}{
		{-1, None},
		{0, None},
		{1, Low},
		{2, Medium},
		{3, High},
		{11, High},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StepAffinity(tt.hits), "hits=%d", tt.hits)
	}
}

func TestScoresCoverEveryCareer(t *testing.T) {
	catalog := careers.Default()
	allowed := []float64{None, Low, Medium, High}

	inputs := []string{
		"",
		"   ",
		"asdf qwerty",
		"I love coding and robotics",
		"DESIGN, Figma and UX wireframes",
		"law policy court contract justice data stats",
	}
	for _, text := range inputs {
		scores := ScoresByCareer(text)
		require.Len(t, scores, catalog.Len(), "text %q", text)
		for _, name := range catalog.Names() {
			v, ok := scores[name]
			require.True(t, ok, "missing %s for %q", name, text)
			assert.Contains(t, allowed, v)
		}
	}
}

func TestEmptyTextYieldsZero(t *testing.T) {
	for _, v := range NewScorer(nil).Scores("") {
		assert.Zero(t, v)
	}
}

func TestScoresAreCaseInsensitive(t *testing.T) {
	s := NewScorer(nil)
	assert.Equal(t, s.Scores("figma ui"), s.Scores("FIGMA UI"))
}

func TestCodingAndRobotics(t *testing.T) {
	s := NewScorer(nil)
	scores := s.Scores("I love coding and robotics")

	// "code" is not a substring of "coding"; "coding" and "robot" are.
	assert.Equal(t, Medium, scores[careers.SoftwareEngineer])
	assert.Equal(t, None, scores[careers.LawyerLegal])
}

func TestAffinityIsMonotonic(t *testing.T) {
	s := NewScorer(nil)
	for _, label := range careers.Default().Labels() {
		var words []string
		prev := s.Scores("")[label]
		for _, kw := range careers.Default().Keywords(label) {
			words = append(words, kw)
			got := s.Scores(strings.Join(words, " "))[label]
			assert.GreaterOrEqual(t, got, prev, "%s after adding %q", label, kw)
			prev = got
		}
		assert.Equal(t, High, prev, label)
	}
}

func TestVectorFollowsCatalogOrder(t *testing.T) {
	s := NewScorer(nil)
	vec := s.Vector("data statistics analytics")
	require.Len(t, vec, careers.Default().Len())

	idx, _ := careers.Default().Index(careers.DataScientist)
	assert.Equal(t, High, vec[idx])
}
