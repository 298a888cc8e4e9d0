package careers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	catalog := Default()

	expected := []Label{
		SoftwareEngineer,
		DataScientist,
		DoctorHealthcare,
		LawyerLegal,
		DesignerUIUX,
		EntrepreneurManager,
		TeacherAcademic,
		ContentCreatorMedia,
	}
	require.Equal(t, expected, catalog.Labels())

	for i, label := range expected {
		idx, ok := catalog.Index(label)
		require.True(t, ok)
		assert.Equal(t, i, idx)

		profile, ok := catalog.Profile(label)
		require.True(t, ok)
		assert.Equal(t, BaselineFeature, profile.Mean[FeatureCount-1])
		assert.NotEmpty(t, catalog.Keywords(label))
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := Default()

	labels := catalog.Labels()
	labels[0] = "Astronaut"
	assert.Equal(t, SoftwareEngineer, catalog.Labels()[0])

	keywords := catalog.Keywords(SoftwareEngineer)
	keywords[0] = "changed"
	assert.Equal(t, "code", catalog.Keywords(SoftwareEngineer)[0])

	steps := catalog.Roadmap(string(DataScientist))
	steps[0] = "changed"
	assert.NotEqual(t, "changed", catalog.Roadmap(string(DataScientist))[0])
}

func TestParse(t *testing.T) {
	catalog := Default()

	label, ok := catalog.Parse("  data scientist ")
	require.True(t, ok)
	assert.Equal(t, DataScientist, label)

	_, ok = catalog.Parse("Astronaut")
	assert.False(t, ok)
}

func TestRoadmapFallback(t *testing.T) {
	steps := TinyRoadmap("Unknown Role")
	assert.Equal(t, []string{
		"Strengthen fundamentals",
		"Build small projects and ship",
		"Network and seek mentors",
	}, steps)

	assert.Len(t, TinyRoadmap(string(SoftwareEngineer)), 5)
	assert.NotEmpty(t, TinyRoadmap(""))
}

func TestScoresVectorClamps(t *testing.T) {
	scores := Scores{
		Math:          -10,
		Science:       150,
		English:       50,
		Arts:          math.NaN(),
		Coding:        100,
		Design:        0,
		Leadership:    99.5,
		Communication: 101,
	}

	assert.Equal(t, []float64{0, 100, 50, 0, 100, 0, 99.5, 100, BaselineFeature}, scores.Vector())
	assert.Equal(t, Scores{Math: 0}.Vector(), Scores{Math: -10}.Vector())
	assert.Equal(t, Scores{Math: 100}.Vector(), Scores{Math: 150}.Vector())
}

func TestScoresFromSlice(t *testing.T) {
	scores, err := ScoresFromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 5.0, scores.Coding)
	assert.Equal(t, 8.0, scores.Communication)

	_, err = ScoresFromSlice([]float64{1, 2})
	assert.Error(t, err)
}

func TestStrongest(t *testing.T) {
	scores := Scores{Math: 85, Science: 40, Coding: 90, Design: 85}

	top := scores.Strongest(2)
	require.Len(t, top, 2)
	assert.Equal(t, NamedScore{Name: "Coding", Value: 90}, top[0])
	assert.Equal(t, NamedScore{Name: "Math", Value: 85}, top[1])
}
