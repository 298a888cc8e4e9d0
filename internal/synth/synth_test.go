package synth

import (
	"testing"

	"github.com/spigell/career-mentor/internal/careers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSamplesAreLabeledAndClamped(t *testing.T) {
	catalog := careers.Default()
	s := New(catalog, DefaultSeed)

	samples, err := s.Samples(careers.DesignerUIUX, 200)
	require.NoError(t, err)
	require.Len(t, samples, 200)

	idx, _ := catalog.Index(careers.DesignerUIUX)
	for _, sample := range samples {
		assert.Equal(t, idx, sample.Label)
		require.Len(t, sample.Features, careers.FeatureCount)
		for _, v := range sample.Features {
			assert.GreaterOrEqual(t, v, careers.MinScore)
			assert.LessOrEqual(t, v, careers.MaxScore)
		}
	}
}

func TestSamplesFollowProfileMean(t *testing.T) {
	catalog := careers.Default()
	s := New(catalog, DefaultSeed)

	samples, err := s.Samples(careers.DoctorHealthcare, 2000)
	require.NoError(t, err)

	profile, _ := catalog.Profile(careers.DoctorHealthcare)
	for feature := range careers.FeatureCount {
		column := make([]float64, 0, len(samples))
		for _, sample := range samples {
			column = append(column, sample.Features[feature])
		}
		// Clamping at 100 pulls the high-mean features down by about one point.
		assert.InDelta(t, profile.Mean[feature], stat.Mean(column, nil), 2.0, "feature %d", feature)
	}
}

func TestDatasetIsReproducible(t *testing.T) {
	catalog := careers.Default()

	first, err := New(catalog, DefaultSeed).Dataset(20)
	require.NoError(t, err)
	second, err := New(catalog, DefaultSeed).Dataset(20)
	require.NoError(t, err)

	require.Len(t, first, 20*catalog.Len())
	assert.Equal(t, first, second)

	other, err := New(catalog, DefaultSeed+1).Dataset(20)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDatasetFollowsCatalogOrder(t *testing.T) {
	catalog := careers.Default()

	samples, err := New(catalog, DefaultSeed).Dataset(3)
	require.NoError(t, err)

	for i, sample := range samples {
		assert.Equal(t, i/3, sample.Label)
	}
}

func TestSamplesUnknownCareer(t *testing.T) {
	_, err := New(careers.Default(), DefaultSeed).Samples("Astronaut", 10)
	assert.Error(t, err)
}
