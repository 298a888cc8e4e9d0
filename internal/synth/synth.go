// Package synth generates labeled synthetic score vectors around the mean
// profile of every career.
package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/spigell/career-mentor/internal/careers"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// DefaultSeed keeps cold-start training reproducible.
const DefaultSeed uint64 = 7

// Sample is a single training vector with its class index.
type Sample struct {
	Features []float64
	Label    int
}

// Synthesizer draws samples from one random stream. Two synthesizers created
// with the same seed and asked for the same careers in the same order produce
// identical samples.
type Synthesizer struct {
	catalog *careers.Catalog
	src     rand.Source
}

// New creates a synthesizer seeded with seed.
func New(catalog *careers.Catalog, seed uint64) *Synthesizer {
	return &Synthesizer{
		catalog: catalog,
		src:     rand.NewPCG(seed, seed),
	}
}

// Samples draws n vectors from the multivariate normal given by the career's
// mean profile and diagonal covariance. Every component is clamped to [0,100].
func (s *Synthesizer) Samples(label careers.Label, n int) ([]Sample, error) {
	idx, ok := s.catalog.Index(label)
	if !ok {
		return nil, fmt.Errorf("unknown career %q", label)
	}
	if n <= 0 {
		return nil, nil
	}

	profile, _ := s.catalog.Profile(label)

	sigma := mat.NewSymDense(careers.FeatureCount, nil)
	for i, v := range profile.Variance {
		sigma.SetSym(i, i, v)
	}

	normal, ok := distmv.NewNormal(profile.Mean[:], sigma, s.src)
	if !ok {
		return nil, fmt.Errorf("covariance of %q is not positive definite", label)
	}

	samples := make([]Sample, 0, n)
	for range n {
		x := normal.Rand(nil)
		for i := range x {
			x[i] = careers.Clamp(x[i])
		}
		samples = append(samples, Sample{Features: x, Label: idx})
	}

	return samples, nil
}

// Dataset draws n samples for every career in catalog order and concatenates them.
func (s *Synthesizer) Dataset(n int) ([]Sample, error) {
	all := make([]Sample, 0, n*s.catalog.Len())
	for _, label := range s.catalog.Labels() {
		samples, err := s.Samples(label, n)
		if err != nil {
			return nil, err
		}
		all = append(all, samples...)
	}
	return all, nil
}
