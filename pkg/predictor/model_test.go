package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func twoRowDataset() Dataset {
	return Dataset{
		{0, 100, 0, 0, 0, 0, 0, 0},
		{10, 200, 0, 0, 0, 0, 0, 0},
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze(Dataset{})
	assert.Equal(t, 0, s.Count)
	for j := 0; j < FeatureCount; j++ {
		assert.Zero(t, s.Mins[j])
		assert.Zero(t, s.Maxs[j])
		assert.Zero(t, s.Means[j])
		assert.Zero(t, s.Spreads[j])
		assert.Zero(t, s.Stds[j])
	}
}

func TestAnalyze(t *testing.T) {
	s := Analyze(twoRowDataset())
	assert.Equal(t, 2, s.Count)

	assert.Equal(t, 0.0, s.Mins[0])
	assert.Equal(t, 10.0, s.Maxs[0])
	assert.Equal(t, 5.0, s.Means[0])
	assert.Equal(t, 10.0, s.Spreads[0])
	assert.InDelta(t, 5.0, s.Stds[0], tolerance)

	assert.Equal(t, 100.0, s.Mins[1])
	assert.Equal(t, 200.0, s.Maxs[1])
	assert.Equal(t, 150.0, s.Means[1])
	assert.Equal(t, 100.0, s.Spreads[1])
	assert.InDelta(t, 50.0, s.Stds[1], tolerance)

	for j := 2; j < FeatureCount; j++ {
		assert.Zero(t, s.Spreads[j])
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	ds := Dataset{
		{6, 148, 72, 35, 0, 33.6, 0.627, 50},
		{1, 85, 66, 29, 0, 26.6, 0.351, 31},
		{8, 183, 64, 0, 0, 23.3, 0.672, 32},
	}
	s := Analyze(ds)
	for j := 0; j < FeatureCount; j++ {
		assert.LessOrEqual(t, s.Mins[j], s.Means[j])
		assert.LessOrEqual(t, s.Means[j], s.Maxs[j])
		assert.GreaterOrEqual(t, s.Spreads[j], 0.0)
		assert.InDelta(t, s.Maxs[j]-s.Mins[j], s.Spreads[j], tolerance)
	}
}

func TestDerive(t *testing.T) {
	m := Derive(Analyze(twoRowDataset()))

	assert.InDelta(t, 10.0/11.0, m.Weights[0], 1e-6)
	assert.InDelta(t, 1.0/11.0, m.Weights[1], 1e-6)
	for j := 2; j < FeatureCount; j++ {
		assert.Zero(t, m.Weights[j])
	}

	sum := 0.0
	for _, w := range m.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, tolerance)

	assert.Equal(t, DefaultThreshold, m.Threshold)
	assert.InDelta(t, 0.5-(10.0/11.0*5+1.0/11.0*150), m.Bias, 1e-6)
}

func TestDeriveDegenerate(t *testing.T) {
	// single row: every spread is zero
	m := Derive(Analyze(Dataset{{6, 148, 72, 35, 0, 33.6, 0.627, 50}}))

	for j := 0; j < FeatureCount; j++ {
		assert.Zero(t, m.Weights[j])
	}
	assert.Equal(t, m.Threshold, m.Bias)

	// scoring still proceeds and lands on the threshold tie rule
	p, err := m.Score(FeatureVector{1, 2, 3, 4, 5, 6, 7, 8})
	assert.NoError(t, err)
	assert.Equal(t, 1, p.Label)
	assert.InDelta(t, 50.0, p.Likelihood, tolerance)
}

func TestScoreMeanVectorOnBoundary(t *testing.T) {
	s := Analyze(twoRowDataset())
	m := Derive(s)

	p, err := m.Score(FeatureVector(s.Means))
	assert.NoError(t, err)
	assert.InDelta(t, m.Threshold, p.Score, tolerance)
	assert.Equal(t, 1, p.Label)
	assert.InDelta(t, 50.0, p.Likelihood, 1e-6)
}

func TestScoreRejectsShortInstance(t *testing.T) {
	m := Derive(Analyze(twoRowDataset()))

	_, err := m.Score(FeatureVector{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidInstance)

	_, err = m.Score(FeatureVector{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.ErrorIs(t, err, ErrInvalidInstance)
}

func TestScoreMonotonicity(t *testing.T) {
	m := Derive(Analyze(twoRowDataset()))

	x := FeatureVector{5, 150, 0, 0, 0, 0, 0, 0}
	base, err := m.Score(x)
	assert.NoError(t, err)

	for j := 0; j < FeatureCount; j++ {
		bumped := make(FeatureVector, FeatureCount)
		copy(bumped, x)
		bumped[j] += 10

		p, err := m.Score(bumped)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, p.Score, base.Score)
		assert.GreaterOrEqual(t, p.Likelihood, base.Likelihood)
	}
}

func TestLikelihoodBounds(t *testing.T) {
	m := Derive(Analyze(twoRowDataset()))

	low, err := m.Score(FeatureVector{-1e6, -1e6, 0, 0, 0, 0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, low.Label)
	assert.Greater(t, low.Likelihood, 0.0)
	assert.Less(t, low.Likelihood, 1.0)

	high, err := m.Score(FeatureVector{1e6, 1e6, 0, 0, 0, 0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, 1, high.Label)
	assert.Greater(t, high.Likelihood, 99.0)
	assert.LessOrEqual(t, high.Likelihood, 100.0)
}

func TestBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	err := os.WriteFile(path, []byte("0,100,0,0,0,0,0,0\n10,200,0,0,0,0,0,0\n"), 0600)
	assert.NoError(t, err)

	m, s, err := Build(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Count)

	p, err := m.Score(FeatureVector{5, 150, 0, 0, 0, 0, 0, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, p.Score, 1e-6)
	assert.Equal(t, 1, p.Label)
}

func TestBuildNoData(t *testing.T) {
	_, s, err := Build(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, 0, s.Count)
}
