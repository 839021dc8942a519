package predictor

// DefaultThreshold is the fixed decision threshold. It is a constant of the
// method, never derived from the data.
const DefaultThreshold = 0.5

// Model is the derived classifier state: a convex weight vector, a bias, and
// the decision threshold. Immutable after Derive; safe to share across
// scoring calls without synchronization.
type Model struct {
	Weights   []float64 `json:"weights" yaml:"weights"`
	Bias      float64   `json:"bias" yaml:"bias"`
	Threshold float64   `json:"threshold" yaml:"threshold"`
}

// Derive builds a model from dataset statistics. Each feature gets weight
// proportional to the inverse of its observed spread, normalized so the
// weights sum to 1. Features with zero spread carry no signal and get weight
// 0; if every spread is zero the weights collapse to all zeros. The bias
// anchors the dataset's own mean vector exactly on the decision boundary.
//
// This is a heuristic anchor derived from feature ranges, not a classifier
// fit against labeled outcomes.
func Derive(s Statistics) Model {
	inv := make([]float64, FeatureCount)
	totalInv := 0.0
	for j := 0; j < FeatureCount; j++ {
		if s.Spreads[j] > 0 {
			inv[j] = 1.0 / s.Spreads[j]
		}
		totalInv += inv[j]
	}

	weights := make([]float64, FeatureCount)
	if totalInv > 0 {
		for j := 0; j < FeatureCount; j++ {
			weights[j] = inv[j] / totalInv
		}
	}

	avgScore := 0.0
	for j := 0; j < FeatureCount; j++ {
		avgScore += weights[j] * s.Means[j]
	}

	return Model{
		Weights:   weights,
		Bias:      DefaultThreshold - avgScore,
		Threshold: DefaultThreshold,
	}
}

// Build reads the dataset at path, analyzes it, and derives a model.
// An unreadable file or one with no usable rows yields ErrNoData: the caller
// must stop without attempting a prediction.
func Build(path string) (Model, Statistics, error) {
	stats := Analyze(ReadDataset(path))
	if stats.Count == 0 {
		return Model{}, stats, ErrNoData
	}
	return Derive(stats), stats, nil
}
