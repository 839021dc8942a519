package predictor

import (
	"math"

	"github.com/pkg/errors"
)

// likelihoodClamp bounds the logistic input magnitude before exponentiation.
const likelihoodClamp = 60.0

// Prediction is the outcome of one scoring call: a hard label, the smoothed
// likelihood percentage in (0, 100), and the raw score behind both.
type Prediction struct {
	Label      int     `json:"label" yaml:"label"`
	Likelihood float64 `json:"likelihood" yaml:"likelihood"`
	Score      float64 `json:"score" yaml:"score"`
}

// Score evaluates one instance against the model. The label is 1 when the
// weighted score meets or exceeds the threshold (ties resolve to 1). The
// likelihood is the logistic transform of the distance to the threshold,
// scaled to a percentage: 50.0 exactly at the threshold.
//
// Instances without exactly FeatureCount values are rejected; the scorer
// never truncates or pads.
func (m Model) Score(x FeatureVector) (Prediction, error) {
	if len(x) != FeatureCount {
		return Prediction{}, errors.Wrapf(ErrInvalidInstance, "got %d values", len(x))
	}

	score := m.Bias
	for j, w := range m.Weights {
		score += w * x[j]
	}

	label := 0
	if score >= m.Threshold {
		label = 1
	}

	return Prediction{
		Label:      label,
		Likelihood: logistic(score-m.Threshold) * 100,
		Score:      score,
	}, nil
}

// logistic computes 1/(1+e^-z) with z clamped to [-60, 60]. The original
// derivation summed a 40-term Taylor series to avoid a platform exponential;
// math.Exp is numerically equivalent on the clamped domain, so the series is
// not reproduced here.
func logistic(z float64) float64 {
	if z > likelihoodClamp {
		z = likelihoodClamp
	}
	if z < -likelihoodClamp {
		z = -likelihoodClamp
	}
	return 1 / (1 + math.Exp(-z))
}
