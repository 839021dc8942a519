package predictor

import "math"

// Statistics holds per-feature aggregates over one dataset load. A Count of
// zero is the designated empty value: every vector stays at its zero value.
type Statistics struct {
	Count   int       `json:"count" yaml:"count"`
	Mins    []float64 `json:"mins" yaml:"mins"`
	Maxs    []float64 `json:"maxs" yaml:"maxs"`
	Means   []float64 `json:"means" yaml:"means"`
	Spreads []float64 `json:"spreads" yaml:"spreads"`
	Stds    []float64 `json:"stds" yaml:"stds"`
}

func emptyStatistics() Statistics {
	return Statistics{
		Mins:    make([]float64, FeatureCount),
		Maxs:    make([]float64, FeatureCount),
		Means:   make([]float64, FeatureCount),
		Spreads: make([]float64, FeatureCount),
		Stds:    make([]float64, FeatureCount),
	}
}

// Analyze computes per-feature min, max, mean, spread (max-min), and
// population standard deviation over the dataset. Two passes: the deviation
// sums need the finalized means. Std divides by n, not n-1.
func Analyze(ds Dataset) Statistics {
	s := emptyStatistics()

	n := len(ds)
	s.Count = n
	if n == 0 {
		return s
	}

	for j := 0; j < FeatureCount; j++ {
		s.Mins[j] = ds[0][j]
		s.Maxs[j] = ds[0][j]
	}

	sums := make([]float64, FeatureCount)
	for _, row := range ds {
		for j, x := range row {
			sums[j] += x
			if x < s.Mins[j] {
				s.Mins[j] = x
			}
			if x > s.Maxs[j] {
				s.Maxs[j] = x
			}
		}
	}

	for j := 0; j < FeatureCount; j++ {
		s.Means[j] = sums[j] / float64(n)
		s.Spreads[j] = s.Maxs[j] - s.Mins[j]
	}

	devSums := make([]float64, FeatureCount)
	for _, row := range ds {
		for j, x := range row {
			d := x - s.Means[j]
			devSums[j] += d * d
		}
	}
	for j := 0; j < FeatureCount; j++ {
		s.Stds[j] = math.Sqrt(devSums[j] / float64(n))
	}

	return s
}
