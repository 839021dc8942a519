package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

var (
	statsCmd = &cli.Command{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Show per-feature statistics for the configured dataset",
		Action:  cmdStats,
	}

	modelCmd = &cli.Command{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "Show the derived model (weights, bias, threshold)",
		Action:  cmdModel,
	}
)

// FeatureStats is the per-feature view of the dataset statistics.
type FeatureStats struct {
	Feature string  `json:"feature" yaml:"feature"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Mean    float64 `json:"mean" yaml:"mean"`
	Spread  float64 `json:"spread" yaml:"spread"`
	Std     float64 `json:"std" yaml:"std"`
}

// StatsResult is the printed outcome of the stats command.
type StatsResult struct {
	Source   string          `json:"source" yaml:"source"`
	Count    int             `json:"count" yaml:"count"`
	Features []*FeatureStats `json:"features" yaml:"features"`
}

// FeatureWeight pairs a feature name with its derived weight.
type FeatureWeight struct {
	Feature string  `json:"feature" yaml:"feature"`
	Weight  float64 `json:"weight" yaml:"weight"`
}

// ModelResult is the printed outcome of the model command.
type ModelResult struct {
	Source    string           `json:"source" yaml:"source"`
	Rows      int              `json:"rows" yaml:"rows"`
	Weights   []*FeatureWeight `json:"weights" yaml:"weights"`
	Bias      float64          `json:"bias" yaml:"bias"`
	Threshold float64          `json:"threshold" yaml:"threshold"`
}

func cmdStats(c *cli.Context) error {
	cfg := getConfig(c)

	s := predictor.Analyze(predictor.ReadDataset(cfg.Conf.Data))
	if s.Count == 0 {
		return errors.Wrapf(predictor.ErrNoData, "source: %s", cfg.Conf.Data)
	}

	res := &StatsResult{
		Source:   cfg.Conf.Data,
		Count:    s.Count,
		Features: make([]*FeatureStats, 0, predictor.FeatureCount),
	}
	for j, name := range predictor.FeatureNames {
		res.Features = append(res.Features, &FeatureStats{
			Feature: name,
			Min:     s.Mins[j],
			Max:     s.Maxs[j],
			Mean:    s.Means[j],
			Spread:  s.Spreads[j],
			Std:     s.Stds[j],
		})
	}
	return encode(res)
}

func cmdModel(c *cli.Context) error {
	cfg := getConfig(c)

	m, s, err := predictor.Build(cfg.Conf.Data)
	if err != nil {
		return errors.Wrapf(err, "source: %s", cfg.Conf.Data)
	}

	res := &ModelResult{
		Source:    cfg.Conf.Data,
		Rows:      s.Count,
		Weights:   make([]*FeatureWeight, 0, predictor.FeatureCount),
		Bias:      m.Bias,
		Threshold: m.Threshold,
	}
	for j, name := range predictor.FeatureNames {
		res.Weights = append(res.Weights, &FeatureWeight{Feature: name, Weight: m.Weights[j]})
	}
	return encode(res)
}
