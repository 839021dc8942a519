package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/jrpbone/Diabetes-Predictor/pkg/data"
	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

var (
	instanceFlag = &cli.StringFlag{
		Name:    "instance",
		Aliases: []string{"i"},
		Usage:   "Instance to score: 8 comma or whitespace separated feature values",
	}

	predictCmd = &cli.Command{
		Name:    "predict",
		Aliases: []string{"p"},
		Usage:   "Score one instance against the model built from the dataset",
		UsageText: `diabetes predict -i "6,148,72,35,0,33.6,0.627,50"   # score a delimited instance
   diabetes predict                                     # prompt for each feature (terminal) or read one line (pipe)`,
		Action: cmdPredict,
		Flags: []cli.Flag{
			instanceFlag,
		},
	}
)

// PredictionResult is the printed outcome of one predict invocation.
type PredictionResult struct {
	Label      int                     `json:"label" yaml:"label"`
	Likelihood string                  `json:"likelihood" yaml:"likelihood"`
	Features   predictor.FeatureVector `json:"features" yaml:"features"`
}

func cmdPredict(c *cli.Context) error {
	cfg := getConfig(c)

	m, stats, err := predictor.Build(cfg.Conf.Data)
	if err != nil {
		if errors.Is(err, predictor.ErrNoData) {
			return errors.Wrapf(err, "no model can be built from: %s", cfg.Conf.Data)
		}
		return err
	}
	slog.Debug("model built", "rows", stats.Count, "data", cfg.Conf.Data)

	var x predictor.FeatureVector
	if line := c.String(instanceFlag.Name); line != "" {
		x, err = predictor.ParseInstance(line)
	} else {
		x, err = newLineCollector(os.Stdin, os.Stdout).Collect()
	}
	if err != nil {
		return errors.Wrap(err, "instance rejected")
	}

	p, err := m.Score(x)
	if err != nil {
		return errors.Wrap(err, "scoring failed")
	}

	// history is best effort, a write failure never fails the prediction
	if _, err := data.SavePrediction(cfg.DB, x, p); err != nil {
		slog.Warn("failed to record prediction", "error", err)
	}

	return encode(&PredictionResult{
		Label:      p.Label,
		Likelihood: fmt.Sprintf("%.2f", p.Likelihood),
		Features:   x,
	})
}
