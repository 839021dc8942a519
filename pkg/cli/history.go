package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/jrpbone/Diabetes-Predictor/pkg/data"
)

const historyLimitDefault = 20

var (
	historyLimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of history records returned",
		Value: historyLimitDefault,
	}

	historyCmd = &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "List recent predictions, newest first",
		Action:  cmdHistory,
		Flags: []cli.Flag{
			historyLimitFlag,
		},
	}
)

// HistoryResult is the printed outcome of the history command.
type HistoryResult struct {
	Results int                      `json:"results" yaml:"results"`
	Data    []*data.PredictionRecord `json:"data" yaml:"data"`
}

func cmdHistory(c *cli.Context) error {
	cfg := getConfig(c)

	list, err := data.ListPredictions(cfg.DB, c.Int(historyLimitFlag.Name))
	if err != nil {
		return err
	}

	return encode(&HistoryResult{
		Results: len(list),
		Data:    list,
	})
}
