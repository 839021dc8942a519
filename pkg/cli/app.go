package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/jrpbone/Diabetes-Predictor/pkg/config"
	"github.com/jrpbone/Diabetes-Predictor/pkg/data"
	"github.com/jrpbone/Diabetes-Predictor/pkg/logging"
)

const (
	appName      = "diabetes"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dataFileFlag = &urfave.StringFlag{
		Name:  "data",
		Usage: "Path to the dataset CSV file (overrides config)",
	}

	dbFilePathFlag = &urfave.StringFlag{
		Name:  "db",
		Usage: "Path to the prediction history database file (overrides config)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Conf  *config.Config
	Debug bool
	DB    *sql.DB
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Heuristic diabetes risk classifier built from an unlabeled CSV",
		Flags: []urfave.Flag{
			debugFlag,
			dataFileFlag,
			dbFilePathFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			predictCmd,
			statsCmd,
			modelCmd,
			historyCmd,
			serverCmd,
		},
		Before: func(c *urfave.Context) error {
			dir, _, err := config.GetOrCreateHomeDir(appName)
			if err != nil {
				return fmt.Errorf("resolving app home dir: %w", err)
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			} else {
				logging.SetDefaultCLILogger(conf.LogLevel)
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			if p := c.String(dataFileFlag.Name); p != "" {
				conf.Data = p
			}
			if p := c.String(dbFilePathFlag.Name); p != "" {
				conf.DB = p
			}

			if err := data.Init(conf.DB); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(conf.DB)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Conf:  conf,
				Debug: c.Bool(debugFlag.Name),
				DB:    db,
			}
			return nil
		},
		After: func(c *urfave.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
