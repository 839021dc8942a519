package cli

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 300
	serverMaxHeaderBytes      = 20
)

var (
	//go:embed templates/*
	embedFS embed.FS

	portFlag = &cli.IntFlag{
		Name:     "port",
		Usage:    "Port on which the server will listen (overrides config)",
		Required: false,
	}

	serverCmd = &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start the local HTTP form front end",
		Action:  cmdStartServer,
		Flags: []cli.Flag{
			portFlag,
			debugFlag,
		},
	}
)

func cmdStartServer(c *cli.Context) error {
	cfg := getConfig(c)

	port := cfg.Conf.Port
	if c.Int(portFlag.Name) != 0 {
		port = c.Int(portFlag.Name)
	}
	address := fmt.Sprintf("127.0.0.1:%d", port)

	// the model is built once at startup and shared read-only by handlers
	m, stats, err := predictor.Build(cfg.Conf.Data)
	if err != nil {
		return fmt.Errorf("no model can be built from %s: %w", cfg.Conf.Data, err)
	}
	slog.Info("model built", "rows", stats.Count, "data", cfg.Conf.Data)

	mux := makeRouter(m, cfg.DB)
	s := &http.Server{
		Addr:           address,
		Handler:        mux,
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "error", err)
		}
	}()

	slog.Info("server started", "address", fmt.Sprintf("http://%s", address))

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error shutting down server", "error", err)
	}
	return nil
}

func makeRouter(m predictor.Model, db *sql.DB) *http.ServeMux {
	tmpl := template.Must(template.New("").ParseFS(embedFS, "templates/*.html"))

	mux := http.NewServeMux()

	// Views
	mux.HandleFunc("GET /{$}", homeViewHandler(tmpl))
	mux.HandleFunc("POST /predict", formPredictHandler(tmpl, m, db))

	// Data API
	mux.HandleFunc("POST /data/predict", predictAPIHandler(m, db))
	mux.HandleFunc("GET /data/model", modelAPIHandler(m))

	return mux
}
