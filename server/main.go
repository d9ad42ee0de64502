package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipeline"
	"github.com/meikuraledutech/pipeline/postgres"
)

var (
	flagConfig string
	flagListen string
)

var rootCmd = &cobra.Command{
	Use:          "pipeline-server",
	Short:        "HTTP API for pipeline graph validation and snapshot storage",
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVarP(&flagListen, "listen", "l", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagListen != "" {
		cfg.ListenAddr = flagListen
	}

	// Snapshot persistence is optional. Without a database the parse
	// and health endpoints still serve.
	var store pipeline.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		store = postgres.New(pool)
		logger.Info("snapshot store enabled")
	} else {
		logger.Warn("no database_url configured, snapshot routes disabled")
	}

	app := buildApp(cfg, store, logger)

	logger.Info("listening", slog.String("addr", cfg.ListenAddr))
	return app.Listen(cfg.ListenAddr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
