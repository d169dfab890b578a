package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weatherrecap/weatherrecap/internal/config"
	"github.com/weatherrecap/weatherrecap/internal/logger"
	"github.com/weatherrecap/weatherrecap/internal/store"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "weatherrecap",
	Short: "Weather recap video pipeline API",
	Long: `Serves the weather recap API: ideas, prompts and wizards, LLM generated
weather queries and scenes, and the render queue that drives the video renderer.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and render worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		db, err := store.Open(cfg.DBDriver, cfg.DSN(), cfg.DBMaxConns)
		if err != nil {
			return err
		}
		defer db.Close()

		tables, err := db.ListTables(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("Schema applied", "driver", cfg.DBDriver, "tables", tables)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file before .env")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// setup loads and validates configuration and builds the root logger.
func setup() (*config.Config, *logger.Logger, error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return nil, nil, err
		}
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
