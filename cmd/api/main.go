package main

import (
	"fmt"
	"os"

	"medialert/internal/config"
	"medialert/internal/infrastructure/database/gormdb"
	appLogger "medialert/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "medialert",
		Short:         "Medication reminder service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv(config.FileEnv), "path to YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the reminder due-check",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				return serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				return migrate(cfg)
			},
		},
	)
	return root
}

func newLogger(cfg *config.Config) (appLogger.Logger, error) {
	return appLogger.New(appLogger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

func migrate(cfg *config.Config) error {
	appLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer appLog.Sync()

	// Open migrates the schema.
	db, err := gormdb.Open(gormdb.Config{URL: cfg.Database.URL, Path: cfg.Database.Path, Verbose: cfg.Database.Verbose})
	if err != nil {
		return err
	}
	appLog.Info(fmt.Sprintf("Schema migrated on %s", gormdb.Backend(db)))
	return gormdb.Close(db)
}
