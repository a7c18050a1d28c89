package main

import (
	"fmt"
	"os"

	"github.com/de-tools/rental-atlas/pkg/runtime/bootstrap"
	"github.com/de-tools/rental-atlas/pkg/server"
	"github.com/de-tools/rental-atlas/pkg/services/config"
	"github.com/de-tools/rental-atlas/pkg/services/dataset"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the bike rentals dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (yaml, json or toml); environment variables override it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.Logger(os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	app, err := bootstrap.New(ctx, cfg, dataset.DefaultRegistry())
	if err != nil {
		logger.Error().Err(err).Str("dataset", cfg.Dataset).Msg("failed to load dataset")
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close filter engine")
		}
	}()

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: app.Dashboard,
		},
	})

	return api.Start()
}
