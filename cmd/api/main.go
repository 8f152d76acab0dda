// Package main provides the entry point for the tzconv API server
// @title tzconv API
// @version 1.0
// @description Converts times of day between a fixed set of timezones.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"tzconv/internal/api/routes"
	"tzconv/internal/api/server"
	"tzconv/internal/auth"
	"tzconv/internal/config"
	"tzconv/internal/database"
	"tzconv/internal/history"
	"tzconv/internal/repository/postgres"
	"tzconv/internal/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	cmd := &cobra.Command{
		Use:          "api",
		Short:        "Serve the tzconv HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load environment file
			if err := godotenv.Load(envFile); err != nil {
				if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env") {
					return fmt.Errorf("failed to load env file: %w", err)
				}
			}
			return run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&envFile, "env", ".env", "Path to env file")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := cfg.Logger()

	// Initialize validators
	validation.Initialize()

	deps := routes.Dependencies{
		AuthService: auth.NewService(cfg.Auth.JWTSecret),
		Log:         log,
	}

	if cfg.History.Enabled {
		// Initialize database
		db, err := database.SetupDatabase(cfg.Database)
		if err != nil {
			log.WithError(err).Error("Failed to set up history database")
			return err
		}
		defer db.Close()

		repo := postgres.NewConversionLogRepository(db)
		deps.ConversionLogs = repo

		pruner := history.NewPruner(repo, cfg.History.Retention, cfg.History.CleanupSchedule, log)
		go func() {
			if err := pruner.Start(ctx); err != nil {
				log.WithError(err).Warn("History pruner not running")
			}
		}()
	}

	srv, err := server.New(cfg, deps)
	if err != nil {
		log.WithError(err).Error("Failed to create server")
		return err
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for interrupt signal
	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("Server stopped")
		}
		return err
	case <-ctx.Done():
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.WithFields(logrus.Fields{"history": cfg.History.Enabled}).Info("Server exiting")
	return nil
}
