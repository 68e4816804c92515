package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thisisrober/provisioner/internal/config"
	"github.com/thisisrober/provisioner/internal/credential"
	"github.com/thisisrober/provisioner/internal/deploy"
	"github.com/thisisrober/provisioner/internal/github"
	"github.com/thisisrober/provisioner/internal/portfolio"
	"github.com/thisisrober/provisioner/internal/provision"
	"github.com/thisisrober/provisioner/internal/server"
	"github.com/thisisrober/provisioner/internal/store/postgres"
	"github.com/thisisrober/provisioner/internal/templates"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// Initialize structured logging from environment.
	logLevel := os.Getenv("PROVISIONER_LOG_LEVEL")
	level, parseErr := zerolog.ParseLevel(logLevel)
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFormat := os.Getenv("PROVISIONER_LOG_FORMAT")
	if logFormat == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Database.MaxConns < 0 || cfg.Database.MaxConns > math.MaxInt32 {
		return fmt.Errorf("database max_conns %d out of int32 range", cfg.Database.MaxConns)
	}

	// Connect to PostgreSQL.
	store, err := postgres.New(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns)) //nolint:gosec // bounds checked above
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	// Provider client, resolving its token from the settings store.
	var ghOpts []github.Option
	if cfg.GitHub.APIBaseURL != "" {
		ghOpts = append(ghOpts, github.WithAPIBaseURL(cfg.GitHub.APIBaseURL))
	}
	ghOpts = append(ghOpts, github.WithGraphQLURL(cfg.GitHub.GraphQLURL))

	creds := credential.NewService(store.Settings(), nil)
	gh := github.NewClient(creds, ghOpts...)
	creds.SetValidator(gh)

	// Template engine and local deployment tree.
	engine := templates.New(cfg.GitHub.Owner)

	manager, err := deploy.NewManager(cfg.Deploy.ProjectsDir, deploy.WithDepth(cfg.Deploy.CloneDepth))
	if err != nil {
		return err
	}
	deployer := deploy.NewCredentialed(manager, creds)

	// Lifecycle and reconciliation services.
	prov := provision.NewManager(gh, engine, manager, store.Portfolio())
	reconciler := portfolio.NewReconciler(store.Portfolio(), deployer, prov)

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create HTTP server with all routes wired.
	srv := server.New(ctx, cfg, server.Deps{
		Store:      store,
		GitHub:     gh,
		Creds:      creds,
		Templates:  engine,
		Provision:  prov,
		Deployer:   deployer,
		Portfolio:  reconciler,
		ProjectsFS: cfg.Deploy.ProjectsDir,
	})

	// Start server in background goroutine.
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	// Block until shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
