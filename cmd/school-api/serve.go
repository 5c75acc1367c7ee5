package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/schooldesk/school-api/internal/api"
	"github.com/schooldesk/school-api/internal/api/handler"
	"github.com/schooldesk/school-api/internal/core/service"
	mongostore "github.com/schooldesk/school-api/internal/infrastructure/db/mongo"
	redisstore "github.com/schooldesk/school-api/internal/infrastructure/db/redis"
	"github.com/schooldesk/school-api/internal/infrastructure/token"
	"github.com/schooldesk/school-api/internal/pkg/config"
	"github.com/schooldesk/school-api/pkg/logger"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Connect to MongoDB and Redis, ensure indexes, and serve the HTTP API
until SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "school-api",
	})

	// Refuse to start without a signing key.
	issuer, err := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("JWT_SECRET is required")
		return fmt.Errorf("token issuer: %w", err)
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Dependencies ---
	schoolRepo := mongostore.NewSchoolRepository(db)
	messageRepo := mongostore.NewMessageRepository(db)
	idempotency := redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)

	e := api.NewRouter(api.Options{
		Schools:  service.NewSchoolService(schoolRepo, issuer, cfg.Auth.LookupTimeout, logger.Component("schools")),
		Roster:   service.NewRosterService(schoolRepo, schoolRepo, logger.Component("roster")),
		Messages: service.NewMessageService(messageRepo, schoolRepo, idempotency, logger.Component("messages")),
		Tokens:   issuer,
		HealthChecks: map[string]handler.HealthCheck{
			"mongodb": mongostore.Ping(db),
			"redis":   redisstore.Ping(rdb),
		},
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      logger.Component("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
