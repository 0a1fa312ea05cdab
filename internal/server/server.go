// Package server defines the Server container that owns the process-wide
// dependencies and the HTTP server lifecycle.
//
// It owns:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the storage backend (PostgreSQL pool or MongoDB client)
//   - the optional redis client and background job service (asynq)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/config"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/database"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/NehaP1706/APILearn-ExerciseTracker/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// Server is the application container for shared resources. It is not the
// HTTP server itself.
//
// Exactly one of DB and Mongo is set, chosen by Config.Storage.Driver.
// Redis and Job are nil when no redis address is configured.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	DB    *database.Database
	Mongo *database.Mongo

	Redis *redis.Client
	Job   *job.JobService

	httpServer *http.Server
}

// New connects the configured storage backend and, when redis is
// configured, the redis client and job workers.
//
// A failed redis ping is logged and startup continues; the job service
// failing to start is fatal.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		m, err := database.NewMongo(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		s.Mongo = m
	default:
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db
	}

	if !cfg.Redis.Enabled() {
		logger.Info().Msg("redis address not set, background jobs disabled")
		return s, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("failed to connect to redis, continuing without it")
	}
	s.Redis = redisClient

	jobService := job.NewJobService(logger, cfg, loggerService.GetApplication())
	if err := jobService.Start(); err != nil {
		_ = s.closeStorage(context.Background())
		_ = redisClient.Close()
		return nil, err
	}
	s.Job = jobService

	return s, nil
}

// SetupHTTPServer configures the net/http server around handler. Config
// timeouts are in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("storage", s.Config.Storage.Driver).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, drains in-flight ones until ctx
// expires, then releases jobs, redis and storage.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if err := s.closeStorage(ctx); err != nil && shutdownErr == nil {
		shutdownErr = err
	}

	return shutdownErr
}

func (s *Server) closeStorage(ctx context.Context) error {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			return fmt.Errorf("failed to close mongo connection: %w", err)
		}
	}
	return nil
}
