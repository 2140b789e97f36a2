package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veterinario/clinic-system/internal/api"
	"github.com/veterinario/clinic-system/internal/core/service"
	"github.com/veterinario/clinic-system/internal/infrastructure/config"
	"github.com/veterinario/clinic-system/internal/infrastructure/db/mongo"
	"github.com/veterinario/clinic-system/internal/infrastructure/db/postgres"
	"github.com/veterinario/clinic-system/internal/infrastructure/db/redis"
	"github.com/veterinario/clinic-system/internal/infrastructure/queue"
	"github.com/veterinario/clinic-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	bindings, err := cfg.Bindings()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid role bindings")
	}

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer db.Close()

	if err := postgres.ApplyMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("applying migrations")
	}

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer redisClient.Close()

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	auditService := service.NewAuditService(mongo.NewAuditRepository(mongoDB), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	sessionStore := redis.NewSessionStore(redisClient, cfg.SessionTTL)

	authService := service.NewAuthService(
		postgres.NewUserRepository(db),
		sessionStore,
		dispatcher,
		bindings,
		log,
	)
	appointmentService := service.NewAppointmentService(postgres.NewAppointmentRepository(db), log)

	e := api.NewRouter(api.RouterDeps{
		AuthService:        authService,
		AppointmentService: appointmentService,
		AuditService:       auditService,
		SessionStore:       sessionStore,
		DB:                 db,
		Redis:              redisClient,
		Mongo:              mongoClient,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("clinic server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
