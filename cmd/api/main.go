package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/playplanner-service/internal/api/http"
	"github.com/spec-kit/playplanner-service/internal/api/http/handlers"
	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/config"
	"github.com/spec-kit/playplanner-service/internal/events"
	"github.com/spec-kit/playplanner-service/internal/observability"
	"github.com/spec-kit/playplanner-service/internal/persistence"
	"github.com/spec-kit/playplanner-service/internal/repository"
	"github.com/spec-kit/playplanner-service/internal/service"
	"github.com/spec-kit/playplanner-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(*cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	subjects := repository.NewSubjectCache(userRepo, redis.Handle(), cfg.Auth.SubjectCacheTTL(), logger)

	worker.StartActivityWorker(dispatcher, logger)
	worker.StartSubjectCacheWorker(dispatcher, subjects)

	tokens, err := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("failed to init token codec", zap.Error(err))
	}

	authService, err := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		RoleRepo:   roleRepo,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	recordDeps := service.RecordDependencies{Dispatcher: dispatcher, Logger: logger}
	eventService := service.NewEventService(eventRepo, recordDeps)
	classService := service.NewClassService(classRepo, recordDeps)
	dashboardService := service.NewDashboardService(userRepo, eventRepo, classRepo)

	authMiddleware := auth.NewAuthMiddleware(tokens, subjects, auth.MiddlewareOptions{
		ExemptPrefixes: cfg.Auth.ExemptPrefixes,
		Logger:         logger,
		Metrics:        metrics,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.NewErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	var redisProbe handlers.Pinger
	if redis.Handle() != nil {
		redisProbe = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisProbe),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		Classes:        handlers.NewClassesHandler(classService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
