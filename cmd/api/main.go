package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shift-board/internal/api/http"
	"github.com/spec-kit/shift-board/internal/api/http/handlers"
	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/config"
	"github.com/spec-kit/shift-board/internal/observability"
	"github.com/spec-kit/shift-board/internal/persistence"
	"github.com/spec-kit/shift-board/internal/repository"
	"github.com/spec-kit/shift-board/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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
		if err := persistence.RunMigrations(ctx, cfg.Postgres, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	cache := persistence.NewRedis(cfg.Redis, logger)
	defer cache.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	authService := service.NewAuthService(cfg.Session, userRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	announcementService := service.NewAnnouncementService(announcementRepo, cache)
	userService := service.NewUserService(cfg.Auth, userRepo)

	gate := auth.NewAccessGate(authService.SessionCodec(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, cache),
		Auth:       handlers.NewAuthHandler(authService),
		Dashboard:  handlers.NewDashboardHandler(scheduleService, announcementService),
		Supervisor: handlers.NewSupervisorHandler(scheduleService, announcementService, userService),
		Gate:       gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
