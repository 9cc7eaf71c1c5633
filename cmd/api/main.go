package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/saboresunicos/ordering-service/internal/api/http"
	"github.com/saboresunicos/ordering-service/internal/api/http/handlers"
	"github.com/saboresunicos/ordering-service/internal/auth"
	"github.com/saboresunicos/ordering-service/internal/config"
	"github.com/saboresunicos/ordering-service/internal/events"
	"github.com/saboresunicos/ordering-service/internal/observability"
	"github.com/saboresunicos/ordering-service/internal/persistence"
	"github.com/saboresunicos/ordering-service/internal/repository"
	"github.com/saboresunicos/ordering-service/internal/service"
	"github.com/saboresunicos/ordering-service/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	accountRepo := repository.NewAccountRepository(pg.PoolHandle())
	catalogRepo := repository.NewCatalogRepository(repository.DefaultMenu())
	cartRepo := repository.NewCartRepository(redis.Client, cfg.Cart.TTL())

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	sessionService := service.NewSessionService(cfg.Auth, accountRepo, dispatcher)
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartRepo, catalogRepo, dispatcher, cfg.Restaurant)

	guard := auth.NewGuard(sessionService.TokenManager())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Session: handlers.NewSessionHandler(sessionService),
		Account: handlers.NewAccountHandler(sessionService),
		Dishes:  handlers.NewDishHandler(catalogService),
		Cart:    handlers.NewCartHandler(cartService),
		Guard:   guard,
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
