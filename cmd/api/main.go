package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/sistema-tickets/helpdesk-service/internal/api/http"
	"github.com/sistema-tickets/helpdesk-service/internal/api/http/handlers"
	"github.com/sistema-tickets/helpdesk-service/internal/bootstrap"
	"github.com/sistema-tickets/helpdesk-service/internal/config"
	"github.com/sistema-tickets/helpdesk-service/internal/events"
	"github.com/sistema-tickets/helpdesk-service/internal/observability"
	"github.com/sistema-tickets/helpdesk-service/internal/persistence"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
	"github.com/sistema-tickets/helpdesk-service/internal/service"
	"github.com/sistema-tickets/helpdesk-service/internal/worker"
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

	pool := pg.PoolHandle()
	usuarioRepo := repository.NewUsuarioRepository(pool)
	categoriaRepo := repository.NewCategoriaRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	comentarioRepo := repository.NewComentarioRepository(pool)

	if err := bootstrap.Seed(ctx, cfg.Seed, cfg.Auth.BcryptCost, bootstrap.Dependencies{
		UsuarioRepo:   usuarioRepo,
		CategoriaRepo: categoriaRepo,
	}, logger); err != nil {
		logger.Fatal("failed to seed defaults", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	usuarioService := service.NewUsuarioService(usuarioRepo, cfg.Auth.BcryptCost)
	categoriaService := service.NewCategoriaService(categoriaRepo, redis, cfg.Redis.CacheTTL())
	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	comentarioService := service.NewComentarioService(service.ComentarioDependencies{
		ComentarioRepo: comentarioRepo,
		TicketRepo:     ticketRepo,
		UsuarioRepo:    usuarioRepo,
		Dispatcher:     dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets:     handlers.NewTicketsHandler(ticketService),
		Comentarios: handlers.NewComentariosHandler(comentarioService),
		Categorias:  handlers.NewCategoriasHandler(categoriaService),
		Usuarios:    handlers.NewUsuariosHandler(usuarioService),
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
