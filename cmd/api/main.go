package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/landlordly/internal/api/http"
	"github.com/spec-kit/landlordly/internal/api/http/handlers"
	"github.com/spec-kit/landlordly/internal/assistant"
	"github.com/spec-kit/landlordly/internal/auth"
	"github.com/spec-kit/landlordly/internal/config"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/observability"
	"github.com/spec-kit/landlordly/internal/persistence"
	"github.com/spec-kit/landlordly/internal/repository"
	"github.com/spec-kit/landlordly/internal/service"
	"github.com/spec-kit/landlordly/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	unitRepo := repository.NewUnitRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)

	kvStore := persistence.NewRedisKeyValueStore(redis)
	inviteRegistry := repository.NewInviteRegistry(kvStore, cfg.Invite.RegistryKey)

	dispatcher := events.NewInMemoryDispatcher()

	var assistantClient assistant.Client
	if cfg.Assistant.Endpoint != "" {
		assistantClient = assistant.NewHTTPClient(cfg.Assistant)
	} else {
		assistantClient = assistant.NewScriptedClient()
	}

	inviteService := service.NewInviteService(cfg.Invite, inviteRegistry, dispatcher)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Invites:           inviteService,
		Dispatcher:        dispatcher,
	})
	propertyService := service.NewPropertyService(service.PropertyDependencies{
		PropertyRepo: propertyRepo,
		UnitRepo:     unitRepo,
		UserRepo:     userRepo,
	})
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo:  paymentRepo,
		UnitRepo:     unitRepo,
		PropertyRepo: propertyRepo,
		Dispatcher:   dispatcher,
	})
	maintenanceService := service.NewMaintenanceService(service.MaintenanceDependencies{
		MaintenanceRepo: maintenanceRepo,
		UnitRepo:        unitRepo,
		PropertyRepo:    propertyRepo,
		Dispatcher:      dispatcher,
	})
	messageService := service.NewMessageService(service.MessageDependencies{
		MessageRepo: messageRepo,
		Assistant:   assistantClient,
		Dispatcher:  dispatcher,
	})
	noticeService := service.NewNoticeService(service.NoticeDependencies{
		NoticeRepo:   noticeRepo,
		UnitRepo:     unitRepo,
		PropertyRepo: propertyRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Invites:        handlers.NewInvitesHandler(inviteService),
		Properties:     handlers.NewPropertiesHandler(propertyService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Messages:       handlers.NewMessagesHandler(messageService),
		Notices:        handlers.NewNoticesHandler(noticeService),
		AuthMiddleware: authMiddleware,
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
