package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtside/venue-service/config"
	"github.com/courtside/venue-service/internal/consumer"
	"github.com/courtside/venue-service/internal/handler"
	"github.com/courtside/venue-service/internal/middleware"
	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/courtside/venue-service/pkg/cache"
	"github.com/courtside/venue-service/pkg/database"
	"github.com/courtside/venue-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if cfg.IsDevelopment() {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log.With(zap.String("service", "venue-service"))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config depends on cfg, so fall back to a bare production logger.
		zap.Must(zap.NewProduction()).Fatal("load config", zap.Error(err))
	}
	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// RabbitMQ: venue decisions out, owner notifications in
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal("connect publisher to RabbitMQ", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal("connect consumer to RabbitMQ", zap.Error(err))
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatal("start consuming", zap.Error(err))
		}
		consumer.NewVenueConsumer(notificationRepo, log).Start(msgs)
	} else {
		log.Warn("RABBIT_URL not set, venue decision events are disabled")
	}

	// Redis: logout revocation
	var revoker service.TokenRevoker
	var revocations middleware.RevocationChecker
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		store := cache.NewRevocationStore(rdb)
		revoker, revocations = store, store
	} else {
		log.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())

	// Services
	venueSvc := service.NewVenueService(venueRepo, publisher, log)
	dashboardSvc := service.NewDashboardService(venueRepo, bookingRepo, paymentRepo, log, service.DashboardOptions{
		Location: cfg.Location(),
		Money:    service.NewMoneyFormatter(cfg.CurrencySymbol),
	})
	authSvc := service.NewAuthService(userRepo, issuer, revoker, log)
	adminSvc := service.NewAdminService(userRepo, venueRepo, bookingRepo, log)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "venue-service"})
	})

	requireAuth := middleware.JWTAuth(issuer, revocations, log)
	api := e.Group("/api/v1")
	authPublic := api.Group("/auth")
	authed := api.Group("/auth", requireAuth)
	admin := api.Group("/admin", requireAuth, middleware.RequireRole(models.RoleAdmin))
	ownerSession := api.Group("/owner", requireAuth)
	ownerOnly := api.Group("/owner", requireAuth, middleware.RequireRole(models.RoleOwner))

	handler.NewAuthHandler(authSvc).RegisterRoutes(authPublic, authed, middleware.LoginRateLimiter(cfg.LoginRatePerMin))
	handler.NewVenueHandler(venueSvc).RegisterRoutes(admin, ownerOnly)
	handler.NewAdminHandler(adminSvc).RegisterRoutes(admin)
	handler.NewDashboardHandler(dashboardSvc, log).RegisterRoutes(ownerSession)
	handler.NewNotificationHandler(notificationSvc).RegisterRoutes(ownerSession)

	go func() {
		log.Info("venue service starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
}
