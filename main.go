package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/liveartfest/ticketing/config"
	"github.com/liveartfest/ticketing/internal/auth"
	"github.com/liveartfest/ticketing/internal/handler"
	"github.com/liveartfest/ticketing/internal/mailer"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/payment"
	"github.com/liveartfest/ticketing/internal/repository"
	"github.com/liveartfest/ticketing/internal/service"
	"github.com/liveartfest/ticketing/pkg/database"
	"github.com/liveartfest/ticketing/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional; the API runs without a broker
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, events will not be published: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	purchasableRepo := repository.NewPurchasableRepository(db)
	classRepo := repository.NewTicketClassRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo, tokens)
	catalogSvc := service.NewCatalogService(purchasableRepo, eventRepo, classRepo, ticketRepo, publisher)
	cartSvc := service.NewCartService(ticketRepo, purchasableRepo, eventRepo)
	checkoutSvc := service.NewCheckoutService(
		ticketRepo,
		paymentRepo,
		payment.NewStripeProcessor(cfg.StripeKey),
		mailer.NewMailerSendService(cfg.MailerSendKey, cfg.MailFromName, cfg.MailFromEmail),
		publisher,
		service.CheckoutConfig{
			Currency:       cfg.Currency,
			PaymentTimeout: cfg.PaymentTimeout,
			MailTimeout:    cfg.MailTimeout,
		},
	)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "ticketing"})
	})

	authMW := middleware.RequireAuth(tokens)
	handler.NewAuthHandler(userSvc).RegisterRoutes(e)
	handler.NewUserHandler(userSvc).RegisterRoutes(e, authMW)
	handler.NewAdminHandler(userSvc).RegisterRoutes(e, authMW)
	handler.NewEventHandler(catalogSvc).RegisterRoutes(e, authMW)
	handler.NewPurchasableHandler(catalogSvc).RegisterRoutes(e, authMW)
	handler.NewTicketClassHandler(catalogSvc).RegisterRoutes(e, authMW)
	handler.NewCartHandler(cartSvc).RegisterRoutes(e, authMW)
	handler.NewCheckoutHandler(checkoutSvc).RegisterRoutes(e, authMW)

	log.Printf("Ticketing API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
