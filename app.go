package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"gorm.io/gorm"

	"inventory/docs"
	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"
	"inventory/pkg/rabbitmq"
)

// App is the HTTP server together with the resources it owns.
type App struct {
	Fiber *fiber.App

	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
	mq  *rabbitmq.Client
}

// NewApp opens the store, connects to the broker when one is configured and
// registers every route. Callers must Close the returned App.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	// --- Store ---
	var productRepo repositories.ProductRepository
	var ping func(ctx context.Context) error
	if cfg.DatabaseDriver == config.DriverMemory {
		productRepo = repositories.NewMemoryProductRepository()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		if err := database.Migrate(db); err != nil {
			_ = a.Close()
			return nil, err
		}
		productRepo = repositories.NewGORMProductRepository(db)
		ping = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	// --- Events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.mq = mq
		publisher = mq
	}

	// --- Services & handlers ---
	productService := services.NewProductService(productRepo, publisher, log)
	productHandler := handlers.NewProductHandler(productService, validation.New())
	docsHandler := handlers.NewDocsHandler(docs.OpenAPI, cfg.AppName)
	healthHandler := handlers.NewHealthHandler(ping)

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())

	docsHandler.RegisterRoutes(app)
	healthHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	a.Fiber = app
	return a, nil
}

// StartEventConsumer logs every product event delivered on the broker queue.
// It does nothing when no broker is configured.
func (a *App) StartEventConsumer() error {
	if a.mq == nil {
		return nil
	}
	return a.mq.ConsumeProductEvents(func(msg amqp.Delivery) error {
		event, err := rabbitmq.DecodeProductEvent(msg.Body)
		if err != nil {
			a.log.Warn().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("discarding malformed product event")
			return err
		}
		a.log.Info().
			Str("event_id", event.ID).
			Str("type", event.Type).
			Uint("product_id", event.Product.ID).
			Str("product", event.Product.Name).
			Msg("received product event")
		return nil
	})
}

// Listen serves HTTP on the configured port until Shutdown is called.
func (a *App) Listen() error {
	return a.Fiber.Listen(a.cfg.Port)
}

// Close stops the HTTP server and releases the broker connection and the store.
func (a *App) Close() error {
	var errs []error
	if a.Fiber != nil {
		if err := a.Fiber.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
		}
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, fmt.Errorf("rabbitmq close: %w", err))
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}
	return errors.Join(errs...)
}
