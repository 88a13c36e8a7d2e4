package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/app/kafka"
	"github.com/0xmukeshr/ticketdapp/internal/config"
	"github.com/0xmukeshr/ticketdapp/internal/dependency"
	"github.com/0xmukeshr/ticketdapp/internal/domain/events"
	"github.com/0xmukeshr/ticketdapp/internal/domain/purchases"
	"github.com/0xmukeshr/ticketdapp/internal/producers"
	"github.com/0xmukeshr/ticketdapp/internal/store/memory"
)

// App wires the ticketing engine together: registry stores, pricing,
// collaborator clients and the feed producer. The engine itself has no
// serving surface; embedding layers call into Events() and Purchases().
type App struct {
	cfg           config.Config
	eventsService *events.Service
	engine        *purchases.Engine
	kafkaProducer *kafka.Producer
	logger        *zap.Logger
}

// NewApp creates a new App instance
func NewApp(cfg config.Config, st *memory.Store, logger *zap.Logger) (*App, error) {
	ownershipRegistry := dependency.NewMemoryOwnershipRegistry()
	tokenClient := dependency.NewMemoryToken(cfg.Engine.Account)
	nativeClient := dependency.NewMemoryNativeLedger()

	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers, logger.Named("kafka-producer"))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	feedProducer := producers.NewFeedProducer(kafkaProducer, cfg.Kafka.FeedTopic)

	calc, err := purchases.NewCalculator(st.EventStore(), cfg.Pricing.TokenDiscountPercent)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing calculator: %w", err)
	}

	engine := purchases.NewEngine(
		st.EventStore(),
		st.TicketStore(),
		st.PurchaseStore(),
		st.Transactor(),
		calc,
		ownershipRegistry,
		tokenClient,
		nativeClient,
		feedProducer,
		cfg.Engine.Account,
	)

	eventsService := events.NewService(st.EventStore(), calc, feedProducer)

	return &App{
		cfg:           cfg,
		eventsService: eventsService,
		engine:        engine,
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}, nil
}

// Events returns the event registry service
func (a *App) Events() *events.Service {
	return a.eventsService
}

// Purchases returns the purchase engine
func (a *App) Purchases() *purchases.Engine {
	return a.engine
}

// Start runs the application until the context is cancelled
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("Ticketing engine ready",
		zap.Int64("token_discount_percent", a.cfg.Pricing.TokenDiscountPercent),
		zap.String("feed_topic", a.cfg.Kafka.FeedTopic))

	<-ctx.Done()
	return nil
}

// Stop stops the application
func (a *App) Stop() {
	if err := a.kafkaProducer.Close(); err != nil {
		a.logger.Error("Error closing Kafka producer", zap.Error(err))
	}

	a.logger.Info("Application stopped")
}
