package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
)

// KafkaProducer is the interface for sending messages to Kafka
type KafkaProducer interface {
	Produce(ctx context.Context, topic string, key string, value []byte) error
}

//go:generate moq -rm -out gen/feed_producer_mock.go -pkg producersgen -fmt goimports . FeedProducerI

// FeedProducerI publishes the engine's observable events to the feed
type FeedProducerI interface {
	// SendEventCreated publishes an event-created record
	SendEventCreated(ctx context.Context, event *entity.Event) error

	// SendTicketPurchased publishes a ticket-purchased record
	SendTicketPurchased(ctx context.Context, purchase *entity.Purchase) error

	// SendEventStatusChanged publishes an event-status-changed record
	SendEventStatusChanged(ctx context.Context, event *entity.Event) error

	// SendPricesUpdated publishes a price-updated record
	SendPricesUpdated(ctx context.Context, event *entity.Event) error
}

const (
	feedTypeEventCreated       = "event_created"
	feedTypeTicketPurchased    = "ticket_purchased"
	feedTypeEventStatusChanged = "event_status_changed"
	feedTypePriceUpdated       = "price_updated"
)

// eventCreatedPayload is the feed record for a newly registered event
type eventCreatedPayload struct {
	Type        string    `json:"type"`
	EventID     uint64    `json:"event_id"`
	Name        string    `json:"name"`
	NativePrice int64     `json:"native_price"`
	TokenPrice  int64     `json:"token_price"`
	TotalSupply int64     `json:"total_supply"`
	Owner       string    `json:"owner"`
	Timestamp   time.Time `json:"timestamp"`
}

// ticketPurchasedPayload is the feed record for a completed purchase
type ticketPurchasedPayload struct {
	Type      string    `json:"type"`
	Buyer     string    `json:"buyer"`
	EventID   uint64    `json:"event_id"`
	Quantity  int64     `json:"quantity"`
	TotalPaid int64     `json:"total_paid"`
	Currency  string    `json:"currency"`
	TicketIDs []uint64  `json:"ticket_ids"`
	Timestamp time.Time `json:"timestamp"`
}

// eventStatusChangedPayload is the feed record for an active-flag change
type eventStatusChangedPayload struct {
	Type      string    `json:"type"`
	EventID   uint64    `json:"event_id"`
	Active    bool      `json:"active"`
	Timestamp time.Time `json:"timestamp"`
}

// priceUpdatedPayload is the feed record for a price change
type priceUpdatedPayload struct {
	Type        string    `json:"type"`
	EventID     uint64    `json:"event_id"`
	NativePrice int64     `json:"native_price"`
	TokenPrice  int64     `json:"token_price"`
	Timestamp   time.Time `json:"timestamp"`
}

// FeedProducer handles sending the engine's observable events to Kafka
type FeedProducer struct {
	kafkaProducer KafkaProducer
	feedTopic     string
}

// NewFeedProducer creates a new FeedProducer instance
func NewFeedProducer(kafkaProducer KafkaProducer, feedTopic string) *FeedProducer {
	return &FeedProducer{
		kafkaProducer: kafkaProducer,
		feedTopic:     feedTopic,
	}
}

// SendEventCreated publishes an event-created record
func (p *FeedProducer) SendEventCreated(ctx context.Context, event *entity.Event) error {
	payload := eventCreatedPayload{
		Type:        feedTypeEventCreated,
		EventID:     event.ID,
		Name:        event.Name,
		NativePrice: event.NativePrice,
		TokenPrice:  event.TokenPrice,
		TotalSupply: event.TotalSupply,
		Owner:       event.Owner,
		Timestamp:   time.Now().UTC(),
	}

	logger.Info(ctx, "Sending event-created record to feed",
		zap.String("topic", p.feedTopic),
		zap.Uint64("event_id", event.ID),
		zap.String("name", event.Name))

	return p.send(ctx, eventKey(event.ID), payload)
}

// SendTicketPurchased publishes a ticket-purchased record, keyed by buyer
func (p *FeedProducer) SendTicketPurchased(ctx context.Context, purchase *entity.Purchase) error {
	payload := ticketPurchasedPayload{
		Type:      feedTypeTicketPurchased,
		Buyer:     purchase.Buyer,
		EventID:   purchase.EventID,
		Quantity:  purchase.Quantity,
		TotalPaid: purchase.TotalPaid,
		Currency:  string(purchase.Currency),
		TicketIDs: purchase.TicketIDs,
		Timestamp: time.Now().UTC(),
	}

	logger.Info(ctx, "Sending ticket-purchased record to feed",
		zap.String("topic", p.feedTopic),
		zap.String("purchase_id", purchase.ID.String()),
		zap.Uint64("event_id", purchase.EventID),
		zap.Int64("quantity", purchase.Quantity),
		zap.String("currency", string(purchase.Currency)))

	return p.send(ctx, purchase.Buyer, payload)
}

// SendEventStatusChanged publishes an event-status-changed record
func (p *FeedProducer) SendEventStatusChanged(ctx context.Context, event *entity.Event) error {
	payload := eventStatusChangedPayload{
		Type:      feedTypeEventStatusChanged,
		EventID:   event.ID,
		Active:    event.Active,
		Timestamp: time.Now().UTC(),
	}

	logger.Info(ctx, "Sending event-status-changed record to feed",
		zap.String("topic", p.feedTopic),
		zap.Uint64("event_id", event.ID),
		zap.Bool("active", event.Active))

	return p.send(ctx, eventKey(event.ID), payload)
}

// SendPricesUpdated publishes a price-updated record
func (p *FeedProducer) SendPricesUpdated(ctx context.Context, event *entity.Event) error {
	payload := priceUpdatedPayload{
		Type:        feedTypePriceUpdated,
		EventID:     event.ID,
		NativePrice: event.NativePrice,
		TokenPrice:  event.TokenPrice,
		Timestamp:   time.Now().UTC(),
	}

	logger.Info(ctx, "Sending price-updated record to feed",
		zap.String("topic", p.feedTopic),
		zap.Uint64("event_id", event.ID))

	return p.send(ctx, eventKey(event.ID), payload)
}

func (p *FeedProducer) send(ctx context.Context, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal feed payload: %w", err)
	}

	if err := p.kafkaProducer.Produce(ctx, p.feedTopic, key, value); err != nil {
		return fmt.Errorf("failed to produce feed record to Kafka: %w", err)
	}

	return nil
}

func eventKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}
