package events

import (
	"github.com/0xmukeshr/ticketdapp/internal/domain/purchases"
	"github.com/0xmukeshr/ticketdapp/internal/producers"
	"github.com/0xmukeshr/ticketdapp/internal/store"
)

// Service owns the event registry surface: registration, owner-gated
// administration, and read-only queries.
type Service struct {
	eventStore   store.EventStore
	calc         *purchases.Calculator
	feedProducer producers.FeedProducerI
}

// NewService creates a new Service instance
func NewService(
	eventStore store.EventStore,
	calc *purchases.Calculator,
	feedProducer producers.FeedProducerI,
) *Service {
	return &Service{
		eventStore:   eventStore,
		calc:         calc,
		feedProducer: feedProducer,
	}
}
