package events

import (
	"context"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// EventDetails is the full read model of an event, including the
// display-only discounted single-unit token price. The discounted price is
// computed by the same formula the purchase path uses.
type EventDetails struct {
	Event                entity.Event
	DiscountedTokenPrice int64
}

// Get returns the full details of an event
func (s *Service) Get(ctx context.Context, eventID uint64) (*EventDetails, error) {
	event, err := s.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	discounted, err := s.calc.TokenTotal(event.TokenPrice, 1)
	if err != nil {
		return nil, err
	}

	return &EventDetails{
		Event:                *event,
		DiscountedTokenPrice: discounted,
	}, nil
}

// Remaining returns the remaining inventory of an event
func (s *Service) Remaining(ctx context.Context, eventID uint64) (int64, error) {
	event, err := s.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	return event.Remaining, nil
}
