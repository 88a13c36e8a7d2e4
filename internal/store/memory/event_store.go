package memory

import (
	"context"
	"fmt"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// EventStore implements the store.EventStore interface in memory
type EventStore struct {
	s *Store
}

// Create stores a new event and allocates its sequential ID
func (es *EventStore) Create(ctx context.Context, event *entity.Event) (uint64, error) {
	release := es.s.acquire(ctx)
	defer release()

	id := es.s.nextEventID
	es.s.nextEventID++

	event.ID = id
	es.s.events[id] = copyEvent(event)

	return id, nil
}

// GetByID returns a copy of the event with the given ID
func (es *EventStore) GetByID(ctx context.Context, id uint64) (*entity.Event, error) {
	release := es.s.acquire(ctx)
	defer release()

	event, ok := es.s.events[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return copyEvent(event), nil
}

// Update replaces the stored event
func (es *EventStore) Update(ctx context.Context, event *entity.Event) error {
	release := es.s.acquire(ctx)
	defer release()

	if _, ok := es.s.events[event.ID]; !ok {
		return entity.ErrNotFound
	}

	es.s.events[event.ID] = copyEvent(event)

	return nil
}

// DebitInventory decrements the remaining inventory by exactly quantity
func (es *EventStore) DebitInventory(ctx context.Context, id uint64, quantity int64) error {
	release := es.s.acquire(ctx)
	defer release()

	event, ok := es.s.events[id]
	if !ok {
		return entity.ErrNotFound
	}

	if quantity > event.Remaining {
		return fmt.Errorf("%w: requested %d, remaining %d",
			entity.ErrInsufficientInventory, quantity, event.Remaining)
	}

	event.Remaining -= quantity

	return nil
}
