package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// EventStore defines the interface for the event registry storage
type EventStore interface {
	// Create stores a new event and allocates its sequential ID. IDs start
	// at 0 and increment by exactly 1 per successful call.
	Create(ctx context.Context, event *entity.Event) (uint64, error)

	// GetByID returns the event with the given ID
	GetByID(ctx context.Context, id uint64) (*entity.Event, error)

	// Update replaces the stored event
	Update(ctx context.Context, event *entity.Event) error

	// DebitInventory decrements the remaining inventory by exactly quantity.
	// Fails with entity.ErrInsufficientInventory when quantity exceeds the
	// remaining inventory. Used exclusively by the purchase engine.
	DebitInventory(ctx context.Context, id uint64, quantity int64) error
}

// TicketStore defines the interface for minted ticket storage
type TicketStore interface {
	// Create stores a newly minted ticket
	Create(ctx context.Context, ticket *entity.Ticket) error

	// GetByID returns the ticket with the given identifier
	GetByID(ctx context.Context, id uint64) (*entity.Ticket, error)

	// GetByOwner returns all tickets held by an account
	GetByOwner(ctx context.Context, owner string) ([]*entity.Ticket, error)
}

// PurchaseStore defines the interface for purchase receipts and the
// per-(event, buyer) purchased-unit counters
type PurchaseStore interface {
	// Create stores a purchase receipt
	Create(ctx context.Context, purchase *entity.Purchase) error

	// GetByID returns the purchase with the given ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// AddUnits increments the buyer's purchased-unit counter for the event
	AddUnits(ctx context.Context, eventID uint64, buyer string, quantity int64) error

	// UnitsPurchased returns the buyer's purchased-unit counter for the event
	UnitsPurchased(ctx context.Context, eventID uint64, buyer string) (int64, error)
}

// Transactor defines the interface for atomic multi-step mutations
type Transactor interface {
	// Exec runs fn as a single atomic unit: either every mutation made
	// inside fn is committed, or none are
	Exec(ctx context.Context, fn func(ctx context.Context) error) error
}
