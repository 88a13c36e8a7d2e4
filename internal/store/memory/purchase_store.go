package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// PurchaseStore implements the store.PurchaseStore interface in memory
type PurchaseStore struct {
	s *Store
}

// Create stores a purchase receipt
func (ps *PurchaseStore) Create(ctx context.Context, purchase *entity.Purchase) error {
	release := ps.s.acquire(ctx)
	defer release()

	ps.s.purchases[purchase.ID] = copyPurchase(purchase)

	return nil
}

// GetByID returns the purchase with the given ID
func (ps *PurchaseStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	release := ps.s.acquire(ctx)
	defer release()

	purchase, ok := ps.s.purchases[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return copyPurchase(purchase), nil
}

// AddUnits increments the buyer's purchased-unit counter for the event. The
// counter is monotonic: nothing in the engine ever decrements it.
func (ps *PurchaseStore) AddUnits(ctx context.Context, eventID uint64, buyer string, quantity int64) error {
	release := ps.s.acquire(ctx)
	defer release()

	ps.s.units[unitKey{eventID: eventID, buyer: buyer}] += quantity

	return nil
}

// UnitsPurchased returns the buyer's purchased-unit counter for the event
func (ps *PurchaseStore) UnitsPurchased(ctx context.Context, eventID uint64, buyer string) (int64, error) {
	release := ps.s.acquire(ctx)
	defer release()

	return ps.s.units[unitKey{eventID: eventID, buyer: buyer}], nil
}
