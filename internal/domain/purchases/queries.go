package purchases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// PurchasedCount returns the buyer's purchased-unit counter for the event
func (e *Engine) PurchasedCount(ctx context.Context, eventID uint64, buyer string) (int64, error) {
	if buyer == "" {
		return 0, fmt.Errorf("%w: buyer is required", entity.ErrInvalidArgument)
	}
	if _, err := e.eventStore.GetByID(ctx, eventID); err != nil {
		return 0, err
	}

	return e.purchaseStore.UnitsPurchased(ctx, eventID, buyer)
}

// TicketsOf returns all tickets currently recorded for an owner
func (e *Engine) TicketsOf(ctx context.Context, owner string) ([]*entity.Ticket, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", entity.ErrInvalidArgument)
	}

	return e.ticketStore.GetByOwner(ctx, owner)
}

// CanBuyWithToken reports whether a token purchase of the given quantity
// would currently succeed: the event must be purchasable and the buyer's
// balance and allowance must both cover the discounted total.
func (e *Engine) CanBuyWithToken(ctx context.Context, eventID uint64, buyer string, quantity int64) (bool, error) {
	if buyer == "" {
		return false, fmt.Errorf("%w: buyer is required", entity.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return false, fmt.Errorf("%w: quantity must be positive", entity.ErrInvalidArgument)
	}

	event, err := e.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return false, err
	}

	if !event.IsActive() || !event.HasInventory(quantity) {
		return false, nil
	}

	total, err := e.calc.TokenTotal(event.TokenPrice, quantity)
	if err != nil {
		return false, err
	}
	amount := decimal.NewFromInt(total)

	balance, err := e.tokenClient.BalanceOf(ctx, buyer)
	if err != nil {
		return false, fmt.Errorf("failed to check token balance: %w", err)
	}

	allowance, err := e.tokenClient.Allowance(ctx, buyer, e.account)
	if err != nil {
		return false, fmt.Errorf("failed to check token allowance: %w", err)
	}

	return balance.GreaterThanOrEqual(amount) && allowance.GreaterThanOrEqual(amount), nil
}
