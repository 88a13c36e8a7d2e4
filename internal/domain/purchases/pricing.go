package purchases

import (
	"context"
	"fmt"
	"math"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/store"
)

// Calculator derives payable totals from an event's unit prices. The token
// discount rate is fixed for the lifetime of the process. All methods are
// pure: no state is mutated.
type Calculator struct {
	eventStore      store.EventStore
	discountPercent int64
}

// NewCalculator creates a new Calculator with the given discount rate
func NewCalculator(eventStore store.EventStore, discountPercent int64) (*Calculator, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent %d out of range", entity.ErrInvalidArgument, discountPercent)
	}

	return &Calculator{
		eventStore:      eventStore,
		discountPercent: discountPercent,
	}, nil
}

// DiscountPercent returns the configured token discount rate
func (c *Calculator) DiscountPercent() int64 {
	return c.discountPercent
}

// NativeTotal computes the native-currency total for a quantity at the given
// unit price. No discount applies to native-currency purchases.
func (c *Calculator) NativeTotal(unitPrice, quantity int64) (int64, error) {
	return mulChecked(unitPrice, quantity)
}

// TokenTotal computes the token-currency total for a quantity at the given
// unit price, reduced by the discount rate.
//
// The order of operations is fixed: multiply the full quantity first, derive
// the discount amount with truncating integer division, then subtract. Both
// the purchase path and the display-only discounted price go through here,
// so the two can never diverge.
func (c *Calculator) TokenTotal(unitPrice, quantity int64) (int64, error) {
	base, err := mulChecked(unitPrice, quantity)
	if err != nil {
		return 0, err
	}

	scaled, err := mulChecked(base, c.discountPercent)
	if err != nil {
		return 0, err
	}

	discount := scaled / 100

	return base - discount, nil
}

// NativeTotalFor computes the native-currency total for a purchase of
// quantity units of the event
func (c *Calculator) NativeTotalFor(ctx context.Context, eventID uint64, quantity int64) (int64, error) {
	event, err := c.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	return c.NativeTotal(event.NativePrice, quantity)
}

// TokenTotalFor computes the discounted token-currency total for a purchase
// of quantity units of the event
func (c *Calculator) TokenTotalFor(ctx context.Context, eventID uint64, quantity int64) (int64, error) {
	event, err := c.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	return c.TokenTotal(event.TokenPrice, quantity)
}

// mulChecked multiplies two non-negative amounts, rejecting overflow
func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt64/b {
		return 0, fmt.Errorf("%w: amount overflow", entity.ErrInvalidArgument)
	}
	return a * b, nil
}
