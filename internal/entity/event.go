package entity

import (
	"time"
)

// Event represents a sellable offering with a fixed total inventory and two
// parallel unit prices, one per supported currency. Prices are kept in the
// smallest unit of their currency.
type Event struct {
	ID          uint64
	Name        string
	NativePrice int64
	TokenPrice  int64
	TotalSupply int64
	Remaining   int64
	BaseURI     string
	Owner       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Event) IsActive() bool {
	return e.Active
}

func (e *Event) IsSoldOut() bool {
	return e.Remaining == 0
}

// HasInventory reports whether the event can still cover a purchase of the
// given quantity.
func (e *Event) HasInventory(quantity int64) bool {
	return e.Remaining >= quantity
}

func (e *Event) IsOwnedBy(account string) bool {
	return e.Owner == account
}
