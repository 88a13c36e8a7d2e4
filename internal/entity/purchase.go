package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency labels the payment medium used for a purchase.
type Currency string

const (
	CurrencyUnspecified Currency = "UNSPECIFIED"
	CurrencyNative      Currency = "NATIVE"
	CurrencyToken       Currency = "TOKEN"
)

// Purchase is the receipt of a completed ticket sale: who bought, from which
// event, how many units, what was paid and in which currency, and the ticket
// identifiers minted for it.
type Purchase struct {
	ID        uuid.UUID
	Buyer     string
	EventID   uint64
	Quantity  int64
	TotalPaid int64
	Currency  Currency
	TicketIDs []uint64
	CreatedAt time.Time
}

func (p *Purchase) IsNative() bool {
	return p.Currency == CurrencyNative
}

func (p *Purchase) IsToken() bool {
	return p.Currency == CurrencyToken
}
