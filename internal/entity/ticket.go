package entity

import (
	"time"
)

// Ticket represents one purchased unit of an event. The identifier is issued
// by the external ownership registry and is globally unique and strictly
// increasing across all events.
type Ticket struct {
	ID       uint64
	EventID  uint64
	Owner    string
	URI      string
	IssuedAt time.Time
}
