// Package memory implements the store interfaces over process memory. The
// durable ledger lives behind the external ownership registry; this registry
// only has to survive for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/store"
)

type txKey struct{}

type unitKey struct {
	eventID uint64
	buyer   string
}

// Store implements all data stores over shared in-process state guarded by a
// single mutex. Readers always observe fully committed state: every public
// operation holds the lock for its whole duration, and Transactor.Exec holds
// it across the entire mutation block.
type Store struct {
	mu sync.Mutex

	events      map[uint64]*entity.Event
	nextEventID uint64
	tickets     map[uint64]*entity.Ticket
	purchases   map[uuid.UUID]*entity.Purchase
	units       map[unitKey]int64

	eventStore    store.EventStore
	ticketStore   store.TicketStore
	purchaseStore store.PurchaseStore
	transactor    store.Transactor
}

// NewStore creates a new instance of Store
func NewStore() *Store {
	s := &Store{
		events:    make(map[uint64]*entity.Event),
		tickets:   make(map[uint64]*entity.Ticket),
		purchases: make(map[uuid.UUID]*entity.Purchase),
		units:     make(map[unitKey]int64),
	}
	s.eventStore = &EventStore{s: s}
	s.ticketStore = &TicketStore{s: s}
	s.purchaseStore = &PurchaseStore{s: s}
	s.transactor = &Transactor{s: s}
	return s
}

// EventStore returns the EventStore implementation
func (s *Store) EventStore() store.EventStore {
	return s.eventStore
}

// TicketStore returns the TicketStore implementation
func (s *Store) TicketStore() store.TicketStore {
	return s.ticketStore
}

// PurchaseStore returns the PurchaseStore implementation
func (s *Store) PurchaseStore() store.PurchaseStore {
	return s.purchaseStore
}

// Transactor returns the Transactor implementation
func (s *Store) Transactor() store.Transactor {
	return s.transactor
}

// acquire takes the store lock unless the context already runs inside
// Transactor.Exec, which holds it for the whole transaction. Returns the
// matching release function.
func (s *Store) acquire(ctx context.Context) func() {
	if ctx != nil && ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// snapshot captures a deep copy of all mutable state
func (s *Store) snapshot() *snapshot {
	snap := &snapshot{
		events:      make(map[uint64]*entity.Event, len(s.events)),
		nextEventID: s.nextEventID,
		tickets:     make(map[uint64]*entity.Ticket, len(s.tickets)),
		purchases:   make(map[uuid.UUID]*entity.Purchase, len(s.purchases)),
		units:       make(map[unitKey]int64, len(s.units)),
	}
	for id, event := range s.events {
		snap.events[id] = copyEvent(event)
	}
	for id, ticket := range s.tickets {
		snap.tickets[id] = copyTicket(ticket)
	}
	for id, purchase := range s.purchases {
		snap.purchases[id] = copyPurchase(purchase)
	}
	for key, count := range s.units {
		snap.units[key] = count
	}
	return snap
}

// restore puts the captured state back in place
func (s *Store) restore(snap *snapshot) {
	s.events = snap.events
	s.nextEventID = snap.nextEventID
	s.tickets = snap.tickets
	s.purchases = snap.purchases
	s.units = snap.units
}

type snapshot struct {
	events      map[uint64]*entity.Event
	nextEventID uint64
	tickets     map[uint64]*entity.Ticket
	purchases   map[uuid.UUID]*entity.Purchase
	units       map[unitKey]int64
}

// Transactor implements store.Transactor with a state journal: the whole
// pre-transaction state is captured before fn runs and restored if fn fails,
// reconstructing all-or-nothing semantics without a database transaction.
type Transactor struct {
	s *Store
}

// Exec runs fn atomically against the store
func (t *Transactor) Exec(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx != nil && ctx.Value(txKey{}) != nil {
		return fmt.Errorf("nested transaction is not supported")
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	snap := t.s.snapshot()
	txCtx := context.WithValue(ctx, txKey{}, struct{}{})

	if err := fn(txCtx); err != nil {
		t.s.restore(snap)
		return err
	}

	return nil
}

func copyEvent(event *entity.Event) *entity.Event {
	clone := *event
	return &clone
}

func copyTicket(ticket *entity.Ticket) *entity.Ticket {
	clone := *ticket
	return &clone
}

func copyPurchase(purchase *entity.Purchase) *entity.Purchase {
	clone := *purchase
	clone.TicketIDs = append([]uint64(nil), purchase.TicketIDs...)
	return &clone
}
