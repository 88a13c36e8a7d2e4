package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

// TicketStore implements the store.TicketStore interface in memory
type TicketStore struct {
	s *Store
}

// Create stores a newly minted ticket
func (ts *TicketStore) Create(ctx context.Context, ticket *entity.Ticket) error {
	release := ts.s.acquire(ctx)
	defer release()

	if _, ok := ts.s.tickets[ticket.ID]; ok {
		return fmt.Errorf("%w: ticket %d", entity.ErrNameTaken, ticket.ID)
	}

	ts.s.tickets[ticket.ID] = copyTicket(ticket)

	return nil
}

// GetByID returns the ticket with the given identifier
func (ts *TicketStore) GetByID(ctx context.Context, id uint64) (*entity.Ticket, error) {
	release := ts.s.acquire(ctx)
	defer release()

	ticket, ok := ts.s.tickets[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return copyTicket(ticket), nil
}

// GetByOwner returns all tickets held by an account, ordered by identifier
func (ts *TicketStore) GetByOwner(ctx context.Context, owner string) ([]*entity.Ticket, error) {
	release := ts.s.acquire(ctx)
	defer release()

	var tickets []*entity.Ticket
	for _, ticket := range ts.s.tickets {
		if ticket.Owner == owner {
			tickets = append(tickets, copyTicket(ticket))
		}
	}

	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })

	return tickets, nil
}
