package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

func newEvent(remaining int64) *entity.Event {
	return &entity.Event{
		Name:        "gig",
		NativePrice: 200,
		TokenPrice:  100,
		TotalSupply: remaining,
		Remaining:   remaining,
		BaseURI:     "ipfs://gig",
		Owner:       "alice",
		Active:      true,
	}
}

func TestEventStore_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	first, err := st.EventStore().Create(ctx, newEvent(10))
	require.NoError(t, err)
	second, err := st.EventStore().Create(ctx, newEvent(10))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(1), second)
}

func TestEventStore_GetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	id, err := st.EventStore().Create(ctx, newEvent(10))
	require.NoError(t, err)

	event, err := st.EventStore().GetByID(ctx, id)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the registry
	event.Remaining = 0

	stored, err := st.EventStore().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Remaining)
}

func TestEventStore_DebitInventory(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	id, err := st.EventStore().Create(ctx, newEvent(5))
	require.NoError(t, err)

	require.NoError(t, st.EventStore().DebitInventory(ctx, id, 3))

	err = st.EventStore().DebitInventory(ctx, id, 3)
	assert.ErrorIs(t, err, entity.ErrInsufficientInventory)

	event, err := st.EventStore().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), event.Remaining)

	err = st.EventStore().DebitInventory(ctx, 99, 1)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPurchaseStore_Units(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	units, err := st.PurchaseStore().UnitsPurchased(ctx, 0, "buyer")
	require.NoError(t, err)
	assert.Equal(t, int64(0), units)

	require.NoError(t, st.PurchaseStore().AddUnits(ctx, 0, "buyer", 2))
	require.NoError(t, st.PurchaseStore().AddUnits(ctx, 0, "buyer", 3))

	units, err = st.PurchaseStore().UnitsPurchased(ctx, 0, "buyer")
	require.NoError(t, err)
	assert.Equal(t, int64(5), units)
}

func TestPurchaseStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	purchase := &entity.Purchase{
		ID:        uuid.New(),
		Buyer:     "buyer",
		EventID:   0,
		Quantity:  2,
		TotalPaid: 400,
		Currency:  entity.CurrencyNative,
		TicketIDs: []uint64{0, 1},
	}
	require.NoError(t, st.PurchaseStore().Create(ctx, purchase))

	stored, err := st.PurchaseStore().GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, purchase.TicketIDs, stored.TicketIDs)

	_, err = st.PurchaseStore().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestTicketStore(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	require.NoError(t, st.TicketStore().Create(ctx, &entity.Ticket{ID: 1, EventID: 0, Owner: "buyer", URI: "ipfs://gig/1.json"}))
	require.NoError(t, st.TicketStore().Create(ctx, &entity.Ticket{ID: 0, EventID: 0, Owner: "buyer", URI: "ipfs://gig/0.json"}))
	require.NoError(t, st.TicketStore().Create(ctx, &entity.Ticket{ID: 2, EventID: 0, Owner: "other", URI: "ipfs://gig/2.json"}))

	// Ticket identifiers are unique
	err := st.TicketStore().Create(ctx, &entity.Ticket{ID: 1, EventID: 0, Owner: "buyer"})
	require.Error(t, err)

	tickets, err := st.TicketStore().GetByOwner(ctx, "buyer")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, uint64(0), tickets[0].ID)
	assert.Equal(t, uint64(1), tickets[1].ID)

	ticket, err := st.TicketStore().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "other", ticket.Owner)

	_, err = st.TicketStore().GetByID(ctx, 42)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

// TestTransactor_RollbackOnError verifies the journal restores every piece
// of state touched inside a failed transaction.
func TestTransactor_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	id, err := st.EventStore().Create(ctx, newEvent(5))
	require.NoError(t, err)

	failure := errors.New("boom")
	err = st.Transactor().Exec(ctx, func(txCtx context.Context) error {
		if err := st.EventStore().DebitInventory(txCtx, id, 3); err != nil {
			return err
		}
		if err := st.PurchaseStore().AddUnits(txCtx, id, "buyer", 3); err != nil {
			return err
		}
		if err := st.TicketStore().Create(txCtx, &entity.Ticket{ID: 0, EventID: id, Owner: "buyer"}); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	event, err := st.EventStore().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), event.Remaining)

	units, err := st.PurchaseStore().UnitsPurchased(ctx, id, "buyer")
	require.NoError(t, err)
	assert.Equal(t, int64(0), units)

	_, err = st.TicketStore().GetByID(ctx, 0)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestTransactor_CommitOnSuccess(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	id, err := st.EventStore().Create(ctx, newEvent(5))
	require.NoError(t, err)

	err = st.Transactor().Exec(ctx, func(txCtx context.Context) error {
		return st.EventStore().DebitInventory(txCtx, id, 2)
	})
	require.NoError(t, err)

	event, err := st.EventStore().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), event.Remaining)
}

func TestTransactor_RejectsNesting(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	err := st.Transactor().Exec(ctx, func(txCtx context.Context) error {
		return st.Transactor().Exec(txCtx, func(context.Context) error { return nil })
	})
	require.Error(t, err)
}
