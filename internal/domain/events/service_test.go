package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/domain/purchases"
	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
	producersgen "github.com/0xmukeshr/ticketdapp/internal/producers/gen"
	"github.com/0xmukeshr/ticketdapp/internal/store/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store, *producersgen.FeedProducerIMock) {
	logger.SetLogger(zap.NewNop())

	st := memory.NewStore()

	calc, err := purchases.NewCalculator(st.EventStore(), 15)
	require.NoError(t, err)

	feed := &producersgen.FeedProducerIMock{
		SendEventCreatedFunc:       func(ctx context.Context, event *entity.Event) error { return nil },
		SendEventStatusChangedFunc: func(ctx context.Context, event *entity.Event) error { return nil },
		SendPricesUpdatedFunc:      func(ctx context.Context, event *entity.Event) error { return nil },
	}

	return NewService(st.EventStore(), calc, feed), st, feed
}

func validCreateRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Name:        "concert",
		NativePrice: 200,
		TokenPrice:  100,
		TotalSupply: 50,
		BaseURI:     "ipfs://concert",
		Creator:     "alice",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, feed := newTestService(t)

	event, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), event.ID)
	assert.Equal(t, int64(50), event.Remaining)
	assert.True(t, event.Active)
	assert.Equal(t, "alice", event.Owner)
	assert.Len(t, feed.SendEventCreatedCalls(), 1)
}

func TestService_Create_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(req *CreateEventRequest)
	}{
		{"empty name", func(req *CreateEventRequest) { req.Name = "" }},
		{"zero native price", func(req *CreateEventRequest) { req.NativePrice = 0 }},
		{"negative native price", func(req *CreateEventRequest) { req.NativePrice = -1 }},
		{"zero token price", func(req *CreateEventRequest) { req.TokenPrice = 0 }},
		{"zero total supply", func(req *CreateEventRequest) { req.TotalSupply = 0 }},
		{"empty base URI", func(req *CreateEventRequest) { req.BaseURI = "" }},
		{"empty creator", func(req *CreateEventRequest) { req.Creator = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _, feed := newTestService(t)

			req := validCreateRequest()
			tc.mutate(req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, entity.ErrInvalidArgument)
			assert.Empty(t, feed.SendEventCreatedCalls())
		})
	}
}

// TestService_Create_SequentialIDs verifies IDs increment by exactly one per
// successful call and are never consumed by failed calls.
func TestService_Create_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.ID)

	invalid := validCreateRequest()
	invalid.Name = ""
	_, err = svc.Create(ctx, invalid)
	require.Error(t, err)

	second, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), second.ID)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	event, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	details, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, "concert", details.Event.Name)
	// unit token price 100 at 15% discount
	assert.Equal(t, int64(85), details.DiscountedTokenPrice)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Remaining(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	event, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	remaining, err := svc.Remaining(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), remaining)

	_, err = svc.Remaining(ctx, 99)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_SetActive(t *testing.T) {
	ctx := context.Background()
	svc, st, feed := newTestService(t)

	event, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.SetActive(ctx, event.ID, "alice", false)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Len(t, feed.SendEventStatusChangedCalls(), 1)

	// Only the recorded owner may toggle the flag
	_, err = svc.SetActive(ctx, event.ID, "mallory", true)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	stored, err := st.EventStore().GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	_, err = svc.SetActive(ctx, 99, "alice", true)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_SetPrices(t *testing.T) {
	ctx := context.Background()
	svc, st, feed := newTestService(t)

	event, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.SetPrices(ctx, event.ID, "alice", 300, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(300), updated.NativePrice)
	assert.Equal(t, int64(150), updated.TokenPrice)
	assert.Len(t, feed.SendPricesUpdatedCalls(), 1)

	_, err = svc.SetPrices(ctx, event.ID, "mallory", 1, 1)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = svc.SetPrices(ctx, event.ID, "alice", 0, 150)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = svc.SetPrices(ctx, event.ID, "alice", 300, -5)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	// Failed attempts leave the stored prices unchanged
	stored, err := st.EventStore().GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), stored.NativePrice)
	assert.Equal(t, int64(150), stored.TokenPrice)
}
