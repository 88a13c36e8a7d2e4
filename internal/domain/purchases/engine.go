package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/dependency"
	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
	"github.com/0xmukeshr/ticketdapp/internal/producers"
	"github.com/0xmukeshr/ticketdapp/internal/store"
)

// Engine orchestrates ticket purchases: it validates the event and quantity,
// computes the payable total, settles payment with the external collaborator
// for the chosen currency, and then commits inventory, ownership counters,
// ticket identifiers and the receipt as one atomic unit.
type Engine struct {
	eventStore        store.EventStore
	ticketStore       store.TicketStore
	purchaseStore     store.PurchaseStore
	transactor        store.Transactor
	calc              *Calculator
	ownershipRegistry dependency.OwnershipRegistryClient
	tokenClient       dependency.TokenClient
	nativeClient      dependency.NativeTransferClient
	feedProducer      producers.FeedProducerI
	account           string
}

// NewEngine creates a new Engine instance. The account is the engine's own
// identity: token allowances are granted to it, and native value supplied
// with a purchase is escrowed on it before the call.
func NewEngine(
	eventStore store.EventStore,
	ticketStore store.TicketStore,
	purchaseStore store.PurchaseStore,
	transactor store.Transactor,
	calc *Calculator,
	ownershipRegistry dependency.OwnershipRegistryClient,
	tokenClient dependency.TokenClient,
	nativeClient dependency.NativeTransferClient,
	feedProducer producers.FeedProducerI,
	account string,
) *Engine {
	return &Engine{
		eventStore:        eventStore,
		ticketStore:       ticketStore,
		purchaseStore:     purchaseStore,
		transactor:        transactor,
		calc:              calc,
		ownershipRegistry: ownershipRegistry,
		tokenClient:       tokenClient,
		nativeClient:      nativeClient,
		feedProducer:      feedProducer,
		account:           account,
	}
}

// validatePurchase runs every local check that must pass before any value
// moves or any state mutates
func (e *Engine) validatePurchase(ctx context.Context, eventID uint64, buyer string, quantity int64) (*entity.Event, error) {
	if buyer == "" {
		return nil, fmt.Errorf("%w: buyer is required", entity.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", entity.ErrInvalidArgument)
	}

	event, err := e.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsActive() {
		return nil, fmt.Errorf("%w: event %d", entity.ErrEventInactive, eventID)
	}

	if !event.HasInventory(quantity) {
		return nil, fmt.Errorf("%w: requested %d, remaining %d",
			entity.ErrInsufficientInventory, quantity, event.Remaining)
	}

	return event, nil
}

// commitPurchase applies every state mutation of a paid purchase as one
// atomic unit: inventory debit, ownership counter bump, identifier issuance
// with name binding, and the receipt. If any step fails the journal restores
// registry state and the purchase reports failure with no committed effect.
func (e *Engine) commitPurchase(
	ctx context.Context,
	event *entity.Event,
	buyer string,
	quantity int64,
	total int64,
	currency entity.Currency,
) (*entity.Purchase, error) {
	now := time.Now()
	purchase := &entity.Purchase{
		ID:        uuid.New(),
		Buyer:     buyer,
		EventID:   event.ID,
		Quantity:  quantity,
		TotalPaid: total,
		Currency:  currency,
		CreatedAt: now,
	}

	err := e.transactor.Exec(ctx, func(txCtx context.Context) error {
		if err := e.eventStore.DebitInventory(txCtx, event.ID, quantity); err != nil {
			return err
		}

		if err := e.purchaseStore.AddUnits(txCtx, event.ID, buyer, quantity); err != nil {
			return fmt.Errorf("failed to record purchased units: %w", err)
		}

		for i := int64(0); i < quantity; i++ {
			id, err := e.ownershipRegistry.IssueIdentifier(txCtx, buyer)
			if err != nil {
				return fmt.Errorf("failed to issue ticket identifier: %w", err)
			}

			uri := fmt.Sprintf("%s/%d.json", event.BaseURI, id)
			if err := e.ownershipRegistry.BindName(txCtx, id, uri); err != nil {
				return fmt.Errorf("failed to bind ticket name: %w", err)
			}

			ticket := &entity.Ticket{
				ID:       id,
				EventID:  event.ID,
				Owner:    buyer,
				URI:      uri,
				IssuedAt: now,
			}
			if err := e.ticketStore.Create(txCtx, ticket); err != nil {
				return fmt.Errorf("failed to store ticket: %w", err)
			}

			purchase.TicketIDs = append(purchase.TicketIDs, id)
		}

		if err := e.purchaseStore.Create(txCtx, purchase); err != nil {
			return fmt.Errorf("failed to store purchase: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The feed is observability, not part of the atomic unit: a producer
	// failure never fails a committed purchase.
	if err := e.feedProducer.SendTicketPurchased(ctx, purchase); err != nil {
		logger.Error(ctx, "Failed to send ticket-purchased record to feed",
			zap.String("purchase_id", purchase.ID.String()),
			zap.Error(err))
	}

	return purchase, nil
}
