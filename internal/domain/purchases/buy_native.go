package purchases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
)

// NativePurchaseRequest contains the data of a primary-currency purchase.
// ValueSupplied is the native value the caller escrowed with the engine's
// account alongside the request.
type NativePurchaseRequest struct {
	Buyer         string
	EventID       uint64
	Quantity      int64
	ValueSupplied int64
}

// BuyWithNative processes a primary-currency purchase: it validates the
// request, forwards exactly the required amount to the event owner, refunds
// any excess to the buyer, and commits the purchase atomically.
func (e *Engine) BuyWithNative(ctx context.Context, req *NativePurchaseRequest) (*entity.Purchase, error) {
	logger.Debug(ctx, "Handling native purchase request",
		zap.String("buyer", req.Buyer),
		zap.Uint64("event_id", req.EventID),
		zap.Int64("quantity", req.Quantity))

	event, err := e.validatePurchase(ctx, req.EventID, req.Buyer, req.Quantity)
	if err != nil {
		logger.Error(ctx, "Native purchase validation failed", zap.Error(err))
		return nil, err
	}

	if req.ValueSupplied < 0 {
		return nil, fmt.Errorf("%w: supplied value must not be negative", entity.ErrInvalidArgument)
	}

	total, err := e.calc.NativeTotal(event.NativePrice, req.Quantity)
	if err != nil {
		return nil, err
	}

	if req.ValueSupplied < total {
		return nil, fmt.Errorf("%w: supplied %d, required %d",
			entity.ErrInsufficientPayment, req.ValueSupplied, total)
	}

	// Forward exactly the required amount to the event owner, then return
	// the excess to the buyer. Both transfers complete before any state
	// mutation, so a failure leaves the registry as at entry.
	if err := e.nativeClient.Transfer(ctx, e.account, event.Owner, decimal.NewFromInt(total)); err != nil {
		logger.Error(ctx, "Failed to forward native payment to event owner",
			zap.Uint64("event_id", event.ID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: failed to forward payment to owner: %w", entity.ErrPaymentFailed, err)
	}

	if refund := req.ValueSupplied - total; refund > 0 {
		if err := e.nativeClient.Transfer(ctx, e.account, req.Buyer, decimal.NewFromInt(refund)); err != nil {
			logger.Error(ctx, "Failed to refund excess native value to buyer",
				zap.String("buyer", req.Buyer),
				zap.Int64("refund", refund),
				zap.Error(err))
			return nil, fmt.Errorf("%w: failed to refund excess value: %w", entity.ErrPaymentFailed, err)
		}
	}

	purchase, err := e.commitPurchase(ctx, event, req.Buyer, req.Quantity, total, entity.CurrencyNative)
	if err != nil {
		logger.Error(ctx, "Failed to commit native purchase", zap.Error(err))
		return nil, err
	}

	logger.Info(ctx, "Processed native purchase",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("buyer", purchase.Buyer),
		zap.Uint64("event_id", purchase.EventID),
		zap.Int64("quantity", purchase.Quantity),
		zap.Int64("total_paid", purchase.TotalPaid))

	return purchase, nil
}
