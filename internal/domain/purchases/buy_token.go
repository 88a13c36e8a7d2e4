package purchases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
)

// TokenPurchaseRequest contains the data of a secondary-currency purchase.
// Payment is pulled from the buyer via the token collaborator, within the
// allowance granted to the engine's account.
type TokenPurchaseRequest struct {
	Buyer    string
	EventID  uint64
	Quantity int64
}

// BuyWithToken processes a secondary-currency purchase: it validates the
// request, verifies the buyer's balance and allowance cover the discounted
// total, pulls exactly that amount to the event owner, and commits the
// purchase atomically. The transfer happens strictly after all local
// validation and before the inventory debit, so a transfer failure leaves
// state as at entry.
func (e *Engine) BuyWithToken(ctx context.Context, req *TokenPurchaseRequest) (*entity.Purchase, error) {
	logger.Debug(ctx, "Handling token purchase request",
		zap.String("buyer", req.Buyer),
		zap.Uint64("event_id", req.EventID),
		zap.Int64("quantity", req.Quantity))

	event, err := e.validatePurchase(ctx, req.EventID, req.Buyer, req.Quantity)
	if err != nil {
		logger.Error(ctx, "Token purchase validation failed", zap.Error(err))
		return nil, err
	}

	total, err := e.calc.TokenTotal(event.TokenPrice, req.Quantity)
	if err != nil {
		return nil, err
	}
	amount := decimal.NewFromInt(total)

	balance, err := e.tokenClient.BalanceOf(ctx, req.Buyer)
	if err != nil {
		return nil, fmt.Errorf("%w: balance check: %w", entity.ErrPaymentFailed, err)
	}
	if balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: balance %s below required %s",
			entity.ErrPaymentFailed, balance, amount)
	}

	allowance, err := e.tokenClient.Allowance(ctx, req.Buyer, e.account)
	if err != nil {
		return nil, fmt.Errorf("%w: allowance check: %w", entity.ErrPaymentFailed, err)
	}
	if allowance.LessThan(amount) {
		return nil, fmt.Errorf("%w: allowance %s below required %s",
			entity.ErrPaymentFailed, allowance, amount)
	}

	if err := e.tokenClient.TransferFrom(ctx, req.Buyer, event.Owner, amount); err != nil {
		logger.Error(ctx, "Token transfer failed",
			zap.String("buyer", req.Buyer),
			zap.Uint64("event_id", event.ID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: transfer: %w", entity.ErrPaymentFailed, err)
	}

	purchase, err := e.commitPurchase(ctx, event, req.Buyer, req.Quantity, total, entity.CurrencyToken)
	if err != nil {
		logger.Error(ctx, "Failed to commit token purchase", zap.Error(err))
		return nil, err
	}

	logger.Info(ctx, "Processed token purchase",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("buyer", purchase.Buyer),
		zap.Uint64("event_id", purchase.EventID),
		zap.Int64("quantity", purchase.Quantity),
		zap.Int64("total_paid", purchase.TotalPaid))

	return purchase, nil
}
