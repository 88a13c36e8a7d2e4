package events

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
)

// SetActive toggles whether an event accepts purchases. Only the recorded
// owner may change the flag.
func (s *Service) SetActive(ctx context.Context, eventID uint64, caller string, active bool) (*entity.Event, error) {
	event, err := s.authorize(ctx, eventID, caller)
	if err != nil {
		logger.Error(ctx, "Set active authorization failed",
			zap.Uint64("event_id", eventID),
			zap.Error(err))
		return nil, err
	}

	event.Active = active
	event.UpdatedAt = time.Now()

	if err := s.eventStore.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	logger.Info(ctx, "Updated event status",
		zap.Uint64("event_id", eventID),
		zap.Bool("active", active))

	if err := s.feedProducer.SendEventStatusChanged(ctx, event); err != nil {
		logger.Error(ctx, "Failed to send event-status-changed record to feed",
			zap.Uint64("event_id", eventID),
			zap.Error(err))
	}

	return event, nil
}

// SetPrices updates both unit prices of an event. Only the recorded owner
// may change them, and both new prices must be positive.
func (s *Service) SetPrices(ctx context.Context, eventID uint64, caller string, nativePrice, tokenPrice int64) (*entity.Event, error) {
	event, err := s.authorize(ctx, eventID, caller)
	if err != nil {
		logger.Error(ctx, "Set prices authorization failed",
			zap.Uint64("event_id", eventID),
			zap.Error(err))
		return nil, err
	}

	if nativePrice <= 0 {
		return nil, fmt.Errorf("%w: native price must be positive", entity.ErrInvalidArgument)
	}
	if tokenPrice <= 0 {
		return nil, fmt.Errorf("%w: token price must be positive", entity.ErrInvalidArgument)
	}

	event.NativePrice = nativePrice
	event.TokenPrice = tokenPrice
	event.UpdatedAt = time.Now()

	if err := s.eventStore.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event prices: %w", err)
	}

	logger.Info(ctx, "Updated event prices",
		zap.Uint64("event_id", eventID),
		zap.Int64("native_price", nativePrice),
		zap.Int64("token_price", tokenPrice))

	if err := s.feedProducer.SendPricesUpdated(ctx, event); err != nil {
		logger.Error(ctx, "Failed to send price-updated record to feed",
			zap.Uint64("event_id", eventID),
			zap.Error(err))
	}

	return event, nil
}

// authorize loads the event and verifies the caller is its recorded owner
func (s *Service) authorize(ctx context.Context, eventID uint64, caller string) (*entity.Event, error) {
	if caller == "" {
		return nil, fmt.Errorf("%w: caller is required", entity.ErrInvalidArgument)
	}

	event, err := s.eventStore.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsOwnedBy(caller) {
		return nil, fmt.Errorf("%w: event %d", entity.ErrUnauthorized, eventID)
	}

	return event, nil
}
