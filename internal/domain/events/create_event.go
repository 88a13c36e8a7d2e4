package events

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
)

// CreateEventRequest contains the data needed to register a new event
type CreateEventRequest struct {
	Name        string
	NativePrice int64
	TokenPrice  int64
	TotalSupply int64
	BaseURI     string
	Creator     string
}

// Create registers a new event and returns it with its allocated ID.
// Validation runs strictly before ID allocation, so a failed call never
// consumes an ID and the sequence has no gaps.
func (s *Service) Create(ctx context.Context, req *CreateEventRequest) (*entity.Event, error) {
	logger.Debug(ctx, "Handling create event request",
		zap.String("name", req.Name),
		zap.String("creator", req.Creator))

	if err := validateCreateRequest(req); err != nil {
		logger.Error(ctx, "Failed to validate create event request", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	event := &entity.Event{
		Name:        req.Name,
		NativePrice: req.NativePrice,
		TokenPrice:  req.TokenPrice,
		TotalSupply: req.TotalSupply,
		Remaining:   req.TotalSupply,
		BaseURI:     req.BaseURI,
		Owner:       req.Creator,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.eventStore.Create(ctx, event)
	if err != nil {
		logger.Error(ctx, "Failed to create event", zap.Error(err))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info(ctx, "Registered new event",
		zap.Uint64("event_id", id),
		zap.String("name", event.Name),
		zap.String("owner", event.Owner),
		zap.Int64("total_supply", event.TotalSupply))

	if err := s.feedProducer.SendEventCreated(ctx, event); err != nil {
		logger.Error(ctx, "Failed to send event-created record to feed",
			zap.Uint64("event_id", id),
			zap.Error(err))
	}

	return event, nil
}

// validateCreateRequest validates the create event request parameters
func validateCreateRequest(req *CreateEventRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}
	if req.NativePrice <= 0 {
		return fmt.Errorf("%w: native price must be positive", entity.ErrInvalidArgument)
	}
	if req.TokenPrice <= 0 {
		return fmt.Errorf("%w: token price must be positive", entity.ErrInvalidArgument)
	}
	if req.TotalSupply <= 0 {
		return fmt.Errorf("%w: total supply must be positive", entity.ErrInvalidArgument)
	}
	if req.BaseURI == "" {
		return fmt.Errorf("%w: base URI is required", entity.ErrInvalidArgument)
	}
	if req.Creator == "" {
		return fmt.Errorf("%w: creator is required", entity.ErrInvalidArgument)
	}

	return nil
}
