package entity

import "errors"

var (
	// ErrNotFound indicates an error when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidArgument indicates malformed input: empty name, zero price,
	// zero quantity and the like
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized indicates that the caller is not the event owner
	// attempting an owner-only mutation
	ErrUnauthorized = errors.New("caller is not the event owner")

	// ErrEventInactive indicates that the event is not accepting purchases
	ErrEventInactive = errors.New("event is inactive")

	// ErrInsufficientInventory indicates that the requested quantity exceeds
	// the remaining inventory
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrInsufficientPayment indicates that the value supplied with a native
	// currency purchase does not cover the required total
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrPaymentFailed indicates that a token balance, allowance or transfer
	// check failed
	ErrPaymentFailed = errors.New("payment failed")

	// ErrNameTaken indicates an attempt to rebind a ticket identifier name
	ErrNameTaken = errors.New("identifier name already bound")
)
