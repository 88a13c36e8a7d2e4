package dependency

import (
	"context"
	"fmt"
	"sync"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

//go:generate moq -rm -out gen/ownership_registry_client_mock.go -pkg dependencygen -fmt goimports . OwnershipRegistryClient

// OwnershipRegistryClient represents an interface for interacting with the
// external ownership registry that assigns globally unique ticket
// identifiers and records their holders.
type OwnershipRegistryClient interface {
	// IssueIdentifier mints a new identifier bound to the owner. Identifiers
	// are globally unique and strictly increasing.
	IssueIdentifier(ctx context.Context, owner string) (uint64, error)

	// BindName associates a name with an identifier, write-once.
	BindName(ctx context.Context, id uint64, name string) error

	// OwnerOf returns the current holder of an identifier.
	OwnerOf(ctx context.Context, id uint64) (string, error)
}

// MemoryOwnershipRegistry is the in-process reference implementation of the
// ownership registry collaborator.
type MemoryOwnershipRegistry struct {
	mu     sync.Mutex
	nextID uint64
	owners map[uint64]string
	names  map[uint64]string
}

// NewMemoryOwnershipRegistry creates a new instance of MemoryOwnershipRegistry
func NewMemoryOwnershipRegistry() *MemoryOwnershipRegistry {
	return &MemoryOwnershipRegistry{
		owners: make(map[uint64]string),
		names:  make(map[uint64]string),
	}
}

// IssueIdentifier mints the next sequential identifier for the owner
func (r *MemoryOwnershipRegistry) IssueIdentifier(ctx context.Context, owner string) (uint64, error) {
	if owner == "" {
		return 0, fmt.Errorf("%w: owner is required", entity.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.owners[id] = owner

	return id, nil
}

// BindName associates a name with an identifier, write-once
func (r *MemoryOwnershipRegistry) BindName(ctx context.Context, id uint64, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.owners[id]; !ok {
		return fmt.Errorf("%w: identifier %d", entity.ErrNotFound, id)
	}
	if _, ok := r.names[id]; ok {
		return fmt.Errorf("%w: identifier %d", entity.ErrNameTaken, id)
	}

	r.names[id] = name

	return nil
}

// OwnerOf returns the current holder of an identifier
func (r *MemoryOwnershipRegistry) OwnerOf(ctx context.Context, id uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[id]
	if !ok {
		return "", fmt.Errorf("%w: identifier %d", entity.ErrNotFound, id)
	}

	return owner, nil
}

// NameOf returns the name bound to an identifier, or an empty string when no
// name has been bound yet
func (r *MemoryOwnershipRegistry) NameOf(id uint64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.names[id]
}
