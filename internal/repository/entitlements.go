package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
)

// ErrNotFound is returned when a user has no entitlement record yet.
var ErrNotFound = errors.New("entitlement not found")

// EntitlementRepository abstracts persistence of per-user entitlements.
type EntitlementRepository interface {
	Get(ctx context.Context, userID int64) (*model.Entitlement, error)
	Save(ctx context.Context, e *model.Entitlement) error
}

// MemoryEntitlementRepository keeps entitlements in a process-local map.
// It is the default backend; durability across restarts is out of scope.
type MemoryEntitlementRepository struct {
	mu   sync.Mutex
	data map[int64]*model.Entitlement
}

func NewMemoryEntitlementRepository() *MemoryEntitlementRepository {
	return &MemoryEntitlementRepository{data: map[int64]*model.Entitlement{}}
}

// Get retrieves the entitlement for the user or returns ErrNotFound.
func (r *MemoryEntitlementRepository) Get(ctx context.Context, userID int64) (*model.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.data[userID]; ok {
		copy := *e
		return &copy, nil
	}
	return nil, ErrNotFound
}

// Save persists the entitlement for a user.
func (r *MemoryEntitlementRepository) Save(ctx context.Context, e *model.Entitlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *e
	r.data[e.UserID] = &copy
	return nil
}
