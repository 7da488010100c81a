package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/repository"
)

// Ledger tracks who may run a transformation: one free use per user, then
// admin-granted paid credits. All mutations for one user are serialized by a
// per-user mutex so that two concurrent attempts can never both be admitted
// against a single remaining allowance.
type Ledger struct {
	repo repository.EntitlementRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewLedger(repo repository.EntitlementRepository) *Ledger {
	return &Ledger{repo: repo, locks: map[int64]*sync.Mutex{}}
}

func (l *Ledger) userLock(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk, ok := l.locks[userID]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[userID] = lk
	}
	return lk
}

// get loads the record, creating the zero-value record for unseen users.
func (l *Ledger) get(ctx context.Context, userID int64) (*model.Entitlement, error) {
	e, err := l.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.Entitlement{UserID: userID}, nil
		}
		return nil, err
	}
	return e, nil
}

func access(e *model.Entitlement) (bool, model.Source) {
	if !e.FreeUsed {
		return true, model.SourceFree
	}
	if e.PaidRemaining > 0 {
		return true, model.SourcePaid
	}
	return false, model.SourceNone
}

func spend(e *model.Entitlement, source model.Source) {
	switch source {
	case model.SourceFree:
		e.FreeUsed = true
	case model.SourcePaid:
		if e.PaidRemaining > 0 {
			e.PaidRemaining--
		}
	}
}

// CheckAccess reports whether the user may run a transformation and which
// allowance would pay for it. The free use is always preferred over credits.
func (l *Ledger) CheckAccess(ctx context.Context, userID int64) (bool, model.Source, error) {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	e, err := l.get(ctx, userID)
	if err != nil {
		return false, model.SourceNone, err
	}
	allowed, source := access(e)
	return allowed, source, nil
}

// RegisterUse spends one allowance of the given source. Spending FREE twice
// is a no-op; spending PAID at zero leaves the balance at zero.
func (l *Ledger) RegisterUse(ctx context.Context, userID int64, source model.Source) error {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	e, err := l.get(ctx, userID)
	if err != nil {
		return err
	}
	spend(e, source)
	return l.repo.Save(ctx, e)
}

// Consume is the atomic check-then-spend used on every validated attempt.
// Either the attempt is admitted and one allowance is gone, or it is denied
// and nothing changes.
func (l *Ledger) Consume(ctx context.Context, userID int64) (model.Source, bool, error) {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	e, err := l.get(ctx, userID)
	if err != nil {
		return model.SourceNone, false, err
	}
	allowed, source := access(e)
	if !allowed {
		return model.SourceNone, false, nil
	}
	spend(e, source)
	if err := l.repo.Save(ctx, e); err != nil {
		return model.SourceNone, false, err
	}
	return source, true, nil
}

// GrantCredits adds count paid credits to the user. It also marks the free
// use as spent: once a user has been provisioned, the trial is not meant to
// come back.
func (l *Ledger) GrantCredits(ctx context.Context, userID int64, count int) error {
	if count <= 0 {
		return fmt.Errorf("credit count must be positive, got %d", count)
	}
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	e, err := l.get(ctx, userID)
	if err != nil {
		return err
	}
	e.PaidRemaining += count
	e.FreeUsed = true
	return l.repo.Save(ctx, e)
}

// Status reports the user's entitlement state without touching it.
func (l *Ledger) Status(ctx context.Context, userID int64) (freeUsed bool, paidRemaining int, err error) {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	e, err := l.get(ctx, userID)
	if err != nil {
		return false, 0, err
	}
	return e.FreeUsed, e.PaidRemaining, nil
}
