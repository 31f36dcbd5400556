package repository

import (
	"context"
	"time"

	"github.com/mtlprog/tailtales/internal/domain"
)

// UpdateFunc mutates a view in place. Returning an error aborts the update.
type UpdateFunc func(v *domain.View) error

// ViewStore persists page views between requests.
type ViewStore interface {
	// Create stores a new view.
	Create(ctx context.Context, v *domain.View) error

	// Get returns the view with the given id or domain.ErrViewNotFound.
	Get(ctx context.Context, id string) (*domain.View, error)

	// Update applies fn to the stored view atomically and returns the result.
	// UpdatedAt is set to now after fn succeeds.
	Update(ctx context.Context, id string, now time.Time, fn UpdateFunc) (*domain.View, error)

	// DeleteIdleBefore removes views not updated since t and reports how many.
	DeleteIdleBefore(ctx context.Context, t time.Time) (int64, error)
}

var (
	_ ViewStore = (*MemoryViewStore)(nil)
	_ ViewStore = (*ViewRepository)(nil)
)
