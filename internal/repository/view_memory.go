package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mtlprog/tailtales/internal/domain"
)

// MemoryViewStore keeps views in process memory. It is the default store
// for a single instance.
type MemoryViewStore struct {
	mu    sync.Mutex
	views map[string]domain.View
}

// NewMemoryViewStore creates an empty MemoryViewStore.
func NewMemoryViewStore() *MemoryViewStore {
	return &MemoryViewStore{
		views: make(map[string]domain.View),
	}
}

// Create stores a copy of v.
func (s *MemoryViewStore) Create(ctx context.Context, v *domain.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[v.ID]; ok {
		return fmt.Errorf("view %s already exists", v.ID)
	}
	s.views[v.ID] = *v
	return nil
}

// Get returns a copy of the stored view.
func (s *MemoryViewStore) Get(ctx context.Context, id string) (*domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[id]
	if !ok {
		return nil, domain.ErrViewNotFound
	}
	return &v, nil
}

// Update runs fn on a copy under the store lock and saves it on success.
func (s *MemoryViewStore) Update(ctx context.Context, id string, now time.Time, fn UpdateFunc) (*domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[id]
	if !ok {
		return nil, domain.ErrViewNotFound
	}

	if err := fn(&v); err != nil {
		return nil, err
	}
	v.UpdatedAt = now
	s.views[id] = v

	return &v, nil
}

// DeleteIdleBefore removes views not updated since t.
func (s *MemoryViewStore) DeleteIdleBefore(ctx context.Context, t time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, v := range s.views {
		if v.IsIdleSince(t) {
			delete(s.views, id)
			deleted++
		}
	}
	return deleted, nil
}

// Len returns the number of stored views.
func (s *MemoryViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
