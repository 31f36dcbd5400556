package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/metrics"
	"github.com/mtlprog/tailtales/internal/repository"
)

// ViewService applies user interactions to page views.
type ViewService struct {
	store repository.ViewStore
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a ViewService.
type Option func(*ViewService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *ViewService) {
		s.now = now
	}
}

// NewViewService creates a new ViewService. Views idle for longer than ttl
// are treated as gone; a zero ttl keeps them forever.
func NewViewService(store repository.ViewStore, ttl time.Duration, opts ...Option) *ViewService {
	s := &ViewService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time.
func (s *ViewService) Now() time.Time {
	return s.now()
}

// Open starts a new view in its initial state.
func (s *ViewService) Open(ctx context.Context) (*domain.View, error) {
	v := domain.NewView(uuid.NewString(), s.now())

	if err := s.store.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	slog.Debug("view opened", "view_id", v.ID, "event", domain.ViewEventOpened)

	return v, nil
}

// Get loads a live view.
func (s *ViewService) Get(ctx context.Context, id string) (*domain.View, error) {
	if err := validateViewID(id); err != nil {
		return nil, err
	}

	v, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.expired(v) {
		return nil, domain.ErrViewNotFound
	}

	return v, nil
}

// ToggleMenu flips the header's mobile menu.
func (s *ViewService) ToggleMenu(ctx context.Context, id string) (*domain.View, error) {
	v, err := s.update(ctx, id, func(v *domain.View) error {
		v.Header.Toggle()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.MenuToggles.Inc()
	logEvent(v, domain.ViewEventMenuToggled)

	return v, nil
}

// ActivateNav closes the mobile menu as a nav link to section is followed.
func (s *ViewService) ActivateNav(ctx context.Context, id string, section domain.Section) (*domain.View, error) {
	if !section.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}

	v, err := s.update(ctx, id, func(v *domain.View) error {
		v.Header.Close()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.NavActivations.WithLabelValues(string(section)).Inc()
	logEvent(v, domain.ViewEventNavActivated, "section", section)

	return v, nil
}

// ChangeEmail records the current value of the hero email field.
func (s *ViewService) ChangeEmail(ctx context.Context, id string, value string) (*domain.View, error) {
	v, err := s.update(ctx, id, func(v *domain.View) error {
		v.Hero.SetEmail(value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logEvent(v, domain.ViewEventEmailChanged)

	return v, nil
}

// Submit handles the hero form submission carrying email. It reports whether
// the signup was accepted. An empty email leaves the view as it was, including
// any value synced earlier.
func (s *ViewService) Submit(ctx context.Context, id string, email string) (*domain.View, bool, error) {
	var accepted bool

	v, err := s.update(ctx, id, func(v *domain.View) error {
		if v.Hero.Submitted || email == "" {
			return nil
		}
		v.Hero.SetEmail(email)
		accepted = v.Hero.Submit()
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	result, event := "ignored", domain.ViewEventSignupIgnored
	if accepted {
		result, event = "accepted", domain.ViewEventSignupSubmitted
	}
	metrics.Signups.WithLabelValues(result).Inc()

	slog.Info("signup form submitted", "view_id", id, "result", result)
	logEvent(v, event)

	return v, accepted, nil
}

// Prune removes views that have been idle for longer than the TTL.
func (s *ViewService) Prune(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	deleted, err := s.store.DeleteIdleBefore(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("prune views: %w", err)
	}

	metrics.ViewsPruned.Add(float64(deleted))

	if deleted > 0 {
		slog.Info("idle views pruned", "count", deleted, "ttl", s.ttl.String())
	}

	return deleted, nil
}

// update runs fn against a live view as one atomic store update.
func (s *ViewService) update(ctx context.Context, id string, fn repository.UpdateFunc) (*domain.View, error) {
	if err := validateViewID(id); err != nil {
		return nil, err
	}

	v, err := s.store.Update(ctx, id, s.now(), func(v *domain.View) error {
		if s.expired(v) {
			return domain.ErrViewNotFound
		}
		return fn(v)
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (s *ViewService) expired(v *domain.View) bool {
	return s.ttl > 0 && v.IsIdleSince(s.now().Add(-s.ttl))
}

func logEvent(v *domain.View, event domain.ViewEventType, attrs ...any) {
	args := append([]any{
		"view_id", v.ID,
		"event", event,
		"menu_open", v.Header.MenuOpen,
		"submitted", v.Hero.Submitted,
	}, attrs...)
	slog.Debug("view updated", args...)
}

func validateViewID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidViewID, id)
	}
	return nil
}
