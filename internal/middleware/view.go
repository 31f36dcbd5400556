package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/service"
)

type contextKey string

const (
	// ContextKeyView is the key for storing the page view in request context.
	ContextKeyView contextKey = "view"

	// ViewIDParam is the route parameter holding the view id.
	ViewIDParam = "viewID"
)

// ViewLoader resolves the {viewID} route parameter to a live page view.
type ViewLoader struct {
	views *service.ViewService
}

// NewViewLoader creates a new ViewLoader.
func NewViewLoader(views *service.ViewService) *ViewLoader {
	return &ViewLoader{
		views: views,
	}
}

// Load adds the view to the request context. Visitors holding an unknown or
// expired view are sent to a fresh page instead of an error.
func (m *ViewLoader) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, ViewIDParam)

		view, err := m.views.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrViewNotFound) || errors.Is(err, domain.ErrInvalidViewID) {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			slog.Error("failed to load view", "view_id", id, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyView, view)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetViewFromContext retrieves the page view loaded by ViewLoader.
func GetViewFromContext(ctx context.Context) (*domain.View, error) {
	view, ok := ctx.Value(ContextKeyView).(*domain.View)
	if !ok || view == nil {
		return nil, domain.ErrViewNotFound
	}
	return view, nil
}
