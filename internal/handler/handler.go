package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mtlprog/tailtales/docs" // Import generated docs
	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/handler/dto"
	"github.com/mtlprog/tailtales/internal/middleware"
	"github.com/mtlprog/tailtales/internal/service"
	"github.com/mtlprog/tailtales/internal/static"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	views      *service.ViewService
	viewLoader *middleware.ViewLoader
	db         Pinger
}

// New creates a new Handler. db may be nil when views are kept in memory.
func New(views *service.ViewService, db Pinger) *Handler {
	return &Handler{
		views:      views,
		viewLoader: middleware.NewViewLoader(views),
		db:         db,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Health check and metrics
	r.Get("/healthz", h.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	// Stylesheet and script
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	// Landing page
	r.Get("/", h.handleLanding)
	r.Route("/v/{"+middleware.ViewIDParam+"}", func(r chi.Router) {
		r.With(h.viewLoader.Load).Get("/", h.handleView)
		r.Post("/menu", h.handleToggleMenu)
		r.Get("/nav/{section}", h.handleNav)
		r.Post("/email", h.handleEmail)
		r.Post("/signup", h.handleSignup)
	})

	// View state API
	r.Get("/api/v1/views/{"+middleware.ViewIDParam+"}", h.handleGetViewState)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.Handler())
}

// handleHealthz returns 200 OK if the view store is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			slog.Error("database health check failed", "error", err)
			respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unavailable")
			return
		}
	}

	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondPageError handles errors of the page routes. A visitor whose view
// is gone starts over on a fresh page.
func respondPageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrViewNotFound), errors.Is(err, domain.ErrInvalidViewID):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrUnknownSection):
		http.NotFound(w, r)
	default:
		slog.Error("page request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
