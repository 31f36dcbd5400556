package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mtlprog/tailtales/internal/components"
	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/handler/dto"
	"github.com/mtlprog/tailtales/internal/metrics"
	"github.com/mtlprog/tailtales/internal/middleware"
)

// handleLanding opens a new view and renders it in its initial state.
func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.Open(r.Context())
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	metrics.PageRenders.WithLabelValues("fresh").Inc()
	h.renderPage(w, view)
}

// handleView re-renders an existing view after an interaction.
func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := middleware.GetViewFromContext(r.Context())
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	metrics.PageRenders.WithLabelValues("existing").Inc()
	h.renderPage(w, view)
}

// handleToggleMenu flips the mobile menu.
func (h *Handler) handleToggleMenu(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.ToggleMenu(r.Context(), viewID(r))
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	redirectToView(w, r, view, domain.SectionNone)
}

// handleNav closes the mobile menu and jumps to the requested section.
func (h *Handler) handleNav(w http.ResponseWriter, r *http.Request) {
	section, err := domain.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	view, err := h.views.ActivateNav(r.Context(), viewID(r), section)
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	redirectToView(w, r, view, section)
}

// handleEmail records the email field value sent by the page script.
func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	form, err := dto.ParseEmailForm(w, r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if _, err := h.views.ChangeEmail(r.Context(), viewID(r), form.Email); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSignup processes the early access form.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	form, err := dto.ParseEmailForm(w, r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	view, _, err := h.views.Submit(r.Context(), viewID(r), form.Email)
	if err != nil {
		respondPageError(w, r, err)
		return
	}

	redirectToView(w, r, view, domain.SectionNone)
}

// handleGetViewState returns the view's UI state as JSON.
// @Summary Get page view state
// @Description Get the header and hero state of one page view
// @Tags views
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /views/{viewID} [get]
func (h *Handler) handleGetViewState(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.Get(r.Context(), viewID(r))
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewViewResponse(view))
}

func (h *Handler) renderPage(w http.ResponseWriter, view *domain.View) {
	page := components.Page(
		components.PageConfig{ViewID: view.ID},
		components.App(components.AppProps{
			View:        view,
			Products:    domain.Products(),
			Ingredients: domain.Ingredients(),
			Year:        h.views.Now().Year(),
		}),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := page.Render(w); err != nil {
		slog.Error("failed to render page", "view_id", view.ID, "error", err)
	}
}

func viewID(r *http.Request) string {
	return chi.URLParam(r, middleware.ViewIDParam)
}

func redirectToView(w http.ResponseWriter, r *http.Request, view *domain.View, section domain.Section) {
	paths := components.ViewPaths{ViewID: view.ID}
	http.Redirect(w, r, paths.Anchor(section), http.StatusSeeOther)
}
