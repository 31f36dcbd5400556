package dto

import (
	"time"

	"github.com/mtlprog/tailtales/internal/domain"
)

// HealthResponse represents the response for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ViewResponse represents the UI state of one page view.
type ViewResponse struct {
	ID        string      `json:"id"`
	Header    HeaderState `json:"header"`
	Hero      HeroState   `json:"hero"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HeaderState represents the header's UI state.
type HeaderState struct {
	MenuOpen bool `json:"menu_open"`
}

// HeroState represents the hero form's UI state.
type HeroState struct {
	Email     string `json:"email"`
	Submitted bool   `json:"submitted"`
}

// NewViewResponse converts a domain view to its API representation.
func NewViewResponse(v *domain.View) ViewResponse {
	return ViewResponse{
		ID:        v.ID,
		Header:    HeaderState{MenuOpen: v.Header.MenuOpen},
		Hero:      HeroState{Email: v.Hero.Email, Submitted: v.Hero.Submitted},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
