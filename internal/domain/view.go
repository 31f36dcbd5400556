package domain

import "time"

// HeaderState is the UI state owned by the page header.
type HeaderState struct {
	MenuOpen bool
}

// Toggle flips the mobile menu between open and closed.
func (h *HeaderState) Toggle() {
	h.MenuOpen = !h.MenuOpen
}

// Close closes the mobile menu. Activating any nav link calls it.
func (h *HeaderState) Close() {
	h.MenuOpen = false
}

// HeroState is the UI state owned by the hero email-capture form.
type HeroState struct {
	Email     string
	Submitted bool
}

// SetEmail stores the field value verbatim. After a successful submit the
// form is gone and further changes are ignored.
func (h *HeroState) SetEmail(value string) {
	if h.Submitted {
		return
	}
	h.Email = value
}

// Submit accepts the signup when an email has been entered: the form flips
// to the thank-you state and the field is cleared. An empty email is a no-op.
// Reports whether the signup was accepted.
func (h *HeroState) Submit() bool {
	if h.Email == "" {
		return false
	}
	h.Submitted = true
	h.Email = ""
	return true
}

// View is the state of one rendered landing page. A new view is opened on
// every page load; interactions mutate it and trigger a re-render.
type View struct {
	ID        string
	Header    HeaderState
	Hero      HeroState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewView returns a view in its initial state.
func NewView(id string, now time.Time) *View {
	return &View{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsIdleSince returns true if the view has not been touched since t.
func (v *View) IsIdleSince(t time.Time) bool {
	return v.UpdatedAt.Before(t)
}
