package components

import "github.com/mtlprog/tailtales/internal/domain"

// ViewPaths builds the endpoint URLs of one page view.
type ViewPaths struct {
	ViewID string
}

// Base is the URL that renders the view.
func (p ViewPaths) Base() string {
	return "/v/" + p.ViewID
}

// Menu is the mobile menu toggle endpoint.
func (p ViewPaths) Menu() string {
	return p.Base() + "/menu"
}

// Nav is the endpoint that closes the menu and jumps to section.
func (p ViewPaths) Nav(section domain.Section) string {
	return p.Base() + "/nav/" + string(section)
}

// Email is the endpoint that records the email field value.
func (p ViewPaths) Email() string {
	return p.Base() + "/email"
}

// Signup is the email form action.
func (p ViewPaths) Signup() string {
	return p.Base() + "/signup"
}

// Anchor returns the URL of section within the rendered view.
func (p ViewPaths) Anchor(section domain.Section) string {
	if section == domain.SectionNone {
		return p.Base()
	}
	return p.Base() + section.Anchor()
}
