package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo is the brand mark linking back to a fresh page.
func Logo(extraClass string) g.Node {
	class := "logo"
	if extraClass != "" {
		class = "logo " + extraClass
	}

	return A(
		Href("/"),
		Class(class),
		Span(Class("logo-icon"), g.Text("🐕")),
		Span(Class("logo-text"), g.Text("TAIL TALES")),
	)
}

// SectionHeader renders the title block shared by the content sections.
func SectionHeader(title, subtitle string, light bool) g.Node {
	titleClass, subtitleClass := "section-title", "section-subtitle"
	if light {
		titleClass += " section-title-light"
		subtitleClass += " section-subtitle-light"
	}

	return Div(
		Class("section-header"),
		H2(Class(titleClass), g.Text(title)),
		P(Class(subtitleClass), g.Text(subtitle)),
	)
}

// delayClass selects one of the staggered animation-delay classes.
func delayClass(delay int) string {
	return fmt.Sprintf("delay-%d", delay)
}
