package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	ViewID      string
}

const (
	defaultTitle       = "Tail Tales - Ayurvedic Treats for Your Furry Friend"
	defaultDescription = "Natural dog treats sourced from India and crafted with ancient Ayurvedic wisdom."
)

// Page wraps content in the HTML document shell.
func Page(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>🐕</text></svg>")),
				Link(Rel("stylesheet"), Href("/static/css/app.css")),
			),
			Body(
				Data("view", config.ViewID),
				g.Group(content),
				Script(Src("/static/js/landing.js"), Defer()),
			),
		),
	)
}
