package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/mtlprog/tailtales/internal/domain"
)

type HeaderProps struct {
	MenuOpen bool
	Paths    ViewPaths
}

type navItem struct {
	Label   string
	Section domain.Section
}

var navItems = []navItem{
	{"About Us", domain.SectionAbout},
	{"Ingredients", domain.SectionIngredients},
	{"Products", domain.SectionProducts},
	{"Login", domain.SectionNone},
}

// SiteHeader renders the brand mark, nav list, contact CTA and the mobile
// menu toggle. The nav list carries nav-open while the menu is open.
func SiteHeader(props HeaderProps) g.Node {
	return Header(
		Class("header"),
		Div(
			Class("container header-container"),
			Logo(""),

			Nav(
				c.Classes{"nav": true, "nav-open": props.MenuOpen},
				ID("site-nav"),
				g.Group(g.Map(navItems, func(item navItem) g.Node {
					return navLink(item, props)
				})),
			),

			A(Href("#contact"), Class("btn btn-outline header-cta"), g.Text("Contact")),

			Form(
				Method("post"),
				Action(props.Paths.Menu()),
				Class("mobile-menu-form"),
				Button(
					Type("submit"),
					Class("mobile-menu-btn"),
					Aria("label", "Toggle menu"),
					Aria("controls", "site-nav"),
					Aria("expanded", strconv.FormatBool(props.MenuOpen)),
					Span(c.Classes{"hamburger": true, "open": props.MenuOpen}),
				),
			),
		),
	)
}

// navLink jumps straight to the anchor while the menu is closed. While it is
// open the link goes through the view so the menu closes on the way.
func navLink(item navItem, props HeaderProps) g.Node {
	href := item.Section.Anchor()
	if props.MenuOpen {
		href = props.Paths.Nav(item.Section)
	}

	return A(
		Href(href),
		Class("nav-link"),
		Data("section", string(item.Section)),
		g.Text(item.Label),
	)
}
