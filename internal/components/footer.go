package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type footerLink struct {
	Label string
	Href  string
}

type footerColumn struct {
	Title string
	Links []footerLink
}

// SiteFooter renders the brand recap, link columns and the copyright line
// for the given year.
func SiteFooter(year int) g.Node {
	columns := []footerColumn{
		{"Company", []footerLink{
			{"About Us", "#about"},
			{"Ingredients", "#ingredients"},
			{"Products", "#products"},
		}},
		{"Support", []footerLink{
			{"FAQ", "#"},
			{"Shipping", "#"},
			{"Returns", "#"},
		}},
		{"Connect", []footerLink{
			{"Instagram", "#"},
			{"Facebook", "#"},
			{"Twitter", "#"},
		}},
	}

	return Footer(
		ID("contact"),
		Class("footer"),
		Div(
			Class("container footer-container"),
			Div(
				Class("footer-brand"),
				Logo("footer-logo"),
				P(Class("footer-tagline"), g.Text("Ayurvedic wellness for your furry family members.")),
			),

			Div(
				Class("footer-links"),
				g.Group(g.Map(columns, func(col footerColumn) g.Node {
					return Div(
						Class("footer-column"),
						H4(g.Text(col.Title)),
						g.Group(g.Map(col.Links, func(l footerLink) g.Node {
							return A(Href(l.Href), g.Text(l.Label))
						})),
					)
				})),
			),

			Div(
				Class("footer-bottom"),
				P(g.Textf("© %d Tail Tales. Made with 💚 in India.", year)),
			),
		),
	)
}
