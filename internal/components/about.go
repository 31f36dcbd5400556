package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type aboutCard struct {
	Icon  string
	Title string
	Text  string
}

func About() g.Node {
	cards := []aboutCard{
		{"🌿", "100% Natural", "No artificial preservatives, colors, or flavors. Just pure, wholesome ingredients from nature."},
		{"🇮🇳", "Sourced from India", "Premium herbs and spices sourced directly from trusted Indian farms and suppliers."},
		{"🐾", "Vet Approved", "Each recipe is developed and approved by veterinary nutritionists for your pet's safety."},
	}

	return Section(
		ID("about"),
		Class("about-section"),
		Div(
			Class("container about-container"),
			Div(
				Class("about-content animate-fade-in-up"),
				H2(Class("section-title"), g.Text("Why Tail Tales?")),
				Div(
					Class("about-grid"),
					g.Group(g.Map(cards, func(card aboutCard) g.Node {
						return Div(
							Class("about-card"),
							Span(Class("about-icon"), g.Text(card.Icon)),
							H3(g.Text(card.Title)),
							P(g.Text(card.Text)),
						)
					})),
				),
			),
		),
	)
}
