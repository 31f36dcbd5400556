package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mtlprog/tailtales/internal/domain"
)

type ProductCardProps struct {
	Name        string
	Description string
	Emoji       string
	Color       string
	Delay       int // 1-based position in the grid
}

// ProductCard renders a single product. Color is exposed to the stylesheet
// as the --card-accent custom property.
func ProductCard(props ProductCardProps) g.Node {
	return Article(
		Class("product-card animate-fade-in-up "+delayClass(props.Delay)),
		Style("--card-accent: "+props.Color),
		Data("key", props.Name),
		Div(
			Class("product-image"),
			Span(Class("product-emoji"), g.Text(props.Emoji)),
		),
		Div(
			Class("product-info"),
			H3(Class("product-name"), g.Text(props.Name)),
			P(Class("product-description"), g.Text(props.Description)),
			Button(Type("button"), Class("btn btn-secondary product-btn"), g.Text("Pre Order")),
		),
	)
}

// Products renders the product grid in the given order.
func Products(products []domain.Product) g.Node {
	cards := make([]g.Node, 0, len(products))
	for i, p := range products {
		cards = append(cards, ProductCard(ProductCardProps{
			Name:        p.Name,
			Description: p.Description,
			Emoji:       p.Emoji,
			Color:       p.Color,
			Delay:       i + 1,
		}))
	}

	return Section(
		ID("products"),
		Class("products-section"),
		Div(
			Class("container"),
			SectionHeader(
				"Our Ayurvedic Collection",
				"Each treat is crafted with love using time-tested Indian herbs and ingredients",
				false,
			),
			Div(Class("products-grid"), g.Group(cards)),
		),
	)
}
