package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mtlprog/tailtales/internal/domain"
)

type AppProps struct {
	View        *domain.View
	Products    []domain.Product
	Ingredients []domain.Ingredient
	Year        int
}

// App composes the page sections in their fixed order: header, hero, about,
// ingredients, products, footer.
func App(props AppProps) g.Node {
	paths := ViewPaths{ViewID: props.View.ID}

	return g.Group{
		SiteHeader(HeaderProps{
			MenuOpen: props.View.Header.MenuOpen,
			Paths:    paths,
		}),
		Main(
			Hero(HeroProps{
				Email:     props.View.Hero.Email,
				Submitted: props.View.Hero.Submitted,
				Paths:     paths,
			}),
			About(),
			IngredientsSection(props.Ingredients),
			Products(props.Products),
		),
		SiteFooter(props.Year),
	}
}
