package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mtlprog/tailtales/internal/domain"
)

// ingredientDelays is the number of animation-delay classes cycled through.
const ingredientDelays = 5

// IngredientsSection renders one card per ingredient in the given order.
func IngredientsSection(ingredients []domain.Ingredient) g.Node {
	cards := make([]g.Node, 0, len(ingredients))
	for i, ingredient := range ingredients {
		cards = append(cards, ingredientCard(ingredient, IngredientDelay(i)))
	}

	return Section(
		ID("ingredients"),
		Class("ingredients-section"),
		Div(
			Class("container"),
			SectionHeader("The Power of Ayurveda", "Ancient wisdom meets modern pet nutrition", true),
			Div(Class("ingredients-grid"), g.Group(cards)),
		),
	)
}

// IngredientDelay returns the delay class number for the card at index,
// cycling 1..5.
func IngredientDelay(index int) int {
	return index%ingredientDelays + 1
}

func ingredientCard(ingredient domain.Ingredient, delay int) g.Node {
	return Div(
		Class("ingredient-card animate-fade-in-up "+delayClass(delay)),
		Data("key", ingredient.Name),
		Span(Class("ingredient-emoji"), g.Text(ingredient.Emoji)),
		H4(Class("ingredient-name"), g.Text(ingredient.Name)),
		P(Class("ingredient-benefit"), g.Text(ingredient.Benefit)),
	)
}
