package domain

// Product is a treat shown in the products grid.
type Product struct {
	Name        string
	Description string
	Emoji       string
	Color       string // consumed by the stylesheet as --card-accent
}

// Ingredient is an entry of the ingredients grid.
type Ingredient struct {
	Name    string
	Benefit string
	Emoji   string
}

var products = []Product{
	{
		Name:        "Turmeric Bites",
		Description: "Anti-inflammatory golden treats with organic turmeric & black pepper for optimal absorption.",
		Emoji:       "🟠",
		Color:       "#E8A94A",
	},
	{
		Name:        "Turmeric Chews",
		Description: "Soft, chewy treats infused with pure turmeric to support joint health and immunity.",
		Emoji:       "🟡",
		Color:       "#F5C542",
	},
	{
		Name:        "Garlic Chews",
		Description: "Natural flea & tick deterrent with safe amounts of aged garlic for your pup's protection.",
		Emoji:       "🧄",
		Color:       "#C9B896",
	},
	{
		Name:        "Amla Treats",
		Description: "Vitamin C powerhouse from Indian gooseberry for a shiny coat and strong immunity.",
		Emoji:       "🟢",
		Color:       "#7DD3C0",
	},
}

var ingredients = []Ingredient{
	{Name: "Turmeric", Benefit: "Anti-inflammatory", Emoji: "🟡"},
	{Name: "Amla", Benefit: "Vitamin C Boost", Emoji: "🟢"},
	{Name: "Ashwagandha", Benefit: "Stress Relief", Emoji: "🌿"},
	{Name: "Coconut Oil", Benefit: "Healthy Coat", Emoji: "🥥"},
	{Name: "Moringa", Benefit: "Superfood", Emoji: "🌱"},
	{Name: "Flaxseed", Benefit: "Omega-3s", Emoji: "🫘"},
}

// Products returns the product line in display order.
// The returned slice is a copy and may be modified by the caller.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Ingredients returns the featured ingredients in display order.
// The returned slice is a copy and may be modified by the caller.
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}
