package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type HeroProps struct {
	Email     string
	Submitted bool
	Paths     ViewPaths
}

// Hero renders the headline and the early access form. Once the signup is
// submitted the form is replaced by a thank-you message for good.
func Hero(props HeroProps) g.Node {
	return Section(
		Class("hero"),
		Div(Class("hero-pattern")),
		Div(
			Class("container hero-container"),
			Div(
				Class("hero-content"),
				H1(
					Class("hero-title animate-fade-in-up"),
					Span(Class("hero-title-accent"), g.Text("TAIL TALES:")),
					Br(),
					g.Text("Ayurvedic Treats for Your Furry Friend"),
				),
				P(
					Class("hero-subtitle animate-fade-in-up delay-1"),
					g.Text("Natural, sourced from India. We carefully craft each treat with ancient Ayurvedic wisdom, bringing wellness and joy to your beloved pets."),
				),
				g.If(!props.Submitted, signupForm(props)),
				g.If(props.Submitted, signupThanks()),
			),
			heroVisual(),
		),
		heroWave(),
	)
}

func signupForm(props HeroProps) g.Node {
	return Form(
		Method("post"),
		Action(props.Paths.Signup()),
		Class("hero-form animate-fade-in-up delay-2"),
		Div(
			Class("input-group"),
			Input(
				Type("email"),
				Name("email"),
				Placeholder("Enter your email"),
				Value(props.Email),
				Required(),
				AutoComplete("email"),
				Class("hero-input"),
				Data("sync", props.Paths.Email()),
			),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Sign Up for Early Access")),
		),
	)
}

func signupThanks() g.Node {
	return Div(
		Class("hero-success animate-fade-in"),
		Span(Class("success-icon"), g.Text("✓")),
		P(g.Text("Thank you! We'll notify you when we launch.")),
	)
}

func heroVisual() g.Node {
	return Div(
		Class("hero-visual animate-fade-in delay-3"),
		Div(
			Class("hero-image-container"),
			Div(
				Class("hero-dog-placeholder"),
				Span(Class("dog-emoji"), g.Text("🐕‍🦺")),
				P(g.Text("Happy & Healthy")),
			),
			Div(Class("hero-glow")),
		),
	)
}

func heroWave() g.Node {
	return Div(
		Class("hero-wave"),
		g.El("svg",
			g.Attr("viewBox", "0 0 1440 120"),
			g.Attr("preserveAspectRatio", "none"),
			g.El("path",
				g.Attr("d", "M0,64 C480,150 960,-20 1440,64 L1440,120 L0,120 Z"),
				g.Attr("fill", "var(--cream)"),
			),
		),
	)
}
