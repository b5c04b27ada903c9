package landing

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// View renders the landing page body for the given content. It reads nothing
// but its argument, so the same content always yields the same tree.
func View(content Content) g.Node {
	return h.Div(
		h.Class(pageClass),
		h.Div(
			h.Class(containerClass),
			hero(content.Hero),
			features(content.Features),
		),
	)
}

func hero(hc HeroContent) g.Node {
	return h.Div(
		h.Class(heroClass),
		h.H1(
			h.Class(titleClass),
			g.Text(hc.Title),
			h.Span(h.Class(brandClass), g.Text(hc.Brand)),
		),
		h.P(h.Class(subtitleClass), g.Text(hc.Subtitle)),
		h.Div(
			h.Class(actionsClass),
			g.Map(hc.CTAs, trigger),
		),
	)
}

// trigger links straight to the target so it works without scripts; with htmx
// loaded the click goes through the activation endpoint instead.
func trigger(cta CTA) g.Node {
	return h.A(
		h.Href(cta.Target),
		h.Class(ctaClass(cta.Variant)),
		g.Attr("data-cta", cta.ID),
		hx.Get(ActivationPath(cta.ID)),
		g.Text(cta.Label),
	)
}

func features(cards []FeatureCard) g.Node {
	return h.Div(
		h.Class(gridClass),
		g.Map(cards, card),
	)
}

func card(fc FeatureCard) g.Node {
	return h.Div(
		h.Class(cardClass),
		h.Div(h.Class(iconClass), g.Text(fc.Icon)),
		h.H3(h.Class(headingClass), g.Text(fc.Heading)),
		h.P(h.Class(descClass), g.Text(fc.Description)),
	)
}
