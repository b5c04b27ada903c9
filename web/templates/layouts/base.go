package layouts

import (
	"github.com/a-h/templ"
	"github.com/primetrade/landing/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
)

// Base wraps page content in the HTML document shell: head assets, flash
// messages, then the content itself.
func Base(title string, flashes view.FlashData, content g.Node) templ.Component {
	return view.AdaptGomponentToTempl(h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/landing.css")),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				g.If(!flashes.Empty(), flashList(flashes)),
				content,
			),
		),
	))
}

func flashList(flashes view.FlashData) g.Node {
	return h.Div(
		h.ID("flashes"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.P(h.Class("flash flash-success"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return h.P(h.Class("flash flash-error"), h.Role("alert"), g.Text(msg))
		}),
	)
}
