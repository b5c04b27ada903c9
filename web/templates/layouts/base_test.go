package layouts_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/primetrade/landing/internal/view"
	"github.com/primetrade/landing/web/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestBase(t *testing.T) {
	content := h.Main(g.Text("page"))

	t.Run("wraps content without flashes", func(t *testing.T) {
		out := render(t, layouts.Base("", view.FlashData{}, content))

		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, `<html lang="en">`)
		assert.Contains(t, out, "<title>PrimeTrade.ai</title>")
		assert.Contains(t, out, `<link rel="stylesheet" href="/static/css/landing.css">`)
		assert.Contains(t, out, "<main>page</main></body></html>")
		assert.Contains(t, out, "htmx.org")
		assert.NotContains(t, out, `id="flashes"`)
	})

	t.Run("renders escaped flashes before content", func(t *testing.T) {
		flashes := view.FlashData{
			Success: []string{"Signed out"},
			Error:   []string{"<b>oops</b>"},
		}
		out := render(t, layouts.Base("Home", flashes, content))

		assert.Contains(t, out, "<title>Home - PrimeTrade.ai</title>")
		assert.Contains(t, out, `<p class="flash flash-success">Signed out</p>`)
		assert.Contains(t, out, `<p class="flash flash-error" role="alert">&lt;b&gt;oops&lt;/b&gt;</p>`)
		assert.NotContains(t, out, "<b>oops</b>")
		assert.Less(t, strings.Index(out, `id="flashes"`), strings.Index(out, "<main>"))
	})

	t.Run("escapes the title", func(t *testing.T) {
		out := render(t, layouts.Base("Tasks & <Teams>", view.FlashData{}, content))

		assert.Contains(t, out, "<title>Tasks &amp; &lt;Teams&gt; - PrimeTrade.ai</title>")
	})
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "PrimeTrade.ai", layouts.CalculateTitle(""))
	assert.Equal(t, "Welcome - PrimeTrade.ai", layouts.CalculateTitle("Welcome"))
}
