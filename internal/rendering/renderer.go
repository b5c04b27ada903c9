package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer renders any supported component (templ or gomponents).
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes, e.g. for static export.
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)

	// Render implements echo.Renderer so handlers can call c.Render(status, "", component).
	Render(w io.Writer, name string, data interface{}, c echo.Context) error
}

// UniversalRenderer is the concrete implementation that handles rendering for multiple component types.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// render inspects the component type and calls the appropriate render method.
func (r *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponents.Node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements the echo.Renderer interface. The component is passed as
// data; name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
