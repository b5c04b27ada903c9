package routing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXRedirect = "HX-Redirect"
)

// Redirector navigates the client behind an echo request to another route.
// htmx requests get an HX-Redirect header so the browser performs a full page
// navigation; everything else gets a 303 See Other.
type Redirector struct {
	c echo.Context
}

// NewRedirector binds a Redirector to the current request.
func NewRedirector(c echo.Context) *Redirector {
	return &Redirector{c: c}
}

// NavigateTo sends the client to route. Only local paths are accepted.
func (r *Redirector) NavigateTo(route string) error {
	if !strings.HasPrefix(route, "/") || strings.HasPrefix(route, "//") {
		return fmt.Errorf("navigate to %q: not a local route", route)
	}
	if r.c.Request().Header.Get(headerHXRequest) == "true" {
		r.c.Response().Header().Set(headerHXRedirect, route)
		return r.c.NoContent(http.StatusOK)
	}
	return r.c.Redirect(http.StatusSeeOther, route)
}
