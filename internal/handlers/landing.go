package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/primetrade/landing/internal/domain"
	"github.com/primetrade/landing/internal/landing"
	"github.com/primetrade/landing/internal/middleware"
	"github.com/primetrade/landing/internal/routing"
	"github.com/primetrade/landing/internal/view"
	"github.com/primetrade/landing/web/templates/layouts"
)

// NavigatorFactory builds the Navigator that serves a single request.
type NavigatorFactory func(c echo.Context) landing.Navigator

// RedirectNavigator is the production NavigatorFactory.
func RedirectNavigator(c echo.Context) landing.Navigator {
	return routing.NewRedirector(c)
}

// LandingHandler serves the landing page and activates its hero triggers.
type LandingHandler struct {
	content  landing.Content
	navigate NavigatorFactory
}

// NewLandingHandler creates a LandingHandler for the given content.
func NewLandingHandler(content landing.Content, navigate NavigatorFactory) *LandingHandler {
	return &LandingHandler{content: content.Clone(), navigate: navigate}
}

// LandingGet renders the landing page inside the Base layout.
func (h *LandingHandler) LandingGet(c echo.Context) error {
	flashData := view.GetFlashData(c)
	finalComponent := layouts.Base("", flashData, landing.View(h.content))
	return c.Render(http.StatusOK, "", finalComponent)
}

// CTAGet activates the trigger named by the :id path parameter.
func (h *LandingHandler) CTAGet(c echo.Context) error {
	id := c.Param("id")
	cta, ok := h.content.FindCTA(id)
	if !ok {
		return fmt.Errorf("activate %q: %w", id, domain.ErrUnknownCTA)
	}

	middleware.FromContext(c.Request().Context()).Debug("CTA activated", "cta", cta.ID, "target", cta.Target)
	return cta.Activate(h.navigate(c))
}
