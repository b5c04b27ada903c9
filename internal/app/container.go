package app

import (
	"github.com/primetrade/landing/internal/config"
	"github.com/primetrade/landing/internal/handlers"
	"github.com/primetrade/landing/internal/landing"
	"github.com/primetrade/landing/internal/rendering"
	"github.com/samber/do/v2"
)

// NewInjector wires the application's services into a DI container.
// The landing content is provided once, so every consumer sees the same
// immutable definition.
func NewInjector(cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)

	do.Provide(i, func(do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(do.Injector) (landing.Content, error) {
		return landing.DefaultContent(), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.LandingHandler, error) {
		content, err := do.Invoke[landing.Content](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewLandingHandler(content, handlers.RedirectNavigator), nil
	})

	return i
}
