package server

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/primetrade/landing/internal/app"
	"github.com/primetrade/landing/internal/config"
	"github.com/primetrade/landing/internal/handlers"
	"github.com/primetrade/landing/internal/middleware"
	"github.com/primetrade/landing/internal/rendering"
	"github.com/primetrade/landing/web"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E              *echo.Echo
	Cfg            config.Provider
	landingHandler *handlers.LandingHandler
}

// New creates a new Server instance with its middleware chain installed.
// Routes are added separately by RegisterRoutes.
func New(cfg config.Provider) (*Server, error) {
	injector := app.NewInjector(cfg)

	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}
	landingHandler, err := do.Invoke[*handlers.LandingHandler](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve landing handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:              e,
		Cfg:            cfg,
		landingHandler: landingHandler,
	}, nil
}

// requestLogger logs one line per request through the request-scoped logger.
// It wraps middleware.Logger, so the scoped logger is available once next returns.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("Request served",
				"status", v.Status,
				"uri", v.URI,
				"latency", v.Latency,
			)
			return nil
		},
	})
}
