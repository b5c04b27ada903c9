package server

import (
	"github.com/primetrade/landing/internal/handlers"
	"github.com/primetrade/landing/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	ctaLimiter := middleware.RateLimiter(s.Cfg.GetCTARateLimit())

	s.E.GET("/", s.landingHandler.LandingGet)
	s.E.GET("/cta/:id", s.landingHandler.CTAGet, ctaLimiter)
	s.E.GET("/health", handlers.HealthGet)
}
