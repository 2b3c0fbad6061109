package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.CleanPath)
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(s.RequestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/", s.handleHome)
		r.Post("/moves", s.handleMoves)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins(),
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
		r.Get("/games/{id}/moves", s.handleGameMoves)
	})

	return r
}

func (s *Server) corsOrigins() []string {
	if len(s.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.CORSAllowedOrigins
}
