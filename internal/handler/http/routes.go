package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jander15/BathroomPass-sub000/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", utils.TraceIDHeader},
		ExposedHeaders: []string{utils.TraceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)

	router.Post("/exec", h.exec)
	router.Get("/version", h.getServerVersion)

	return router
}
