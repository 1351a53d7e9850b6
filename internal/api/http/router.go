package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/docquiz/docquiz/internal/docs"
	"github.com/docquiz/docquiz/internal/render"
)

// NewRouter wires the two-page front-end plus health probes.
func NewRouter(p docs.Provider, rend *render.Renderer, log *zap.SugaredLogger, corsOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", LandingHandler(rend))
	r.Post("/quiz", QuizFormHandler(p, rend, log))
	r.Post("/grade", GradeHandler(p, rend, log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
