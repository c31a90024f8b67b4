package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/actuallystonmai/genre-analysis-service/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Get("/", home)
	r.Get("/genres", h.ListGenres)
	r.Get("/genres/popular", h.PopularGenres)
	r.Get("/genres/analysis", h.DecadeAnalysis)
	r.Get("/genres/user/{userID}", h.UserGenreAnalysis)
	r.Get("/health", healthCheck)

	return r
}

// home lists the available endpoints.
func home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Genre Analysis Service API",
		"endpoints": []string{
			"/genres - List all genres with movie counts",
			"/genres/popular - Get most popular genres",
			"/genres/analysis - Get detailed genre analysis",
			"/genres/user/{userID} - Get genre analysis for specific user",
			"/health - Check service health",
		},
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
