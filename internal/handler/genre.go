package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
	"github.com/actuallystonmai/genre-analysis-service/internal/genre"
	"github.com/go-chi/chi/v5"
)

const maxPopularLimit = 50

// GET /genres
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGenres(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GenreListResponse{
		Genres:      result.Genres,
		TotalMovies: result.Total,
		Timestamp:   timestamp(),
	})
}

// GET /genres/popular
func (h *Handler) PopularGenres(w http.ResponseWriter, r *http.Request) {
	// Parse and validate limit
	limit := genre.DefaultPopularLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxPopularLimit {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.service.PopularGenres(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PopularGenresResponse{
		PopularGenres: result.Genres,
		TotalMovies:   result.Total,
		Timestamp:     timestamp(),
	})
}

// GET /genres/analysis
func (h *Handler) DecadeAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DecadeAnalysis(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalysisResponse{
		Genres:      result.Genres,
		Decades:     result.Decades,
		TotalMovies: result.Total,
		Timestamp:   timestamp(),
	})
}

// GET /genres/user/{userID}
func (h *Handler) UserGenreAnalysis(w http.ResponseWriter, r *http.Request) {
	// Parse and validate user_id
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	result, err := h.service.UserGenreAnalysis(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserAnalysisResponse{
		UserID:             result.UserID,
		WatchedMovies:      result.WatchedMovies,
		GenreBreakdown:     result.Breakdown,
		TopGenres:          result.TopGenres,
		SuggestedNewGenres: result.NewGenres,
		Message:            result.Message,
		Timestamp:          timestamp(),
	})
}

// writeServiceError maps service failures onto the error taxonomy: an
// unavailable catalog or history store reports 500 data_unavailable, request
// timeouts report 503, anything else is internal.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrMoviesUnavailable) {
		writeError(w, http.StatusInternalServerError, "data_unavailable", "Could not read movies data")
		return
	}
	if errors.Is(err, domain.ErrHistoryUnavailable) {
		writeError(w, http.StatusInternalServerError, "data_unavailable", "Could not read history data")
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
