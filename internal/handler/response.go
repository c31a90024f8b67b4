package handler

import "github.com/actuallystonmai/genre-analysis-service/internal/domain"

type GenreListResponse struct {
	Genres      []domain.GenreCount `json:"genres"`
	TotalMovies int                 `json:"total_movies"`
	Timestamp   string              `json:"timestamp"`
}

type PopularGenresResponse struct {
	PopularGenres []domain.PopularGenre `json:"popular_genres"`
	TotalMovies   int                   `json:"total_movies"`
	Timestamp     string                `json:"timestamp"`
}

type AnalysisResponse struct {
	Genres      []domain.GenreCount  `json:"genres"`
	Decades     []domain.DecadeStats `json:"decades"`
	TotalMovies int                  `json:"total_movies"`
	Timestamp   string               `json:"timestamp"`
}

type UserAnalysisResponse struct {
	UserID             int64                 `json:"user_id"`
	WatchedMovies      int                   `json:"watched_movies"`
	GenreBreakdown     []domain.PopularGenre `json:"genre_breakdown"`
	TopGenres          []string              `json:"top_genres"`
	SuggestedNewGenres []string              `json:"suggested_new_genres"`
	Message            string                `json:"message,omitempty"`
	Timestamp          string                `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
