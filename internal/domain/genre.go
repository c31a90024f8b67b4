package domain

// GenreCount is a genre with its number of occurrences.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PopularGenre adds the share of the catalog a genre covers, rounded to one
// decimal place.
type PopularGenre struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GenreList is the full catalog grouped by genre, sorted by name.
type GenreList struct {
	Genres []GenreCount `json:"genres"`
	Total  int          `json:"total_movies"`
}

// PopularList is the catalog's top genres ranked by count.
type PopularList struct {
	Genres []PopularGenre `json:"popular_genres"`
	Total  int            `json:"total_movies"`
}

// DecadeStats summarizes one decade bucket: its top genres and how many
// movies with parseable release dates fell into it.
type DecadeStats struct {
	Decade      string       `json:"decade"`
	TopGenres   []GenreCount `json:"top_genres"`
	TotalMovies int          `json:"total_movies"`
}

// AnalysisResult is the full genre analysis: overall counts plus the
// per-decade breakdown.
type AnalysisResult struct {
	Genres  []GenreCount  `json:"genres"`
	Decades []DecadeStats `json:"decades"`
	Total   int           `json:"total_movies"`
}

// UserAnalysis describes one user's genre preferences and gaps.
// WatchedMovies counts every history entry, genre-tagged or not, so
// breakdown percentages may not sum to 100.
type UserAnalysis struct {
	UserID        int64          `json:"user_id"`
	WatchedMovies int            `json:"watched_movies"`
	Breakdown     []PopularGenre `json:"genre_breakdown"`
	TopGenres     []string       `json:"top_genres"`
	NewGenres     []string       `json:"suggested_new_genres"`
	Message       string         `json:"message,omitempty"`
}
