// Package genre computes genre statistics over a movie catalog and per-user
// watch histories. Every operation is a pure function over caller-supplied
// collections: no state, no I/O, inputs never mutated. Safe to call from any
// number of goroutines.
package genre

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
)

const (
	// DefaultPopularLimit matches the reference top-5 popular genres.
	DefaultPopularLimit = 5

	topGenresPerDecade = 3
	topGenresPerUser   = 3
	suggestedGenres    = 3
)

// ListGenres groups the catalog by genre and returns counts sorted by genre
// name ascending. Total counts every movie, including any without a genre
// tag. An empty catalog yields an empty list with total 0.
func ListGenres(movies []domain.Movie) domain.GenreList {
	return domain.GenreList{
		Genres: countGenres(movies).sortedByName(),
		Total:  len(movies),
	}
}

// PopularGenres ranks genres by count descending, ties broken by first
// occurrence in the catalog, truncated to limit. Each entry carries its share
// of the catalog as a percentage rounded to one decimal. A non-positive limit
// falls back to DefaultPopularLimit; an empty catalog yields an empty list
// rather than dividing by zero.
func PopularGenres(movies []domain.Movie, limit int) domain.PopularList {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	total := len(movies)
	top := countGenres(movies).mostCommon(limit)

	popular := make([]domain.PopularGenre, 0, len(top))
	if total > 0 {
		for _, g := range top {
			popular = append(popular, domain.PopularGenre{
				Name:       g.Name,
				Count:      g.Count,
				Percentage: percentage(g.Count, total),
			})
		}
	}

	return domain.PopularList{Genres: popular, Total: total}
}

// DecadeAnalysis combines the overall genre counts with a per-decade
// breakdown. Movies whose release date has no parseable year are skipped
// from the decade buckets but still count toward the overall totals. Decades
// are emitted ascending, labeled "1990s", "2000s", and so on; each reports
// its top three genres and the number of movies bucketed into it.
func DecadeAnalysis(movies []domain.Movie) domain.AnalysisResult {
	byDecade := make(map[int]*counter)

	for _, m := range movies {
		if m.Genre == "" {
			continue
		}
		year, ok := parseYear(m.ReleaseDate)
		if !ok {
			continue
		}
		decade := year / 10 * 10
		c, exists := byDecade[decade]
		if !exists {
			c = newCounter()
			byDecade[decade] = c
		}
		c.add(m.Genre)
	}

	order := make([]int, 0, len(byDecade))
	for decade := range byDecade {
		order = append(order, decade)
	}
	sort.Ints(order)

	decades := make([]domain.DecadeStats, 0, len(order))
	for _, decade := range order {
		c := byDecade[decade]
		decades = append(decades, domain.DecadeStats{
			Decade:      strconv.Itoa(decade) + "s",
			TopGenres:   c.mostCommon(topGenresPerDecade),
			TotalMovies: c.total(),
		})
	}

	return domain.AnalysisResult{
		Genres:  countGenres(movies).sortedByName(),
		Decades: decades,
		Total:   len(movies),
	}
}

// UserAnalysis breaks down one user's watch history by genre and suggests
// catalog genres the user has not watched. A user with no history is a valid
// result with zeroed fields and an explanatory message, never an error.
//
// WatchedMovies counts every history entry; entries without a genre tag are
// excluded from the breakdown but kept in the percentage denominator, so
// percentages may legitimately sum to less than 100. Suggestions follow
// catalog first-appearance order so identical inputs always produce the same
// output.
func UserAnalysis(userID int64, movies []domain.Movie, history domain.History) domain.UserAnalysis {
	entries := history[strconv.FormatInt(userID, 10)]
	if len(entries) == 0 {
		return domain.UserAnalysis{
			UserID:    userID,
			Breakdown: []domain.PopularGenre{},
			TopGenres: []string{},
			NewGenres: []string{},
			Message:   "No watch history found for this user",
		}
	}

	watched := len(entries)
	c := newCounter()
	for _, e := range entries {
		if e.Genre != "" {
			c.add(e.Genre)
		}
	}

	ranked := c.mostCommon(-1)
	breakdown := make([]domain.PopularGenre, 0, len(ranked))
	for _, g := range ranked {
		breakdown = append(breakdown, domain.PopularGenre{
			Name:       g.Name,
			Count:      g.Count,
			Percentage: percentage(g.Count, watched),
		})
	}

	top := make([]string, 0, topGenresPerUser)
	for _, g := range ranked {
		if len(top) == topGenresPerUser {
			break
		}
		top = append(top, g.Name)
	}

	return domain.UserAnalysis{
		UserID:        userID,
		WatchedMovies: watched,
		Breakdown:     breakdown,
		TopGenres:     top,
		NewGenres:     suggestNewGenres(movies, c.counts),
	}
}

// countGenres tallies movie genres, skipping untagged movies.
func countGenres(movies []domain.Movie) *counter {
	c := newCounter()
	for _, m := range movies {
		if m.Genre != "" {
			c.add(m.Genre)
		}
	}
	return c
}

// suggestNewGenres picks up to three catalog genres absent from the user's
// watched set, in the order genres first appear in the catalog.
func suggestNewGenres(movies []domain.Movie, watched map[string]int) []string {
	suggested := make([]string, 0, suggestedGenres)
	seen := make(map[string]bool)
	for _, m := range movies {
		if len(suggested) == suggestedGenres {
			break
		}
		if m.Genre == "" || seen[m.Genre] {
			continue
		}
		seen[m.Genre] = true
		if _, ok := watched[m.Genre]; !ok {
			suggested = append(suggested, m.Genre)
		}
	}
	return suggested
}

// parseYear extracts the year from the prefix of a release date before the
// first '-'. Missing dates, non-numeric prefixes and negative years all
// report false.
func parseYear(date string) (int, bool) {
	prefix := date
	if i := strings.IndexByte(date, '-'); i >= 0 {
		prefix = date[:i]
	}
	year, err := strconv.Atoi(prefix)
	if err != nil || year < 0 {
		return 0, false
	}
	return year, true
}

// percentage computes count/total*100 rounded to one decimal place.
// Callers must guard total > 0.
func percentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}
