// Package store provides the data loaders the aggregation service reads
// from. Every backend returns a fresh snapshot on each call; nothing is
// cached between requests.
package store

import (
	"context"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
)

// Store loads the movie catalog and the per-user watch history. Both loads
// happen fresh per request; implementations must be safe for concurrent
// read-only use.
type Store interface {
	LoadMovies(ctx context.Context) ([]domain.Movie, error)
	LoadHistory(ctx context.Context) (domain.History, error)
}
