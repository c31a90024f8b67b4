package store

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore loads the catalog and watch history from Postgres.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, genre, release_date
		 FROM movies
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.ReleaseDate); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over movies: %w", err)
	}
	return movies, nil
}

func (s *PostgresStore) LoadHistory(ctx context.Context) (domain.History, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id::text, title, COALESCE(genre, ''), watched_at::text
		 FROM watch_history
		 ORDER BY user_id, watched_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("query watch history: %w", err)
	}
	defer rows.Close()

	history := domain.History{}
	for rows.Next() {
		var userID string
		var entry domain.HistoryEntry
		if err := rows.Scan(&userID, &entry.Title, &entry.Genre, &entry.WatchedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		history[userID] = append(history[userID], entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over watch history: %w", err)
	}
	return history, nil
}
