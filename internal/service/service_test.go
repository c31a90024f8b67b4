package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
)

// stubStore returns canned collections or errors.
type stubStore struct {
	movies     []domain.Movie
	history    domain.History
	moviesErr  error
	historyErr error
}

func (s *stubStore) LoadMovies(context.Context) ([]domain.Movie, error) {
	return s.movies, s.moviesErr
}

func (s *stubStore) LoadHistory(context.Context) (domain.History, error) {
	return s.history, s.historyErr
}

func TestListGenresEmptyCatalogUnavailable(t *testing.T) {
	svc := NewService(&stubStore{})

	_, err := svc.ListGenres(context.Background())
	if !errors.Is(err, domain.ErrMoviesUnavailable) {
		t.Errorf("expected ErrMoviesUnavailable, got %v", err)
	}
}

func TestListGenresLoaderFailureUnavailable(t *testing.T) {
	svc := NewService(&stubStore{moviesErr: fmt.Errorf("connection refused")})

	_, err := svc.ListGenres(context.Background())
	if !errors.Is(err, domain.ErrMoviesUnavailable) {
		t.Errorf("expected ErrMoviesUnavailable, got %v", err)
	}
}

func TestListGenres(t *testing.T) {
	svc := NewService(&stubStore{movies: []domain.Movie{
		{Genre: "action"}, {Genre: "drama"}, {Genre: "action"},
	}})

	result, err := svc.ListGenres(context.Background())
	if err != nil {
		t.Fatalf("ListGenres failed: %v", err)
	}
	if result.Total != 3 || len(result.Genres) != 2 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestUserGenreAnalysisHistoryFailure(t *testing.T) {
	svc := NewService(&stubStore{
		movies:     []domain.Movie{{Genre: "action"}},
		historyErr: fmt.Errorf("connection refused"),
	})

	_, err := svc.UserGenreAnalysis(context.Background(), 1)
	if !errors.Is(err, domain.ErrHistoryUnavailable) {
		t.Errorf("expected ErrHistoryUnavailable, got %v", err)
	}
}

func TestUserGenreAnalysisUnknownUser(t *testing.T) {
	svc := NewService(&stubStore{
		movies:  []domain.Movie{{Genre: "action"}},
		history: domain.History{},
	})

	result, err := svc.UserGenreAnalysis(context.Background(), 42)
	if err != nil {
		t.Fatalf("unknown user must not error, got %v", err)
	}
	if result.WatchedMovies != 0 || result.Message == "" {
		t.Errorf("expected empty analysis with message, got %+v", result)
	}
}
