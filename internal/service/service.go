package service

import (
	"context"
	"fmt"
	"log"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
	"github.com/actuallystonmai/genre-analysis-service/internal/genre"
	"github.com/actuallystonmai/genre-analysis-service/internal/store"
)

// Service loads fresh snapshots from the store and runs the genre
// aggregations over them. It holds no state between requests.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListGenres(ctx context.Context) (*domain.GenreList, error) {
	movies, err := s.loadMovies(ctx)
	if err != nil {
		return nil, err
	}
	result := genre.ListGenres(movies)
	return &result, nil
}

func (s *Service) PopularGenres(ctx context.Context, limit int) (*domain.PopularList, error) {
	movies, err := s.loadMovies(ctx)
	if err != nil {
		return nil, err
	}
	result := genre.PopularGenres(movies, limit)
	return &result, nil
}

func (s *Service) DecadeAnalysis(ctx context.Context) (*domain.AnalysisResult, error) {
	movies, err := s.loadMovies(ctx)
	if err != nil {
		return nil, err
	}
	result := genre.DecadeAnalysis(movies)
	return &result, nil
}

func (s *Service) UserGenreAnalysis(ctx context.Context, userID int64) (*domain.UserAnalysis, error) {
	movies, err := s.loadMovies(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.store.LoadHistory(ctx)
	if err != nil {
		log.Printf("[service] load history: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
	}

	result := genre.UserAnalysis(userID, movies, history)
	return &result, nil
}

// loadMovies fetches the catalog, treating a load failure and an empty
// catalog as the same unavailable condition; upstream both collapse into one
// response.
func (s *Service) loadMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.store.LoadMovies(ctx)
	if err != nil {
		log.Printf("[service] load movies: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrMoviesUnavailable, err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrMoviesUnavailable
	}
	return movies, nil
}
