package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
	"github.com/actuallystonmai/genre-analysis-service/internal/handler"
	"github.com/actuallystonmai/genre-analysis-service/internal/router"
	"github.com/actuallystonmai/genre-analysis-service/internal/service"
)

type stubStore struct {
	movies    []domain.Movie
	history   domain.History
	moviesErr error
}

func (s *stubStore) LoadMovies(context.Context) ([]domain.Movie, error) {
	return s.movies, s.moviesErr
}

func (s *stubStore) LoadHistory(context.Context) (domain.History, error) {
	return s.history, nil
}

func newTestServer(st *stubStore) http.Handler {
	return router.Setup(handler.NewHandler(service.NewService(st)))
}

func doGet(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func catalog() []domain.Movie {
	return []domain.Movie{
		{Genre: "action", ReleaseDate: "1999-01-01"},
		{Genre: "drama", ReleaseDate: "2001-05-05"},
		{Genre: "action", ReleaseDate: "2001-07-07"},
	}
}

func TestGetGenres(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog()})

	rec := doGet(t, srv, "/genres")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp handler.GenreListResponse
	decodeBody(t, rec, &resp)

	if resp.TotalMovies != 3 {
		t.Errorf("expected total_movies 3, got %d", resp.TotalMovies)
	}
	if len(resp.Genres) != 2 || resp.Genres[0].Name != "action" {
		t.Errorf("unexpected genres %v", resp.Genres)
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp")
	}
}

func TestGetGenresDataUnavailable(t *testing.T) {
	srv := newTestServer(&stubStore{moviesErr: fmt.Errorf("boom")})

	rec := doGet(t, srv, "/genres")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp handler.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Could not read movies data" {
		t.Errorf("unexpected error message %q", resp.Message)
	}
}

func TestGetGenresEmptyCatalog(t *testing.T) {
	// Empty and failed loads collapse to the same response
	srv := newTestServer(&stubStore{})

	rec := doGet(t, srv, "/genres")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetPopularGenres(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog()})

	rec := doGet(t, srv, "/genres/popular")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp handler.PopularGenresResponse
	decodeBody(t, rec, &resp)

	if len(resp.PopularGenres) != 2 {
		t.Fatalf("expected 2 popular genres, got %d", len(resp.PopularGenres))
	}
	top := resp.PopularGenres[0]
	if top.Name != "action" || top.Count != 2 || top.Percentage != 66.7 {
		t.Errorf("unexpected top genre %+v", top)
	}
}

func TestGetPopularGenresLimitParam(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog()})

	rec := doGet(t, srv, "/genres/popular?limit=1")
	var resp handler.PopularGenresResponse
	decodeBody(t, rec, &resp)
	if len(resp.PopularGenres) != 1 {
		t.Errorf("expected 1 entry with limit=1, got %d", len(resp.PopularGenres))
	}

	rec = doGet(t, srv, "/genres/popular?limit=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for limit=0, got %d", rec.Code)
	}

	rec = doGet(t, srv, "/genres/popular?limit=abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric limit, got %d", rec.Code)
	}
}

func TestGetGenreAnalysis(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog()})

	rec := doGet(t, srv, "/genres/analysis")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp handler.AnalysisResponse
	decodeBody(t, rec, &resp)

	if len(resp.Decades) != 2 {
		t.Fatalf("expected 2 decades, got %d", len(resp.Decades))
	}
	if resp.Decades[0].Decade != "1990s" || resp.Decades[1].Decade != "2000s" {
		t.Errorf("unexpected decade order %v", resp.Decades)
	}
	if resp.TotalMovies != 3 {
		t.Errorf("expected total_movies 3, got %d", resp.TotalMovies)
	}
}

func TestGetUserGenreAnalysis(t *testing.T) {
	srv := newTestServer(&stubStore{
		movies: catalog(),
		history: domain.History{
			"7": {{Genre: "action"}, {Genre: "action"}, {}},
		},
	})

	rec := doGet(t, srv, "/genres/user/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp handler.UserAnalysisResponse
	decodeBody(t, rec, &resp)

	if resp.UserID != 7 || resp.WatchedMovies != 3 {
		t.Errorf("unexpected user fields %+v", resp)
	}
	if len(resp.GenreBreakdown) != 1 || resp.GenreBreakdown[0].Percentage != 66.7 {
		t.Errorf("unexpected breakdown %v", resp.GenreBreakdown)
	}
	if len(resp.SuggestedNewGenres) != 1 || resp.SuggestedNewGenres[0] != "drama" {
		t.Errorf("unexpected suggestions %v", resp.SuggestedNewGenres)
	}
}

func TestGetUserGenreAnalysisUnknownUser(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog(), history: domain.History{}})

	rec := doGet(t, srv, "/genres/user/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown user must be a success, got %d", rec.Code)
	}

	var resp handler.UserAnalysisResponse
	decodeBody(t, rec, &resp)

	if resp.WatchedMovies != 0 {
		t.Errorf("expected watched_movies 0, got %d", resp.WatchedMovies)
	}
	if len(resp.GenreBreakdown) != 0 || len(resp.TopGenres) != 0 || len(resp.SuggestedNewGenres) != 0 {
		t.Errorf("expected empty list fields, got %+v", resp)
	}
	if resp.Message == "" {
		t.Error("expected explanatory message")
	}

	// Lists serialize as [], not null
	body := rec.Body.String()
	for _, field := range []string{`"genre_breakdown":[]`, `"top_genres":[]`, `"suggested_new_genres":[]`} {
		if !strings.Contains(body, field) {
			t.Errorf("expected %s in body %s", field, body)
		}
	}
}

func TestGetUserGenreAnalysisInvalidID(t *testing.T) {
	srv := newTestServer(&stubStore{movies: catalog()})

	for _, path := range []string{"/genres/user/abc", "/genres/user/0", "/genres/user/-3"} {
		rec := doGet(t, srv, path)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubStore{})

	rec := doGet(t, srv, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("unexpected health payload %v", resp)
	}
}

func TestHome(t *testing.T) {
	srv := newTestServer(&stubStore{})

	rec := doGet(t, srv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message == "" || len(resp.Endpoints) == 0 {
		t.Errorf("unexpected discovery payload %+v", resp)
	}
}
