package store

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
)

const (
	moviesFile  = "movies.json"
	historyFile = "history.json"
)

// FileStore reads movies.json and history.json from a data directory on
// every call. A missing or malformed file yields an empty result, not an
// error; callers decide what an empty catalog means.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

func (s *FileStore) LoadMovies(_ context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	if !readJSONFile(filepath.Join(s.dataDir, moviesFile), &movies) {
		return nil, nil
	}
	return movies, nil
}

func (s *FileStore) LoadHistory(_ context.Context) (domain.History, error) {
	var history domain.History
	if !readJSONFile(filepath.Join(s.dataDir, historyFile), &history) {
		return domain.History{}, nil
	}
	return history, nil
}

// readJSONFile decodes path into v and reports whether the whole file
// parsed. Partial decodes are discarded by the caller.
func readJSONFile(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[store] read %s: %v", path, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[store] decode %s: %v", path, err)
		return false
	}
	return true
}
