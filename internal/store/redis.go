package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	moviesKey        = "catalog:movies"
	historyKeyPrefix = "history:user:"
	scanBatchSize    = 100
)

// RedisStore loads the catalog from the catalog:movies list and per-user
// watch history from history:user:<id> lists. Entries are stored as JSON
// documents; ones that fail to decode are skipped so a single bad record
// never takes down a load.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	vals, err := s.client.LRange(ctx, moviesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load movies from redis: %w", err)
	}

	movies := make([]domain.Movie, 0, len(vals))
	for _, val := range vals {
		var m domain.Movie
		if err := json.Unmarshal([]byte(val), &m); err != nil {
			continue
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func (s *RedisStore) LoadHistory(ctx context.Context) (domain.History, error) {
	history := domain.History{}

	iter := s.client.Scan(ctx, 0, historyKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		userID := strings.TrimPrefix(key, historyKeyPrefix)

		vals, err := s.client.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("load history %s: %w", key, err)
		}

		entries := make([]domain.HistoryEntry, 0, len(vals))
		for _, val := range vals {
			var e domain.HistoryEntry
			if err := json.Unmarshal([]byte(val), &e); err != nil {
				continue
			}
			entries = append(entries, e)
		}
		history[userID] = entries
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan history keys: %w", err)
	}
	return history, nil
}

// Ping connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
