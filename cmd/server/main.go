package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/actuallystonmai/genre-analysis-service/internal/config"
	"github.com/actuallystonmai/genre-analysis-service/internal/handler"
	"github.com/actuallystonmai/genre-analysis-service/internal/router"
	"github.com/actuallystonmai/genre-analysis-service/internal/service"
	"github.com/actuallystonmai/genre-analysis-service/internal/store"
	"github.com/actuallystonmai/genre-analysis-service/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to set up %s store: %v", cfg.StoreBackend, err)
	}

	svc := service.NewService(st)
	h := handler.NewHandler(svc)
	r := router.Setup(h)

	log.Printf("Genre Analysis Service running on %s (store: %s)", cfg.Addr(), cfg.StoreBackend)
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}

func buildStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return setupPostgres(ctx, cfg)
	case config.BackendRedis:
		return setupRedis(ctx, cfg)
	default:
		return store.NewFileStore(cfg.DataDir), nil
	}
}

func setupPostgres(ctx context.Context, cfg *config.Config) (store.Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := waitForDB(ctx, pool); err != nil {
		return nil, err
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			return nil, fmt.Errorf("migrate down: %w", err)
		}
		log.Println("migrations dropped")
		os.Exit(0)
	}

	if err := migrateUp(ctx, pool); err != nil {
		return nil, fmt.Errorf("migrate up: %w", err)
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool); err != nil {
		return nil, fmt.Errorf("check seed: %w", err)
	}

	return store.NewPostgresStore(pool), nil
}

func setupRedis(ctx context.Context, cfg *config.Config) (store.Store, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	st := store.NewRedisStore(redis.NewClient(opts))
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Println("connected to Redis")
	return st, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return fmt.Errorf("check movies count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d movies), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
