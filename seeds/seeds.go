package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE watch_history, movies RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting movies")
	if err := seedMovies(ctx, pool, rng, 50); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	log.Println("[seed] inserting watch history")
	if err := seedWatchHistory(ctx, pool, rng, 200); err != nil {
		return fmt.Errorf("seed watch history: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedMovies(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	genres := []string{"action", "drama", "comedy", "thriller", "sci-fi"}
	genreWeights := []float64{0.3, 0.25, 0.2, 0.15, 0.1}
	titles := map[string][]string{
		"action": {
			"Die Hard", "Mad Max: Fury Road", "John Wick", "The Dark Knight",
			"Gladiator", "Top Gun: Maverick", "The Raid", "Mission: Impossible",
			"Casino Royale", "The Avengers",
		},
		"drama": {
			"The Shawshank Redemption", "Forrest Gump", "The Godfather",
			"Schindler's List", "A Beautiful Mind", "12 Angry Men",
			"Parasite", "Moonlight", "Whiplash", "The Green Mile",
		},
		"comedy": {
			"Superbad", "The Hangover", "Bridesmaids", "Step Brothers",
			"Anchorman", "Mean Girls", "Borat", "Hot Fuzz",
			"Groundhog Day", "The Grand Budapest Hotel",
		},
		"thriller": {
			"Se7en", "Gone Girl", "Zodiac", "Prisoners",
			"Sicario", "No Country for Old Men", "Nightcrawler",
			"Shutter Island", "The Silence of the Lambs", "Oldboy",
		},
		"sci-fi": {
			"Blade Runner 2049", "Interstellar", "The Matrix", "Arrival",
			"Dune", "Ex Machina", "Alien", "Inception",
			"Edge of Tomorrow", "2001: A Space Odyssey",
		},
	}

	rows := []string{}
	args := []any{}
	counts := map[string]int{}

	for i := 0; i < n; i++ {
		genre := weightedChoice(rng, genres, genreWeights)
		titleList := titles[genre]
		title := titleList[counts[genre]%len(titleList)]
		if counts[genre] >= len(titleList) {
			title = fmt.Sprintf("%s %d", title, counts[genre]/len(titleList)+1)
		}
		counts[genre]++

		releaseDate := randomReleaseDate(rng)

		// Leave a few dates malformed so the decade analysis skip path
		// shows up against seeded data.
		if i%17 == 16 {
			releaseDate = "unknown"
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, title, genre, releaseDate)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO movies (title, genre, release_date) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedWatchHistory(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	genres := []string{"action", "drama", "comedy", "thriller", "sci-fi"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		userID := int64(math.Ceil(math.Pow(rng.Float64(), 1.5) * 20))
		userID = max(1, min(userID, 20))

		var genre any = genres[rng.Intn(len(genres))]
		// Some entries carry no genre tag; they count toward a user's
		// watched total but not the breakdown.
		if i%13 == 12 {
			genre = nil
		}

		title := fmt.Sprintf("Watched item %d", i+1)
		watchedAt := time.Now().AddDate(0, 0, -rng.Intn(180))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, userID, title, genre, watchedAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO watch_history (user_id, title, genre, watched_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// randomReleaseDate spreads releases across the 1970s-2020s.
func randomReleaseDate(rng *rand.Rand) string {
	year := 1970 + rng.Intn(55)
	month := 1 + rng.Intn(12)
	day := 1 + rng.Intn(28)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
