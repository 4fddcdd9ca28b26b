// Seeder bulk-loads a review corpus (one review per line) through the same
// classify-then-append path the API uses. Inserts run on a bounded worker
// pool; ID assignment stays gapless because the store serializes appends.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"strings"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/observability"
	redisad "github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/redis"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/app"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/sentiment"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/shared"
	mysqlrepo "github.com/stayer56/UCAR-sentiment-analysis/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	classifier := sentiment.NewClassifier(sentiment.DefaultLexicon())
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewReviewService(classifier, repo, cache, cfg.CacheTTL)

	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("open seed file failed")
	}
	defer f.Close()

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	var total, skipped int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}
		total++

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			defer sem.Release(1)

			r, err := svc.Create(ctx, text)
			if err != nil {
				log.Warn().Err(err).Msg("seed insert failed")
				return
			}
			log.Info().Int64("id", r.ID).Str("sentiment", r.Sentiment.String()).Msg("seeded")
		}(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}

	wg.Wait()
	log.Info().Int("total", total).Int("skipped", skipped).Msg("seeding completed")
}
