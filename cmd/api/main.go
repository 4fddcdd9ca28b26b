package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/http_server"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/observability"
	redisad "github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/redis"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/app"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/sentiment"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/shared"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/storage/memory"
	mysqlrepo "github.com/stayer56/UCAR-sentiment-analysis/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	var repo domain.ReviewRepository
	switch cfg.StoreBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	default:
		log.Info().Msg("using in-memory review store")
		repo = memory.New()
	}

	// deps
	classifier := sentiment.NewClassifier(sentiment.DefaultLexicon())
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewReviewService(classifier, repo, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Svc:           svc,
		InsertLimiter: rate.NewLimiter(rate.Limit(cfg.InsertRPS), cfg.InsertRPS),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
