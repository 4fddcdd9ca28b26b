package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	StoreBackend string // memory|mysql
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	InsertRPS    int
	SeedWorkers  int
	SeedFile     string
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		StoreBackend: env("STORE_BACKEND", "memory"),
		MySQLDSN:     env("MYSQL_DSN", "root:root@tcp(localhost:3306)/reviews?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		InsertRPS:    atoi("INSERT_RPS", 20),
		SeedWorkers:  atoi("SEED_WORKERS", 8),
		SeedFile:     env("SEED_FILE", "reviews.txt"),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
	}
	if c.StoreBackend != "memory" && c.StoreBackend != "mysql" {
		log.Warn().Str("backend", c.StoreBackend).Msg("unknown STORE_BACKEND, falling back to memory")
		c.StoreBackend = "memory"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
