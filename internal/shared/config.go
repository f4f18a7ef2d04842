package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	FeedBase     string
	FeedKey      string
	FeedRPS      int
	Workers      int
	DefaultHotel string
	HotelIDs     []int64
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
		MySQLDSN:     env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotelpulse?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisDB:      atoi("REDIS_DB", 0),
		RedisPass:    env("REDIS_PASSWORD", ""),
		FeedBase:     env("FEED_BASE_URL", "https://feed.hotelpulse.example/api"),
		FeedKey:      env("FEED_API_KEY", ""),
		FeedRPS:      atoi("FEED_RPS", 5),
		Workers:      atoi("INGEST_WORKERS", 4),
		DefaultHotel: env("DEFAULT_HOTEL_NAME", "Main Property"),
		HotelIDs:     hotelIDs("INGEST_HOTEL_IDS"),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	if c.FeedKey == "" {
		log.Warn().Msg("FEED_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// hotelIDs parses a comma-separated id list; bad tokens are skipped with a warning.
func hotelIDs(k string) []int64 {
	raw := os.Getenv(k)
	if raw == "" {
		return nil
	}
	var out []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Warn().Str("value", part).Msgf("ignoring bad id in %s", k)
			continue
		}
		out = append(out, id)
	}
	return out
}
