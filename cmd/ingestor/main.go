package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelpulse/internal/adapters/marketdata"
	"hotelpulse/internal/adapters/observability"
	redisad "hotelpulse/internal/adapters/redis"
	"hotelpulse/internal/app"
	"hotelpulse/internal/shared"
	mysqlrepo "hotelpulse/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("feed", cfg.FeedBase).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db, cfg.DefaultHotel)

	feed, err := marketdata.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feed client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(feed, repo, cache)

	// Always cover the default hotel; INGEST_HOTEL_IDS adds more.
	hotel, err := repo.EnsureDefaultHotel(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("ensure default hotel failed")
	}
	ids := append([]int64{hotel.ID}, cfg.HotelIDs...)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestMarketData(ctx, hotelID); err != nil {
				log.Warn().Int64("id", hotelID).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Int64("id", hotelID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
