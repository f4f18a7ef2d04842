package domain

import (
	"context"
	"time"
)

// AnalyticsRepository is the read side the reporting core depends on.
// Every method returns a point-in-time snapshot; empty results are
// normal and never an error.
type AnalyticsRepository interface {
	ListRooms(ctx context.Context, hotelID int64) ([]Room, error)
	// ListOpenIssues returns issues with status open or in_progress only.
	ListOpenIssues(ctx context.Context, hotelID int64) ([]RoomIssue, error)
	// ListRevenueEntries returns revenue-type entries with occurredAt in [from, to].
	ListRevenueEntries(ctx context.Context, hotelID int64, from, to time.Time) ([]FinancialEntry, error)
	// ListAllRevenueEntries returns lifetime revenue-type entries.
	ListAllRevenueEntries(ctx context.Context, hotelID int64) ([]FinancialEntry, error)
	// ListReservationsSince returns reservations with check-in at or after from.
	ListReservationsSince(ctx context.Context, hotelID int64, from time.Time) ([]Reservation, error)
	// ListCompetitors loads each competitor with its most recent rate snapshot, if any.
	ListCompetitors(ctx context.Context, hotelID int64) ([]CompetitorHotel, error)
	// LatestWeather returns nil when no snapshot has ever been recorded.
	LatestWeather(ctx context.Context, hotelID int64) (*WeatherSnapshot, error)
	ListChannelStatuses(ctx context.Context, hotelID int64) ([]ChannelSyncStatus, error)
}

// MarketRepository is the write side used by the ingestor.
type MarketRepository interface {
	UpsertRateSnapshot(ctx context.Context, s RateSnapshot) error
	UpsertWeather(ctx context.Context, w WeatherSnapshot) error
	ListCompetitorIDs(ctx context.Context, hotelID int64) ([]int64, error)
}

// HotelDirectory resolves hotels. EnsureDefaultHotel is an idempotent
// upsert: it creates the single default hotel on first call and returns
// the same row on every later call.
type HotelDirectory interface {
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	EnsureDefaultHotel(ctx context.Context) (Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// MarketFeed is the outbound market-data source (competitor rates, weather).
type MarketFeed interface {
	CompetitorRates(ctx context.Context, hotelID int64) ([]FeedRate, error)
	Weather(ctx context.Context, hotelID int64) (FeedWeather, error)
}

// FeedRate is one competitor rate as delivered by the feed.
type FeedRate struct {
	CompetitorID int64   `json:"competitor_id"`
	Date         string  `json:"date"` // 2006-01-02
	Rate         float64 `json:"rate"`
}

type FeedWeather struct {
	Date       string  `json:"date"` // 2006-01-02
	TempC      float64 `json:"temp_c"`
	PrecipProb float64 `json:"precip_prob"`
	Summary    string  `json:"summary"`
}
