package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

const feedDateLayout = "2006-01-02"

// IngestionService pulls competitor rates and weather from the market
// feed and persists them, keeping the advisor's inputs fresh.
type IngestionService struct {
	feed  domain.MarketFeed
	repo  domain.MarketRepository
	cache domain.Cache
}

func NewIngestionService(feed domain.MarketFeed, repo domain.MarketRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{feed: feed, repo: repo, cache: cache}
}

// IngestMarketData runs one feed pass for a hotel. A feed 404 means the
// hotel simply has no data yet and is not an error; anything else
// (network, 5xx, malformed payload) bubbles up.
func (s *IngestionService) IngestMarketData(ctx context.Context, hotelID int64) error {
	known, err := s.repo.ListCompetitorIDs(ctx, hotelID)
	if err != nil {
		return err
	}
	knownSet := make(map[int64]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	rates, err := s.feed.CompetitorRates(ctx, hotelID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Warn().Int64("hotel_id", hotelID).Msg("feed has no competitor rates")
	case err != nil:
		return err
	default:
		for _, fr := range rates {
			if _, ok := knownSet[fr.CompetitorID]; !ok {
				// Feed may carry competitors this hotel does not track.
				continue
			}
			day, perr := time.Parse(feedDateLayout, fr.Date)
			if perr != nil {
				return fmt.Errorf("rate date for competitor %d: %w", fr.CompetitorID, perr)
			}
			snap := domain.RateSnapshot{
				CompetitorID: fr.CompetitorID,
				Date:         day,
				Rate:         decimal.NewFromFloat(fr.Rate),
			}
			if err := s.repo.UpsertRateSnapshot(ctx, snap); err != nil {
				return fmt.Errorf("upsert rate for competitor %d: %w", fr.CompetitorID, err)
			}
		}
	}

	weather, err := s.feed.Weather(ctx, hotelID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Warn().Int64("hotel_id", hotelID).Msg("feed has no weather")
	case err != nil:
		return err
	default:
		day, perr := time.Parse(feedDateLayout, weather.Date)
		if perr != nil {
			return fmt.Errorf("weather date: %w", perr)
		}
		w := domain.WeatherSnapshot{
			HotelID:    hotelID,
			Date:       day,
			TempC:      weather.TempC,
			PrecipProb: weather.PrecipProb,
			Summary:    weather.Summary,
		}
		if err := s.repo.UpsertWeather(ctx, w); err != nil {
			return fmt.Errorf("upsert weather: %w", err)
		}
	}

	// Fresh market data changes the suggested rate; drop the stale report.
	if s.cache != nil {
		_ = s.cache.Del(ctx, fmt.Sprintf("report:pricing:%d", hotelID))
	}
	return nil
}
