package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hotelpulse/internal/domain"
)

// ReportService computes the on-demand analytics reports. Every report
// is a pure function over one snapshot read; results are cached with a
// short TTL so dashboard refreshes do not hammer the store.
type ReportService struct {
	repo     domain.AnalyticsRepository
	hotels   domain.HotelDirectory
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewReportService(repo domain.AnalyticsRepository, hotels domain.HotelDirectory, cache domain.Cache, ttl time.Duration) *ReportService {
	return &ReportService{repo: repo, hotels: hotels, cache: cache, cacheTTL: ttl}
}

func (s *ReportService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *ReportService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

func (s *ReportService) GetOccupancyReport(ctx context.Context, hotelID int64) (OccupancyReport, error) {
	key := fmt.Sprintf("report:occupancy:%d", hotelID)
	var rep OccupancyReport
	if s.cacheGet(ctx, key, &rep) {
		return rep, nil
	}
	rooms, err := s.repo.ListRooms(ctx, hotelID)
	if err != nil {
		return OccupancyReport{}, err
	}
	issues, err := s.repo.ListOpenIssues(ctx, hotelID)
	if err != nil {
		return OccupancyReport{}, err
	}
	rep = CalcOccupancy(rooms, issues)
	s.cacheSet(ctx, key, rep)
	return rep, nil
}

// GetRevenueSummary aggregates revenue for the five windows anchored to
// asOf. The windows depend only on asOf's date, so the cache key does too.
func (s *ReportService) GetRevenueSummary(ctx context.Context, hotelID int64, asOf time.Time) (RevenueSummary, error) {
	key := fmt.Sprintf("report:revenue:%d:%s", hotelID, asOf.Format("2006-01-02"))
	var sum RevenueSummary
	if s.cacheGet(ctx, key, &sum) {
		return sum, nil
	}
	ws := ResolveWindows(asOf)
	span := revenueFetchWindow(ws)
	entries, err := s.repo.ListRevenueEntries(ctx, hotelID, span.Start, span.End)
	if err != nil {
		return RevenueSummary{}, err
	}
	sum = BuildRevenueSummary(entries, ws)
	s.cacheSet(ctx, key, sum)
	return sum, nil
}

func (s *ReportService) GetProfitBreakdown(ctx context.Context, hotelID int64) (ProfitBreakdown, error) {
	key := fmt.Sprintf("report:profit:%d", hotelID)
	var pb ProfitBreakdown
	if s.cacheGet(ctx, key, &pb) {
		return pb, nil
	}
	entries, err := s.repo.ListAllRevenueEntries(ctx, hotelID)
	if err != nil {
		return ProfitBreakdown{}, err
	}
	pb = BuildProfitBreakdown(entries)
	s.cacheSet(ctx, key, pb)
	return pb, nil
}

func (s *ReportService) GetPricingSuggestion(ctx context.Context, hotelID int64) (PricingSuggestion, error) {
	key := fmt.Sprintf("report:pricing:%d", hotelID)
	var ps PricingSuggestion
	if s.cacheGet(ctx, key, &ps) {
		return ps, nil
	}
	hotel, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return PricingSuggestion{}, err
	}
	competitors, err := s.repo.ListCompetitors(ctx, hotelID)
	if err != nil {
		return PricingSuggestion{}, err
	}
	occ, err := s.GetOccupancyReport(ctx, hotelID)
	if err != nil {
		return PricingSuggestion{}, err
	}
	weather, err := s.repo.LatestWeather(ctx, hotelID)
	if err != nil {
		return PricingSuggestion{}, err
	}
	ps = SuggestRate(hotel, competitors, occ.OccupancyRate, weather)
	s.cacheSet(ctx, key, ps)
	return ps, nil
}

// GetDashboardSnapshot fans the independent reads out concurrently and
// joins them into one snapshot. Any single read failure fails the whole
// snapshot; there is no partially filled document.
func (s *ReportService) GetDashboardSnapshot(ctx context.Context, hotelID int64, asOf time.Time) (DashboardSnapshot, error) {
	snap := DashboardSnapshot{HotelID: hotelID, AsOf: asOf}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Occupancy, err = s.GetOccupancyReport(gctx, hotelID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Revenue, err = s.GetRevenueSummary(gctx, hotelID, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Profit, err = s.GetProfitBreakdown(gctx, hotelID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Pricing, err = s.GetPricingSuggestion(gctx, hotelID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Channels, err = s.repo.ListChannelStatuses(gctx, hotelID)
		return err
	})
	g.Go(func() error {
		issues, err := s.repo.ListOpenIssues(gctx, hotelID)
		if err != nil {
			return err
		}
		snap.Alerts = BuildAlerts(issues)
		return nil
	})
	g.Go(func() error {
		reservations, err := s.repo.ListReservationsSince(gctx, hotelID, trendStart(asOf))
		if err != nil {
			return err
		}
		snap.Trend = BuildReservationTrend(reservations, asOf)
		snap.Sources = BuildSourceBreakdown(reservations)
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardSnapshot{}, err
	}
	return snap, nil
}
