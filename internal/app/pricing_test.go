package app_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hotelpulse/internal/app"
	"hotelpulse/internal/domain"
)

func f64p(f float64) *float64 { return &f }

func competitor(name string, rating float64, rate string) domain.CompetitorHotel {
	c := domain.CompetitorHotel{Name: name, HotelID: 1}
	if rating > 0 {
		c.Rating = f64p(rating)
	}
	c.LatestRate = &domain.RateSnapshot{
		Date: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		Rate: decimal.RequireFromString(rate),
	}
	return c
}

func TestSuggestRate_WorkedExample(t *testing.T) {
	// rates [400, 420, 0]: zero excluded from the average -> base 410.
	// hotel 4.8 vs avg competitor 4.0 -> delta 0.8 -> 410*0.8*0.04 = 13.12.
	// occupancy 0.85 -> +12% = 49.2. No weather -> 0. Total 472.32.
	hotel := domain.Hotel{ID: 1, Name: "Mine", Rating: f64p(4.8)}
	comps := []domain.CompetitorHotel{
		competitor("A", 4.5, "400"),
		competitor("B", 3.5, "420"),
		competitor("C", 0, "0"),
	}

	ps := app.SuggestRate(hotel, comps, 0.85, nil)

	if !ps.BaseRate.Equal(dec("410")) {
		t.Fatalf("base rate: got %s want 410", ps.BaseRate)
	}
	if ps.Drivers.RatingDelta != 0.8 {
		t.Fatalf("rating delta: got %v want 0.8", ps.Drivers.RatingDelta)
	}
	if !ps.Adjustments.Rating.Equal(dec("13.12")) {
		t.Fatalf("rating adjustment: got %s want 13.12", ps.Adjustments.Rating)
	}
	if !ps.Adjustments.Occupancy.Equal(dec("49.2")) {
		t.Fatalf("occupancy adjustment: got %s want 49.2", ps.Adjustments.Occupancy)
	}
	if !ps.Adjustments.Weather.IsZero() {
		t.Fatalf("weather adjustment: got %s want 0", ps.Adjustments.Weather)
	}
	if !ps.SuggestedRate.Equal(dec("472.32")) {
		t.Fatalf("suggested: got %s want 472.32", ps.SuggestedRate)
	}
	if ps.Drivers.WeatherSummary != "no data" {
		t.Fatalf("weather summary sentinel: got %q", ps.Drivers.WeatherSummary)
	}
}

func TestSuggestRate_NoCompetitors(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Rating: f64p(4.8)}

	ps := app.SuggestRate(hotel, nil, 0.85, nil)

	if !ps.BaseRate.IsZero() || !ps.SuggestedRate.IsZero() {
		t.Fatalf("empty competitor set must yield zero rates: %+v", ps)
	}
	// delta computed against the 0 default average, but multiplied into a zero base
	if ps.Drivers.RatingDelta != 4.8 {
		t.Fatalf("rating delta: got %v want 4.8", ps.Drivers.RatingDelta)
	}
	if !ps.Adjustments.Rating.IsZero() {
		t.Fatalf("rating adjustment must be zero on a zero base: %s", ps.Adjustments.Rating)
	}
}

func TestSuggestRate_InvalidRatesExcludedButDisplayed(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Rating: f64p(4.3)}
	comps := []domain.CompetitorHotel{
		competitor("A", 4.3, "300"),
		competitor("B", 4.3, "-50"),
		competitor("C", 4.3, "0"),
		{Name: "D", HotelID: 1, Rating: f64p(4.3)}, // never snapshotted
	}

	ps := app.SuggestRate(hotel, comps, 0.6, nil)

	if !ps.BaseRate.Equal(dec("300")) {
		t.Fatalf("base rate: got %s want 300", ps.BaseRate)
	}
	if len(ps.Competitors) != 4 {
		t.Fatalf("all competitors must stay in the list: %d", len(ps.Competitors))
	}
	if !ps.Competitors[1].Rate.Equal(dec("-50")) {
		t.Fatalf("raw rate must be preserved for display: %s", ps.Competitors[1].Rate)
	}
	if !ps.Competitors[3].Rate.IsZero() {
		t.Fatalf("missing snapshot must display as zero: %s", ps.Competitors[3].Rate)
	}
}

func TestSuggestRate_OccupancyBands(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Rating: f64p(4.0)}
	comps := []domain.CompetitorHotel{competitor("A", 4.0, "100")}

	cases := []struct {
		rate float64
		want string
	}{
		{0.8, "12"},   // at the high threshold: uplift applies
		{0.95, "12"},  // above
		{0.5, "-8"},   // at the low threshold: discount applies
		{0.2, "-8"},   // below
		{0.65, "0"},   // dead zone
		{0.79, "0"},   // just under the uplift
		{0.51, "0"},   // just over the discount
	}
	for _, c := range cases {
		ps := app.SuggestRate(hotel, comps, c.rate, nil)
		if !ps.Adjustments.Occupancy.Equal(dec(c.want)) {
			t.Errorf("occupancy %v: adjustment %s want %s", c.rate, ps.Adjustments.Occupancy, c.want)
		}
	}
}

func TestSuggestRate_WeatherPrecedence(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Rating: f64p(4.0)}
	comps := []domain.CompetitorHotel{competitor("A", 4.0, "100")}

	cases := []struct {
		name    string
		weather *domain.WeatherSnapshot
		want    string
	}{
		{"rain beats heat", &domain.WeatherSnapshot{PrecipProb: 0.7, TempC: 30, Summary: "storms"}, "-6"},
		{"hot", &domain.WeatherSnapshot{PrecipProb: 0.1, TempC: 29, Summary: "sunny"}, "4"},
		{"cold", &domain.WeatherSnapshot{PrecipProb: 0.1, TempC: 10, Summary: "frost"}, "-5"},
		{"mild", &domain.WeatherSnapshot{PrecipProb: 0.1, TempC: 20, Summary: "fair"}, "0"},
		{"rain threshold not met", &domain.WeatherSnapshot{PrecipProb: 0.6, TempC: 20, Summary: "drizzle"}, "0"},
		{"no snapshot", nil, "0"},
	}
	for _, c := range cases {
		ps := app.SuggestRate(hotel, comps, 0.6, c.weather)
		if !ps.Adjustments.Weather.Equal(dec(c.want)) {
			t.Errorf("%s: adjustment %s want %s", c.name, ps.Adjustments.Weather, c.want)
		}
		if c.weather != nil && ps.Drivers.WeatherSummary != c.weather.Summary {
			t.Errorf("%s: summary %q", c.name, ps.Drivers.WeatherSummary)
		}
	}
}

func TestSuggestRate_DefaultHotelRating(t *testing.T) {
	// unset hotel rating falls back to 4.3
	hotel := domain.Hotel{ID: 1}
	comps := []domain.CompetitorHotel{competitor("A", 4.3, "100")}

	ps := app.SuggestRate(hotel, comps, 0.6, nil)
	if ps.Drivers.RatingDelta != 0 {
		t.Fatalf("default rating delta: got %v want 0", ps.Drivers.RatingDelta)
	}
}

func TestSuggestRate_NeverNegative(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Rating: f64p(0.1)}
	// absurd competitor rating forces a rating adjustment below -100% of base
	comps := []domain.CompetitorHotel{competitor("A", 50, "100")}

	ps := app.SuggestRate(hotel, comps, 0.2, &domain.WeatherSnapshot{PrecipProb: 0.9, Summary: "monsoon"})
	if ps.SuggestedRate.IsNegative() {
		t.Fatalf("suggested rate went negative: %s", ps.SuggestedRate)
	}
	if !ps.SuggestedRate.IsZero() {
		t.Fatalf("expected clamp to zero, got %s", ps.SuggestedRate)
	}
}
