package app

import (
	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

// Tuning constants for the advisor. ratingFactor is the share of the
// base rate applied per full rating-point of differential.
const (
	defaultHotelRating = 4.3
	ratingFactor       = 0.04

	highOccupancyThreshold = 0.8
	lowOccupancyThreshold  = 0.5
	highOccupancyUplift    = 0.12
	lowOccupancyDiscount   = -0.08

	rainProbThreshold = 0.6
	hotTempC          = 28.0
	coldTempC         = 16.0
	rainDiscount      = -0.06
	heatUplift        = 0.04
	coldDiscount      = -0.05
)

// noWeatherData is surfaced in the drivers when no snapshot exists.
const noWeatherData = "no data"

// CompetitorQuote is the display row for one competitor: the raw latest
// rate is kept even when it was excluded from the base-rate average.
type CompetitorQuote struct {
	Name       string          `json:"name"`
	Rating     float64         `json:"rating"`
	DistanceKM float64         `json:"distance_km"`
	Rate       decimal.Decimal `json:"rate"`
}

// PricingDrivers are the named inputs every adjustment traces back to.
type PricingDrivers struct {
	RatingDelta    float64 `json:"rating_delta"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	WeatherSummary string  `json:"weather_summary"`
}

// PricingAdjustments itemizes each driver's contribution to the rate.
type PricingAdjustments struct {
	Rating    decimal.Decimal `json:"rating"`
	Occupancy decimal.Decimal `json:"occupancy"`
	Weather   decimal.Decimal `json:"weather"`
}

type PricingSuggestion struct {
	BaseRate      decimal.Decimal    `json:"base_rate"`
	SuggestedRate decimal.Decimal    `json:"suggested_rate"`
	Adjustments   PricingAdjustments `json:"adjustments"`
	Drivers       PricingDrivers     `json:"drivers"`
	Competitors   []CompetitorQuote  `json:"competitors"`
}

// SuggestRate derives a nightly rate from competitor pricing, the
// guest-rating differential, current occupancy, and the latest weather
// observation. Missing data in any input degrades the matching
// adjustment to zero; the result is always a usable, non-negative rate.
func SuggestRate(hotel domain.Hotel, competitors []domain.CompetitorHotel, occupancyRate float64, weather *domain.WeatherSnapshot) PricingSuggestion {
	var validRates, ratings []decimal.Decimal
	quotes := make([]CompetitorQuote, 0, len(competitors))

	for _, c := range competitors {
		q := CompetitorQuote{Name: c.Name}
		if c.Rating != nil {
			q.Rating = *c.Rating
			if *c.Rating > 0 {
				ratings = append(ratings, decimal.NewFromFloat(*c.Rating))
			}
		}
		if c.DistanceKM != nil {
			q.DistanceKM = *c.DistanceKM
		}
		if c.LatestRate != nil {
			q.Rate = c.LatestRate.Rate
			if c.LatestRate.Rate.IsPositive() {
				validRates = append(validRates, c.LatestRate.Rate)
			}
		} else {
			q.Rate = decimal.Zero
		}
		quotes = append(quotes, q)
	}

	baseRate := safeAverageDecimal(validRates)

	hotelRating := defaultHotelRating
	if hotel.Rating != nil {
		hotelRating = *hotel.Rating
	}
	// Compatibility default: an empty competitor-rating set averages to
	// zero rather than skipping the rating adjustment. Delta stays in
	// decimal so the adjustment is exact.
	ratingDelta := decimal.NewFromFloat(hotelRating).Sub(safeAverageDecimal(ratings))
	ratingAdj := baseRate.Mul(ratingDelta).Mul(decimal.NewFromFloat(ratingFactor))

	occupancyAdj := decimal.Zero
	switch {
	case occupancyRate >= highOccupancyThreshold:
		occupancyAdj = baseRate.Mul(decimal.NewFromFloat(highOccupancyUplift))
	case occupancyRate <= lowOccupancyThreshold:
		occupancyAdj = baseRate.Mul(decimal.NewFromFloat(lowOccupancyDiscount))
	}

	weatherAdj := decimal.Zero
	weatherSummary := noWeatherData
	if weather != nil {
		weatherSummary = weather.Summary
		// First match wins; adjustments never stack.
		switch {
		case weather.PrecipProb > rainProbThreshold:
			weatherAdj = baseRate.Mul(decimal.NewFromFloat(rainDiscount))
		case weather.TempC > hotTempC:
			weatherAdj = baseRate.Mul(decimal.NewFromFloat(heatUplift))
		case weather.TempC < coldTempC:
			weatherAdj = baseRate.Mul(decimal.NewFromFloat(coldDiscount))
		}
	}

	suggested := baseRate.Add(ratingAdj).Add(occupancyAdj).Add(weatherAdj)
	if suggested.IsNegative() {
		suggested = decimal.Zero
	}

	return PricingSuggestion{
		BaseRate:      baseRate,
		SuggestedRate: suggested,
		Adjustments: PricingAdjustments{
			Rating:    ratingAdj,
			Occupancy: occupancyAdj,
			Weather:   weatherAdj,
		},
		Drivers: PricingDrivers{
			RatingDelta:    ratingDelta.InexactFloat64(),
			OccupancyRate:  occupancyRate,
			WeatherSummary: weatherSummary,
		},
		Competitors: quotes,
	}
}
