package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "available"
	RoomOccupied     RoomStatus = "occupied"
	RoomMaintenance  RoomStatus = "maintenance"
	RoomOutOfService RoomStatus = "out_of_service"
)

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

// Open reports whether the issue still needs attention.
func (s IssueStatus) Open() bool { return s == IssueOpen || s == IssueInProgress }

type Season string

const (
	SeasonHigh Season = "high"
	SeasonLow  Season = "low"
)

type EntryType string

const (
	EntryRevenue EntryType = "revenue"
	EntryExpense EntryType = "expense"
)

type ProfitCenter string

const (
	CenterRoom    ProfitCenter = "room"
	CenterPackage ProfitCenter = "package"
)

type ReservationStatus string

const (
	ReservationBooked     ReservationStatus = "booked"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCanceled   ReservationStatus = "canceled"
)

type Hotel struct {
	ID     int64
	Name   string
	Rating *float64
}

type Room struct {
	ID       int64
	HotelID  int64
	Number   string
	Category *string
	Status   RoomStatus
}

type RoomIssue struct {
	ID         int64
	RoomID     int64
	Status     IssueStatus
	Category   *string
	ReportedAt time.Time
}

type Reservation struct {
	ID          int64
	HotelID     int64
	RoomID      *int64
	GuestID     int64
	Status      ReservationStatus
	Source      *string
	CheckIn     time.Time
	CheckOut    time.Time
	TotalAmount decimal.Decimal
	Season      *Season
}

// FinancialEntry is one signed ledger row. Season, RoomCategory and
// PackageType are nil when the row was never classified.
type FinancialEntry struct {
	ID           int64
	HotelID      int64
	Type         EntryType
	ProfitCenter ProfitCenter
	RoomCategory *string
	PackageType  *string
	Season       *Season
	NetAmount    decimal.Decimal
	OccurredAt   time.Time
}

// RateSnapshot is one observed nightly rate for a competitor.
type RateSnapshot struct {
	CompetitorID int64
	Date         time.Time
	Rate         decimal.Decimal
}

// CompetitorHotel carries at most the latest rate snapshot when loaded
// through the repository (order-by-recency-take-one).
type CompetitorHotel struct {
	ID         int64
	HotelID    int64
	Name       string
	Rating     *float64
	DistanceKM *float64
	LatestRate *RateSnapshot
}

type WeatherSnapshot struct {
	ID         int64
	HotelID    int64
	Date       time.Time
	TempC      float64
	PrecipProb float64
	Summary    string
}

type ChannelSyncStatus struct {
	Channel    string
	Status     string
	LastSyncAt *time.Time
}
