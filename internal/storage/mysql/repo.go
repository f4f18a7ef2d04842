package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

// Repo implements the analytics read port, the market write port, and
// the hotel directory over one MySQL handle.
type Repo struct {
	db           *sql.DB
	defaultHotel string
}

func New(db *sql.DB, defaultHotel string) *Repo {
	return &Repo{db: db, defaultHotel: defaultHotel}
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func f64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

// scanDecimal parses a DECIMAL column. NULL scans to zero; a malformed
// value is a read failure and propagates.
func scanDecimal(ns sql.NullString) (decimal.Decimal, error) {
	if !ns.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(ns.String)
}

func (r *Repo) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var category sql.NullString
		var status string
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Number, &category, &status); err != nil {
			return nil, err
		}
		rm.Category = strPtr(category)
		rm.Status = domain.RoomStatus(status)
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListOpenIssues(ctx context.Context, hotelID int64) ([]domain.RoomIssue, error) {
	rows, err := r.db.QueryContext(ctx, listOpenIssuesSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomIssue
	for rows.Next() {
		var is domain.RoomIssue
		var category sql.NullString
		var status string
		if err := rows.Scan(&is.ID, &is.RoomID, &status, &category, &is.ReportedAt); err != nil {
			return nil, err
		}
		is.Status = domain.IssueStatus(status)
		is.Category = strPtr(category)
		out = append(out, is)
	}
	return out, rows.Err()
}

func (r *Repo) ListRevenueEntries(ctx context.Context, hotelID int64, from, to time.Time) ([]domain.FinancialEntry, error) {
	return r.queryEntries(ctx, listRevenueEntriesSQL, hotelID, from, to)
}

func (r *Repo) ListAllRevenueEntries(ctx context.Context, hotelID int64) ([]domain.FinancialEntry, error) {
	return r.queryEntries(ctx, listAllRevenueEntriesSQL, hotelID)
}

func (r *Repo) queryEntries(ctx context.Context, query string, args ...any) ([]domain.FinancialEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FinancialEntry
	for rows.Next() {
		var e domain.FinancialEntry
		var entryType, center string
		var roomCat, pkgType, season, amount sql.NullString
		if err := rows.Scan(&e.ID, &e.HotelID, &entryType, &center, &roomCat, &pkgType, &season, &amount, &e.OccurredAt); err != nil {
			return nil, err
		}
		e.Type = domain.EntryType(entryType)
		e.ProfitCenter = domain.ProfitCenter(center)
		e.RoomCategory = strPtr(roomCat)
		e.PackageType = strPtr(pkgType)
		if season.Valid {
			s := domain.Season(season.String)
			e.Season = &s
		}
		if e.NetAmount, err = scanDecimal(amount); err != nil {
			return nil, fmt.Errorf("financial entry %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) ListReservationsSince(ctx context.Context, hotelID int64, from time.Time) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, listReservationsSinceSQL, hotelID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		var roomID sql.NullInt64
		var status string
		var source, season, amount sql.NullString
		if err := rows.Scan(&rv.ID, &rv.HotelID, &roomID, &rv.GuestID, &status, &source, &rv.CheckIn, &rv.CheckOut, &amount, &season); err != nil {
			return nil, err
		}
		if roomID.Valid {
			id := roomID.Int64
			rv.RoomID = &id
		}
		rv.Status = domain.ReservationStatus(status)
		rv.Source = strPtr(source)
		if season.Valid {
			s := domain.Season(season.String)
			rv.Season = &s
		}
		if rv.TotalAmount, err = scanDecimal(amount); err != nil {
			return nil, fmt.Errorf("reservation %d: %w", rv.ID, err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ListCompetitors(ctx context.Context, hotelID int64) ([]domain.CompetitorHotel, error) {
	rows, err := r.db.QueryContext(ctx, listCompetitorsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CompetitorHotel
	for rows.Next() {
		var c domain.CompetitorHotel
		var rating, distance sql.NullFloat64
		var rateStr sql.NullString
		var rateDate sql.NullTime
		if err := rows.Scan(&c.ID, &c.HotelID, &c.Name, &rating, &distance, &rateStr, &rateDate); err != nil {
			return nil, err
		}
		c.Rating = f64Ptr(rating)
		c.DistanceKM = f64Ptr(distance)
		if rateStr.Valid && rateDate.Valid {
			rate, err := decimal.NewFromString(rateStr.String)
			if err != nil {
				return nil, fmt.Errorf("competitor %d rate: %w", c.ID, err)
			}
			c.LatestRate = &domain.RateSnapshot{CompetitorID: c.ID, Date: rateDate.Time, Rate: rate}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListCompetitorIDs(ctx context.Context, hotelID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, listCompetitorIDsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *Repo) LatestWeather(ctx context.Context, hotelID int64) (*domain.WeatherSnapshot, error) {
	row := r.db.QueryRowContext(ctx, latestWeatherSQL, hotelID)

	var w domain.WeatherSnapshot
	if err := row.Scan(&w.ID, &w.HotelID, &w.Date, &w.TempC, &w.PrecipProb, &w.Summary); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // never observed: a normal state, not an error
		}
		return nil, err
	}
	return &w, nil
}

func (r *Repo) ListChannelStatuses(ctx context.Context, hotelID int64) ([]domain.ChannelSyncStatus, error) {
	rows, err := r.db.QueryContext(ctx, listChannelStatusesSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChannelSyncStatus
	for rows.Next() {
		var cs domain.ChannelSyncStatus
		var last sql.NullTime
		if err := rows.Scan(&cs.Channel, &cs.Status, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			t := last.Time
			cs.LastSyncAt = &t
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)

	var h domain.Hotel
	var rating sql.NullFloat64
	if err := row.Scan(&h.ID, &h.Name, &rating); err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	h.Rating = f64Ptr(rating)
	return h, nil
}

func (r *Repo) EnsureDefaultHotel(ctx context.Context) (domain.Hotel, error) {
	res, err := r.db.ExecContext(ctx, ensureHotelSQL, r.defaultHotel)
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return r.GetHotel(ctx, id)
}

func (r *Repo) UpsertRateSnapshot(ctx context.Context, s domain.RateSnapshot) error {
	_, err := r.db.ExecContext(ctx, upsertRateSnapshotSQL,
		s.CompetitorID,
		s.Date.Format("2006-01-02"),
		s.Rate.String(),
	)
	return err
}

func (r *Repo) UpsertWeather(ctx context.Context, w domain.WeatherSnapshot) error {
	_, err := r.db.ExecContext(ctx, upsertWeatherSQL,
		w.HotelID,
		w.Date.Format("2006-01-02"),
		w.TempC,
		w.PrecipProb,
		w.Summary,
	)
	return err
}
