package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"hotelpulse/internal/adapters/observability"
	"hotelpulse/internal/app"
	"hotelpulse/internal/domain"
)

type Handlers struct {
	Reports *app.ReportService
	Hotels  domain.HotelDirectory
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/reports/occupancy", h.occupancy)
	s.mux.Get("/v1/reports/revenue", h.revenue)
	s.mux.Get("/v1/reports/profit", h.profit)
	s.mux.Get("/v1/reports/pricing", h.pricing)
	s.mux.Get("/v1/reports/dashboard", h.dashboard)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeReport(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write report body")
	}
}

// resolveHotelID reads hotel_id or falls back to the default hotel.
// The ensure/create happens here, once per request, never inside the
// aggregators. A reported=false return means the problem was written.
func (h *Handlers) resolveHotelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("hotel_id")
	if raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid hotel_id", "hotel_id must be a positive integer")
			return 0, false
		}
		return id, true
	}
	hotel, err := h.Hotels.EnsureDefaultHotel(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Hotel resolution failed", err.Error())
		return 0, false
	}
	return hotel.ID, true
}

// parseAsOf validates as_of before any read is issued. Accepts RFC 3339
// or a bare date; absent means now.
func parseAsOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	writeProblem(w, http.StatusBadRequest, "Invalid as_of", "as_of must be RFC 3339 or YYYY-MM-DD")
	return time.Time{}, false
}

func reportError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeProblem(w, http.StatusInternalServerError, "Report failed", err.Error())
}

func (h *Handlers) occupancy(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := h.resolveHotelID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	rep, err := h.Reports.GetOccupancyReport(r.Context(), hotelID)
	observability.ObserveReport("occupancy", err, time.Since(start))
	if err != nil {
		reportError(w, err)
		return
	}
	writeReport(w, r, rep)
}

func (h *Handlers) revenue(w http.ResponseWriter, r *http.Request) {
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}
	hotelID, ok := h.resolveHotelID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	sum, err := h.Reports.GetRevenueSummary(r.Context(), hotelID, asOf)
	observability.ObserveReport("revenue", err, time.Since(start))
	if err != nil {
		reportError(w, err)
		return
	}
	writeReport(w, r, sum)
}

func (h *Handlers) profit(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := h.resolveHotelID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	pb, err := h.Reports.GetProfitBreakdown(r.Context(), hotelID)
	observability.ObserveReport("profit", err, time.Since(start))
	if err != nil {
		reportError(w, err)
		return
	}
	writeReport(w, r, renderProfit(pb))
}

func (h *Handlers) pricing(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := h.resolveHotelID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	ps, err := h.Reports.GetPricingSuggestion(r.Context(), hotelID)
	observability.ObserveReport("pricing", err, time.Since(start))
	if err != nil {
		reportError(w, err)
		return
	}
	writeReport(w, r, ps)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}
	hotelID, ok := h.resolveHotelID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	snap, err := h.Reports.GetDashboardSnapshot(r.Context(), hotelID, asOf)
	observability.ObserveReport("dashboard", err, time.Since(start))
	if err != nil {
		reportError(w, err)
		return
	}
	writeReport(w, r, snap)
}
