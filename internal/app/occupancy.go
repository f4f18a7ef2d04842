package app

import "hotelpulse/internal/domain"

// OccupancyReport is a point-in-time census of the hotel's rooms.
type OccupancyReport struct {
	Occupied      int     `json:"occupied"`
	Available     int     `json:"available"`
	Maintenance   int     `json:"maintenance"`
	OutOfService  int     `json:"out_of_service"`
	RoomsTotal    int     `json:"rooms_total"`
	OccupancyRate float64 `json:"occupancy_rate"`
	WithIssues    int     `json:"with_issues"`
}

// CalcOccupancy classifies rooms in a single pass; each room increments
// exactly one counter. WithIssues counts distinct rooms among the open
// issues, so a room with several open issues is counted once.
func CalcOccupancy(rooms []domain.Room, openIssues []domain.RoomIssue) OccupancyReport {
	var rep OccupancyReport
	for _, r := range rooms {
		switch r.Status {
		case domain.RoomOccupied:
			rep.Occupied++
		case domain.RoomAvailable:
			rep.Available++
		case domain.RoomMaintenance:
			rep.Maintenance++
		case domain.RoomOutOfService:
			rep.OutOfService++
		}
	}
	rep.RoomsTotal = len(rooms)
	rep.OccupancyRate = safeRatio(rep.Occupied, rep.RoomsTotal)

	seen := make(map[int64]struct{}, len(openIssues))
	for _, is := range openIssues {
		if is.Status.Open() {
			seen[is.RoomID] = struct{}{}
		}
	}
	rep.WithIssues = len(seen)
	return rep
}
