package commuteroutes

import (
	"strconv"
	"time"

	"github.com/shonan-transit/commute-routes/planner"
	"github.com/shonan-transit/commute-routes/timetable"
	"github.com/shonan-transit/commute-routes/utils"
)

// instantFormat is the timestamp layout of the search_time_jst and
// departure_base_jst echoes.
const instantFormat = "2006-01-02 15:04:05"

// TransferEntry is one leg of an itinerary on the wire.
type TransferEntry struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Line      string `json:"line"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// RouteEntry is one itinerary on the wire.
type RouteEntry struct {
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
	TotalDuration string          `json:"total_duration"`
	Fare          string          `json:"fare"`
	Transfers     []TransferEntry `json:"transfers"`
}

// RoutesResponse is the /api/routes payload. The key names, the "_jst"
// suffixes included, are a compatibility contract with the existing front
// end and must not change.
type RoutesResponse struct {
	SearchTime       string       `json:"search_time_jst"`
	DepartureBase    string       `json:"departure_base_jst"`
	MaxOffsetMinutes int          `json:"max_offset_minutes"`
	Routes           []RouteEntry `json:"routes"`
}

// buildRoutesResponse renders itineraries against the store's leg metadata.
// The search instant and the departure base are the same instant today; both
// are echoed separately to keep the payload shape stable.
func buildRoutesResponse(now time.Time, maxOffset int, routes []planner.Itinerary, store *timetable.Store) RoutesResponse {
	entries := make([]RouteEntry, 0, len(routes))
	for _, it := range routes {
		transfers := make([]TransferEntry, 0, timetable.LegCount)
		for i, tr := range it.Trains {
			leg := store.Leg(i)
			transfers = append(transfers, TransferEntry{
				From:      leg.From,
				To:        leg.To,
				Line:      leg.Line,
				Departure: utils.FormatMinutesToClock(tr.Departure),
				Arrival:   utils.FormatMinutesToClock(tr.Arrival),
			})
		}

		first := it.Trains[0]
		last := it.Trains[timetable.LegCount-1]
		entries = append(entries, RouteEntry{
			DepartureTime: utils.FormatMinutesToClock(first.Departure),
			ArrivalTime:   utils.FormatMinutesToClock(last.Arrival),
			TotalDuration: strconv.Itoa(it.Duration) + "分",
			Fare:          it.Fare,
			Transfers:     transfers,
		})
	}

	stamp := now.Format(instantFormat)
	return RoutesResponse{
		SearchTime:       stamp,
		DepartureBase:    stamp,
		MaxOffsetMinutes: maxOffset,
		Routes:           entries,
	}
}
