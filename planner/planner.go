package planner

import (
	"sort"

	"github.com/shonan-transit/commute-routes/timetable"
)

// FareNotSet is the placeholder carried on every itinerary; fares are never
// computed.
const FareNotSet = "（料金未設定）"

// Window bounds leg-1 departures in minutes since midnight, inclusive on
// both ends.
type Window struct {
	Base   int
	Latest int
}

// Itinerary is one end-to-end journey candidate: one chosen train per leg in
// chain order, plus fields derived from the chain.
type Itinerary struct {
	Trains   [timetable.LegCount]timetable.Train
	Duration int // minutes from leg-1 departure to leg-3 arrival
	Fare     string
}

// NextTrain returns the earliest train departing at or after
// earliestDeparture. The scan does not assume the list is sorted and the
// first train encountered wins a departure tie. The second return is false
// when no train qualifies.
func NextTrain(trains []timetable.Train, earliestDeparture int) (timetable.Train, bool) {
	var best timetable.Train
	found := false
	for _, t := range trains {
		if t.Departure < earliestDeparture {
			continue
		}
		if !found || t.Departure < best.Departure {
			best = t
			found = true
		}
	}
	return best, found
}

// Planner enumerates three-leg itineraries over an immutable timetable store.
type Planner struct {
	store *timetable.Store
}

// New returns a Planner reading from store.
func New(store *timetable.Store) *Planner {
	return &Planner{store: store}
}

// Enumerate walks every leg-1 train inside the window and chains it through
// the earliest feasible leg-2 and leg-3 connections, adding the interchange
// transfer buffer before each change. Each leg-1 train yields at most one
// itinerary: the chain is a deterministic greedy fold, not a backtracking
// search. A leg-1 train with no feasible chain contributes nothing; that is
// a normal outcome, not an error. Results are ordered by leg-1 departure.
func (p *Planner) Enumerate(w Window) []Itinerary {
	first := p.store.Leg(0)
	second := p.store.Leg(1)
	third := p.store.Leg(2)

	// Store construction guarantees both interchanges are configured.
	transferA, _ := p.store.TransferMinutes(second.From)
	transferB, _ := p.store.TransferMinutes(third.From)

	var routes []Itinerary
	for _, t1 := range first.Trains {
		if t1.Departure < w.Base || t1.Departure > w.Latest {
			continue
		}

		t2, ok := NextTrain(second.Trains, t1.Arrival+transferA)
		if !ok {
			continue
		}
		t3, ok := NextTrain(third.Trains, t2.Arrival+transferB)
		if !ok {
			continue
		}

		routes = append(routes, Itinerary{
			Trains:   [timetable.LegCount]timetable.Train{t1, t2, t3},
			Duration: t3.Arrival - t1.Departure,
			Fare:     FareNotSet,
		})
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Trains[0].Departure < routes[j].Trains[0].Departure
	})
	return routes
}
