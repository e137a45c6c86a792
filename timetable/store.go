package timetable

import (
	"fmt"
	"path/filepath"

	"github.com/shonan-transit/commute-routes/config"
)

// Store holds the three leg timetables and the interchange transfer times.
// It is built once at startup and read-only afterwards, so it may be shared
// across concurrent readers without locking.
type Store struct {
	legs      [LegCount]Leg
	transfers map[string]int
}

// NewStore builds a Store, checking that every interchange the legs chain
// through has a transfer entry. Later lookups rely on that guarantee.
func NewStore(legs [LegCount]Leg, transfers map[string]int) (*Store, error) {
	for _, leg := range legs[1:] {
		if _, ok := transfers[leg.From]; !ok {
			return nil, fmt.Errorf("no transfer minutes configured for interchange %s", leg.From)
		}
	}
	s := &Store{legs: legs, transfers: make(map[string]int, len(transfers))}
	for station, minutes := range transfers {
		s.transfers[station] = minutes
	}
	return s, nil
}

// NewStoreFromConfig loads every configured leg CSV and builds the Store.
func NewStoreFromConfig(cfg config.TimetableConfig) (*Store, error) {
	if len(cfg.Legs) != LegCount {
		return nil, fmt.Errorf("expected %d legs, got %d", LegCount, len(cfg.Legs))
	}
	var legs [LegCount]Leg
	for i, lc := range cfg.Legs {
		recs, err := ReadRecords(filepath.Join(cfg.DataDir, lc.File))
		if err != nil {
			return nil, err
		}
		trains, err := ParseTrains(recs)
		if err != nil {
			return nil, fmt.Errorf("leg %s: %w", lc.Key, err)
		}
		legs[i] = Leg{Key: lc.Key, From: lc.From, To: lc.To, Line: lc.Line, Trains: trains}
	}
	transfers := make(map[string]int, len(cfg.Transfers))
	for _, tc := range cfg.Transfers {
		transfers[tc.Station] = tc.Minutes
	}
	return NewStore(legs, transfers)
}

// Leg returns the i-th leg in chain order.
func (s *Store) Leg(i int) Leg { return s.legs[i] }

// LegByKey returns the leg with the given key.
func (s *Store) LegByKey(key string) (Leg, bool) {
	for _, leg := range s.legs {
		if leg.Key == key {
			return leg, true
		}
	}
	return Leg{}, false
}

// TransferMinutes returns the buffer needed to change trains at station.
func (s *Store) TransferMinutes(station string) (int, bool) {
	m, ok := s.transfers[station]
	return m, ok
}

// TrainCount returns the number of scheduled trains across all legs.
func (s *Store) TrainCount() int {
	n := 0
	for _, leg := range s.legs {
		n += len(leg.Trains)
	}
	return n
}
