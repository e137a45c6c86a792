package commuteroutes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shonan-transit/commute-routes/config"
	"github.com/shonan-transit/commute-routes/timetable"
)

// fixedNow pins every test search to 07:00:42 so the window starts at
// minute 420.
var fixedNow = time.Date(2025, 4, 7, 7, 0, 42, 0, time.UTC)

// scenarioStore holds one 07:00 leg-1 train whose only feasible chain
// arrives at 08:05, 65 minutes end to end.
func scenarioStore(t *testing.T) *timetable.Store {
	t.Helper()
	store, err := timetable.NewStore(
		[timetable.LegCount]timetable.Leg{
			{Key: "ichigaya_tameike", From: "市ヶ谷", To: "溜池山王", Line: "有楽町線→南北線",
				Trains: []timetable.Train{{Departure: 7 * 60, Arrival: 7*60 + 12}}},
			{Key: "tameike_shimbashi", From: "溜池山王", To: "新橋", Line: "銀座線",
				Trains: []timetable.Train{
					{Departure: 7*60 + 17, Arrival: 7*60 + 30},
					{Departure: 7*60 + 40, Arrival: 7*60 + 55},
				}},
			{Key: "shimbashi_kamakura", From: "新橋", To: "鎌倉", Line: "横須賀線",
				Trains: []timetable.Train{
					{Departure: 7*60 + 37, Arrival: 8*60 + 5},
					{Departure: 8*60 + 10, Arrival: 8*60 + 40},
				}},
		},
		map[string]int{"溜池山王": 5, "新橋": 7},
	)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return store
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Server: config.ServerConfig{Port: 8080},
		Timetable: config.TimetableConfig{
			DataDir: "data",
			Legs: []config.LegConfig{
				{Key: "ichigaya_tameike", From: "市ヶ谷", To: "溜池山王", Line: "有楽町線→南北線", File: "ichigaya_tameike.csv"},
				{Key: "tameike_shimbashi", From: "溜池山王", To: "新橋", Line: "銀座線", File: "tameike_shimbashi.csv"},
				{Key: "shimbashi_kamakura", From: "新橋", To: "鎌倉", Line: "横須賀線", File: "shimbashi_kamakura.csv"},
			},
			Transfers: []config.TransferConfig{
				{Station: "溜池山王", Minutes: 5},
				{Station: "新橋", Minutes: 7},
			},
		},
		Search: config.SearchConfig{
			Timezone:                     "UTC",
			DefaultMaxOffsetMinutes:      30,
			InvalidOffsetFallbackMinutes: 3,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.AppConfig, store *timetable.Store) *Server {
	t.Helper()
	s, err := NewServer(cfg, store)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	s.now = func() time.Time { return fixedNow }
	return s
}

func doGET(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}
