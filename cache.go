package commuteroutes

import (
	"strconv"
	"time"

	"github.com/bluele/gcache"

	"github.com/shonan-transit/commute-routes/planner"
)

// Search results keyed on the effective window are stable for a service day:
// the timetable never changes while the process runs.
const (
	routeCacheSize = 4096
	routeCacheTTL  = 24 * time.Hour
)

// routeCache memoizes Enumerate results per effective search window.
type routeCache struct {
	planner *planner.Planner
	entries gcache.Cache
}

func newRouteCache(p *planner.Planner) *routeCache {
	return &routeCache{
		planner: p,
		entries: gcache.New(routeCacheSize).LRU().Expiration(routeCacheTTL).Build(),
	}
}

func memoKey(w planner.Window) string {
	return strconv.Itoa(w.Base) + "|" + strconv.Itoa(w.Latest)
}

// Routes returns the itineraries for the window, computing and caching on a
// miss. Callers must treat the returned slice as read-only.
func (rc *routeCache) Routes(w planner.Window) []planner.Itinerary {
	key := memoKey(w)
	if cached, err := rc.entries.Get(key); err == nil {
		if routes, ok := cached.([]planner.Itinerary); ok {
			return routes
		}
	}
	routes := rc.planner.Enumerate(w)
	_ = rc.entries.Set(key, routes)
	return routes
}
