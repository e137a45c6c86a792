package commuteroutes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/shonan-transit/commute-routes/planner"
	"github.com/shonan-transit/commute-routes/timetable"
)

// handleRoutes serves GET /api/routes: itineraries for every departure in
// the window starting at the current minute.
func (s *Server) handleRoutes(c *gin.Context) {
	raw, present := c.GetQuery("max_offset")
	maxOffset := effectiveMaxOffset(raw, present,
		s.cfg.Search.DefaultMaxOffsetMinutes, s.cfg.Search.InvalidOffsetFallbackMinutes)

	now := s.now().In(s.loc)
	base := now.Hour()*60 + now.Minute()
	w := planner.Window{Base: base, Latest: base + maxOffset}

	routes := s.cache.Routes(w)
	c.JSON(http.StatusOK, buildRoutesResponse(now, maxOffset, routes, s.store))
}

// handleDebugLeg serves GET /api/debug/:leg. It re-reads the CSV from disk
// on every call so the response reflects the file as it currently is, not
// the index loaded at startup.
func (s *Server) handleDebugLeg(c *gin.Context) {
	key := c.Param("leg")
	for _, leg := range s.cfg.Timetable.Legs {
		if leg.Key != key {
			continue
		}
		recs, err := timetable.ReadRecords(filepath.Join(s.cfg.Timetable.DataDir, leg.File))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown leg: " + key})
}
