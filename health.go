package commuteroutes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shonan-transit/commute-routes/timetable"
)

type healthResponse struct {
	Status       string `json:"status"`
	LegsLoaded   int    `json:"legs_loaded"`
	TrainsLoaded int    `json:"trains_loaded"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:       "ok",
		LegsLoaded:   timetable.LegCount,
		TrainsLoaded: s.store.TrainCount(),
	})
}
