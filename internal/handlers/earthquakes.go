package handlers

import (
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/service"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

// EarthquakeHandler is the handler for earthquake feed requests.
type EarthquakeHandler struct {
	Service *service.EarthquakeService
}

// NewEarthquakeHandler is the constructor function for initializing a new EarthquakeHandler.
func NewEarthquakeHandler(earthquakeService *service.EarthquakeService) *EarthquakeHandler {
	return &EarthquakeHandler{Service: earthquakeService}
}

// GetEarthquakes returns the feed for ?timeframe=, with distances when
// ?lat=&lon= is given.
func (h *EarthquakeHandler) GetEarthquakes(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", upstream.TimeframeDay)
	if !govalidator.IsIn(timeframe, upstream.Timeframes...) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeframe must be one of all_hour, all_day, all_week, all_month"})
		return
	}

	origin, err := parseCoordinates(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := h.Service.Recent(c.Request.Context(), timeframe, origin)
	if err != nil {
		respondError(c, "get earthquakes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": feed})
}
