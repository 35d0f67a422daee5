package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/service"
)

// WeatherHandler is the handler for weather requests.
type WeatherHandler struct {
	Service *service.WeatherService
}

// NewWeatherHandler is the constructor function for initializing a new WeatherHandler.
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{Service: weatherService}
}

// GetWeather returns current conditions for ?city= or ?lat=&lon=.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	point, err := parseCoordinates(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var view *service.WeatherView
	switch {
	case city != "":
		view, err = h.Service.ByCity(c.Request.Context(), city)
	case point != nil:
		view, err = h.Service.ByCoordinates(c.Request.Context(), point.Lat, point.Lon)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "city or lat/lon is required"})
		return
	}
	if err != nil {
		respondError(c, "get weather", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": view})
}

// GetRecent returns the recently searched cities.
func (h *WeatherHandler) GetRecent(c *gin.Context) {
	recent, err := h.Service.Recent(c.Request.Context())
	if err != nil {
		respondError(c, "load recent searches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recent": recent})
}
