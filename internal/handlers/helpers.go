package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/geo"
	"github.com/windoze95/servicehub-api/internal/upstream"
	"github.com/windoze95/servicehub-api/internal/util"
	"go.uber.org/zap"
)

var (
	errInvalidCoordinates = errors.New("lat and lon must both be valid coordinates")
	errInvalidPage        = errors.New("page must be a positive integer")
)

// parseUintParam parses a string into a uint.
func parseUintParam(param string) (uint, error) {
	parsed, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed > uint64(^uint(0)) {
		return 0, fmt.Errorf("value out of range for uint: %d", parsed)
	}
	return uint(parsed), nil
}

// parsePage reads ?page=, defaulting to 1.
func parsePage(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := parseUintParam(raw)
	if err != nil || page == 0 || page > 100000 {
		return 0, errInvalidPage
	}
	return int(page), nil
}

// parseCoordinates reads an optional ?lat=&lon= pair. Both absent yields nil.
func parseCoordinates(c *gin.Context) (*geo.Point, error) {
	lat := strings.TrimSpace(c.Query("lat"))
	lon := strings.TrimSpace(c.Query("lon"))
	if lat == "" && lon == "" {
		return nil, nil
	}
	if !govalidator.IsLatitude(lat) || !govalidator.IsLongitude(lon) {
		return nil, errInvalidCoordinates
	}
	latV, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, errInvalidCoordinates
	}
	lonV, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, errInvalidCoordinates
	}
	return &geo.Point{Lat: latV, Lon: lonV}, nil
}

// respondError maps domain errors to status codes and writes {"error": msg}.
func respondError(c *gin.Context, action string, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var (
		notFound  upstream.NotFoundError
		remote    upstream.RemoteServiceError
		transport upstream.TransportError
	)
	switch {
	case errors.Is(err, upstream.ErrEmptyQuery):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &remote):
		status = http.StatusBadGateway
	case errors.As(err, &transport):
		status = http.StatusBadGateway
		message = transport.Service + " is unreachable"
	}

	log := util.LoggerFromContext(c)
	if status >= http.StatusInternalServerError {
		log.Error("failed to "+action, zap.Int("status", status), zap.Error(err))
	} else {
		log.Info("failed to "+action, zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
