package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/service"
)

// CatalogHandler serves the landing-page catalog and legends.
type CatalogHandler struct {
	Service *service.CatalogService
}

// NewCatalogHandler is the constructor function for initializing a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: catalogService}
}

// ListServices returns the service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Service.Services()})
}

// GetLegend returns every classifier legend.
func (h *CatalogHandler) GetLegend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"legend": h.Service.Legend()})
}
