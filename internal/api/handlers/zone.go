package handlers

import (
	"net/http"
	"tzconv/internal/models"
	"tzconv/internal/timezone"

	"github.com/gin-gonic/gin"
)

// ZoneHandler serves the zone registry
type ZoneHandler struct{}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler() *ZoneHandler {
	return &ZoneHandler{}
}

// ListZones godoc
// @Summary List all zones
// @Description Returns every supported zone with its fixed UTC offset
// @Tags zones
// @Produce json
// @Success 200 {array} models.Zone
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /zones [get]
func (h *ZoneHandler) ListZones(c *gin.Context) {
	all := timezone.All()
	zones := make([]models.Zone, 0, len(all))
	for _, z := range all {
		zones = append(zones, models.NewZone(z))
	}

	c.JSON(http.StatusOK, zones)
}

// GetZone godoc
// @Summary Get a zone by name
// @Description Returns a zone by its canonical name or alias
// @Tags zones
// @Produce json
// @Param name path string true "Zone name" example(GMT)
// @Success 200 {object} models.Zone
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /zones/{name} [get]
func (h *ZoneHandler) GetZone(c *gin.Context) {
	z, err := timezone.Parse(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewZone(z))
}
