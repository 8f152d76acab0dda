package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"tzconv/internal/models"
	"tzconv/internal/repository"
	"tzconv/internal/timezone"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxListLimit = 500

// ConversionLogHandler serves the recorded conversion history
type ConversionLogHandler struct {
	repo repository.ConversionLogRepository
}

// NewConversionLogHandler creates a new ConversionLogHandler
func NewConversionLogHandler(repo repository.ConversionLogRepository) *ConversionLogHandler {
	return &ConversionLogHandler{repo: repo}
}

// ListConversions godoc
// @Summary List recorded conversions
// @Description Returns recorded conversions, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param source query string false "Comma separated source zones"
// @Param target query string false "Comma separated target zones"
// @Param order_by query string false "Order by field (created_at, source_zone, target_zone, input_time)"
// @Param order_desc query boolean false "Order descending"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.ConversionLog
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /conversions [get]
func (h *ConversionLogHandler) ListConversions(c *gin.Context) {
	filter := repository.ConversionLogFilter{}

	var err error
	if filter.SourceZones, err = zoneList(c.Query("source")); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if filter.TargetZones, err = zoneList(c.Query("target")); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if orderBy := c.Query("order_by"); orderBy != "" {
		if !repository.OrderableColumns[orderBy] {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid order_by"})
			return
		}
		filter.OrderBy = orderBy
		filter.OrderDesc = c.Query("order_desc") == "true"
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 || limit > maxListLimit {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		filter.Limit = &limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid offset"})
			return
		}
		filter.Offset = &offset
	}

	logs, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch conversions"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetConversion godoc
// @Summary Get a recorded conversion
// @Description Returns a recorded conversion by its ID
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversion ID"
// @Success 200 {object} models.ConversionLog
// @Failure 400 {object} models.ErrorResponse "Invalid conversion ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Conversion not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /conversions/{id} [get]
func (h *ConversionLogHandler) GetConversion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid conversion ID"})
		return
	}

	log, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Conversion not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch conversion"})
		return
	}

	c.JSON(http.StatusOK, log)
}

// zoneList parses a comma separated list of zone names into canonical names
func zoneList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var names []string
	for _, name := range strings.Split(raw, ",") {
		z, err := timezone.Parse(name)
		if err != nil {
			return nil, err
		}
		names = append(names, z.String())
	}
	return names, nil
}
