package handlers

import (
	"net/http"
	"tzconv/internal/config"
	"tzconv/internal/converter"
	"tzconv/internal/history"
	"tzconv/internal/models"
	"tzconv/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

// ConvertHandler handles conversion requests
type ConvertHandler struct {
	zones    config.ZoneConfig
	recorder history.Recorder
	log      logrus.FieldLogger
}

// NewConvertHandler creates a new ConvertHandler
func NewConvertHandler(zones config.ZoneConfig, recorder history.Recorder, log logrus.FieldLogger) *ConvertHandler {
	if recorder == nil {
		recorder = history.NopRecorder{}
	}
	return &ConvertHandler{
		zones:    zones,
		recorder: recorder,
		log:      log,
	}
}

// ConvertQuery godoc
// @Summary Convert a time of day
// @Description Converts a HH:MM:SS time of day from the source zone to the target zone. Missing zones default to the configured defaults.
// @Tags convert
// @Produce json
// @Param time query string true "Time of day (HH:MM:SS, 24h)" example(23:45:00)
// @Param source query string false "Source zone" example(UTC)
// @Param target query string false "Target zone" example(LHST)
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse "Invalid time or zone"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /convert [get]
func (h *ConvertHandler) ConvertQuery(c *gin.Context) {
	h.convert(c, binding.Query)
}

// ConvertJSON godoc
// @Summary Convert a time of day
// @Description Converts a HH:MM:SS time of day from the source zone to the target zone. Missing zones default to the configured defaults.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse "Invalid time or zone"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /convert [post]
func (h *ConvertHandler) ConvertJSON(c *gin.Context) {
	h.convert(c, binding.JSON)
}

func (h *ConvertHandler) convert(c *gin.Context, b binding.Binding) {
	var req models.ConvertRequest
	if err := c.ShouldBindWith(&req, b); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validation.Message(err)})
		return
	}

	input, err := validation.ParseTimeOfDay(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	source, err := validation.ParseZone(req.Source, h.zones.DefaultSource)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	target, err := validation.ParseZone(req.Target, h.zones.DefaultTarget)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	output := converter.Convert(input, source, target)
	resp := models.ConvertResponse{
		Source: source.String(),
		Target: target.String(),
		Input:  input.String(),
		Output: output.String(),
		Line:   converter.FormatLine(input, source, target),
	}

	if h.recorder.Enabled() {
		err := h.recorder.Record(c.Request.Context(), history.Entry{
			Source:    resp.Source,
			Target:    resp.Target,
			Input:     resp.Input,
			Output:    resp.Output,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			h.log.WithError(err).WithFields(logrus.Fields{
				"source": resp.Source,
				"target": resp.Target,
			}).Warn("Failed to record conversion")
		}
	}

	c.JSON(http.StatusOK, resp)
}
