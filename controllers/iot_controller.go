package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
)

type IoTController struct {
	Measurements *services.MeasurementService
	RT           *services.RealtimeHub
}

func NewIoTController(measurements *services.MeasurementService, rt *services.RealtimeHub) *IoTController {
	return &IoTController{Measurements: measurements, RT: rt}
}

// Ingest accepts a device sample. Pulse and steps are required, weight is
// optional; the timestamp defaults to now.
func (h *IoTController) Ingest(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		services.MeasurementInput
		Timestamp *time.Time `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pulse and steps are required"})
		return
	}

	m, err := h.Measurements.Ingest(c.Request.Context(), userID, body.Timestamp, body.MeasurementInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.RT.Broadcast(userID, services.EventMeasurement, m)
	c.JSON(http.StatusCreated, m)
}

func (h *IoTController) Latest(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.Measurements.Latest(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *IoTController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid measurement id"})
		return
	}

	if err := h.Measurements.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrMeasurementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "measurement deleted"})
}
