package controllers

import (
	"net/http"

	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc      *services.AnalyticsService
	Activity *services.ActivityService
}

func NewAnalyticsController(svc *services.AnalyticsService, activity *services.ActivityService) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Activity: activity}
}

// GetDailySummary returns one day's totals against the calorie goal
// (?date=YYYY-MM-DD, default today).
func (h *AnalyticsController) GetDailySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, err := dateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	out, err := h.Svc.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPeriodAnalytics returns per-day totals and summary statistics over
// the last week or month (?period=week|month, default week).
func (h *AnalyticsController) GetPeriodAnalytics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	period := c.DefaultQuery("period", services.PeriodWeek)

	out, err := h.Svc.PeriodAnalytics(c.Request.Context(), userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetActivitySummary aggregates IoT activity (?period=day|week, default day).
func (h *AnalyticsController) GetActivitySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	period := c.DefaultQuery("period", services.PeriodDay)

	out, err := h.Activity.Summary(c.Request.Context(), userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
