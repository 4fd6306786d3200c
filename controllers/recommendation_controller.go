package controllers

import (
	"errors"
	"net/http"

	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Svc *services.RecommendationService
	RT  *services.RealtimeHub
}

func NewRecommendationController(svc *services.RecommendationService, rt *services.RealtimeHub) *RecommendationController {
	return &RecommendationController{Svc: svc, RT: rt}
}

// Generate runs the rule engine over the caller's last 7 days and
// persists whatever fires.
func (h *RecommendationController) Generate(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	created, err := h.Svc.GenerateAuto(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range created {
		h.RT.Broadcast(userID, services.EventRecommendation, created[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"generated":       len(created),
		"recommendations": created,
	})
}

func (h *RecommendationController) ListMine(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create records a dietitian-authored advisory for a client.
func (h *RecommendationController) Create(c *gin.Context) {
	dietitianID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		UserID  uint   `json:"user_id" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id & message required"})
		return
	}

	rec, err := h.Svc.CreateByDietitian(c.Request.Context(), dietitianID, body.UserID, body.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.RT.Broadcast(body.UserID, services.EventRecommendation, rec)
	c.JSON(http.StatusCreated, rec)
}

func (h *RecommendationController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recommendation deleted"})
}
