package controllers

import (
	"errors"
	"net/http"

	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc   *services.AdminService
	Users *services.UserService
}

func NewAdminController(svc *services.AdminService, users *services.UserService) *AdminController {
	return &AdminController{Svc: svc, Users: users}
}

func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminController) ChangeRole(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Svc.ChangeRole(c.Request.Context(), userID, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated", "user": user.Public()})
}

func (h *AdminController) setActive(c *gin.Context, active bool, msg string) {
	userID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.Svc.SetActive(c.Request.Context(), userID, active)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "user": user.Public()})
}

func (h *AdminController) BlockUser(c *gin.Context)   { h.setActive(c, false, "user blocked") }
func (h *AdminController) UnblockUser(c *gin.Context) { h.setActive(c, true, "user unblocked") }

func (h *AdminController) DeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.Svc.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// FullActivity dumps one user's profile, meals and measurements.
func (h *AdminController) FullActivity(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	out, err := h.Svc.FullActivity(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminController) Statistics(c *gin.Context) {
	out, err := h.Svc.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminController) Export(c *gin.Context) {
	snap, err := h.Svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *AdminController) Import(c *gin.Context) {
	var snap services.DatabaseSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Import(c.Request.Context(), &snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "import completed"})
}
