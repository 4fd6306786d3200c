package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func mealErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMealNotFound), errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrEmptyMeal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *MealController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date     time.Time                 `json:"date" binding:"required"`
		Type     string                    `json:"type" binding:"required"`
		Products []services.MealEntryInput `json:"products" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.AddMeal(c.Request.Context(), userID, body.Date, body.Type, body.Products)
	if err != nil {
		c.JSON(mealErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) AddProduct(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var entry services.MealEntryInput
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.AddProduct(c.Request.Context(), userID, mealID, entry)
	if err != nil {
		c.JSON(mealErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) RemoveProduct(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.RemoveProduct(c.Request.Context(), userID, mealID, body.ProductID)
	if err != nil {
		c.JSON(mealErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product removed", "meal": meal})
}

// ByDate lists the user's meals for one day (?date=YYYY-MM-DD, default today).
func (h *MealController) ByDate(c *gin.Context) {
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

	meals, err := h.Meals.MealsByDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := h.Meals.ListMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.Meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		c.JSON(mealErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
