package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SairamGundeboina019/fitness-tracker/models"
	"github.com/SairamGundeboina019/fitness-tracker/services"
)

// ResourceController serves the CRUD + weekly-summary routes for one
// record type. Meals and workouts are two instantiations of it; only the
// model, the summary JSON key and the display name differ.
type ResourceController[T any, PT interface {
	*T
	models.Owned
}] struct {
	svc      *services.ResourceService[T, PT]
	name     string // "Meal" / "Workout", used in response messages
	totalKey string // "total_calories" / "total_duration"
}

func NewMealController(svc *services.ResourceService[models.Meal, *models.Meal]) *ResourceController[models.Meal, *models.Meal] {
	return &ResourceController[models.Meal, *models.Meal]{
		svc:      svc,
		name:     "Meal",
		totalKey: "total_calories",
	}
}

func NewWorkoutController(svc *services.ResourceService[models.Workout, *models.Workout]) *ResourceController[models.Workout, *models.Workout] {
	return &ResourceController[models.Workout, *models.Workout]{
		svc:      svc,
		name:     "Workout",
		totalKey: "total_duration",
	}
}

func (h *ResourceController[T, PT]) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rec := PT(new(T))
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Create(userID, rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *ResourceController[T, PT]) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, err := h.svc.ListByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *ResourceController[T, PT]) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec := PT(new(T))
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Update(id, userID, rec); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *ResourceController[T, PT]) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(id, userID); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.name + " deleted"})
}

func (h *ResourceController[T, PT]) WeeklySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rows, err := h.svc.WeeklySummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{"date": row.Date, h.totalKey: row.Total})
	}
	c.JSON(http.StatusOK, out)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
