package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/service"
)

type MealPlanHandler struct {
	mealPlanService service.MealPlanService
}

func NewMealPlanHandler(mealPlanService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

type CreateMealPlanRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ClientID    string        `json:"clientId"`
	TrainerID   string        `json:"trainerId"`
	Meals       []domain.Meal `json:"meals"`
}

type UpdateMealPlanRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GetAll handles GET /api/mealPlans/getAll with an optional clientId filter.
func (h *MealPlanHandler) GetAll(c *gin.Context) {
	plans, err := h.mealPlanService.GetAll(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlans": plans})
}

// GetByID handles GET /api/mealPlans/getById?id=.
func (h *MealPlanHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}
	plan, err := h.mealPlanService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}

// Create handles POST /api/mealPlans/create. The response reports how many
// of the submitted meals were actually persisted.
func (h *MealPlanHandler) Create(c *gin.Context) {
	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		abortWithError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.ClientID == "" {
		abortWithError(c, http.StatusBadRequest, "clientId is required")
		return
	}

	result, err := h.mealPlanService.Create(c.Request.Context(), service.CreateMealPlanInput{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		TrainerID:   req.TrainerID,
		Meals:       req.Meals,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"mealPlan":     result.Plan,
		"mealsCreated": result.MealsCreated,
		"mealsFailed":  result.MealsFailed,
		"errors":       result.Errors,
	})
}

// Update handles POST|PUT /api/mealPlans/update.
func (h *MealPlanHandler) Update(c *gin.Context) {
	var req UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	plan, err := h.mealPlanService.Update(c.Request.Context(), service.UpdateMealPlanInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}

// Delete handles POST|DELETE /api/mealPlans/delete.
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		var req DeleteRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			id = req.ID
		}
	}
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.mealPlanService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
