package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type CreateWorkoutRequest struct {
	Name      string              `json:"name"`
	Exercises domain.ExerciseList `json:"exercises"`
	ClientID  string              `json:"clientId"`
	ClientIDs []string            `json:"clientIds"`
	TrainerID string              `json:"trainerId"`
	DueDate   string              `json:"dueDate"`
}

type UpdateWorkoutRequest struct {
	ID        string              `json:"id"`
	Name      *string             `json:"name"`
	Exercises domain.ExerciseList `json:"exercises"`
	Completed *bool               `json:"completed"`
	DueDate   *string             `json:"dueDate"`
}

// GetAll handles GET /api/workouts/getAll with an optional clientId filter.
func (h *WorkoutHandler) GetAll(c *gin.Context) {
	workouts, err := h.workoutService.GetAll(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// GetByID handles GET /api/workouts/getById?id=.
func (h *WorkoutHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}
	workout, err := h.workoutService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

// Create handles POST /api/workouts/create. A single clientId creates one
// workout; a clientIds array fans out one create per client and reports
// per-client successes and failures.
func (h *WorkoutHandler) Create(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		abortWithError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.ClientID == "" && len(req.ClientIDs) == 0 {
		abortWithError(c, http.StatusBadRequest, "clientId is required")
		return
	}

	input := service.CreateWorkoutInput{
		Name:      req.Name,
		Exercises: req.Exercises,
		ClientID:  req.ClientID,
		TrainerID: req.TrainerID,
		DueDate:   req.DueDate,
	}

	if len(req.ClientIDs) > 0 {
		result, err := h.workoutService.CreateForClients(c.Request.Context(), input, req.ClientIDs)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"result": result})
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

// Update handles POST|PUT /api/workouts/update.
func (h *WorkoutHandler) Update(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), service.UpdateWorkoutInput{
		ID:        req.ID,
		Name:      req.Name,
		Exercises: req.Exercises,
		Completed: req.Completed,
		DueDate:   req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

// Delete handles POST|DELETE /api/workouts/delete.
func (h *WorkoutHandler) Delete(c *gin.Context) {
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

	if err := h.workoutService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
