package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/service"
)

type TrainerHandler struct {
	trainerService service.TrainerService
	clientService  service.ClientService
}

func NewTrainerHandler(trainerService service.TrainerService, clientService service.ClientService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService, clientService: clientService}
}

type UpdateTrainerRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

// GetAll handles GET /api/trainers/getAll.
func (h *TrainerHandler) GetAll(c *gin.Context) {
	trainers, err := h.trainerService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// GetByID handles GET /api/trainers/getById?id=.
func (h *TrainerHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}
	trainer, err := h.trainerService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

// GetByEmail handles GET /api/trainers/getByEmail?email= — the role resolver.
// The payload carries an explicit kind tag (admin, client or trainer).
func (h *TrainerHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithError(c, http.StatusBadRequest, "email is required")
		return
	}
	profile, err := h.trainerService.GetProfileByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Update handles PUT /api/trainers/update.
func (h *TrainerHandler) Update(c *gin.Context) {
	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	trainer, err := h.trainerService.Update(c.Request.Context(), service.UpdateTrainerInput{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

// Delete handles DELETE /api/trainers/delete. The id may arrive as a query
// parameter or in the body. A failed user-account cleanup is reported as a
// warning on a successful response, never as the primary status.
func (h *TrainerHandler) Delete(c *gin.Context) {
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

	warning, err := h.trainerService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"success": true}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
