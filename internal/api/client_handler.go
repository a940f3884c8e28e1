package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/service"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type CreateClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	TrainerID *string `json:"trainerId"`
}

type UpdateClientRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type AssignTrainerRequest struct {
	ClientID  string `json:"clientId"`
	TrainerID string `json:"trainerId"`
}

type RemoveTrainerRequest struct {
	ClientID string `json:"clientId"`
}

// GetAll handles GET /api/clients/getAll.
func (h *ClientHandler) GetAll(c *gin.Context) {
	clients, err := h.clientService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetByID handles GET /api/clients/getById?id=.
func (h *ClientHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}
	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// GetByTrainer handles GET /api/clients/getByTrainer?trainerId=.
func (h *ClientHandler) GetByTrainer(c *gin.Context) {
	trainerID := c.Query("trainerId")
	if trainerID == "" {
		abortWithError(c, http.StatusBadRequest, "trainerId is required")
		return
	}
	clients, err := h.clientService.GetByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// Create handles POST /api/clients/create: the user-then-client composite.
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" {
		abortWithError(c, http.StatusBadRequest, "firstName is required")
		return
	}
	if req.LastName == "" {
		abortWithError(c, http.StatusBadRequest, "lastName is required")
		return
	}
	if req.Email == "" {
		abortWithError(c, http.StatusBadRequest, "email is required")
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), service.CreateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		TrainerID: req.TrainerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// Update handles PUT /api/clients/update.
func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), service.UpdateClientInput{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// Delete handles DELETE /api/clients/delete. See TrainerHandler.Delete for
// the warning semantics.
func (h *ClientHandler) Delete(c *gin.Context) {
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

	warning, err := h.clientService.Delete(c.Request.Context(), id)
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

// AssignTrainer handles PUT /api/clients/assignTrainer.
func (h *ClientHandler) AssignTrainer(c *gin.Context) {
	var req AssignTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClientID == "" {
		abortWithError(c, http.StatusBadRequest, "clientId is required")
		return
	}
	if req.TrainerID == "" {
		abortWithError(c, http.StatusBadRequest, "trainerId is required")
		return
	}

	client, err := h.clientService.AssignTrainer(c.Request.Context(), req.ClientID, req.TrainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// RemoveTrainer handles PUT /api/clients/removeTrainer.
func (h *ClientHandler) RemoveTrainer(c *gin.Context) {
	var req RemoveTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClientID == "" {
		abortWithError(c, http.StatusBadRequest, "clientId is required")
		return
	}

	client, err := h.clientService.RemoveTrainer(c.Request.Context(), req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}
