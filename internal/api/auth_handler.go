package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		abortWithError(c, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		abortWithError(c, http.StatusBadRequest, "password is required")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
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
	if req.Password == "" {
		abortWithError(c, http.StatusBadRequest, "password is required")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}
