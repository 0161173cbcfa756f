package handlers

import (
	"errors"
	"net/http"

	"bettermann/models"
	"bettermann/services/auth"
	"bettermann/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the signup and login endpoints.
type AuthHandler struct {
	Service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.Service.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			utils.JSONError(c, http.StatusBadRequest, "duplicate_email", "Email already registered")
			return
		}
		logger.Error("Signup failed", zap.String("email", req.Email), zap.Error(err))
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID.Hex(), "name": user.Name, "email": user.Email})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "not_found", "User not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		default:
			logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
			storeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID.Hex(), "name": user.Name, "email": user.Email})
}
