package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gashadrift/models"
	"gashadrift/services/auth"
	"gashadrift/utils"
)

// AuthHandler exposes sign-in and registration over HTTP.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignInHandler opens a customer session.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SignIn(req, models.RoleUser)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdminSignInHandler opens a staff session via the staff portal.
func (h *AuthHandler) AdminSignInHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SignIn(req, models.RoleAdmin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// RegisterHandler creates an account and opens a customer session. Nothing
// is persisted behind it.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.Register(req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}
