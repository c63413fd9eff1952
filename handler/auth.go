package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/config"
	"github.com/potorik/construction-expense-tracker/middleware"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Login checks the shared site password and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !h.checkPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(&h.config.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (h *AuthHandler) checkPassword(password string) bool {
	if h.config.Auth.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.config.Auth.PasswordHash), []byte(password)) == nil
	}
	if h.config.Auth.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.config.Auth.Password), []byte(password)) == 1
}

// Me confirms the session is valid.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
