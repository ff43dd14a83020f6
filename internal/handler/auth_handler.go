package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfoliomaker/internal/auth"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/models"
	"portfoliomaker/internal/storage"
)

type RegisterRequest struct {
	Username        string `json:"username" example:"new_user"`
	Password        string `json:"password" example:"password123"`
	ConfirmPassword string `json:"confirm_password" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" example:"my_user"`
	Password string `json:"password" example:"password123"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"error cause"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user with an empty portfolio. The username is the document key, so a second registration with the same name fails.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.RegisterRequest true "Registration credentials"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var credentials RegisterRequest

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(credentials.Username) == "" || strings.TrimSpace(credentials.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and Password cannot be empty"})
		return
	}
	if credentials.Password != credentials.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	hashedPassword, err := auth.HashPassword(credentials.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	account := models.UserAccount{
		Username:     credentials.Username,
		PasswordHash: hashedPassword,
		Portfolio:    models.ProfileRecord{},
		CreatedAt:    time.Now(),
	}
	if err := h.store.Insert(c.Request.Context(), account); err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		} else {
			middleware.Logger(c).Error("create user failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user (database error)"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials, starts a session seeded with the saved portfolio and returns a JWT bound to that session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "Login credentials"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials LoginRequest

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.store.FindByUsername(c.Request.Context(), credentials.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		middleware.Logger(c).Error("find user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, credentials.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	state := h.sessions.Create(user.Username, user.Portfolio)
	tokenString, err := h.tokens.Issue(user.Username, state.SessionID)
	if err != nil {
		h.sessions.Delete(state.SessionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// Logout godoc
// @Summary      Log out
// @Description  Drops the server-side session. The token becomes useless even before it expires.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Delete(c.GetString(middleware.ContextSessionID))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
