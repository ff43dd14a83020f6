package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliomaker/internal/analyzer"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/models"
	"portfoliomaker/internal/profile"
	"portfoliomaker/internal/session"
	"portfoliomaker/internal/storage"
)

type ProfileResponse struct {
	Username string               `json:"username" example:"my_user"`
	Profile  models.ProfileRecord `json:"profile"`
	Links    *models.LinksData    `json:"links,omitempty"`
}

type ValidationErrorResponse struct {
	Error         string   `json:"error" example:"missing required fields: full_name, email"`
	MissingFields []string `json:"missing_fields" example:"full_name,email"`
}

func profileResponse(state session.State) ProfileResponse {
	resp := ProfileResponse{
		Username: state.Username,
		Profile:  state.Profile,
	}
	if !state.Links.Empty() {
		links := state.Links
		resp.Links = &links
	}
	return resp
}

// GetProfile godoc
// @Summary      Current profile
// @Description  Returns the profile held in the session, including analyzer output for any submitted links.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	state, ok := h.currentState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profileResponse(state))
}

// SubmitProfile godoc
// @Summary      Submit intake form
// @Description  Validates the intake fields, runs the link analyzers and replaces the session profile. Reports every missing required field at once.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body profile.Intake true "Intake form fields"
// @Success      200 {object} handler.ProfileResponse
// @Failure      400 {object} handler.ValidationErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [post]
func (h *Handler) SubmitProfile(c *gin.Context) {
	state, ok := h.currentState(c)
	if !ok {
		return
	}

	var intake profile.Intake
	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	record, err := intake.Build()
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "missing_fields": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	links := analyzer.Analyze(record.PersonalInfo.LinkedIn, record.PersonalInfo.GitHub)
	state = state.WithProfile(record, links)
	h.sessions.Put(state)

	c.JSON(http.StatusOK, profileResponse(state))
}

// SavePortfolio godoc
// @Summary      Persist portfolio data
// @Description  Writes the session profile into the user document. Nothing else in the session is persisted.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/portfolio/save [post]
func (h *Handler) SavePortfolio(c *gin.Context) {
	state, ok := h.currentState(c)
	if !ok {
		return
	}

	if err := h.store.UpdatePortfolio(c.Request.Context(), state.Username, state.Profile); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		middleware.Logger(c).Error("save portfolio failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save portfolio data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio data saved successfully!"})
}
