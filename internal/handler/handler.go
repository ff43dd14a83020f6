// Package handler wires the HTTP surface: auth, profile intake, portfolio
// persistence, the template catalog and the four generation endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliomaker/internal/auth"
	"portfoliomaker/internal/metrics"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/session"
	"portfoliomaker/internal/storage"
)

// Generator produces text for an assembled prompt pair. Both methods
// swallow provider failures and return a user-facing placeholder instead.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) string
	GenerateStream(ctx context.Context, systemPrompt, userPrompt string, onFragment func(string)) string
}

// DescriptionFetcher turns a job posting URL into markdown text.
type DescriptionFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Handler carries the dependencies shared by all routes.
type Handler struct {
	store    storage.UserStore
	tokens   *auth.TokenManager
	sessions *session.Manager
	llm      Generator
	jd       DescriptionFetcher
	metrics  *metrics.Metrics
}

func New(store storage.UserStore, tokens *auth.TokenManager, sessions *session.Manager, llm Generator, jd DescriptionFetcher, m *metrics.Metrics) *Handler {
	return &Handler{
		store:    store,
		tokens:   tokens,
		sessions: sessions,
		llm:      llm,
		jd:       jd,
		metrics:  m,
	}
}

// Routes mounts every endpoint except /metrics and /swagger, which need
// wiring main.go owns. Generation endpoints sit behind the rate limiter
// protecting the provider quota.
func (h *Handler) Routes(router *gin.Engine, rps float64, burst int) {
	router.GET("/healthz", h.Health)
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.GET("/ws/generate", h.GenerateSocket)

	protected := router.Group("/api")
	protected.Use(middleware.Auth(h.tokens, h.sessions))
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/profile", h.GetProfile)
		protected.POST("/profile", h.SubmitProfile)
		protected.POST("/portfolio/save", h.SavePortfolio)
		protected.GET("/templates", h.ListTemplates)
	}

	generate := protected.Group("")
	generate.Use(middleware.RateLimit(rps, burst))
	{
		generate.POST("/generate/resume", h.GenerateResume)
		generate.POST("/generate/cover-letter", h.GenerateCoverLetter)
		generate.POST("/analyze", h.AnalyzePortfolio)
		generate.POST("/enhance", h.EnhanceContent)
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200 {object} object{status=string}
// @Router       /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentState loads the freshest session snapshot for the authenticated
// request. The auth middleware already verified the session exists, but it
// can expire between middleware and handler, and handlers need the
// snapshot itself, not just its id.
func (h *Handler) currentState(c *gin.Context) (session.State, bool) {
	state, err := h.sessions.Get(c.GetString(middleware.ContextSessionID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return session.State{}, false
	}
	return state, true
}
