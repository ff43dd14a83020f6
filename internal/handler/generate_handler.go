package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfoliomaker/internal/artifact"
	"portfoliomaker/internal/llm"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/prompt"
	"portfoliomaker/internal/session"
)

// Defaults mirror the first choice of the original style selectors.
const (
	defaultResumeStyle = "Modern Professional"
	defaultTone        = "Professional"
	defaultLength      = "Brief"
)

type ResumeRequest struct {
	Style             string `json:"style" example:"Modern Professional"`
	TargetCompany     string `json:"target_company" example:"Tech Innovations Inc."`
	JobDescription    string `json:"job_description"`
	JobDescriptionURL string `json:"job_description_url" example:"https://example.com/jobs/123"`
}

type CoverLetterRequest struct {
	CompanyName       string `json:"company_name" example:"Tech Innovations Inc."`
	HiringManager     string `json:"hiring_manager" example:"Jane Smith"`
	JobTitle          string `json:"job_title" example:"Senior Software Engineer"`
	JobDescription    string `json:"job_description"`
	JobDescriptionURL string `json:"job_description_url" example:"https://example.com/jobs/123"`
	Tone              string `json:"tone" example:"Professional"`
	Length            string `json:"length" example:"Standard"`
}

type EnhanceRequest struct {
	Content string `json:"content" example:"Responsible for developing web applications and managing databases"`
}

type GenerationResponse struct {
	Content       string                  `json:"content"`
	DownloadLinks []artifact.DownloadLink `json:"download_links,omitempty"`
}

type EnhanceResponse struct {
	Original      string                  `json:"original"`
	Enhanced      string                  `json:"enhanced"`
	DownloadLinks []artifact.DownloadLink `json:"download_links"`
}

// profileState gates generation on a submitted profile, the original
// precondition for every generator tab.
func (h *Handler) profileState(c *gin.Context) (session.State, bool) {
	state, ok := h.currentState(c)
	if !ok {
		return session.State{}, false
	}
	if state.Profile.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide your information first"})
		return session.State{}, false
	}
	return state, true
}

// resolveJobDescription prefers pasted text; otherwise it fetches the
// posting URL. Fetch failures degrade to an empty description rather than
// failing the generation.
func (h *Handler) resolveJobDescription(c *gin.Context, pasted, rawURL string) string {
	if pasted != "" || rawURL == "" {
		return pasted
	}
	description, err := h.jd.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		middleware.Logger(c).Warn("job description fetch failed", "url", rawURL, "error", err)
		return ""
	}
	return description
}

func (h *Handler) generate(c *gin.Context, kind prompt.Kind, systemPrompt, userPrompt string) string {
	start := time.Now()
	content := h.llm.Generate(c.Request.Context(), systemPrompt, userPrompt)
	h.metrics.ObserveGeneration(string(kind), llm.Outcome(content), time.Since(start).Seconds())
	return content
}

// GenerateResume godoc
// @Summary      Generate a resume
// @Description  Assembles the resume prompt from the session profile plus optional style, target company and job description, and returns the generated markdown with download links. A posting URL is fetched and converted when no description is pasted.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.ResumeRequest false "Resume options"
// @Success      200 {object} handler.GenerationResponse
// @Failure      400 {object} handler.ErrorResponse "No profile submitted yet"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse "Generation rate limit"
// @Router       /api/generate/resume [post]
func (h *Handler) GenerateResume(c *gin.Context) {
	state, ok := h.profileState(c)
	if !ok {
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Style == "" {
		req.Style = defaultResumeStyle
	}
	jobDescription := h.resolveJobDescription(c, req.JobDescription, req.JobDescriptionURL)

	userData := prompt.SerializeProfile(state.Profile)
	links := prompt.SerializeLinks(state.Links)
	systemPrompt, err := prompt.System(prompt.KindResumeWriter, prompt.Params{
		UserData:       userData,
		TargetPosition: state.Profile.CareerGoals.TargetPosition,
	})
	if err != nil {
		middleware.Logger(c).Error("assemble prompt failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble prompt"})
		return
	}
	userPrompt := prompt.ResumeUser(userData, links, req.Style, req.TargetCompany, jobDescription)

	content := h.generate(c, prompt.KindResumeWriter, systemPrompt, userPrompt)
	h.sessions.Put(state.WithArtifact(session.ArtifactResume, content))

	c.JSON(http.StatusOK, GenerationResponse{
		Content:       content,
		DownloadLinks: artifact.ResumeLinks(content),
	})
}

// GenerateCoverLetter godoc
// @Summary      Generate a cover letter
// @Description  Requires company name, job title and a job description (pasted or fetched from a posting URL). Tone and length default to Professional and Brief.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CoverLetterRequest true "Cover letter options"
// @Success      200 {object} handler.GenerationResponse
// @Failure      400 {object} handler.ErrorResponse "Missing required fields or no profile"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse "Generation rate limit"
// @Router       /api/generate/cover-letter [post]
func (h *Handler) GenerateCoverLetter(c *gin.Context) {
	state, ok := h.profileState(c)
	if !ok {
		return
	}

	var req CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	jobDescription := h.resolveJobDescription(c, req.JobDescription, req.JobDescriptionURL)
	if req.CompanyName == "" || req.JobTitle == "" || jobDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		return
	}
	if req.Tone == "" {
		req.Tone = defaultTone
	}
	if req.Length == "" {
		req.Length = defaultLength
	}

	userData := prompt.SerializeProfile(state.Profile)
	systemPrompt, err := prompt.System(prompt.KindCoverLetter, prompt.Params{
		UserData:       userData,
		TargetPosition: req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: jobDescription,
	})
	if err != nil {
		middleware.Logger(c).Error("assemble prompt failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble prompt"})
		return
	}
	userPrompt := prompt.CoverLetterUser(userData, req.CompanyName, req.HiringManager, req.JobTitle, jobDescription, req.Tone, req.Length)

	content := h.generate(c, prompt.KindCoverLetter, systemPrompt, userPrompt)
	h.sessions.Put(state.WithArtifact(session.ArtifactCoverLetter, content))

	c.JSON(http.StatusOK, GenerationResponse{
		Content:       content,
		DownloadLinks: artifact.CoverLetterLinks(content),
	})
}

// AnalyzePortfolio godoc
// @Summary      Analyze the portfolio
// @Description  Runs the portfolio analysis prompt over the session profile and its link analyzer output. Takes no request body.
// @Tags         Generation
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.GenerationResponse
// @Failure      400 {object} handler.ErrorResponse "No profile submitted yet"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse "Generation rate limit"
// @Router       /api/analyze [post]
func (h *Handler) AnalyzePortfolio(c *gin.Context) {
	state, ok := h.profileState(c)
	if !ok {
		return
	}

	userData := prompt.SerializeProfile(state.Profile)
	links := prompt.SerializeLinks(state.Links)
	systemPrompt, err := prompt.System(prompt.KindPortfolioAnalyzer, prompt.Params{
		UserData: userData,
		Links:    links,
	})
	if err != nil {
		middleware.Logger(c).Error("assemble prompt failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble prompt"})
		return
	}
	userPrompt := prompt.AnalyzerUser(userData, links)

	content := h.generate(c, prompt.KindPortfolioAnalyzer, systemPrompt, userPrompt)

	c.JSON(http.StatusOK, GenerationResponse{Content: content})
}

// EnhanceContent godoc
// @Summary      Enhance a description
// @Description  Rewrites a pasted job description or achievement into professional, impact-focused language.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.EnhanceRequest true "Content to enhance"
// @Success      200 {object} handler.EnhanceResponse
// @Failure      400 {object} handler.ErrorResponse "Empty content or no profile"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse "Generation rate limit"
// @Router       /api/enhance [post]
func (h *Handler) EnhanceContent(c *gin.Context) {
	_, ok := h.profileState(c)
	if !ok {
		return
	}

	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide content to enhance"})
		return
	}

	systemPrompt, err := prompt.System(prompt.KindSkillEnhancer, prompt.Params{
		OriginalContent: req.Content,
	})
	if err != nil {
		middleware.Logger(c).Error("assemble prompt failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble prompt"})
		return
	}

	enhanced := h.generate(c, prompt.KindSkillEnhancer, systemPrompt, req.Content)

	c.JSON(http.StatusOK, EnhanceResponse{
		Original:      req.Content,
		Enhanced:      enhanced,
		DownloadLinks: artifact.EnhancedLinks(enhanced),
	})
}
