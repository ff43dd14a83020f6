package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"portfoliomaker/internal/artifact"
	"portfoliomaker/internal/llm"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/prompt"
	"portfoliomaker/internal/session"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamRequest is the first message the client sends after connecting.
// Resume generations read style/target_company; cover letters read the
// company/title/tone/length fields. job_description_url is fetched when no
// description is pasted, for either kind.
type StreamRequest struct {
	Style             string `json:"style"`
	TargetCompany     string `json:"target_company"`
	CompanyName       string `json:"company_name"`
	HiringManager     string `json:"hiring_manager"`
	JobTitle          string `json:"job_title"`
	JobDescription    string `json:"job_description"`
	JobDescriptionURL string `json:"job_description_url"`
	Tone              string `json:"tone"`
	Length            string `json:"length"`
}

// StreamEvent is one server-to-client message: a "fragment" per streamed
// chunk, one final "done" carrying the full text and download links, or an
// "error" before the connection closes.
type StreamEvent struct {
	Type          string                  `json:"type"`
	Content       string                  `json:"content,omitempty"`
	Error         string                  `json:"error,omitempty"`
	DownloadLinks []artifact.DownloadLink `json:"download_links,omitempty"`
}

// GenerateSocket godoc
// @Summary      Streamed generation over WebSocket
// @Description  Connect with ws:// or wss://, not plain HTTP. Authentication uses the token query parameter because browsers cannot set headers on WebSocket connects.
// @Description  After the upgrade the client sends one JSON StreamRequest; the server answers with fragment events followed by a done event.
// @Tags         WebSocket
// @Param        token query string true "JWT issued at login"
// @Param        kind  query string true "Artifact kind (resume or cover_letter)"
// @Success      101 {string} string "Switching Protocols"
// @Failure      400 {object} handler.ErrorResponse "Unknown kind or no profile"
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid token"
// @Router       /ws/generate [get]
func (h *Handler) GenerateSocket(c *gin.Context) {
	tokenString := c.Query("token")
	kind := c.Query("kind")

	claims, err := h.tokens.Parse(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	if kind != session.ArtifactResume && kind != session.ArtifactCoverLetter {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kind"})
		return
	}
	state, err := h.sessions.Get(claims.SessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return
	}
	if state.Profile.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide your information first"})
		return
	}

	logger := middleware.Logger(c).With("username", state.Username, "kind", kind)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// The request context dies with the hijacked connection.
	h.streamGeneration(context.Background(), conn, logger, state, kind)
}

func (h *Handler) streamGeneration(ctx context.Context, conn *websocket.Conn, logger *slog.Logger, state session.State, kind string) {
	var req StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		logger.Warn("read stream request failed", "error", err)
		_ = conn.WriteJSON(StreamEvent{Type: "error", Error: "Invalid request"})
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobDescriptionURL != "" {
		fetched, err := h.jd.Fetch(ctx, req.JobDescriptionURL)
		if err != nil {
			logger.Warn("job description fetch failed", "url", req.JobDescriptionURL, "error", err)
		} else {
			jobDescription = fetched
		}
	}

	userData := prompt.SerializeProfile(state.Profile)

	var (
		promptKind   prompt.Kind
		systemPrompt string
		userPrompt   string
		links        func(string) []artifact.DownloadLink
		err          error
	)
	switch kind {
	case session.ArtifactResume:
		style := req.Style
		if style == "" {
			style = defaultResumeStyle
		}
		promptKind = prompt.KindResumeWriter
		systemPrompt, err = prompt.System(promptKind, prompt.Params{
			UserData:       userData,
			TargetPosition: state.Profile.CareerGoals.TargetPosition,
		})
		userPrompt = prompt.ResumeUser(userData, prompt.SerializeLinks(state.Links), style, req.TargetCompany, jobDescription)
		links = artifact.ResumeLinks
	case session.ArtifactCoverLetter:
		if req.CompanyName == "" || req.JobTitle == "" || jobDescription == "" {
			_ = conn.WriteJSON(StreamEvent{Type: "error", Error: "Please fill in all required fields"})
			return
		}
		tone, length := req.Tone, req.Length
		if tone == "" {
			tone = defaultTone
		}
		if length == "" {
			length = defaultLength
		}
		promptKind = prompt.KindCoverLetter
		systemPrompt, err = prompt.System(promptKind, prompt.Params{
			UserData:       userData,
			TargetPosition: req.JobTitle,
			CompanyName:    req.CompanyName,
			JobDescription: jobDescription,
		})
		userPrompt = prompt.CoverLetterUser(userData, req.CompanyName, req.HiringManager, req.JobTitle, jobDescription, tone, length)
		links = artifact.CoverLetterLinks
	}
	if err != nil {
		logger.Error("assemble prompt failed", "error", err)
		_ = conn.WriteJSON(StreamEvent{Type: "error", Error: "Failed to assemble prompt"})
		return
	}

	var writeErr error
	start := time.Now()
	content := h.llm.GenerateStream(ctx, systemPrompt, userPrompt, func(fragment string) {
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(StreamEvent{Type: "fragment", Content: fragment})
	})
	h.metrics.ObserveGeneration(string(promptKind), llm.Outcome(content), time.Since(start).Seconds())

	// Keep the artifact even when the client went away mid-stream; the
	// generation finished and the session should reflect it.
	h.sessions.Put(state.WithArtifact(kind, content))

	if writeErr != nil {
		logger.Warn("client disconnected mid-stream", "error", writeErr)
		return
	}
	if err := conn.WriteJSON(StreamEvent{Type: "done", Content: content, DownloadLinks: links(content)}); err != nil {
		logger.Warn("write done event failed", "error", err)
	}
}
