// Package llm is the client for the remote OpenAI-compatible
// chat-completions endpoint. Responses stream as SSE fragments and are
// accumulated into one string. Every failure collapses into a fixed
// user-facing placeholder; no error escapes this package.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// maxErrorBody caps how much of an error response body is read for logs.
const maxErrorBody = 64 * 1024

// maxFragmentLine caps one SSE line. Delta fragments are small; this only
// guards against a misbehaving provider.
const maxFragmentLine = 1024 * 1024

// maxCacheEntries bounds the memoization map. The cache is flushed
// wholesale when full; prompts repeat within a session, not across weeks.
const maxCacheEntries = 256

// Client talks to one model endpoint with fixed generation parameters.
// Successful results are memoized per (system, user) prompt pair.
type Client struct {
	baseURL     string
	token       string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
	logger      *slog.Logger

	mu    sync.RWMutex
	cache map[[sha256.Size]byte]string
}

// Option configures a Client.
type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a client for baseURL, authorizing with token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		token:       token,
		model:       "meta-llama/Meta-Llama-3-8B-Instruct",
		maxTokens:   2048,
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: 5 * time.Minute},
		logger:      slog.Default(),
		cache:       make(map[[sha256.Size]byte]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Generate runs one generation and returns the accumulated text, or a
// placeholder string when the provider fails.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) string {
	return c.GenerateStream(ctx, systemPrompt, userPrompt, nil)
}

// GenerateStream is Generate with a fragment hook: onFragment observes
// each streamed delta as it arrives. A memoized result is replayed as a
// single fragment. Placeholder strings are not passed to the hook.
func (c *Client) GenerateStream(ctx context.Context, systemPrompt, userPrompt string, onFragment func(string)) string {
	key := cacheKey(systemPrompt, userPrompt)
	if text, hit := c.cached(key); hit {
		c.logger.Debug("generation cache hit")
		if onFragment != nil {
			onFragment(text)
		}
		return text
	}

	text, err := c.complete(ctx, systemPrompt, userPrompt, onFragment)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsageLimit):
			c.logger.Warn("monthly usage limit reached", "error", err)
			return MsgUsageLimit
		case errors.Is(err, ErrProvider):
			c.logger.Warn("inference provider error", "error", err)
			return MsgProviderError
		default:
			c.logger.Warn("generation failed", "error", err)
			return MsgGenerationFailed
		}
	}

	c.store(key, text)
	return text
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, onFragment func(string)) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, resp.Body)
	}

	return consumeStream(resp.Body, onFragment)
}

// completionsURL appends the chat-completions path unless the base URL
// already carries it.
func (c *Client) completionsURL() string {
	base := strings.TrimSuffix(c.baseURL, "/")
	if strings.HasSuffix(base, "/chat/completions") {
		return base
	}
	return base + "/chat/completions"
}

func classifyStatus(statusCode int, body io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	detail := strings.TrimSpace(string(raw))
	if len(detail) > 200 {
		detail = detail[:200] + "..."
	}
	if statusCode == http.StatusPaymentRequired {
		return fmt.Errorf("%w (status %d): %s", ErrUsageLimit, statusCode, detail)
	}
	return fmt.Errorf("%w (status %d): %s", ErrProvider, statusCode, detail)
}

// consumeStream reads SSE "data:" lines, accumulating delta content until
// the [DONE] marker or EOF.
func consumeStream(body io.Reader, onFragment func(string)) (string, error) {
	var text strings.Builder
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFragmentLine)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}
		if payload == "[DONE]" {
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return "", fmt.Errorf("decode stream chunk: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if fragment := chunk.Choices[0].Delta.Content; fragment != "" {
			text.WriteString(fragment)
			if onFragment != nil {
				onFragment(fragment)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	return strings.TrimSpace(text.String()), nil
}

func cacheKey(systemPrompt, userPrompt string) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userPrompt))
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *Client) cached(key [sha256.Size]byte) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, hit := c.cache[key]
	return text, hit
}

func (c *Client) store(key [sha256.Size]byte, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cache) >= maxCacheEntries {
		c.cache = make(map[[sha256.Size]byte]string)
	}
	c.cache[key] = text
}
