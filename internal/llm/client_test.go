package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sseServer answers chat-completion requests with the given fragments as
// an OpenAI-compatible SSE stream.
func sseServer(t *testing.T, fragments []string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		assert.Equal(t, 2048, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, fragment := range fragments {
			chunk := map[string]any{
				"choices": []map[string]any{
					{"delta": map[string]any{"content": fragment}},
				},
			}
			payload, err := json.Marshal(chunk)
			require.NoError(t, err)
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestGenerateAccumulatesStream(t *testing.T) {
	srv := sseServer(t, []string{"# Jane", " Doe", "\n\nEngineer "}, nil)
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "system prompt", "user prompt")
	assert.Equal(t, "# Jane Doe\n\nEngineer", got)
}

func TestGenerateStreamInvokesFragmentHook(t *testing.T) {
	srv := sseServer(t, []string{"alpha", "beta"}, nil)
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")

	var fragments []string
	got := client.GenerateStream(context.Background(), "s", "u", func(f string) {
		fragments = append(fragments, f)
	})
	assert.Equal(t, "alphabeta", got)
	assert.Equal(t, []string{"alpha", "beta"}, fragments)
}

func TestGenerateUsageLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"monthly included credits exhausted"}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "s", "u")
	assert.Equal(t, "Service temporarily unavailable.", got)
}

func TestGenerateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "s", "u")
	assert.Equal(t, "Unable to generate content at this time.", got)
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "s", "u")
	assert.Equal(t, "Content generation failed.", got)
}

func TestGenerateMalformedChunk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {not json}\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "s", "u")
	assert.Equal(t, "Content generation failed.", got)
}

func TestGenerateMemoizesIdenticalPrompts(t *testing.T) {
	var calls atomic.Int64
	srv := sseServer(t, []string{"cached result"}, &calls)
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	ctx := context.Background()

	first := client.Generate(ctx, "same system", "same user")
	second := client.Generate(ctx, "same system", "same user")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), calls.Load())

	client.Generate(ctx, "same system", "different user")
	assert.Equal(t, int64(2), calls.Load())
}

func TestGenerateDoesNotMemoizePlaceholders(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "quota", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	ctx := context.Background()

	client.Generate(ctx, "s", "u")
	client.Generate(ctx, "s", "u")
	assert.Equal(t, int64(2), calls.Load())
}

func TestGenerateStreamReplaysCacheAsSingleFragment(t *testing.T) {
	srv := sseServer(t, []string{"part one ", "part two"}, nil)
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	ctx := context.Background()

	client.Generate(ctx, "s", "u")

	var fragments []string
	got := client.GenerateStream(ctx, "s", "u", func(f string) {
		fragments = append(fragments, f)
	})
	assert.Equal(t, "part one part two", got)
	assert.Equal(t, []string{"part one part two"}, fragments)
}

func TestGenerateIgnoresEmptyDeltaChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"role\":\"assistant\"}}]}\n\n")
		fmt.Fprint(w, ": keep-alive comment\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"hello\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "hf_test")
	got := client.Generate(context.Background(), "s", "u")
	assert.Equal(t, "hello", got)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome("# A Resume"))
	assert.Equal(t, "usage_limit", Outcome(MsgUsageLimit))
	assert.Equal(t, "provider_error", Outcome(MsgProviderError))
	assert.Equal(t, "failed", Outcome(MsgGenerationFailed))
}

func TestCompletionsURL(t *testing.T) {
	assert.Equal(t, "https://router.huggingface.co/v1/chat/completions",
		NewClient("https://router.huggingface.co/v1", "t").completionsURL())
	assert.Equal(t, "https://router.huggingface.co/v1/chat/completions",
		NewClient("https://router.huggingface.co/v1/", "t").completionsURL())
	assert.Equal(t, "http://localhost:9999/v1/chat/completions",
		NewClient("http://localhost:9999/v1/chat/completions", "t").completionsURL())
}
