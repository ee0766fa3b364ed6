package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/kube-rca/incident-predictor/internal/config"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.GeminiConfig{Model: "gemini-3-pro-preview"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_API_KEY")
}

func TestClassifyGenAIError(t *testing.T) {
	t.Run("api-error", func(t *testing.T) {
		err := classifyGenAIError(genai.APIError{Code: 404, Message: "model not found", Status: "NOT_FOUND"})

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, 404, statusErr.StatusCode)
		assert.Equal(t, "model not found", statusErr.Body)
		assert.Equal(t, "Gemini Error (404): model not found", err.Error())
	})

	t.Run("transport", func(t *testing.T) {
		cause := &url.Error{Op: "Post", URL: "https://example.invalid", Err: errors.New("dial tcp: no such host")}
		err := classifyGenAIError(cause)

		assert.True(t, errors.Is(err, ErrUnreachable))
		assert.Equal(t, "CORS_OR_NETWORK_FAILURE", err.Error())
	})

	t.Run("canceled", func(t *testing.T) {
		assert.True(t, errors.Is(classifyGenAIError(context.Canceled), ErrUnreachable))
	})

	t.Run("other-propagates", func(t *testing.T) {
		cause := errors.New("unexpected candidate shape")
		assert.Same(t, cause, classifyGenAIError(cause))
	})
}

func TestGenerateConfig(t *testing.T) {
	prompt, err := RemoteVariant.BuildPrompt(makeIncidents(2), "q")
	require.NoError(t, err)

	cfg := generateConfig(RemoteVariant, prompt)

	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, prompt.System, cfg.SystemInstruction.Parts[0].Text)
	require.NotNil(t, cfg.ThinkingConfig)
	require.NotNil(t, cfg.ThinkingConfig.ThinkingBudget)
	assert.Equal(t, int32(32768), *cfg.ThinkingConfig.ThinkingBudget)
	require.NotNil(t, cfg.Temperature)

	local := generateConfig(LocalVariant, prompt)
	assert.Nil(t, local.ThinkingConfig)
	assert.Nil(t, local.Temperature)
}

func TestNewGeminiClientOverrides(t *testing.T) {
	c, err := NewGeminiClient(context.Background(), config.GeminiConfig{
		APIKey:         "test-key",
		BaseURL:        "http://127.0.0.1:9999",
		Model:          "gemini-3-pro-preview",
		ThinkingBudget: 1024,
		Temperature:    0.3,
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, "gemini", c.Name())
	assert.Equal(t, "gemini-3-pro-preview", c.Model())
	assert.Equal(t, "http://127.0.0.1:9999", c.Endpoint())
	assert.Equal(t, int32(1024), c.variant.ThinkingBudget)
	require.NotNil(t, c.variant.Temperature)
	assert.InDelta(t, 0.3, *c.variant.Temperature, 1e-6)
	assert.Equal(t, defaultProbeTimeout, c.probeTimeout)

	// 기본 variant 는 바뀌지 않는다
	assert.Equal(t, int32(32768), RemoteVariant.ThinkingBudget)
}

func newTestGeminiClient(t *testing.T, baseURL string) *GeminiClient {
	t.Helper()
	c, err := NewGeminiClient(context.Background(), config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-3-pro-preview",
	}, 0)
	require.NoError(t, err)
	return c
}

func TestGeminiAnalyze(t *testing.T) {
	bodies := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies <- string(raw)
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-3-pro-preview:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## Summary of Findings"}]}}]}`))
	}))
	defer srv.Close()

	answer, err := newTestGeminiClient(t, srv.URL).Analyze(context.Background(), makeIncidents(3), "SLA Risk Audit")

	require.NoError(t, err)
	assert.Equal(t, "## Summary of Findings", answer)
	body := <-bodies
	assert.Contains(t, body, "USER QUERY: SLA Risk Audit")
	assert.Contains(t, body, "thinkingBudget")
}

func TestGeminiAnalyzeStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"model not found","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	_, err := newTestGeminiClient(t, srv.URL).Analyze(context.Background(), makeIncidents(1), "q")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	assert.Equal(t, 500, statusErr.StatusCode)
	assert.Equal(t, "model not found", statusErr.Body)
	assert.Equal(t, "Gemini Error (500): model not found", err.Error())
}

func TestGeminiAnalyzeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := newTestGeminiClient(t, baseURL).Analyze(context.Background(), makeIncidents(1), "q")

	assert.True(t, errors.Is(err, ErrUnreachable), "got %v", err)
	assert.Equal(t, "CORS_OR_NETWORK_FAILURE", err.Error())
}

func TestGeminiCheckConnection(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(status.Load()))
		if status.Load() == http.StatusOK {
			_, _ = w.Write([]byte(`{"name":"models/gemini-3-pro-preview"}`))
			return
		}
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	c := newTestGeminiClient(t, srv.URL)
	assert.True(t, c.CheckConnection(context.Background()))

	status.Store(http.StatusInternalServerError)
	assert.False(t, c.CheckConnection(context.Background()))

	srv.Close()
	assert.False(t, c.CheckConnection(context.Background()))
}
