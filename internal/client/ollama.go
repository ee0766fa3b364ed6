// 로컬 Ollama 서버와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - OLLAMA_URL: Ollama 서버 URL (예: http://127.0.0.1:11434)
//   - OLLAMA_MODEL: 모델 이름 (예: deepseek-r1)
//
// 사용하는 API:
//   - POST /api/chat: 분석 요청 (stream=false, 응답 전체를 한 번에 받음)
//   - GET /api/tags: 연결 확인

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kube-rca/incident-predictor/internal/config"
	"github.com/kube-rca/incident-predictor/internal/model"
)

const (
	ollamaProviderName  = "Ollama"
	defaultOllamaURL    = "http://127.0.0.1:11434"
	defaultOllamaModel  = "deepseek-r1"
	defaultProbeTimeout = 2 * time.Second
)

// OllamaClient 구조체 정의
type OllamaClient struct {
	baseURL      string
	model        string
	variant      Variant
	probeTimeout time.Duration

	// 분석 요청은 client 측 timeout 없음 (모델 응답 시간이 길다)
	httpClient *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OllamaChatRequest - POST /api/chat 요청 본문
type OllamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

// OllamaChatResponse - POST /api/chat 응답 본문 (message만 사용)
type OllamaChatResponse struct {
	Model   string         `json:"model"`
	Message *ollamaMessage `json:"message"`
	Done    bool           `json:"done"`
}

// OllamaClient 객체 생성
func NewOllamaClient(cfg config.OllamaConfig, probeTimeout time.Duration) *OllamaClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultOllamaModel
	}
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}

	return &OllamaClient{
		baseURL:      baseURL,
		model:        modelName,
		variant:      LocalVariant,
		probeTimeout: probeTimeout,
		httpClient:   &http.Client{},
	}
}

func (c *OllamaClient) Name() string     { return "ollama" }
func (c *OllamaClient) Model() string    { return c.model }
func (c *OllamaClient) Endpoint() string { return c.baseURL }

// BuildRequest - POST /api/chat 요청 본문 생성
func (c *OllamaClient) BuildRequest(incidents []model.Incident, query string) (*OllamaChatRequest, error) {
	prompt, err := c.variant.BuildPrompt(incidents, query)
	if err != nil {
		return nil, err
	}
	return &OllamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: string(model.RoleSystem), Content: prompt.System},
			{Role: string(model.RoleUser), Content: prompt.User},
		},
		Stream: false,
	}, nil
}

// POST /api/chat 분석 요청하고 assistant 답변 반환 (동기)
func (c *OllamaClient) Analyze(ctx context.Context, incidents []model.Incident, query string) (string, error) {
	req, err := c.BuildRequest(incidents, query)
	if err != nil {
		return "", unreachable(err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", unreachable(fmt.Errorf("failed to marshal ollama request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", unreachable(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", unreachable(fmt.Errorf("failed to send request to ollama: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &StatusError{Provider: ollamaProviderName, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp OllamaChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Message == nil {
		return "", fmt.Errorf("ollama response has no message")
	}

	return chatResp.Message.Content, nil
}

// GET /api/tags 연결 확인 (probeTimeout 안에 2xx 응답이면 true)
func (c *OllamaClient) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
