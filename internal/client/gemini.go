package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/kube-rca/incident-predictor/internal/config"
	"github.com/kube-rca/incident-predictor/internal/model"
	"google.golang.org/genai"
)

const (
	geminiProviderName = "Gemini"
	defaultGeminiHost  = "generativelanguage.googleapis.com"
)

type GeminiClient struct {
	client       *genai.Client
	model        string
	endpoint     string
	variant      Variant
	probeTimeout time.Duration
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, probeTimeout time.Duration) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}

	variant := RemoteVariant
	if cfg.ThinkingBudget > 0 {
		variant.ThinkingBudget = cfg.ThinkingBudget
	}
	if cfg.Temperature > 0 {
		variant.Temperature = float32Ptr(cfg.Temperature)
	}
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}

	endpoint := defaultGeminiHost
	if cfg.BaseURL != "" {
		endpoint = cfg.BaseURL
	}

	return &GeminiClient{
		client:       client,
		model:        cfg.Model,
		endpoint:     endpoint,
		variant:      variant,
		probeTimeout: probeTimeout,
	}, nil
}

func (c *GeminiClient) Name() string     { return "gemini" }
func (c *GeminiClient) Model() string    { return c.model }
func (c *GeminiClient) Endpoint() string { return c.endpoint }

func (c *GeminiClient) Analyze(ctx context.Context, incidents []model.Incident, query string) (string, error) {
	prompt, err := c.variant.BuildPrompt(incidents, query)
	if err != nil {
		return "", unreachable(err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.User, genai.RoleUser),
	}
	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, generateConfig(c.variant, prompt))
	if err != nil {
		return "", classifyGenAIError(err)
	}
	if res == nil {
		return "", fmt.Errorf("empty gemini response")
	}
	return res.Text(), nil
}

// CheckConnection - 모델 메타데이터 조회로 API 도달 여부만 확인
func (c *GeminiClient) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	_, err := c.client.Models.Get(ctx, c.model, nil)
	return err == nil
}

func generateConfig(v Variant, prompt Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       v.Temperature,
	}
	if v.ThinkingBudget > 0 {
		budget := v.ThinkingBudget
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}
	return cfg
}

// classifyGenAIError - genai 에러를 공통 실패 분류로 변환
func classifyGenAIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{Provider: geminiProviderName, StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &StatusError{Provider: geminiProviderName, StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return unreachable(err)
	}
	return err
}
