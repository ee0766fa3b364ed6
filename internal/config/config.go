// 환경변수 기반 설정 로딩
//
// .env 파일이 있으면 먼저 읽고(godotenv), 이미 설정된 환경변수는 덮어쓰지 않는다.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Ollama OllamaConfig
	Gemini GeminiConfig
	Probe  ProbeConfig
	Ingest IngestConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type LLMConfig struct {
	Provider string
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	ThinkingBudget int32
	Temperature    float32
}

type ProbeConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

type IngestConfig struct {
	QuotedFields bool
}

type LogConfig struct {
	Level string
}

// Load - .env(있으면) + 환경변수에서 설정을 읽는다
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:               getenv("PORT", "8080"),
			CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(getenv("LLM_PROVIDER", ProviderOllama)),
		},
		Ollama: OllamaConfig{
			// localhost 대신 127.0.0.1 (DNS 해석 문제 회피)
			BaseURL: strings.TrimRight(getenv("OLLAMA_URL", "http://127.0.0.1:11434"), "/"),
			Model:   getenv("OLLAMA_MODEL", "deepseek-r1"),
		},
		Gemini: GeminiConfig{
			APIKey:         os.Getenv("AI_API_KEY"),
			BaseURL:        os.Getenv("GEMINI_BASE_URL"),
			Model:          getenv("GEMINI_MODEL", "gemini-3-pro-preview"),
			ThinkingBudget: int32(getenvInt("GEMINI_THINKING_BUDGET", 32768)),
			Temperature:    0.1,
		},
		Probe: ProbeConfig{
			Interval: getenvDuration("PROBE_INTERVAL", 5*time.Second),
			Timeout:  getenvDuration("PROBE_TIMEOUT", 2*time.Second),
		},
		Ingest: IngestConfig{
			QuotedFields: getenvBool("CSV_QUOTED", false),
		},
		Log: LogConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
