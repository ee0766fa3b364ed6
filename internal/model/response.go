package model

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalysisErrorResponse - 모델 호출 실패 응답
// kind: unreachable | upstream | internal
type AnalysisErrorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	UpstreamBody   string `json:"upstream_body,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ConnectionState - probe 결과 (최초 probe 전에는 unknown)
type ConnectionState string

const (
	ConnectionUnknown ConnectionState = "unknown"
	ConnectionOnline  ConnectionState = "online"
	ConnectionOffline ConnectionState = "offline"
)

// EndpointStatusResponse - 모델 endpoint 연결 상태
type EndpointStatusResponse struct {
	State     ConnectionState `json:"state"`
	Provider  string          `json:"provider"`
	Model     string          `json:"model"`
	Endpoint  string          `json:"endpoint"`
	CheckedAt *time.Time      `json:"checked_at"`
}
