// 모델 질의 클라이언트 공통 정의
//
// Analyzer 하나의 capability 뒤에 provider 별 구현(Ollama, Gemini)을 둔다.
// 요청 본문은 Variant(레코드 상한, system instruction, 템플릿, reasoning budget)로만 달라진다.
//
// 실패 분류:
//   - 전송 실패 / 요청 생성 실패: ErrUnreachable (원인과 무관하게 같은 메시지)
//   - non-2xx 응답: *StatusError (status code + 원본 body)
//   - 그 외: 그대로 반환

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/kube-rca/incident-predictor/internal/model"
)

// ErrUnreachable - endpoint에 도달하지 못함 (네트워크, CORS, 요청 생성 실패)
var ErrUnreachable = errors.New("CORS_OR_NETWORK_FAILURE")

// Analyzer - incident 목록과 질문으로 모델 답변(markdown)을 받아온다
type Analyzer interface {
	Analyze(ctx context.Context, incidents []model.Incident, query string) (string, error)
}

// ConnectionChecker - endpoint 상태 확인. 실패는 모두 false.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) bool
}

// Provider - 서버에서 사용하는 모델 클라이언트
type Provider interface {
	Analyzer
	ConnectionChecker
	Name() string
	Model() string
	Endpoint() string
}

// UnreachableError - 원인을 보존하지만 메시지는 항상 ErrUnreachable 과 같다
type UnreachableError struct {
	Cause error
}

func (e *UnreachableError) Error() string {
	return ErrUnreachable.Error()
}

func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachable
}

func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

func unreachable(cause error) error {
	return &UnreachableError{Cause: cause}
}

// StatusError - endpoint가 non-2xx 로 응답
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s Error (%d): %s", e.Provider, e.StatusCode, e.Body)
}
