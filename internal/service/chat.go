// 모델 질의 비즈니스 로직 정의
//
// 처리 흐름:
//  1. 질문/업로드 여부 검증 (비어 있으면 아무것도 기록하지 않음)
//  2. 진행 중인 질의가 있으면 ErrAnalysisInProgress (기록 없음)
//  3. user 메시지를 대화 기록에 추가
//  4. Analyzer 호출 (요청 1건, 재시도 없음)
//  5. 성공: assistant 답변 기록 / 실패: "Analysis Halted" 메시지를 assistant 로 기록 후 에러 반환
//     (그 사이 세션이 초기화됐으면 기록하지 않음)

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kube-rca/incident-predictor/internal/client"
	"github.com/kube-rca/incident-predictor/internal/metrics"
	"github.com/kube-rca/incident-predictor/internal/model"
)

var (
	ErrInvalidChatRequest = errors.New("invalid chat request")
	// 질의는 한 번에 하나만 (대화 기록이 user, assistant 순서로 쌓이도록)
	ErrAnalysisInProgress = errors.New("analysis already in progress")
)

const haltedHeading = "### ❌ Analysis Halted"

// 사이드바 quick task 질문
var chatPresets = []string{
	"Forecast Future Failures",
	"SLA Risk Audit",
	"Critical Path Analysis",
}

type ChatService struct {
	mu       sync.Mutex
	ws       *Workspace
	analyzer client.Analyzer
	provider string
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewChatService(ws *Workspace, analyzer client.Analyzer, provider string, m *metrics.Metrics, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		ws:       ws,
		analyzer: analyzer,
		provider: provider,
		metrics:  m,
		logger:   logger,
	}
}

func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	question := strings.TrimSpace(req.Message)
	if question == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidChatRequest)
	}

	datasetID, incidents := s.ws.Incidents()
	if len(incidents) == 0 {
		return nil, fmt.Errorf("%w: no incidents loaded", ErrInvalidChatRequest)
	}

	if !s.mu.TryLock() {
		return nil, ErrAnalysisInProgress
	}
	defer s.mu.Unlock()

	session := s.ws.StartExchange(question)

	start := time.Now()
	answer, err := s.analyzer.Analyze(ctx, incidents, question)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.ObserveAnalysis(s.provider, resultLabel(err), elapsed)
		s.logger.Error("analysis failed",
			zap.String("op", "analysis"),
			zap.String("provider", s.provider),
			zap.String("dataset_id", datasetID),
			zap.Duration("elapsed", elapsed),
			zap.Error(errors.Unwrap(err)),
			zap.String("message", err.Error()),
		)
		s.appendAnswer(session, datasetID, HaltedMessage(err))
		return nil, err
	}

	s.metrics.ObserveAnalysis(s.provider, metrics.ResultSuccess, elapsed)
	s.logger.Info("analysis completed",
		zap.String("op", "analysis"),
		zap.String("provider", s.provider),
		zap.String("dataset_id", datasetID),
		zap.Int("incidents", len(incidents)),
		zap.Duration("elapsed", elapsed),
	)
	s.appendAnswer(session, datasetID, answer)

	return &model.ChatResponse{
		Status:    "success",
		Answer:    answer,
		DatasetID: datasetID,
	}, nil
}

// 질의 중 세션이 초기화됐으면 답변은 기록하지 않는다
func (s *ChatService) appendAnswer(session uint64, datasetID, content string) {
	if !s.ws.AppendToSession(session, model.RoleAssistant, content) {
		s.logger.Warn("session reset during analysis, answer not recorded",
			zap.String("op", "analysis"),
			zap.String("dataset_id", datasetID),
		)
	}
}

func (s *ChatService) History() []model.ChatMessage {
	return s.ws.History()
}

func (s *ChatService) Presets() []string {
	out := make([]string, len(chatPresets))
	copy(out, chatPresets)
	return out
}

// Reset - incident 목록과 대화 기록 모두 초기화
func (s *ChatService) Reset() {
	s.ws.Reset()
	s.logger.Info("session reset", zap.String("op", "session"))
}

// HaltedMessage - 실패를 대화 기록용 markdown 으로 변환
func HaltedMessage(err error) string {
	return haltedHeading + "\n" + err.Error()
}

func resultLabel(err error) string {
	var statusErr *client.StatusError
	switch {
	case errors.Is(err, client.ErrUnreachable):
		return metrics.ResultUnreachable
	case errors.As(err, &statusErr):
		return metrics.ResultUpstream
	default:
		return metrics.ResultError
	}
}
