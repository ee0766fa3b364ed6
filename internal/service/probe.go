package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kube-rca/incident-predictor/internal/client"
	"github.com/kube-rca/incident-predictor/internal/metrics"
	"github.com/kube-rca/incident-predictor/internal/model"
)

// ProbeService - 주기적으로 endpoint 연결 상태를 확인하고 마지막 결과를 보관
// probe 자체(client.ConnectionChecker)는 상태가 없다.
type ProbeService struct {
	checker  client.ConnectionChecker
	provider string
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time

	mu        sync.RWMutex
	state     model.ConnectionState
	checkedAt time.Time
}

func NewProbeService(checker client.ConnectionChecker, provider string, interval time.Duration, m *metrics.Metrics, logger *zap.Logger) *ProbeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &ProbeService{
		checker:  checker,
		provider: provider,
		interval: interval,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		state:    model.ConnectionUnknown,
	}
}

// CheckNow - probe 1회 실행 후 결과 기록
func (s *ProbeService) CheckNow(ctx context.Context) bool {
	ok := s.checker.CheckConnection(ctx)

	next := model.ConnectionOffline
	if ok {
		next = model.ConnectionOnline
	}

	s.mu.Lock()
	prev := s.state
	s.state = next
	s.checkedAt = s.now()
	s.mu.Unlock()

	s.metrics.SetEndpointUp(s.provider, ok)
	if prev != next {
		s.logger.Info("endpoint connectivity changed",
			zap.String("op", "probe"),
			zap.String("provider", s.provider),
			zap.String("from", string(prev)),
			zap.String("to", string(next)),
		)
	}
	return ok
}

// Run - 즉시 1회 확인 후 interval 마다 반복. ctx 가 끝나면 nil 반환.
func (s *ProbeService) Run(ctx context.Context) error {
	s.CheckNow(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.CheckNow(ctx)
		}
	}
}

// State - 마지막 probe 결과. 아직 확인 전이면 unknown, nil.
func (s *ProbeService) State() (model.ConnectionState, *time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.checkedAt.IsZero() {
		return s.state, nil
	}
	t := s.checkedAt
	return s.state, &t
}
