package service

import (
	"go.uber.org/zap"

	"github.com/kube-rca/incident-predictor/internal/ingest"
	"github.com/kube-rca/incident-predictor/internal/metrics"
	"github.com/kube-rca/incident-predictor/internal/model"
)

type IncidentService struct {
	parser  *ingest.Parser
	ws      *Workspace
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewIncidentService(parser *ingest.Parser, ws *Workspace, m *metrics.Metrics, logger *zap.Logger) *IncidentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IncidentService{parser: parser, ws: ws, metrics: m, logger: logger}
}

// Ingest - CSV 텍스트를 파싱해 워크스페이스의 incident 목록을 교체
func (s *IncidentService) Ingest(text string) model.IncidentUploadResponse {
	incidents := s.parser.Parse(text)
	datasetID := s.ws.ReplaceIncidents(incidents)
	s.metrics.ObserveIngestion(len(incidents))

	s.logger.Info("ingested incidents",
		zap.String("op", "ingest"),
		zap.String("dataset_id", datasetID),
		zap.Int("count", len(incidents)),
		zap.Int("bytes", len(text)),
	)

	return model.IncidentUploadResponse{
		Status:    "success",
		DatasetID: datasetID,
		Count:     len(incidents),
	}
}

func (s *IncidentService) List() model.IncidentListResponse {
	datasetID, incidents := s.ws.Incidents()
	return model.IncidentListResponse{
		DatasetID: datasetID,
		Count:     len(incidents),
		Incidents: incidents,
	}
}

// Charts - 매 호출마다 현재 목록 전체에서 다시 계산 (캐시 없음)
func (s *IncidentService) Charts() model.ChartResponse {
	_, incidents := s.ws.Incidents()
	return model.ChartResponse{
		TopServices: TopServices(incidents, TopServiceLimit),
		Priorities:  PriorityDistribution(incidents),
	}
}
