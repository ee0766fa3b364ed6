// Package metrics exposes Prometheus collectors for ingestion, analysis and probing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "incident_predictor"

// 분석 결과 라벨
const (
	ResultSuccess     = "success"
	ResultUnreachable = "unreachable"
	ResultUpstream    = "upstream_error"
	ResultError       = "error"
)

// Metrics - nil 이면 모든 기록을 무시한다
type Metrics struct {
	IngestedRecords  prometheus.Gauge
	Ingestions       prometheus.Counter
	AnalysisRequests *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	EndpointUp       *prometheus.GaugeVec
}

// New - reg 에 collector 등록
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		IngestedRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingested_records",
			Help:      "Number of incident records in the current workspace",
		}),
		Ingestions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestions_total",
			Help:      "Total number of CSV ingestions",
		}),
		AnalysisRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_requests_total",
			Help:      "Total number of model queries by outcome",
		}, []string{"provider", "result"}),
		AnalysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Model query duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"provider"}),
		EndpointUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "endpoint_up",
			Help:      "1 if the last connectivity probe succeeded",
		}, []string{"provider"}),
	}

	if reg != nil {
		reg.MustRegister(m.IngestedRecords, m.Ingestions, m.AnalysisRequests, m.AnalysisDuration, m.EndpointUp)
	}
	return m
}

func (m *Metrics) ObserveIngestion(count int) {
	if m == nil {
		return
	}
	m.Ingestions.Inc()
	m.IngestedRecords.Set(float64(count))
}

func (m *Metrics) ObserveAnalysis(provider, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisRequests.WithLabelValues(provider, result).Inc()
	m.AnalysisDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (m *Metrics) SetEndpointUp(provider string, up bool) {
	if m == nil {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	m.EndpointUp.WithLabelValues(provider).Set(v)
}
