package model

// ============================================================================
// Incident 모델 (CSV 한 줄 단위)
// ============================================================================

// Incident - 업로드된 CSV의 장애 이력 한 건
type Incident struct {
	Number           string `json:"number"`
	ShortDescription string `json:"short_description"`
	Service          string `json:"service"`
	APIEndpoint      string `json:"api_endpoint"`
	Priority         string `json:"priority"`
	State            string `json:"state"`
	Created          string `json:"created"`
	Resolved         string `json:"resolved,omitempty"` // 비어 있으면 아직 open
}

// IsOpen - resolved 시각이 없는 경우
func (i Incident) IsOpen() bool {
	return i.Resolved == ""
}

// IncidentSummary - 모델에 전달하는 축약 형태
// 필드 순서가 그대로 JSON 출력 순서가 된다.
type IncidentSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Service string `json:"service"`
	Prio    string `json:"prio"`
	API     string `json:"api"`
	Open    string `json:"open"`
	Closed  string `json:"closed"`
}

// ============================================================================
// Chart 모델
// ============================================================================

// ChartPoint - 집계 결과 (name, value) 쌍
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ============================================================================
// API Response Envelope
// ============================================================================

// IncidentUploadResponse - CSV 업로드 응답
type IncidentUploadResponse struct {
	Status    string `json:"status"`
	DatasetID string `json:"dataset_id"`
	Count     int    `json:"count"`
}

// IncidentListResponse - 현재 워크스페이스의 incident 목록
type IncidentListResponse struct {
	DatasetID string     `json:"dataset_id"`
	Count     int        `json:"count"`
	Incidents []Incident `json:"incidents"`
}

// ChartResponse - 대시보드 차트 데이터
type ChartResponse struct {
	TopServices []ChartPoint `json:"top_services"`
	Priorities  []ChartPoint `json:"priorities"`
}
