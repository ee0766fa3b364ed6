package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kube-rca/incident-predictor/internal/model"
)

// Workspace - 세션 단위 인메모리 상태 (incident 목록 + 대화 기록)
//
// incident 목록은 업로드마다 통째로 교체되고 이후 수정되지 않는다.
// 대화 기록은 append-only 이며 Reset 으로만 비워진다.
// session 은 Reset 마다 증가해, 초기화 이전에 시작된 질의의 답변이 새 기록에 섞이지 않게 한다.
type Workspace struct {
	mu        sync.RWMutex
	session   uint64
	datasetID string
	incidents []model.Incident
	history   []model.ChatMessage
}

func NewWorkspace() *Workspace {
	return &Workspace{
		incidents: []model.Incident{},
		history:   []model.ChatMessage{},
	}
}

// ReplaceIncidents - 기존 목록을 버리고 새 dataset id 를 발급
func (w *Workspace) ReplaceIncidents(incidents []model.Incident) string {
	if incidents == nil {
		incidents = []model.Incident{}
	}
	id := uuid.NewString()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.datasetID = id
	w.incidents = incidents
	return id
}

// Incidents - 현재 dataset id 와 목록. 목록은 읽기 전용으로 취급한다.
func (w *Workspace) Incidents() (string, []model.Incident) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.datasetID, w.incidents
}

// StartExchange - user 메시지를 추가하고 현재 session 을 반환
func (w *Workspace) StartExchange(content string) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.history = append(w.history, model.ChatMessage{Role: model.RoleUser, Content: content})
	return w.session
}

// AppendToSession - session 이 그대로일 때만 추가. Reset 이후면 false.
func (w *Workspace) AppendToSession(session uint64, role model.Role, content string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session != session {
		return false
	}
	w.history = append(w.history, model.ChatMessage{Role: role, Content: content})
	return true
}

func (w *Workspace) History() []model.ChatMessage {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.ChatMessage, len(w.history))
	copy(out, w.history)
	return out
}

// Reset - 전체 세션 초기화
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.session++
	w.datasetID = ""
	w.incidents = []model.Incident{}
	w.history = []model.ChatMessage{}
}
