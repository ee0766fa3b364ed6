package model

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage - 대화 기록 한 턴. assistant 메시지는 markdown.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Status    string `json:"status"`
	Answer    string `json:"answer"`
	DatasetID string `json:"dataset_id,omitempty"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatPresetResponse struct {
	Presets []string `json:"presets"`
}
