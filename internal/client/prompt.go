package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kube-rca/incident-predictor/internal/model"
	tmpl "github.com/kube-rca/incident-predictor/internal/template"
)

const stillOpen = "Still Open"

const localSystemInstruction = `
You are an Advanced SRE Reasoning Engine running on DeepSeek R1.
Analyze the provided ServiceNow incident data. Respond in Markdown.
Provide a "Thinking" section and an "Analysis" section.
`

const remoteSystemInstruction = `
You are an Advanced SRE Reasoning Engine (Reasoning-Model Class).
Your goal is to perform deep-dive predictive analysis on ServiceNow incident data.

ANALYSIS PROTOCOL:
1. DATA SCAN: Analyze the provided 150-incident JSON block.
2. PATTERN RECOGNITION: Look for "Cascading Failure" signs (e.g., small errors in Service A preceding a crash in Service B).
3. PROBABILISTIC FORECASTING: When asked about future incidents, provide a likelihood percentage based on historical frequency.
4. SLA CALCULATIONS: Compute precise Average Resolution Times (ART) by parsing the ISO timestamps.

REPORTING STYLE:
- Start with a "Summary of Findings".
- Use "Service Toxicity" as a metric for APIs causing the most downstream pain.
- Provide a "Future Risk Forecast" section.
- Use Markdown tables for data comparisons.
- Maintain a technical, cold, and highly accurate tone.
`

// Variant - provider 별 요청 구성값
type Variant struct {
	Name              string
	RecordLimit       int // context window 때문에 앞에서부터 자른다
	SystemInstruction string
	UserTemplate      string
	IndentData        bool
	ThinkingBudget    int32 // 0이면 설정하지 않음
	Temperature       *float32
}

var LocalVariant = Variant{
	Name:              "local",
	RecordLimit:       40,
	SystemInstruction: localSystemInstruction,
	UserTemplate:      "DATA:\n{{data}}\n\nUSER QUESTION: {{query}}",
}

var RemoteVariant = Variant{
	Name:              "remote",
	RecordLimit:       150,
	SystemInstruction: remoteSystemInstruction,
	UserTemplate:      "CURRENT INCIDENT SNAPSHOT:\n{{data}}\n\nUSER QUERY: {{query}}",
	IndentData:        true,
	ThinkingBudget:    32768,
	Temperature:       float32Ptr(0.1),
}

// Prompt - 렌더링 완료된 system / user 메시지
type Prompt struct {
	System string
	User   string
}

// Summarize - 앞에서 limit 개까지 잘라 모델 전달용 요약으로 변환
func Summarize(incidents []model.Incident, limit int) []model.IncidentSummary {
	n := len(incidents)
	if limit >= 0 && n > limit {
		n = limit
	}

	out := make([]model.IncidentSummary, 0, n)
	for _, i := range incidents[:n] {
		closed := i.Resolved
		if closed == "" {
			closed = stillOpen
		}
		out = append(out, model.IncidentSummary{
			ID:      i.Number,
			Title:   i.ShortDescription,
			Service: i.Service,
			Prio:    i.Priority,
			API:     i.APIEndpoint,
			Open:    i.Created,
			Closed:  closed,
		})
	}
	return out
}

// BuildPrompt - 요약 JSON + 질문을 variant 템플릿으로 렌더링
func (v Variant) BuildPrompt(incidents []model.Incident, query string) (Prompt, error) {
	summary := Summarize(incidents, v.RecordLimit)

	data, err := marshalSummary(summary, v.IndentData)
	if err != nil {
		return Prompt{}, fmt.Errorf("failed to marshal incident summary: %w", err)
	}

	user := tmpl.RenderPrompt(v.UserTemplate, tmpl.PromptData{
		Data:  data,
		Query: query,
	})

	return Prompt{
		System: v.SystemInstruction,
		User:   user,
	}, nil
}

func marshalSummary(summary []model.IncidentSummary, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(summary); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func float32Ptr(v float32) *float32 {
	return &v
}
