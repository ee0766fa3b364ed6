package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kube-rca/incident-predictor/internal/model"
)

func makeIncidents(n int) []model.Incident {
	out := make([]model.Incident, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Incident{
			Number:           fmt.Sprintf("INC%03d", i),
			ShortDescription: "Checkout latency",
			Service:          "Payments",
			APIEndpoint:      "/v1/pay",
			Priority:         "P2",
			State:            "Resolved",
			Created:          "2024-03-01T00:00:00.000Z",
		})
	}
	return out
}

func TestSummarize(t *testing.T) {
	incidents := []model.Incident{
		{Number: "INC1", ShortDescription: "Disk full", Service: "Auth", APIEndpoint: "/v1/login", Priority: "P1", Created: "c1"},
		{Number: "INC2", ShortDescription: "Timeout", Service: "Search", APIEndpoint: "N/A", Priority: "P3", Created: "c2", Resolved: "r2"},
	}

	got := Summarize(incidents, 40)

	assert.Equal(t, []model.IncidentSummary{
		{ID: "INC1", Title: "Disk full", Service: "Auth", Prio: "P1", API: "/v1/login", Open: "c1", Closed: "Still Open"},
		{ID: "INC2", Title: "Timeout", Service: "Search", Prio: "P3", API: "N/A", Open: "c2", Closed: "r2"},
	}, got)
}

func TestSummarizeBounds(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  int
	}{
		{name: "below-limit", count: 3, limit: 40, want: 3},
		{name: "local-limit", count: 45, limit: 40, want: 40},
		{name: "remote-limit", count: 200, limit: 150, want: 150},
		{name: "empty", count: 0, limit: 40, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(makeIncidents(tt.count), tt.limit)
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)
			if tt.want > 0 {
				// 앞에서부터 자른다
				assert.Equal(t, "INC000", got[0].ID)
				assert.Equal(t, fmt.Sprintf("INC%03d", tt.want-1), got[len(got)-1].ID)
			}
		})
	}
}

func TestLocalVariantBuildPrompt(t *testing.T) {
	prompt, err := LocalVariant.BuildPrompt(makeIncidents(45), "Which API is most likely to cause the next incident?")
	require.NoError(t, err)

	assert.Contains(t, prompt.System, "SRE Reasoning Engine")
	require.True(t, strings.HasPrefix(prompt.User, "DATA:\n["))

	parts := strings.SplitN(strings.TrimPrefix(prompt.User, "DATA:\n"), "\n\nUSER QUESTION: ", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "Which API is most likely to cause the next incident?", parts[1])
	assert.NotContains(t, parts[0], "\n", "local variant sends compact JSON")

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal([]byte(parts[0]), &decoded))
	assert.Len(t, decoded, 40)
	assert.Equal(t, map[string]string{
		"id": "INC000", "title": "Checkout latency", "service": "Payments", "prio": "P2",
		"api": "/v1/pay", "open": "2024-03-01T00:00:00.000Z", "closed": "Still Open",
	}, decoded[0])
}

func TestLocalVariantFieldOrder(t *testing.T) {
	prompt, err := LocalVariant.BuildPrompt(makeIncidents(1), "q")
	require.NoError(t, err)

	assert.Contains(t, prompt.User, `[{"id":"INC000","title":"Checkout latency","service":"Payments","prio":"P2","api":"/v1/pay","open":"2024-03-01T00:00:00.000Z","closed":"Still Open"}]`)
}

func TestRemoteVariantBuildPrompt(t *testing.T) {
	prompt, err := RemoteVariant.BuildPrompt(makeIncidents(160), "SLA Risk Audit")
	require.NoError(t, err)

	assert.Equal(t, 150, strings.Count(prompt.User, `"id": `))
	assert.True(t, strings.HasPrefix(prompt.User, "CURRENT INCIDENT SNAPSHOT:\n[\n  {\n    \"id\": \"INC000\""))
	assert.True(t, strings.HasSuffix(prompt.User, "\n\nUSER QUERY: SLA Risk Audit"))
	assert.Contains(t, prompt.System, "Future Risk Forecast")
	assert.Equal(t, int32(32768), RemoteVariant.ThinkingBudget)
	require.NotNil(t, RemoteVariant.Temperature)
	assert.InDelta(t, 0.1, *RemoteVariant.Temperature, 1e-6)
}

func TestBuildPromptEmptyIncidents(t *testing.T) {
	prompt, err := LocalVariant.BuildPrompt(nil, "anything")
	require.NoError(t, err)
	assert.Equal(t, "DATA:\n[]\n\nUSER QUESTION: anything", prompt.User)
}

func TestBuildPromptDoesNotEscapeHTML(t *testing.T) {
	incidents := []model.Incident{{Number: "INC1", ShortDescription: "5xx <gateway> & retries", Created: "c"}}

	prompt, err := LocalVariant.BuildPrompt(incidents, "q")
	require.NoError(t, err)
	assert.Contains(t, prompt.User, "5xx <gateway> & retries")
}
