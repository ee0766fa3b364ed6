package template

import "testing"

func TestRenderPrompt(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data PromptData
		want string
	}{
		{
			name: "local-variant",
			tmpl: "DATA:\n{{data}}\n\nUSER QUESTION: {{query}}",
			data: PromptData{Data: `[{"id":"INC1"}]`, Query: "Which API fails most?"},
			want: "DATA:\n[{\"id\":\"INC1\"}]\n\nUSER QUESTION: Which API fails most?",
		},
		{
			name: "remote-variant",
			tmpl: "CURRENT INCIDENT SNAPSHOT:\n{{data}}\n\nUSER QUERY: {{query}}",
			data: PromptData{Data: "[]", Query: "SLA Risk Audit"},
			want: "CURRENT INCIDENT SNAPSHOT:\n[]\n\nUSER QUERY: SLA Risk Audit",
		},
		{
			name: "no-recursive-substitution",
			tmpl: "{{query}} / {{data}}",
			data: PromptData{Data: "[]", Query: "what is {{data}}?"},
			want: "what is {{data}}? / []",
		},
		{
			name: "unknown-variable-kept",
			tmpl: "{{unknown}} {{query}}",
			data: PromptData{Query: "q"},
			want: "{{unknown}} q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderPrompt(tt.tmpl, tt.data); got != tt.want {
				t.Fatalf("RenderPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}
