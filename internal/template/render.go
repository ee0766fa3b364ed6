// Package template provides prompt template rendering for model queries.
//
// 지원하는 변수 형식:
//
//	{{data}}   - 직렬화된 incident 요약 JSON
//	{{query}}  - 사용자 질문
package template

import "strings"

// PromptData - 템플릿 렌더링에 사용할 값
type PromptData struct {
	Data  string
	Query string
}

// RenderPrompt - 템플릿의 변수를 실제 값으로 치환
//
// 값 안에 다시 변수 형식이 있어도 재치환하지 않는다 (strings.Replacer는 한 번만 훑는다).
func RenderPrompt(tmpl string, data PromptData) string {
	return strings.NewReplacer(
		"{{data}}", data.Data,
		"{{query}}", data.Query,
	).Replace(tmpl)
}
