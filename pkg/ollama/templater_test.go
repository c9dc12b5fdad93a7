package ollama

import (
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("다음 문장을 분석하세요: {{.Text}} (직종: {{.Categories}})", map[string]any{
		"Text":       "바리스타 알바",
		"Categories": "카페/음료, 서비스",
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !strings.Contains(out, "바리스타 알바") || !strings.Contains(out, "카페/음료") {
		t.Fatalf("rendered = %q", out)
	}
}

func TestRenderTemplate_BadTemplate(t *testing.T) {
	if _, err := RenderTemplate("{{.Text", nil); err == nil {
		t.Fatal("expected parse error")
	}
}
