package pipeline

import (
	"fmt"
	"strings"

	"github.com/greenlens/esg-cli/internal/model"
)

// maxCharsPerChunk bounds the report text injected per page so a prompt
// stays within a predictable token budget.
const maxCharsPerChunk = 3000

const promptTemplate = `당신은 한국 기업 ESG 공시 보고서 데이터 추출 전문가입니다.

아래는 지속가능경영보고서에서 발췌한 텍스트입니다.
다음 지표의 수치를 찾아 JSON으로 반환하세요.

[대상 지표]
  - %s: %s (%s) | Unit: %s | GRI: %s

[규칙]
1. 지표의 수치가 텍스트에 명시된 경우에만 추출하세요. 추정하거나 계산하지 마세요.
2. 숫자의 쉼표를 제거하고 순수 숫자만 반환하세요.
3. "source_text"에는 근거 문장을 원문 그대로 복사하세요. 바꿔 쓰지 마세요.
4. 반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트는 절대 포함하지 마세요.

[형식]
{"value": 12345.6, "unit": "%s", "page": 12, "source_text": "원문에서 발췌한 근거 문장"}

지표가 텍스트에 없으면 {"value": null}

[텍스트]
%s`

// buildPrompt renders the single-metric extraction prompt over the selected
// pages. The prompt is Korean to match the report language; the JSON-only
// instruction keeps the parser's job tractable.
func buildPrompt(def model.MetricDefinition, pages []model.Page) string {
	var b strings.Builder
	for _, p := range pages {
		text := truncateRunes(p.Text, maxCharsPerChunk)
		fmt.Fprintf(&b, "--- %d페이지 ---\n%s\n\n", p.Number, text)
	}
	return fmt.Sprintf(promptTemplate,
		def.ID, def.NameKR, def.NameEN, def.Unit, def.GRICode,
		def.Unit,
		strings.TrimSpace(b.String()),
	)
}

// truncateRunes cuts s to at most max bytes without splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}
