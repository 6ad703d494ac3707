// Package backendmock provides a deterministic fixture backend for demos and
// pipeline tests. No network, no key, stable output.
package backendmock

import (
	"context"
	"fmt"
	"regexp"
)

type fixture struct {
	value      float64
	unit       string
	page       int
	confidence float64
	sourceText string
}

// Fixtures mirror a realistic large-cap Korean sustainability report.
// S05 and G03 are deliberately absent to exercise missing-data handling.
var fixtures = map[string]fixture{
	"E01": {245000, "tCO2eq", 34, 0.95, "Scope 1 온실가스 직접배출량: 245,000 tCO2eq"},
	"E02": {189000, "tCO2eq", 34, 0.93, "Scope 2 온실가스 간접배출량: 189,000 tCO2eq"},
	"E03": {1520000, "tCO2eq", 36, 0.72, "Scope 3 기타 간접배출량: 약 1,520,000 tCO2eq (추정치)"},
	"E04": {4521, "TJ", 41, 0.91, "총 에너지 사용량 4,521 TJ"},
	"E05": {32500000, "톤", 44, 0.88, "용수 취수량: 32,500천톤"},
	"E06": {78500, "톤", 47, 0.90, "폐기물 총 발생량 78,500톤"},
	"E07": {92.3, "%", 47, 0.94, "폐기물 재활용률 92.3%"},
	"S01": {63500, "명", 55, 0.97, "총 임직원 수: 63,500명"},
	"S02": {28.5, "%", 56, 0.89, "여성 임직원 비율 28.5%"},
	"S03": {0.12, "%", 60, 0.85, "산업재해율 0.12%"},
	"S04": {62, "시간", 63, 0.82, "1인당 평균 교육시간: 62시간"},
	"G01": {57.1, "%", 71, 0.96, "사외이사 비율: 57.1%"},
	"G02": {14, "회", 72, 0.98, "이사회 개최: 연 14회"},
	"G04": {98.5, "%", 75, 0.91, "반부패 교육 이수율 98.5%"},
}

// metricIDPattern matches the target-metric line of the extraction prompt.
var metricIDPattern = regexp.MustCompile(`- ([ESG]\d{2}):`)

// Backend answers extraction prompts from the fixture table.
type Backend struct{}

// New returns a fixture backend.
func New() *Backend {
	return &Backend{}
}

// Call identifies the requested metric from the prompt and returns its
// fixture response as the JSON the real model is instructed to emit.
func (b *Backend) Call(_ context.Context, prompt string) (string, error) {
	m := metricIDPattern.FindStringSubmatch(prompt)
	if m == nil {
		return `{"value": null}`, nil
	}
	f, ok := fixtures[m[1]]
	if !ok {
		return `{"value": null}`, nil
	}
	return fmt.Sprintf(
		`{"metric_id": %q, "value": %g, "unit": %q, "page": %d, "confidence": %g, "source_text": %q}`,
		m[1], f.value, f.unit, f.page, f.confidence, f.sourceText,
	), nil
}
