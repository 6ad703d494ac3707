package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/registry"
)

func metricDef(t *testing.T, id string) model.MetricDefinition {
	t.Helper()
	def, err := registry.Default().Get(id)
	require.NoError(t, err)
	return def
}

func TestParseJSONResponse(t *testing.T) {
	def := metricDef(t, "E01")
	raw := `{"metric_id": "E01", "value": 245000, "unit": "tCO2eq", "page": 34, "source_text": "Scope 1 온실가스 직접배출량: 245,000 tCO2eq"}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)

	c := ext.Candidate
	require.NotNil(t, c)
	assert.Equal(t, "E01", c.MetricID)
	assert.Equal(t, 245000.0, c.Value)
	assert.Equal(t, "tCO2eq", c.UnitReported)
	assert.False(t, c.UnitMismatch)
	require.NotNil(t, c.PageNumber)
	assert.Equal(t, 34, *c.PageNumber)
	// full evidence: unit, long quote containing the value, page cited
	assert.InDelta(t, 1.0, c.Confidence, 1e-9)
}

func TestParseBackendConfidenceWins(t *testing.T) {
	def := metricDef(t, "E01")
	raw := `{"value": 245000, "unit": "tCO2eq", "page": 34, "confidence": 0.61, "source_text": "245,000 tCO2eq 배출"}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.NotNil(t, ext.Candidate)
	assert.InDelta(t, 0.61, ext.Candidate.Confidence, 1e-9)
}

func TestParseNullValueIsNotFound(t *testing.T) {
	def := metricDef(t, "S05")
	ext, err := Parse(`{"value": null}`, def)
	require.NoError(t, err)
	assert.Equal(t, model.ExtractionNotFound, ext.Kind)
	assert.Nil(t, ext.Candidate)
}

func TestParseFencedJSON(t *testing.T) {
	def := metricDef(t, "G02")
	raw := "다음과 같이 추출했습니다.\n```json\n{\"value\": 14, \"unit\": \"회\", \"page\": 72, \"source_text\": \"이사회 개최: 연 14회\"}\n```\n"

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.Equal(t, 14.0, ext.Candidate.Value)
	assert.False(t, ext.Candidate.UnitMismatch)
}

func TestParseExtractedArraySelectsMetric(t *testing.T) {
	def := metricDef(t, "E02")
	raw := `{"extracted": [
		{"metric_id": "E01", "value": 245000, "unit": "tCO2eq"},
		{"metric_id": "E02", "value": 189000, "unit": "tCO2eq"}
	]}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.Equal(t, 189000.0, ext.Candidate.Value)
}

func TestParseFreeTextFallback(t *testing.T) {
	def := metricDef(t, "E07")
	raw := "보고서에 따르면 폐기물 재활용률 92.3% 달성, 전년 대비 개선되었습니다."

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.Equal(t, 92.3, ext.Candidate.Value)
	assert.False(t, ext.Candidate.UnitMismatch)
}

func TestParseFreeTextNoAnchorIsNotFound(t *testing.T) {
	def := metricDef(t, "E01")
	// Numbers present, but nothing ties them to the metric.
	raw := "회사는 2023년에 5개의 사업장을 운영했습니다."

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	assert.Equal(t, model.ExtractionNotFound, ext.Kind)
}

func TestParseUnitMismatchFlag(t *testing.T) {
	def := metricDef(t, "E01") // expects tCO2eq
	raw := `{"value": 4521, "unit": "TJ", "source_text": "에너지 사용량 4,521 TJ"}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.True(t, ext.Candidate.UnitMismatch)
	// value is kept untouched for the validation engine to report
	assert.Equal(t, 4521.0, ext.Candidate.Value)
}

func TestParseScaledUnitNormalized(t *testing.T) {
	def := metricDef(t, "E05") // canonical tonnes
	raw := `{"value": 32500, "unit": "천톤", "page": 44, "source_text": "용수 취수량: 32,500천톤"}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.Equal(t, 32500000.0, ext.Candidate.Value)
	assert.False(t, ext.Candidate.UnitMismatch)
}

func TestParseUnknownUnitKeptWithoutMismatch(t *testing.T) {
	def := metricDef(t, "E04")
	raw := `{"value": 4521, "unit": "붕어빵", "source_text": "총 에너지 사용량 4,521"}`

	ext, err := Parse(raw, def)
	require.NoError(t, err)
	require.Equal(t, model.ExtractionFound, ext.Kind)
	assert.False(t, ext.Candidate.UnitMismatch)
}

func TestParseMalformedInput(t *testing.T) {
	def := metricDef(t, "E01")

	_, err := Parse("", def)
	assert.ErrorIs(t, err, ErrParseInput)

	_, err = Parse("   \n\t ", def)
	assert.ErrorIs(t, err, ErrParseInput)

	_, err = Parse(string([]byte{0xff, 0xfe, 0x41}), def)
	assert.ErrorIs(t, err, ErrParseInput)
}

func TestParseIdempotent(t *testing.T) {
	def := metricDef(t, "S02")
	raw := `{"value": 28.5, "unit": "%", "page": 56, "source_text": "여성 임직원 비율 28.5%"}`

	first, err := Parse(raw, def)
	require.NoError(t, err)
	second, err := Parse(raw, def)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConfidenceMonotonicInEvidence(t *testing.T) {
	def := metricDef(t, "S01")

	bare, err := Parse(`{"value": 63500}`, def)
	require.NoError(t, err)
	withUnit, err := Parse(`{"value": 63500, "unit": "명"}`, def)
	require.NoError(t, err)
	withQuote, err := Parse(`{"value": 63500, "unit": "명", "source_text": "총 임직원 수: 63,500명"}`, def)
	require.NoError(t, err)
	withPage, err := Parse(`{"value": 63500, "unit": "명", "page": 55, "source_text": "총 임직원 수: 63,500명"}`, def)
	require.NoError(t, err)

	assert.Less(t, bare.Candidate.Confidence, withUnit.Candidate.Confidence)
	assert.Less(t, withUnit.Candidate.Confidence, withQuote.Candidate.Confidence)
	assert.Less(t, withQuote.Candidate.Confidence, withPage.Candidate.Confidence)
	assert.LessOrEqual(t, withPage.Candidate.Confidence, 1.0)
}
