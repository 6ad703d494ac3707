package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/registry"
)

var testPages = []model.Page{
	{Number: 34, Text: "온실가스 배출량과 에너지 사용량을 공시합니다."},
	{Number: 55, Text: "임직원 현황 및 이사회 운영 현황."},
}

// promptMetricID recovers the metric id from the prompt's target line.
func promptMetricID(t *testing.T, reg *registry.Registry, prompt string) string {
	t.Helper()
	for _, def := range reg.All() {
		if strings.Contains(prompt, "- "+def.ID+":") {
			return def.ID
		}
	}
	t.Fatal("prompt names no metric")
	return ""
}

func TestExtractOneOutcomePerMetricInRegistryOrder(t *testing.T) {
	reg := registry.Default()
	backend := BackendFunc(func(_ context.Context, prompt string) (string, error) {
		return `{"value": null}`, nil
	})

	exts := Extract(context.Background(), reg, testPages, backend, ExtractOptions{})
	require.Len(t, exts, reg.Len())
	for i, def := range reg.All() {
		assert.Equal(t, def.ID, exts[i].MetricID)
		assert.Equal(t, model.ExtractionNotFound, exts[i].Kind)
	}
}

func TestExtractIsolatesBackendFailures(t *testing.T) {
	reg := registry.Default()
	backend := BackendFunc(func(_ context.Context, prompt string) (string, error) {
		if promptMetricID(t, reg, prompt) == "E02" {
			return "", eris.New("api unavailable")
		}
		return `{"value": 42, "unit": "%", "page": 3, "source_text": "테스트 지표 42%"}`, nil
	})

	exts := Extract(context.Background(), reg, testPages, backend, ExtractOptions{Concurrency: 3})
	require.Len(t, exts, reg.Len())

	for _, ext := range exts {
		if ext.MetricID == "E02" {
			assert.Equal(t, model.ExtractionBackendError, ext.Kind)
			assert.Contains(t, ext.Reason, "api unavailable")
			continue
		}
		assert.Equal(t, model.ExtractionFound, ext.Kind, ext.MetricID)
	}
}

func TestExtractUnparseableResponseIsBackendError(t *testing.T) {
	reg := registry.New([]model.MetricDefinition{
		{ID: "E01", Category: model.CategoryEnvironmental, NameKR: "온실가스 직접배출량",
			Unit: "tCO2eq", ValidRange: model.Range{Min: 0, Max: 1e9}},
	})
	backend := BackendFunc(func(context.Context, string) (string, error) {
		return "   ", nil // blank response violates the parser contract
	})

	exts := Extract(context.Background(), reg, testPages, backend, ExtractOptions{})
	require.Len(t, exts, 1)
	assert.Equal(t, model.ExtractionBackendError, exts[0].Kind)
	assert.Contains(t, exts[0].Reason, "unparseable response")
}

func TestExtractResultIndependentOfConcurrency(t *testing.T) {
	reg := registry.Default()
	backend := BackendFunc(func(_ context.Context, prompt string) (string, error) {
		id := promptMetricID(t, reg, prompt)
		if id == "S05" || id == "G03" {
			return `{"value": null}`, nil
		}
		return `{"value": 7, "unit": "%", "source_text": "지표 7% 수준"}`, nil
	})

	serial := Extract(context.Background(), reg, testPages, backend, ExtractOptions{Concurrency: 1})
	parallel := Extract(context.Background(), reg, testPages, backend, ExtractOptions{Concurrency: 8})
	assert.Equal(t, serial, parallel)
}

func TestSelectChunksPrefersKeywordOverlap(t *testing.T) {
	reg := registry.Default()
	def, err := reg.Get("S01")
	require.NoError(t, err)

	pages := []model.Page{
		{Number: 1, Text: "환경 경영 개요"},
		{Number: 2, Text: "총 임직원 수는 아래 표와 같습니다."},
		{Number: 3, Text: "지배구조 보고"},
		{Number: 4, Text: "임직원 교육 프로그램"},
	}
	picked := selectChunks(pages, def, 2)
	require.Len(t, picked, 2)
	// keyword pages win, re-emitted in document order
	assert.Equal(t, 2, picked[0].Number)
	assert.Equal(t, 4, picked[1].Number)
}

func TestSelectChunksReturnsAllWhenFew(t *testing.T) {
	reg := registry.Default()
	def, err := reg.Get("E01")
	require.NoError(t, err)

	picked := selectChunks(testPages, def, 3)
	assert.Equal(t, testPages, picked)
}
