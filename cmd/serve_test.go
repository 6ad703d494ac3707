package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/store"
)

// newTestEnv wires a pipeline against the fixture backend and a throwaway
// sqlite store.
func newTestEnv(t *testing.T) *pipelineEnv {
	t.Helper()
	setTestConfig(t)

	env, err := initPipeline(context.Background())
	require.NoError(t, err)
	t.Cleanup(env.Close)
	return env
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCreateRun_Accepted(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	payload, _ := json.Marshal(map[string]any{
		"company": "한빛에너지",
		"pages": []model.Page{
			{Number: 34, Text: "온실가스 배출량 및 에너지 사용량"},
		},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp["status"])
	assert.Equal(t, "한빛에너지", resp["company"])

	// The run executes asynchronously; wait for it to land in the store.
	require.Eventually(t, func() bool {
		runs, err := env.Store.ListRuns(context.Background(), store.RunFilter{
			Status: model.RunStatusComplete,
		})
		return err == nil && len(runs) == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestCreateRun_RejectsEmptyPages(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/runs",
		bytes.NewReader([]byte(`{"company": "acme", "pages": []}`)))
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateRun_RejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewReader([]byte("{not json")))
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetRun_NotFound(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/runs/no-such-id", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListMetrics(t *testing.T) {
	env := newTestEnv(t)
	h := newAPIRouter(context.Background(), env)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Metrics []model.MetricDefinition `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Metrics, 16)
	assert.Equal(t, "E01", body.Metrics[0].ID)
}
