package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-fit/internal/config"
	"github.com/jonathan/founder-fit/internal/types"
)

// newTestServer builds a keyless in-memory server with fast generation
// timings.
func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	cfg := config.Defaults()
	cfg.StageTimeoutSec = 1
	cfg.MinDurationSec = 1
	cfg.TotalBudgetSec = 5

	s, err := New(context.Background(), cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(func() {
		ts.Close()
		s.rateLimiter.Stop()
	})
	return s, ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

const validAnswers = `{
	"risk_comfort_level": 4,
	"tech_skills_rating": 4,
	"self_motivation_level": 5,
	"weekly_time_commitment": 20
}`

func TestHandleHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleScore(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/score", validAnswers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Every trait lands in the normalized range.
	for _, trait := range types.AllTraits {
		value := body.Traits.Get(trait)
		assert.GreaterOrEqual(t, value, 1.0, trait)
		assert.LessOrEqual(t, value, 5.0, trait)
	}
	assert.NotEmpty(t, body.Models)
}

func TestHandleScore_InvalidBody(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/score", `{ not json`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleScore_OutOfRangeAnswer(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/score", `{"risk_comfort_level": 9}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "RiskComfortLevel")
}

func TestHandleRank(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/rank?top=3&bottom=3", validAnswers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body RankResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.NotEmpty(t, body.Models)
	assert.Len(t, body.TopMatches, 3)
	assert.Len(t, body.BottomMatches, 3)

	// Descending full list, worst-first bottom list.
	for i := 1; i < len(body.Models); i++ {
		assert.GreaterOrEqual(t, body.Models[i-1].Percentage, body.Models[i].Percentage)
	}
	last := body.Models[len(body.Models)-1]
	assert.Equal(t, last.ModelID, body.BottomMatches[0].ModelID)
}

func TestHandleRank_NoCounts(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/rank", validAnswers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body RankResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Models)
	assert.Empty(t, body.TopMatches)
	assert.Empty(t, body.BottomMatches)
}

func TestHandleGenerate_KeylessFallback(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/generate", validAnswers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.GenerationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.NotEmpty(t, result.TopModel.ModelID)
	assert.NotEmpty(t, result.Insights.Summary)
	assert.Len(t, result.Analysis.Characteristics, 4)
}

func TestHandleGenerate_SecondRequestHitsCache(t *testing.T) {
	s, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/generate", validAnswers)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, s.cache.Status().Count)

	resp = postJSON(t, ts.URL+"/generate", validAnswers)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, s.cache.Status().Count, "cache hit must not create a second entry")
}

func TestHandleGenerateStream(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/generate/stream", validAnswers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	stream := buf.String()

	assert.Contains(t, stream, "event: complete")
	assert.True(t, strings.Contains(stream, "event: progress") || strings.Contains(stream, `"percent":100`))
}

func TestHandleCacheStatusAndClear(t *testing.T) {
	s, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/generate", validAnswers)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, s.cache.Status().Count)

	statusResp, err := http.Get(ts.URL + "/cache/status")
	require.NoError(t, err)
	defer statusResp.Body.Close()
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	var status types.CacheStatus
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	assert.Equal(t, 1, status.Count)
	assert.Greater(t, status.TotalSizeBytes, 0)

	clearResp := postJSON(t, ts.URL+"/cache/clear", "")
	clearResp.Body.Close()
	require.Equal(t, http.StatusOK, clearResp.StatusCode)
	assert.Equal(t, 0, s.cache.Status().Count)
}

func TestHandleReportStatusAndUnlock(t *testing.T) {
	_, ts := newTestServer(t)

	statusResp, err := http.Get(ts.URL + "/reports/some-key/status")
	require.NoError(t, err)
	defer statusResp.Body.Close()
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	var status ReportStatusResponse
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	assert.False(t, status.Cached)
	assert.False(t, status.Unlocked)

	unlockResp := postJSON(t, ts.URL+"/reports/some-key/unlock", "")
	unlockResp.Body.Close()
	require.Equal(t, http.StatusOK, unlockResp.StatusCode)

	statusResp2, err := http.Get(ts.URL + "/reports/some-key/status")
	require.NoError(t, err)
	defer statusResp2.Body.Close()
	require.NoError(t, json.NewDecoder(statusResp2.Body).Decode(&status))
	assert.True(t, status.Unlocked)
}

func TestCORSPreflight(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest("OPTIONS", ts.URL+"/score", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
