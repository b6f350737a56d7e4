package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptutor/internal/config"
	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type testServer struct {
	*httptest.Server
	t *testing.T
}

func newTestServer(t *testing.T, opts ...engine.Option) *testServer {
	t.Helper()
	st := openStore(t)
	repo := st.EventRepo()
	eng := engine.New(append([]engine.Option{engine.WithAnalysisWriter(repo)}, opts...)...)
	srv := New(config.DefaultConfig().Server, eng, repo, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, t: t}
}

func (ts *testServer) do(method, path, body string) (*http.Response, map[string]any) {
	ts.t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func (ts *testServer) open(id string) string {
	ts.t.Helper()
	resp, out := ts.do(http.MethodPost, "/api/sessions", fmt.Sprintf(`{"session_id":%q}`, id))
	require.Equal(ts.t, http.StatusCreated, resp.StatusCode)
	return out["session_id"].(string)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, out := ts.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", out["status"])
}

func TestTemplates(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/templates")
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []templateSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	ids := make(map[string]bool)
	for _, tpl := range list {
		ids[tpl.ID] = true
	}
	for _, want := range []string{"socratic_mathematics", "explanatory_general", "review_general"} {
		assert.True(t, ids[want], "missing template %s", want)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	id := ts.open("")
	assert.NotEmpty(t, id)
	assert.Equal(t, "learner-a", ts.open("learner-a"))

	resp, out := ts.do(http.MethodGet, "/api/sessions", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, out["sessions"], 2)

	resp, _ = ts.do(http.MethodDelete, "/api/sessions/learner-a", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, out = ts.do(http.MethodDelete, "/api/sessions/learner-a", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, out["error"], "unknown session")
}

func TestEventsAndMessages(t *testing.T) {
	ts := newTestServer(t)
	id := ts.open("learner-b")

	resp, _ := ts.do(http.MethodPost, "/api/sessions/"+id+"/events", `{"type":"help_request"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, out := ts.do(http.MethodPost, "/api/sessions/"+id+"/events", `{"type":"nap"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["error"], "unknown event type")

	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/events", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = ts.do(http.MethodPost, "/api/sessions/missing/events", `{"type":"question"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, out = ts.do(http.MethodPost, "/api/sessions/"+id+"/messages", `{"role":"user","content":"why does the sign flip?"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ev := out["event"].(map[string]any)
	assert.Equal(t, "question", ev["type"])

	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/messages", `{"role":"assistant","content":"Good question."}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/messages", `{"role":"user","content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeAndPrompt(t *testing.T) {
	ts := newTestServer(t)
	id := ts.open("learner-c")

	body := `{
		"messages": [
			{"role": "user", "content": "I'm confused, can you draw a diagram?", "timestamp": "2026-03-01T09:00:00Z"}
		],
		"config": {"mode": "socratic"},
		"context": {"subject_domain": "mathematics"}
	}`
	resp, out := ts.do(http.MethodPost, "/api/sessions/"+id+"/analyze", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "socratic_mathematics", out["template_id"])
	cog := out["cognitive"].(map[string]any)
	assert.Equal(t, "confused", cog["learning_state"])
	style := out["learning_style"].(map[string]any)
	assert.Equal(t, "visual", style["detected_style"])

	resp, out = ts.do(http.MethodPost, "/api/sessions/"+id+"/prompt", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, out["session_id"])
	assert.NotEmpty(t, out["prompt"])

	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/analyze", `{"bogus": true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = ts.do(http.MethodPost, "/api/sessions/missing/analyze", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistory(t *testing.T) {
	ts := newTestServer(t)
	id := ts.open("learner-d")
	for range 3 {
		resp, _ := ts.do(http.MethodPost, "/api/sessions/"+id+"/analyze", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := http.Get(ts.URL + "/api/sessions/" + id + "/history?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []store.AnalysisRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)
	assert.Equal(t, id, records[0].SessionID)

	r2, _ := ts.do(http.MethodGet, "/api/sessions/"+id+"/history?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, r2.StatusCode)

	r3, err := http.Get(ts.URL + "/api/sessions/nobody/history")
	require.NoError(t, err)
	defer r3.Body.Close()
	var empty []store.AnalysisRecord
	require.NoError(t, json.NewDecoder(r3.Body).Decode(&empty))
	assert.Empty(t, empty)
}

func TestHistory_NoDatabase(t *testing.T) {
	srv := New(config.DefaultConfig().Server, engine.New(), nil, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sessions/x/history", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTutor(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("What is 7 minus 3?"))
	ts := newTestServer(t, engine.WithProvider(mock, time.Second))
	id := ts.open("learner-e")

	resp, out := ts.do(http.MethodPost, "/api/sessions/"+id+"/tutor", `{"message":"how do I solve 2x + 3 = 7?"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "What is 7 minus 3?", out["reply"])
	assert.NotEmpty(t, out["prompt"])

	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/tutor", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Queue is now empty, so the provider fails.
	resp, _ = ts.do(http.MethodPost, "/api/sessions/"+id+"/tutor", `{"message":"and then?"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestTutor_NoProvider(t *testing.T) {
	ts := newTestServer(t)
	id := ts.open("learner-f")
	resp, _ := ts.do(http.MethodPost, "/api/sessions/"+id+"/tutor", `{"message":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	cfg := config.DefaultConfig().Server
	cfg.AllowAllOrigins = true
	srv := New(cfg, engine.New(), nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/templates", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestShutdownWithoutStart(t *testing.T) {
	srv := New(config.DefaultConfig().Server, engine.New(), nil, nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestStartAfterShutdown(t *testing.T) {
	cfg := config.DefaultConfig().Server
	cfg.Addr = "127.0.0.1:0"
	srv := New(cfg, engine.New(), nil, nil)
	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.Start())
}
