package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"analysis_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrationCreatesColumns(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		table  string
		column string
	}{
		{"analysis_events", "session_id"},
		{"analysis_events", "payload"},
		{"llm_request_events", "session_id"},
		{"llm_request_events", "response_body"},
	}
	for _, tt := range tests {
		var n int
		err := s.DB().QueryRow(
			`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, tt.table, tt.column,
		).Scan(&n)
		if err != nil {
			t.Errorf("inspect %s: %v", tt.table, err)
			continue
		}
		if n != 1 {
			t.Errorf("%s.%s missing after migrate", tt.table, tt.column)
		}
	}
}

func TestAppendAnalysisRequiresSession(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	err := s.EventRepo().AppendAnalysis(context.Background(), AnalysisEventData{LoadLevel: "low"})
	if err == nil {
		t.Fatal("expected error for analysis without session id")
	}
}

func TestReopenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "adaptutor.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := s.EventRepo().AppendAnalysis(ctx, AnalysisEventData{SessionID: "s1", LoadLevel: "low"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	got, err := s.EventRepo().QueryAnalyses(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d analyses after reopen, want 1", len(got))
	}
	if err := s.EventRepo().AppendAnalysis(ctx, AnalysisEventData{SessionID: "s1"}); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	got, _ = s.EventRepo().QueryAnalyses(ctx, QueryOpts{Limit: 1})
	if got[0].Sequence != 2 {
		t.Errorf("sequence after reopen = %d, want 2", got[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAnalyses_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, sess := range []string{"a", "b", "a", "a"} {
		err := repo.AppendAnalysis(ctx, AnalysisEventData{
			SessionID:       sess,
			LoadLevel:       "optimal",
			LearningState:   "focused",
			LoadScore:       30 + i,
			LoadConfidence:  70,
			DetectedStyle:   "visual",
			StyleConfidence: 82.5,
			Mode:            "socratic",
			Subject:         "mathematics",
			Prompt:          "prompt",
			Payload:         `{"i":` + fmt.Sprint(i) + `}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryAnalyses(ctx, QueryOpts{SessionID: "a"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d analyses for a, want 3", len(got))
	}
	if got[0].LoadScore != 33 || got[2].LoadScore != 30 {
		t.Errorf("order = %d..%d, want newest first", got[0].LoadScore, got[2].LoadScore)
	}
	if got[0].StyleConfidence != 82.5 || got[0].Payload != `{"i":3}` {
		t.Errorf("round trip mismatch: %+v", got[0].AnalysisEventData)
	}
	if time.Since(got[0].Timestamp) > time.Minute {
		t.Errorf("timestamp = %v, want recent", got[0].Timestamp)
	}

	limited, _ := repo.QueryAnalyses(ctx, QueryOpts{SessionID: "a", Limit: 1})
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d", len(limited))
	}
	after, _ := repo.QueryAnalyses(ctx, QueryOpts{After: 2})
	if len(after) != 2 {
		t.Errorf("after filter: got %d, want 2", len(after))
	}
	future, _ := repo.QueryAnalyses(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if len(future) != 0 {
		t.Errorf("from filter: got %d, want 0", len(future))
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "tutor-reply", SessionID: "s1", InputTokens: 100, OutputTokens: 40, LatencyMs: 300, Success: true, RequestBody: "[system]\nbe kind", ResponseBody: "hello"},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "tutor-reply", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "session-summary", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	if all[0].Purpose != "session-summary" || all[0].Success {
		t.Errorf("newest = %+v, want failed session-summary", all[0].LLMRequestEventData)
	}

	tutor, _ := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "tutor-reply"})
	if len(tutor) != 2 {
		t.Errorf("purpose filter: got %d, want 2", len(tutor))
	}

	bySession, _ := repo.QueryLLMEvents(ctx, QueryOpts{SessionID: "s1"})
	if len(bySession) != 1 || bySession[0].SessionID != "s1" {
		t.Errorf("session filter = %+v, want the one s1 event", bySession)
	}

	first, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil || first.RequestBody != "[system]\nbe kind" || !first.Success {
		t.Errorf("get returned %+v", first)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Ordered by purpose name.
	if tp := byPurpose[1]; tp.Purpose != "tutor-reply" || tp.Calls != 2 || tp.InputTokens != 150 || tp.AvgLatencyMs != 200 {
		t.Errorf("tutor-reply usage = %+v", tp)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-haiku-4-5-20251001" || byModel[0].OutputTokens != 50 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("ADAPTUTOR_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("env override = %q, %v", p, err)
	}

	t.Setenv("ADAPTUTOR_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "adaptutor", "adaptutor.db") {
		t.Errorf("xdg path = %q, %v", p, err)
	}
}
