package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/store"
)

const turnYAML = `session_id: learner-1
messages:
  - role: user
    content: "I'm confused, can you draw a diagram of the fractions?"
    timestamp: 2026-03-01T09:00:00Z
config:
  mode: socratic
context:
  subject_domain: mathematics
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTurn(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "turn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(turnYAML), 0o644))
	return path
}

func TestAnalyzeAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "a.db")
	turn := writeTurn(t, dir)

	out, err := execute(t, "analyze", turn, "--db", db, "--json=true", "--session", "")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "learner-1", res["session_id"])
	assert.Equal(t, "socratic_mathematics", res["template_id"])

	out, err = execute(t, "history", "learner-1", "--db", db, "--id", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "learner-1")
	assert.Contains(t, out, "socratic")
}

func TestPrompt(t *testing.T) {
	dir := t.TempDir()
	turn := writeTurn(t, dir)

	out, err := execute(t, "prompt", turn, "--db", filepath.Join(dir, "p.db"), "--session", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTemplates(t *testing.T) {
	out, err := execute(t, "templates", "--db", filepath.Join(t.TempDir(), "t.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "explanatory_general")

	out, err = execute(t, "templates", "show", "review", "history", "--db", filepath.Join(t.TempDir(), "t.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "review_general")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adaptutor.yaml")
	_, err := execute(t, "config", "init", path, "--force=false")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recent_window")

	_, err = execute(t, "config", "init", path, "--force=false")
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "****", mask("short"))
	assert.Equal(t, "sk-a…wxyz", mask("sk-abcdefghwxyz"))
}

func seedLLMEvents(t *testing.T, db string) {
	t.Helper()
	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()

	repo := s.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: llm.PurposeTutorReply,
		SessionID: "learner-1", InputTokens: 1200, OutputTokens: 300, LatencyMs: 800, Success: true,
		RequestBody: "[system]\nYou are a Socratic tutor.", ResponseBody: "What do you notice?",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openrouter", Model: "some-lab/unpriced-model", Purpose: llm.PurposeSessionSummary,
		SessionID: "learner-2", InputTokens: 500, OutputTokens: 100, ErrorMessage: "rate limited",
	}))
}

func TestLLMCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "llm.db")
	seedLLMEvents(t, db)

	out, err := execute(t, "llm", "list", "--db", db, "--session", "learner-1", "--purpose", "", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "tutor-reply")
	assert.NotContains(t, out, "learner-2")

	out, err = execute(t, "llm", "list", "--db", db, "--session", "", "--purpose", llm.PurposeSessionSummary, "--json")
	require.NoError(t, err)
	var records []store.LLMEventRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "learner-2", records[0].SessionID)

	out, err = execute(t, "llm", "view", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Session:   learner-1")
	assert.Contains(t, out, "You are a Socratic tutor.")

	_, err = execute(t, "llm", "view", "99", "--db", db)
	assert.Error(t, err)

	out, err = execute(t, "llm", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "some-lab/unpriced-model")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
