package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGroundTruth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.jsonl")

	lines := `{"task_id":"t1","Question":"capital of France?","Final answer":"Paris"}
{"task_id":"t2","Question":"2+2?","Final answer":"4"}
{"task_id":"","Question":"orphan","Final answer":"x"}
{"task_id":"t3","Question":"no answer"}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	truth, err := LoadGroundTruth(path)
	require.NoError(t, err)
	require.Len(t, truth, 2)
	require.Equal(t, "Paris", truth["t1"].Answer)
	require.Equal(t, "2+2?", truth["t2"].Question)
}

func TestJoinAnswers(t *testing.T) {
	paris := "The capital is Paris."
	answers := []AgentAnswer{
		{TaskID: "t1", Answer: &paris},
		{TaskID: "t2", Answer: nil},
		{TaskID: "unknown", Answer: &paris},
	}
	truth := map[string]GroundTruth{
		"t1": {Question: "capital of France?", Answer: "Paris"},
		"t2": {Question: "2+2?", Answer: "4"},
	}

	samples, missing := JoinAnswers(answers, truth)
	require.Equal(t, 1, missing)
	require.Len(t, samples, 2)
	require.Equal(t, "The capital is Paris.", samples[0].Answer)
	require.Equal(t, "Paris", samples[0].Expected)
	require.Equal(t, "capital of France?", samples[0].Question)
	// nil answers arrive at the scorer as the literal "None"
	require.Equal(t, "None", samples[1].Answer)
}

func TestLoadAnswers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")

	content := `[
		{"task_id":"t1","answer":"Paris"},
		{"task_id":"t2","answer":null}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	answers, err := LoadAnswers(path)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	require.Equal(t, "Paris", *answers[0].Answer)
	require.Nil(t, answers[1].Answer)
}
