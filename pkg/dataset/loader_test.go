package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"answercheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestFileDatasetJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.json")

	content := `[
		{"id":"1","question":"capital of France?","answer":"Paris","expected":"Paris"},
		{"id":"2","question":"2+2?","answer":"4","expected":"4"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds := NewFileDataset(path)
	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	ch, errCh := ds.Samples(context.Background())
	var got []core.Sample
	for sample := range ch {
		got = append(got, sample)
	}
	for err := range errCh {
		require.NoError(t, err)
	}
	require.Len(t, got, 2)
	require.Equal(t, "Paris", got[0].Answer)
	require.Equal(t, "4", got[1].Expected)
}

func TestFileDatasetJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.jsonl")

	lines := `{"id":"1","answer":"x","expected":"x"}
{"id":"2","answer":"y","expected":"y"}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	ds := NewFileDataset(path)
	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	ch, errCh := ds.Samples(context.Background())
	var got []core.Sample
	for sample := range ch {
		got = append(got, sample)
	}
	for err := range errCh {
		require.NoError(t, err)
	}
	require.Len(t, got, 2)
	require.Equal(t, "x", got[0].Expected)
}

func TestFileDatasetNullAnswer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.jsonl")

	lines := `{"id":"1","answer":null,"expected":"Paris"}
{"id":"2","expected":"Berlin"}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	ds := NewFileDataset(path)
	ch, errCh := ds.Samples(context.Background())
	var got []core.Sample
	for sample := range ch {
		got = append(got, sample)
	}
	for err := range errCh {
		require.NoError(t, err)
	}
	require.Len(t, got, 2)
	require.Equal(t, "None", got[0].Answer)
	require.Equal(t, "None", got[1].Answer)
}

func TestFileDatasetEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o600))

	ds := NewFileDataset(path)
	_, err := ds.Len(context.Background())
	require.EqualError(t, err, "dataset: empty file")
}

func TestSliceDataset(t *testing.T) {
	ds := NewSliceDataset([]core.Sample{
		{ID: "1", Answer: "a", Expected: "a"},
	}, "")
	require.Equal(t, "inline", ds.Name())

	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	ch, errCh := ds.Samples(context.Background())
	var got []core.Sample
	for sample := range ch {
		got = append(got, sample)
	}
	for err := range errCh {
		require.NoError(t, err)
	}
	require.Len(t, got, 1)
}
