package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/importlint/importlint/internal/adapters/outbound/history"
	"github.com/importlint/importlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no history yet")

	first := domain.RunEntry{
		Timestamp: "2026-08-31T10:00:00Z",
		File:      "passwords.csv",
		Type:      "passwords",
		Errors:    2,
		Warnings:  1,
	}
	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, domain.RunEntry{
		Timestamp: "2026-08-31T10:05:00Z",
		File:      "passwords.csv",
		Passed:    true,
	}))

	entries, err = h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.True(t, entries[1].Passed)

	_, err = os.Stat(filepath.Join(dir, ".importlint", "history", "runs.json"))
	assert.NoError(t, err)
}

func TestFileHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".importlint", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
