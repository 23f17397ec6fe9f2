package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/importlint/importlint/internal/adapters/outbound/config"
	"github.com/importlint/importlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".importlint.yaml"), []byte(content), 0644))
	return dir
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Equal(t, 3, cfg.WarnCap())
}

func TestLoad_ParsesSettings(t *testing.T) {
	dir := writeConfig(t, `
recommended_warn_cap: 5
large_import_threshold: 1000
skip_checks:
  - duplicate-row
default_fills:
  username: svc-import
no_history: true
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.WarnCap())
	assert.Equal(t, 1000, cfg.RowThreshold())
	assert.True(t, cfg.Skips(domain.KindDuplicateRow))
	assert.Equal(t, "svc-import", cfg.DefaultFills["username"])
	assert.True(t, cfg.NoHistory)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "skip_checks: [unclosed")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownCheckKind(t *testing.T) {
	dir := writeConfig(t, "skip_checks:\n  - not-a-check\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-check")
}
