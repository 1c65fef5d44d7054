package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at empty temp dirs and runs the
// test from one, so user and project config files cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestNewDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "filesystem", cfg.Storage)
	assert.Equal(t, filepath.Join(home, ".promptstash", "prompts"), cfg.PromptsDir)
	assert.Equal(t, filepath.Join(home, ".promptstash", "promptstash.db"), cfg.DBPath)
	assert.Equal(t, defaultParameterPattern, cfg.ParameterPattern)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestNewAppliesOverrides(t *testing.T) {
	isolate(t)

	storage := "memory"
	level := "DEBUG"
	cfg, err := New(&RuntimeOverrides{Storage: &storage, LogLevel: &level})
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	isolate(t)

	storage := "carrier-pigeon"
	_, err := New(&RuntimeOverrides{Storage: &storage})
	assert.Error(t, err)
}

func TestNewReadsLocalConfigFile(t *testing.T) {
	home := isolate(t)

	localDir := filepath.Join(home, ".promptstash")
	require.NoError(t, os.MkdirAll(localDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(localDir, "config.yaml"),
		[]byte("storage: sqlite\nlog:\n  level: WARN\n"),
		0o644,
	))

	cfg, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, "WARN", cfg.Log.Level)
}

func TestNewRejectsBadPattern(t *testing.T) {
	home := isolate(t)

	localDir := filepath.Join(home, ".promptstash")
	require.NoError(t, os.MkdirAll(localDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(localDir, "config.yaml"),
		[]byte("parameterPattern: '['\n"),
		0o644,
	))

	_, err := New(nil)
	assert.Error(t, err)
}

func TestGenerateJSONSchema(t *testing.T) {
	schema, err := GenerateJSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "promptstash Configuration Schema", schema.Title)
}
