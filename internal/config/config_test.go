package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into a temp directory so an ambient fitcli.yaml
// in the repository never leaks into config tests.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	return tmpDir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data/strava/raw", cfg.Paths.InputDir)
	assert.Equal(t, "data/strava/processed", cfg.Paths.OutputDir)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
	assert.Equal(t, "phi3:mini", cfg.LLM.Model)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("FITCLI_PATHS_INPUT_DIR", "/tmp/raw")
	t.Setenv("FITCLI_LLM_MODEL", "deepseek-coder:1.3b")
	t.Setenv("FITCLI_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/raw", cfg.Paths.InputDir)
	assert.Equal(t, "deepseek-coder:1.3b", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := chdirTemp(t)

	yamlContent := `
logging:
  level: warn
paths:
  input_dir: exports/raw
  output_dir: exports/processed
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, configFile), []byte(yamlContent), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "exports/raw", cfg.Paths.InputDir)
	assert.Equal(t, "exports/processed", cfg.Paths.OutputDir)
	// Untouched sections still pick up defaults.
	assert.Equal(t, "phi3:mini", cfg.LLM.Model)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := chdirTemp(t)

	yamlContent := `
paths:
  input_dir: exports/raw
llm:
  model: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, configFile), []byte(yamlContent), 0644))

	t.Setenv("FITCLI_LLM_MODEL", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	// The env var wins where set; file values survive where it is not.
	assert.Equal(t, "from-env", cfg.LLM.Model)
	assert.Equal(t, "exports/raw", cfg.Paths.InputDir)
}

func TestLoad_InvalidLevel(t *testing.T) {
	chdirTemp(t)

	t.Setenv("FITCLI_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
