package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/twconfig"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestSettingsFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".twconfig.yaml")
	settings := `
config: web/tailwind.config.yaml
root: web
verbose: true

show:
  format: json

content:
  gitignore: false

check:
  strict: true
  output-format: markdown
  max-issues: 7
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))
	require.NoError(t, loadConfigFromPath(settingsPath))

	assert.Equal(t, "web/tailwind.config.yaml", k.String("config"))
	assert.Equal(t, "web", k.String("root"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "json", k.String("show.format"))
	assert.False(t, k.Bool("content.gitignore"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "markdown", k.String("check.output-format"))
	assert.Equal(t, 7, k.Int("check.max-issues"))
}

func TestSettingsFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent settings - should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.twconfig.yaml"))

	path, explicit := descriptorPath()
	assert.Equal(t, twconfig.DefaultConfigFile, path)
	assert.False(t, explicit)

	config := buildCheckConfig(loadedDescriptor{filename: "tailwind.config.js"})
	assert.Equal(t, "tailwind.config.js", config.Filename)
	assert.Equal(t, ".", config.Root)
	assert.True(t, config.RespectGitignore)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSameIssues)
}

func TestSettingsFileMalformed(t *testing.T) {
	resetKoanf()

	settingsPath := filepath.Join(t.TempDir(), ".twconfig.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("check: [unterminated"), 0644))

	err := loadConfigFromPath(settingsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading settings file")
}

func TestEnvVarOverridesSettingsFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".twconfig.yaml")
	settings := `
root: from-file
check:
  strict: false
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

	// Set env vars that should override the settings file
	t.Setenv("TWCONFIG_ROOT", "from-env")
	t.Setenv("TWCONFIG_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(settingsPath))

	assert.Equal(t, "from-env", k.String("root"))
	assert.True(t, k.Bool("check.strict"))
}

func TestBuildCheckConfig_FromSettingsFile(t *testing.T) {
	resetKoanf()

	settingsPath := filepath.Join(t.TempDir(), ".twconfig.yaml")
	settings := `
root: site
content:
  gitignore: false
check:
  max-issues: 10
  max-same-issues: 2
  print-lines: false
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))
	require.NoError(t, loadConfigFromPath(settingsPath))

	src := loadedDescriptor{
		filename: "tailwind.config.json",
		source:   []byte(`{"content": []}`),
		unknown:  []string{"darkMode"},
	}
	config := buildCheckConfig(src)
	assert.Equal(t, "site", config.Root)
	assert.False(t, config.RespectGitignore)
	assert.Equal(t, 10, config.MaxIssues)
	assert.Equal(t, 2, config.MaxSameIssues)
	assert.Equal(t, []string{"darkMode"}, config.Unknown)
	assert.Equal(t, src.source, config.Source)

	opts := buildReportOptions()
	assert.False(t, opts.PrintLines)
	assert.True(t, opts.PrintLinterName)
	assert.False(t, opts.UseColors)
}

func TestRespectGitignore_FlagWins(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("content.gitignore", true))
	assert.True(t, respectGitignore())

	require.NoError(t, k.Set("no-gitignore", true))
	assert.False(t, respectGitignore())
}

func TestLogLevel(t *testing.T) {
	resetKoanf()
	assert.Equal(t, "", logLevel())

	require.NoError(t, k.Set("log-level", "info"))
	assert.Equal(t, "info", logLevel())

	require.NoError(t, k.Set("verbose", true))
	assert.Equal(t, "debug", logLevel())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))

	// An explicit false must not be replaced by the default
	require.NoError(t, k.Set("config.key", false))
	assert.False(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))

	require.NoError(t, k.Set("config.key", 3))
	assert.Equal(t, 3, getIntWithFallback("flag-key", "config.key", 42))
}
