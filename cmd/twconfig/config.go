package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/logging"
	"github.com/yacobolo/twconfig/internal/report"
)

const defaultSettingsFile = ".twconfig.yaml"

var k = koanf.New(".")

// loadConfig loads settings with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags.
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = defaultSettingsFile
	}

	if err := loadConfigFromPath(settingsPath); err != nil {
		return err
	}

	// Only flags the user set; defaults come from the *WithFallback helpers
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	logging.Configure(logging.Config{
		Level:   logLevel(),
		Output:  cmd.ErrOrStderr(),
		Console: true,
	})
	return nil
}

// loadConfigFromPath loads settings from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(settingsPath string) error {
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", settingsPath, err)
		}
	}

	// TWCONFIG_CHECK_STRICT -> check.strict, TWCONFIG_CONTENT_GITIGNORE -> content.gitignore
	if err := k.Load(env.Provider("TWCONFIG_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWCONFIG_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// logLevel returns "" when nothing is configured so the logging package
// can consult TWCONFIG_LOG_LEVEL itself.
func logLevel() string {
	if getBoolWithFallback("verbose", "verbose", false) {
		return "debug"
	}
	return getStringWithFallback("log-level", "log-level", "")
}

// descriptorPath returns the descriptor file and whether it was chosen explicitly.
func descriptorPath() (string, bool) {
	if v := k.String("config"); v != "" {
		return v, true
	}
	return twconfig.DefaultConfigFile, false
}

// respectGitignore honours --no-gitignore over the content.gitignore setting.
func respectGitignore() bool {
	if k.Bool("no-gitignore") {
		return false
	}
	return getBoolWithFallback("gitignore", "content.gitignore", true)
}

// buildCheckConfig constructs the library's CheckConfig from koanf state.
func buildCheckConfig(src loadedDescriptor) twconfig.CheckConfig {
	return twconfig.CheckConfig{
		Filename:         src.filename,
		Source:           src.source,
		Unknown:          src.unknown,
		Root:             getStringWithFallback("root", "root", "."),
		RespectGitignore: respectGitignore(),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
	}
}

// buildReportOptions constructs reporter options from koanf state.
func buildReportOptions() report.Options {
	return report.Options{
		UseColors:       getBoolWithFallback("color", "color", false),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
