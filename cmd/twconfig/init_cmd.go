package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in descriptor to tailwind.config.js",
	Long: `Create a descriptor file in the current directory holding the built-in
content globs, an empty theme extension and no plugins.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		formatName, _ := cmd.Flags().GetString("format")
		withSettings, _ := cmd.Flags().GetBool("with-settings")
		return runInit(cmd.OutOrStdout(), formatName, force, withSettings)
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().String("format", "js", "Descriptor format: js|yaml|json")
	initCmd.Flags().Bool("with-settings", false, "Also write a default "+defaultSettingsFile)
}

func runInit(w io.Writer, formatName string, force, withSettings bool) error {
	format, err := twconfig.ParseFormat(formatName)
	if err != nil {
		return err
	}

	target := "tailwind.config." + string(format)
	if err := writeNew(target, mustMarshal(twconfig.Load(), format), force); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created %s\n", target)

	if withSettings {
		if err := writeNew(defaultSettingsFile, []byte(fmt.Sprintf(defaultSettings, target, format)), force); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", defaultSettingsFile)
	}
	return nil
}

func writeNew(path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

const defaultSettings = `# twconfig settings
# Docs: https://github.com/yacobolo/twconfig

# Shared settings
config: %s
root: .
verbose: false
log-level: warn

show:
  format: %s

content:
  gitignore: true

check:
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`
