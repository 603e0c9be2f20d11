package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/logging"
	"github.com/yacobolo/twconfig/internal/report"
)

// errCheckFailed signals a failing exit code after the report was printed.
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the Tailwind descriptor",
	Long: `Check the descriptor for empty, invalid or duplicate content globs,
globs that match no files, unknown keys and malformed plugins.
Exits 1 on errors, or on any issue with --strict.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("root", ".", "Project root the content globs are expanded against")
	f.Bool("no-gitignore", false, "Do not apply the root .gitignore")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues per rule to show (0=unlimited)")
	f.Bool("print-lines", true, "Show descriptor lines with issues")
	f.Bool("print-linter-name", true, "Show (twconfig/rule) suffix on issues")
}

func runCheck(w io.Writer) error {
	log := logging.WithComponent("check")

	src, err := loadDescriptor()
	if err != nil {
		return err
	}

	result, err := twconfig.Check(src.descriptor, buildCheckConfig(src))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	log.Info().
		Str("file", src.filename).
		Int("errors", result.ErrorCount).
		Int("warnings", result.WarningCount).
		Int("files", result.FilesMatched).
		Msg("check complete")

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := report.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		rep := report.Report{Filename: src.filename, Descriptor: src.descriptor, Result: result}
		if err := report.WriteOutput(w, rep, format, buildReportOptions()); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues)+result.TruncatedCount > 0 {
			return errCheckFailed
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return errCheckFailed
	}

	return nil
}
