package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/logging"
	"github.com/yacobolo/twconfig/internal/report"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List the files matched by the content globs",
	Long: `Expand the descriptor's content globs against the project root and print
the matched files, one per line, relative to the root.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stats, _ := cmd.Flags().GetBool("stats")
		return runContent(cmd.OutOrStdout(), stats)
	},
}

func init() {
	f := contentCmd.Flags()
	f.String("root", ".", "Project root the content globs are expanded against")
	f.Bool("no-gitignore", false, "Do not apply the root .gitignore")
	f.Bool("stats", false, "Print per-glob match counts after the file list")
}

func runContent(w io.Writer, stats bool) error {
	src, err := loadDescriptor()
	if err != nil {
		return err
	}

	root := getStringWithFallback("root", "root", ".")
	set, err := twconfig.Resolve(src.descriptor, twconfig.ResolveConfig{
		Root:             root,
		RespectGitignore: respectGitignore(),
	})
	if err != nil {
		return fmt.Errorf("resolving content: %w", err)
	}

	log := logging.WithComponent("content")
	log.Info().
		Str("root", root).
		Int("discovered", set.Stats.FilesDiscovered).
		Int("kept", set.Stats.FilesKept).
		Int("skipped", set.Stats.FilesSkipped).
		Msg("content resolved")

	for _, file := range set.Files {
		fmt.Fprintln(w, file)
	}

	if stats {
		summary := report.NewSummaryReporter(w, getBoolWithFallback("color", "color", false))
		summary.PrintContent(&twconfig.CheckResult{Content: set})
	}
	return nil
}
