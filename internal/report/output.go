package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/twconfig"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows descriptor statistics and content coverage only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + content coverage
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// Report bundles what the writers need.
type Report struct {
	Filename   string
	Descriptor twconfig.Descriptor
	Result     *twconfig.CheckResult
}

// DetermineOutputFormat selects the output format from the flag value.
// Quiet mode and unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check report in the specified format
func WriteOutput(w io.Writer, rep Report, format OutputFormat, opts Options) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(rep.Result.Issues)
		reporter.PrintSummary(rep.Result)

	case OutputSummary:
		summary := NewSummaryReporter(w, shouldUseColors(opts))
		summary.PrintDescriptor(rep.Descriptor)
		summary.PrintContent(rep.Result)
		summary.PrintStatus(rep.Result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(rep.Result.Issues)
		reporter.PrintSummary(rep.Result)

		summary := NewSummaryReporter(w, reporter.UseColors())
		summary.PrintDescriptor(rep.Descriptor)
		summary.PrintContent(rep.Result)
		summary.PrintStatus(rep.Result)

	case OutputJSON:
		if err := WriteJSON(w, rep); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, rep); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
