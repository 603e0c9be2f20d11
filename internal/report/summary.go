package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/twconfig"
)

// SummaryReporter prints descriptor statistics
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintDescriptor outputs the descriptor's shape
func (r *SummaryReporter) PrintDescriptor(d twconfig.Descriptor) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Descriptor", r.useColors))
	fmt.Fprintln(r.w, "----------")

	extend := d.ThemeExtensions()
	keys := make([]string, 0, len(extend))
	for k := range extend {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.w, "Content Globs:    %d\n", len(d.ContentGlobs()))
	fmt.Fprintf(r.w, "Theme Extensions: %d", len(keys))
	if len(keys) > 0 {
		fmt.Fprintf(r.w, " (%s)", joinLimited(keys, 5))
	}
	fmt.Fprintln(r.w)

	plugins := d.Plugins()
	fmt.Fprintf(r.w, "Plugins:          %d\n", len(plugins))
	for _, p := range plugins {
		fmt.Fprintf(r.w, "  • %s\n", p.Module)
	}
}

// PrintContent shows how many files each glob matched
func (r *SummaryReporter) PrintContent(result *twconfig.CheckResult) {
	if result.Content == nil {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Content Coverage", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	maxMatches := 0
	for _, pm := range result.Content.Patterns {
		if pm.Matches > maxMatches {
			maxMatches = pm.Matches
		}
	}

	for _, pm := range result.Content.Patterns {
		printProgressBar(r.w, pm.Matches, maxMatches)
		fmt.Fprintf(r.w, " %4d  %s\n", pm.Matches, pm.Pattern)
	}

	stats := result.Content.Stats
	fmt.Fprintf(r.w, "\nFiles Discovered: %d\n", stats.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Kept:       %d\n", stats.FilesKept)
	fmt.Fprintf(r.w, "Files Skipped:    %d\n", stats.FilesSkipped)
}

// PrintStatus prints the one-line verdict
func (r *SummaryReporter) PrintStatus(result *twconfig.CheckResult) {
	fmt.Fprintln(r.w, "")
	switch {
	case result.ErrorCount > 0:
		fmt.Fprintln(r.w, RenderStyle(StyleError, "✗ "+statusText(result), r.useColors))
	case result.WarningCount > 0:
		fmt.Fprintln(r.w, RenderStyle(StyleWarning, "! "+statusText(result), r.useColors))
	default:
		fmt.Fprintln(r.w, RenderStyle(StyleOK, "✓ "+statusText(result), r.useColors))
	}
}

func statusText(result *twconfig.CheckResult) string {
	switch {
	case result.ErrorCount > 0:
		return "Descriptor has errors"
	case result.WarningCount > 0:
		return "Descriptor is usable with warnings"
	default:
		return "Descriptor is clean"
	}
}

// printProgressBar prints a bar proportional to value/total
func printProgressBar(w io.Writer, value, total int) {
	barWidth := 20
	filled := 0
	if total > 0 {
		filled = value * barWidth / total
	}

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprint(w, "]")
}

func joinLimited(items []string, limit int) string {
	out := ""
	for i, item := range items {
		if i == limit {
			return out + fmt.Sprintf(", +%d more", len(items)-limit)
		}
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
