// Package report renders descriptor check results for terminals and tools.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/yacobolo/twconfig"
)

// Options controls how issues are printed.
type Options struct {
	UseColors       bool // Force colors; otherwise auto-detected
	PrintLines      bool // Show the descriptor line under each issue
	PrintLinterName bool // Show the (twconfig/rule) suffix
}

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts Options) bool {
	if opts.UseColors {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// FORCE_COLOR is set by GitHub Actions and most CI runners
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// PrintIssues outputs issues sorted by file, line and column
func (r *Reporter) PrintIssues(issues []twconfig.Issue) {
	sorted := make([]twconfig.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue twconfig.Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	severityStyle := StyleWarning
	if issue.Severity == twconfig.SeverityError {
		severityStyle = StyleError
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s/%s)", issue.FromLinter, issue.Rule)
	}

	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		RenderStyle(severityStyle, issue.Severity+":", r.useColors),
		issue.Text,
		RenderStyle(StyleHint, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in any tab width.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result *twconfig.CheckResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")

	if total == 0 && result.TruncatedCount == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleOK, "0 issues.", r.useColors))
		return
	}

	counts := fmt.Sprintf("%s, %s",
		pluralizeCount(result.ErrorCount, "error", "errors"),
		pluralizeCount(result.WarningCount, "warning", "warnings"))
	if result.TruncatedCount > 0 {
		counts += fmt.Sprintf("; %s truncated", pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}
	fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(total, "issue", "issues"), counts)

	// Group by rule
	ruleCounts := make(map[string]int)
	for _, issue := range result.Issues {
		ruleCounts[issue.Rule]++
	}
	rules := make([]string, 0, len(ruleCounts))
	for rule := range ruleCounts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	for _, rule := range rules {
		fmt.Fprintf(r.w, "* %s: %d\n", rule, ruleCounts[rule])
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
