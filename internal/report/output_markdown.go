package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/twconfig"
)

// WriteMarkdown writes the check report as a Markdown document
func WriteMarkdown(w io.Writer, rep Report) error {
	result := rep.Result
	var b strings.Builder

	b.WriteString("# Tailwind Config Report\n\n")
	if rep.Filename != "" {
		fmt.Fprintf(&b, "`%s`\n\n", rep.Filename)
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(&b, "| **Total Issues** | %d (%d errors, %d warnings) |\n",
		len(result.Issues), result.ErrorCount, result.WarningCount)
	fmt.Fprintf(&b, "| **Content Globs** | %d |\n", result.PatternsChecked)
	if result.Content != nil {
		fmt.Fprintf(&b, "| **Files Matched** | %d |\n", result.FilesMatched)
	}
	fmt.Fprintf(&b, "| **Theme Extensions** | %d |\n", len(rep.Descriptor.ThemeExtensions()))
	fmt.Fprintf(&b, "| **Plugins** | %d |\n", len(rep.Descriptor.Plugins()))

	if result.Content != nil && len(result.Content.Patterns) > 0 {
		b.WriteString("\n## Content\n\n")
		b.WriteString("| Glob | Matches |\n|---|---|\n")
		for _, pm := range result.Content.Patterns {
			fmt.Fprintf(&b, "| `%s` | %d |\n", escapeMarkdown(pm.Pattern), pm.Matches)
		}
	}

	writeIssueSection(&b, "Errors", result.Issues, twconfig.SeverityError)
	writeIssueSection(&b, "Warnings", result.Issues, twconfig.SeverityWarning)

	b.WriteString("\n---\n*Generated by twconfig*\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeIssueSection(b *strings.Builder, title string, issues []twconfig.Issue, severity string) {
	var rows []twconfig.Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			rows = append(rows, issue)
		}
	}
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n", title)
	b.WriteString("| Location | Rule | Message |\n|---|---|---|\n")
	for _, issue := range rows {
		location := issue.Pos.Filename
		if issue.Pos.Line > 0 {
			location = fmt.Sprintf("%s:%d:%d", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
		}
		fmt.Fprintf(b, "| `%s` | %s | %s |\n", location, issue.Rule, escapeMarkdown(issue.Text))
	}
}

func markdownStatus(result *twconfig.CheckResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Errors"
	case result.WarningCount > 0:
		return "🟡 Warnings"
	default:
		return "🟢 Clean"
	}
}

// escapeMarkdown escapes characters that break table cells
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
