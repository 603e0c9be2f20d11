package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/twconfig"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "explicit quiet flag", quiet: true, expected: OutputIssues},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit summary format", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit full format", formatFlag: "full", expected: OutputFull},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown format", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "default format is issues", expected: OutputIssues},
		{name: "unknown format falls back to issues", formatFlag: "xml", expected: OutputIssues},
		{name: "quiet overrides format flag", formatFlag: "full", quiet: true, expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleReport() Report {
	d := twconfig.New(
		[]string{"./templates/**/*.html", "./missing/**/*.js"},
		map[string]any{"colors": map[string]any{"brand": "#0f766e"}},
		[]twconfig.Plugin{{Module: "@tailwindcss/forms"}},
	)

	return Report{
		Filename:   "tailwind.config.js",
		Descriptor: d,
		Result: &twconfig.CheckResult{
			ErrorCount:      1,
			WarningCount:    1,
			PatternsChecked: 2,
			FilesMatched:    3,
			Content: &twconfig.ContentSet{
				Files: []string{"templates/a.html", "templates/b.html", "templates/c.html"},
				Patterns: []twconfig.PatternMatch{
					{Pattern: "./templates/**/*.html", Matches: 3},
					{Pattern: "./missing/**/*.js", Matches: 0},
				},
				Stats: twconfig.ScanStats{FilesDiscovered: 3, FilesKept: 3},
			},
			Issues: []twconfig.Issue{
				{
					FromLinter:  twconfig.LinterName,
					Rule:        twconfig.RuleNoMatches,
					Severity:    twconfig.SeverityWarning,
					Text:        `content glob "./missing/**/*.js" matches no files`,
					SourceLines: []string{"        './missing/**/*.js',"},
					Pos:         twconfig.IssuePos{Filename: "tailwind.config.js", Line: 5, Column: 10},
				},
				{
					FromLinter: twconfig.LinterName,
					Rule:       twconfig.RulePluginModule,
					Severity:   twconfig.SeverityError,
					Text:       "plugins[1] has an empty module specifier | oops",
					Pos:        twconfig.IssuePos{Filename: "tailwind.config.js"},
				},
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, "tailwind.config.js", output.File)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Errors)
	assert.Equal(t, 1, output.Summary.Warnings)
	assert.Equal(t, 3, output.Summary.FilesMatched)

	require.Len(t, output.Content, 2)
	assert.Equal(t, "./missing/**/*.js", output.Content[1].Pattern)
	assert.Equal(t, 0, output.Content[1].Matches)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, "no-matches", output.Issues[0].Rule)
	assert.Equal(t, 5, output.Issues[0].Line)
	assert.Equal(t, "        './missing/**/*.js',", output.Issues[0].Source)

	assert.Contains(t, output.Descriptor, "content")
	assert.Contains(t, output.Descriptor, "theme")
	assert.Contains(t, output.Descriptor, "plugins")
}

func TestJSONOutputSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	for _, key := range []string{"version", "timestamp", "file", "summary", "descriptor", "content", "issues"} {
		assert.Contains(t, raw, key)
	}

	summary := raw["summary"].(map[string]any)
	for _, key := range []string{"total_issues", "errors", "warnings", "truncated", "patterns_checked", "files_matched"} {
		assert.Contains(t, summary, key)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))

	markdown := buf.String()
	assert.Contains(t, markdown, "# Tailwind Config Report")
	assert.Contains(t, markdown, "## Summary")
	assert.Contains(t, markdown, "| **Total Issues** | 2 (1 errors, 1 warnings) |")
	assert.Contains(t, markdown, "| **Files Matched** | 3 |")
	assert.Contains(t, markdown, "| **Plugins** | 1 |")
	assert.Contains(t, markdown, "| `./missing/**/*.js` | 0 |")
	assert.Contains(t, markdown, "## Errors")
	assert.Contains(t, markdown, "## Warnings")
	assert.Contains(t, markdown, "`tailwind.config.js:5:10`")
	assert.Contains(t, markdown, "🔴 Errors")
	assert.Contains(t, markdown, "*Generated by twconfig*")
}

func TestMarkdownStatusBadges(t *testing.T) {
	tests := []struct {
		name     string
		result   *twconfig.CheckResult
		expected string
	}{
		{name: "clean", result: &twconfig.CheckResult{}, expected: "🟢 Clean"},
		{name: "warnings only", result: &twconfig.CheckResult{WarningCount: 2}, expected: "🟡 Warnings"},
		{name: "errors present", result: &twconfig.CheckResult{ErrorCount: 1, WarningCount: 4}, expected: "🔴 Errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteMarkdown(&buf, Report{Descriptor: twconfig.Load(), Result: tt.result}))
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestMarkdownEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))
	assert.Contains(t, buf.String(), `specifier \| oops`, "Pipes should be escaped in markdown tables")
}

func TestWriteOutput_AllFormats(t *testing.T) {
	formats := []struct {
		format   OutputFormat
		contains string
	}{
		{OutputIssues, "tailwind.config.js:5:10:"},
		{OutputSummary, "Content Coverage"},
		{OutputFull, "Descriptor"},
		{OutputJSON, `"version": "1.0"`},
		{OutputMarkdown, "# Tailwind Config Report"},
	}

	for _, tt := range formats {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleReport(), tt.format, Options{PrintLines: true}))
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutput(&buf, sampleReport(), OutputFormat("xml"), Options{})
	require.Error(t, err)
}
