package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/twconfig"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "        './src/**/*.js',",
			column:     10,
			want:       "         ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t'./src/**/*.js',",
			column:     4,
			want:       "\t\t ^",
		},
		{
			name:       "start of line",
			sourceLine: "content: [],",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues_SortedGolangciFormat(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{PrintLinterName: true, PrintLines: true})
	reporter.useColors = false

	reporter.PrintIssues([]twconfig.Issue{
		{
			FromLinter:  twconfig.LinterName,
			Rule:        twconfig.RuleNoMatches,
			Severity:    twconfig.SeverityWarning,
			Text:        `content glob "./b/**/*.js" matches no files`,
			SourceLines: []string{"        './b/**/*.js',"},
			Pos:         twconfig.IssuePos{Filename: "tailwind.config.js", Line: 5, Column: 10},
		},
		{
			FromLinter: twconfig.LinterName,
			Rule:       twconfig.RuleUnknownKey,
			Severity:   twconfig.SeverityWarning,
			Text:       `key "darkMode" is not recognised and will be ignored`,
			Pos:        twconfig.IssuePos{Filename: "tailwind.config.js", Line: 2, Column: 5},
		},
	})

	out := buf.String()
	first := bytes.Index(buf.Bytes(), []byte("tailwind.config.js:2:5:"))
	second := bytes.Index(buf.Bytes(), []byte("tailwind.config.js:5:10:"))
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "issues should be sorted by line")
	assert.Contains(t, out, "(twconfig/no-matches)")
	assert.Contains(t, out, "\t        './b/**/*.js',\n")
	assert.Contains(t, out, "\t         ^\n")
}

func TestPrintIssues_NoPosition(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{})
	reporter.useColors = false

	reporter.PrintIssues([]twconfig.Issue{{
		Severity: twconfig.SeverityError,
		Text:     twconfig.IssueNoContent,
		Pos:      twconfig.IssuePos{Filename: "tailwind.config.json"},
	}})

	assert.Equal(t, "tailwind.config.json: error: "+twconfig.IssueNoContent+"\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result *twconfig.CheckResult
		want   []string
	}{
		{
			name:   "clean",
			result: &twconfig.CheckResult{},
			want:   []string{"0 issues."},
		},
		{
			name: "mixed severities",
			result: &twconfig.CheckResult{
				ErrorCount:   1,
				WarningCount: 2,
				Issues: []twconfig.Issue{
					{Rule: twconfig.RuleInvalidPattern, Severity: twconfig.SeverityError},
					{Rule: twconfig.RuleNoMatches, Severity: twconfig.SeverityWarning},
					{Rule: twconfig.RuleNoMatches, Severity: twconfig.SeverityWarning},
				},
			},
			want: []string{"3 issues (1 error, 2 warnings):", "* invalid-pattern: 1", "* no-matches: 2"},
		},
		{
			name: "truncated",
			result: &twconfig.CheckResult{
				WarningCount:   3,
				TruncatedCount: 2,
				Issues:         []twconfig.Issue{{Rule: twconfig.RuleNoMatches, Severity: twconfig.SeverityWarning}},
			},
			want: []string{"1 issue (0 errors, 3 warnings; 2 issues truncated):"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf, Options{})
			reporter.useColors = false
			reporter.PrintSummary(tt.result)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
