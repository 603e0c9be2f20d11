package twconfig

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// CheckConfig holds checking configuration
type CheckConfig struct {
	Filename         string   // Descriptor path shown in issue positions
	Source           []byte   // Descriptor source, used to locate issues; may be nil
	Unknown          []string // Unrecognised keys returned by LoadFile or Unmarshal
	Root             string   // When set, globs are expanded and empty ones reported
	RespectGitignore bool     // Apply Root/.gitignore while expanding

	MaxIssues     int // 0 = unlimited (default)
	MaxSameIssues int // 0 = unlimited (default)
}

// CheckResult contains the checker's findings
type CheckResult struct {
	Issues          []Issue
	ErrorCount      int
	WarningCount    int
	PatternsChecked int
	FilesMatched    int         // Files left after filtering; 0 unless Root is set
	Content         *ContentSet // nil unless Root is set and every glob is valid
	TruncatedCount  int         // Issues removed due to limits
}

// Check lints a descriptor. Findings are returned as issues; the error is
// reserved for failures while expanding globs.
func Check(d Descriptor, config CheckConfig) (*CheckResult, error) {
	c := &checker{
		config: config,
		lines:  splitLines(config.Source),
		result: &CheckResult{},
	}

	globs := d.ContentGlobs()
	c.result.PatternsChecked = len(globs)

	// Step 1: Content globs
	if len(globs) == 0 {
		c.add(RuleNoContent, SeverityError, IssueNoContent, KeyContent, false)
	}

	valid := true
	// Line of the latest occurrence of each glob, so duplicates point at themselves
	seen := make(map[string]int, len(globs))
	for i, glob := range globs {
		prev, dup := seen[glob]
		switch {
		case strings.TrimSpace(strings.TrimPrefix(glob, "!")) == "":
			valid = false
			c.add(RuleEmptyPattern, SeverityError, fmt.Sprintf(IssueEmptyPattern, i), KeyContent, false)
		case !utf8.ValidString(glob):
			valid = false
			c.add(RuleInvalidPattern, SeverityError, fmt.Sprintf(IssueInvalidEncoding, i), KeyContent, false)
		case !doublestar.ValidatePattern(filepath.ToSlash(strings.TrimPrefix(glob, "!"))):
			valid = false
			c.add(RuleInvalidPattern, SeverityError, fmt.Sprintf(IssueInvalidPattern, glob), glob, true)
		case dup:
			if prev == 0 {
				prev, _ = locate(c.lines, glob, true)
			}
			seen[glob] = c.addAfter(RuleDuplicatePattern, SeverityWarning, fmt.Sprintf(IssueDuplicatePattern, glob), glob, true, prev)
			continue
		}
		if !dup {
			seen[glob] = 0
		}
	}

	// Step 2: Unknown keys
	for _, key := range config.Unknown {
		c.add(RuleUnknownKey, SeverityWarning, fmt.Sprintf(IssueUnknownKey, key), lastSegment(key), false)
	}

	// Step 3: Plugins
	for i, p := range d.Plugins() {
		if strings.TrimSpace(p.Module) == "" {
			c.add(RulePluginModule, SeverityError, fmt.Sprintf(IssuePluginModule, i), KeyPlugins, false)
		}
	}

	// Step 4: Expand globs against the project
	if config.Root != "" && valid {
		set, err := Resolve(d, ResolveConfig{Root: config.Root, RespectGitignore: config.RespectGitignore})
		if err != nil {
			return nil, fmt.Errorf("resolve content: %w", err)
		}
		c.result.Content = set
		c.result.FilesMatched = set.Stats.FilesKept

		for _, pm := range set.Patterns {
			if !pm.Negated && pm.Matches == 0 {
				c.add(RuleNoMatches, SeverityWarning, fmt.Sprintf(IssueNoMatches, pm.Pattern), pm.Pattern, true)
			}
		}
	}

	// Step 5: Apply issue limiting if configured
	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		c.result.Issues, c.result.TruncatedCount = limitIssues(c.result.Issues, config)
	}

	return c.result, nil
}

type checker struct {
	config CheckConfig
	lines  []string
	result *CheckResult
}

// add records an issue positioned at the first occurrence of anchor in the
// source. quoted anchors are searched as string literals first.
func (c *checker) add(rule, severity, text, anchor string, quoted bool) {
	c.addAfter(rule, severity, text, anchor, quoted, 0)
}

// addAfter is add with the search starting below line after (1-based).
// When anchor does not occur below it, the whole source is searched.
// It returns the line the issue was placed on, or 0.
func (c *checker) addAfter(rule, severity, text, anchor string, quoted bool, after int) int {
	issue := Issue{
		FromLinter: LinterName,
		Rule:       rule,
		Text:       text,
		Severity:   severity,
		Pos:        IssuePos{Filename: c.config.Filename},
	}

	if after > len(c.lines) {
		after = len(c.lines)
	}
	line, col := locate(c.lines[after:], anchor, quoted)
	if line > 0 {
		line += after
	} else if after > 0 {
		line, col = locate(c.lines, anchor, quoted)
	}
	if line > 0 {
		issue.Pos.Line = line
		issue.Pos.Column = col
		issue.SourceLines = []string{c.lines[line-1]}
	}

	switch severity {
	case SeverityError:
		c.result.ErrorCount++
	case SeverityWarning:
		c.result.WarningCount++
	}
	c.result.Issues = append(c.result.Issues, issue)
	return issue.Pos.Line
}

// locate finds the 1-based line and column where anchor starts.
// Returns 0, 0 when the anchor cannot be found.
func locate(lines []string, anchor string, quoted bool) (int, int) {
	if anchor == "" {
		return 0, 0
	}

	if quoted {
		for _, q := range []string{`'`, `"`, "`"} {
			needle := q + anchor + q
			for i, line := range lines {
				if idx := strings.Index(line, needle); idx != -1 {
					return i + 1, idx + 2 // +1 for 1-based, +1 to skip quote
				}
			}
		}
		// YAML allows plain scalars
		for i, line := range lines {
			if idx := strings.Index(line, anchor); idx != -1 {
				return i + 1, idx + 1
			}
		}
	}

	for i, line := range lines {
		if col := findKeyColumn(line, anchor); col > 0 {
			return i + 1, col
		}
	}
	return 0, 0
}

// findKeyColumn locates anchor used as an object key ("content:", "content": or content =).
func findKeyColumn(line, key string) int {
	trimmed := strings.TrimLeft(line, " \t")
	offset := len(line) - len(trimmed)

	for _, prefix := range []string{key, `"` + key + `"`, `'` + key + `'`} {
		if strings.HasPrefix(trimmed, prefix) {
			rest := strings.TrimLeft(trimmed[len(prefix):], " \t")
			if strings.HasPrefix(rest, ":") {
				return offset + 1
			}
		}
	}
	return 0
}

func lastSegment(key string) string {
	if idx := strings.LastIndex(key, "."); idx != -1 {
		return key[idx+1:]
	}
	return key
}

func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	return strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-same-issues (deduplication by rule)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same rule appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	ruleCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if ruleCounts[issue.Rule] < maxSame {
			filtered = append(filtered, issue)
			ruleCounts[issue.Rule]++
		}
	}

	return filtered
}
