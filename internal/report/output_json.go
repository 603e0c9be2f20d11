package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string         `json:"version"`
	Timestamp  string         `json:"timestamp"`
	File       string         `json:"file"`
	Summary    JSONSummary    `json:"summary"`
	Descriptor map[string]any `json:"descriptor"`
	Content    []JSONPattern  `json:"content,omitempty"`
	Issues     []JSONIssue    `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Truncated       int `json:"truncated"`
	PatternsChecked int `json:"patterns_checked"`
	FilesMatched    int `json:"files_matched"`
}

// JSONPattern reports the matches of one content glob
type JSONPattern struct {
	Pattern string `json:"pattern"`
	Negated bool   `json:"negated,omitempty"`
	Matches int    `json:"matches"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the check report as JSON
func WriteJSON(w io.Writer, rep Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(rep))
}

// buildJSONOutput converts a Report to JSONOutput
func buildJSONOutput(rep Report) JSONOutput {
	result := rep.Result

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Rule:     issue.Rule,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	var content []JSONPattern
	if result.Content != nil {
		content = make([]JSONPattern, len(result.Content.Patterns))
		for i, pm := range result.Content.Patterns {
			content[i] = JSONPattern{Pattern: pm.Pattern, Negated: pm.Negated, Matches: pm.Matches}
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		File:      rep.Filename,
		Summary: JSONSummary{
			TotalIssues:     len(result.Issues),
			Errors:          result.ErrorCount,
			Warnings:        result.WarningCount,
			Truncated:       result.TruncatedCount,
			PatternsChecked: result.PatternsChecked,
			FilesMatched:    result.FilesMatched,
		},
		Descriptor: rep.Descriptor.Record(),
		Content:    content,
		Issues:     issues,
	}
}
