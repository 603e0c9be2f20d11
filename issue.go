package twconfig

// Issue represents a single descriptor finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twconfig"
	Rule        string   `json:"Rule"`        // "no-matches"
	Text        string   `json:"Text"`        // "content glob \"./src/**/*.js\" matches no files"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the descriptor with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "tailwind.config.js"
	Line     int    `json:"Line"`     // 0 when the issue has no source location
	Column   int    `json:"Column"`   // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName is reported as FromLinter on every issue.
const LinterName = "twconfig"

// Rule names
const (
	RuleNoContent        = "no-content"
	RuleEmptyPattern     = "empty-pattern"
	RuleInvalidPattern   = "invalid-pattern"
	RuleDuplicatePattern = "duplicate-pattern"
	RuleNoMatches        = "no-matches"
	RuleUnknownKey       = "unknown-key"
	RulePluginModule     = "plugin-module"
)

// Issue message formats
const (
	IssueNoContent        = "content is empty; the generator will scan no files"
	IssueEmptyPattern     = "content[%d] is an empty glob"
	IssueInvalidPattern   = "content glob %q is not a valid pattern"
	IssueInvalidEncoding  = "content[%d] is not valid UTF-8"
	IssueDuplicatePattern = "content glob %q is listed more than once"
	IssueNoMatches        = "content glob %q matches no files"
	IssueUnknownKey       = "key %q is not recognised and will be ignored"
	IssuePluginModule     = "plugins[%d] has an empty module specifier"
)
