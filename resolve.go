package twconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/yacobolo/twconfig/internal/logging"
)

// ResolveConfig controls how content globs are expanded.
type ResolveConfig struct {
	Root             string // Project root the globs are relative to (default ".")
	RespectGitignore bool   // Skip files matched by Root/.gitignore
}

// PatternMatch records how many files a single glob matched.
type PatternMatch struct {
	Pattern string
	Negated bool // Pattern started with "!" and excludes files
	Matches int  // Files matched before exclusion and gitignore filtering
}

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Unique files matched by positive globs
	FilesKept       int // Files left after filtering
	FilesSkipped    int // Files removed by negated globs or .gitignore
}

// ContentSet is the result of expanding a descriptor's content globs.
type ContentSet struct {
	Files    []string // Slash-separated paths relative to Root, in first-match order
	Patterns []PatternMatch
	Stats    ScanStats
}

// Resolve expands the descriptor's content globs against the file system.
// Directories are never returned and each file appears once.
func Resolve(d Descriptor, config ResolveConfig) (*ContentSet, error) {
	root := config.Root
	if root == "" {
		root = "."
	}

	var gi *ignore.GitIgnore
	if config.RespectGitignore {
		gi = loadGitIgnore(root)
	}

	log := logging.WithComponent("resolve")
	set := &ContentSet{}
	var ordered []string
	seen := make(map[string]bool)
	excluded := make(map[string]bool)

	for _, pattern := range d.ContentGlobs() {
		negated := strings.HasPrefix(pattern, "!")
		matches, err := expandGlob(root, strings.TrimPrefix(pattern, "!"))
		if err != nil {
			return nil, err
		}
		log.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded")
		set.Patterns = append(set.Patterns, PatternMatch{
			Pattern: pattern,
			Negated: negated,
			Matches: len(matches),
		})

		for _, match := range matches {
			if negated {
				excluded[match] = true
				continue
			}
			if !seen[match] {
				seen[match] = true
				ordered = append(ordered, match)
			}
		}
	}

	set.Stats.FilesDiscovered = len(ordered)
	set.Files = make([]string, 0, len(ordered))
	for _, file := range ordered {
		if excluded[file] || (gi != nil && gi.MatchesPath(file)) {
			set.Stats.FilesSkipped++
			continue
		}
		set.Files = append(set.Files, file)
	}
	set.Stats.FilesKept = len(set.Files)

	return set, nil
}

// expandGlob returns the files matching pattern as slash paths relative to root.
func expandGlob(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	fullPattern := pattern
	if !filepath.IsAbs(pattern) {
		fullPattern = filepath.Join(root, filepath.FromSlash(pattern))
	}

	// Use doublestar for ** glob support
	matches, err := doublestar.FilepathGlob(fullPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, relativeTo(root, match))
	}
	return out, nil
}

// loadGitIgnore compiles root/.gitignore.
// A missing .gitignore is not an error; nil is returned.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// relativeTo returns path relative to root in slash form, or path unchanged
// when it lies outside root.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
