// Package pathfilter compiles exclusion patterns into a path matcher.
//
// Patterns are RE2 regular expressions matched anywhere in the path, so a
// plain ".txt" behaves like a substring test. A pattern prefixed with "glob:"
// is a shell glob instead: "*" and "?" stay within one path segment, "**"
// crosses segments, and the glob must match a trailing run of whole segments.
//
// Paths are always matched in forward-slash form.
package pathfilter

import (
	"fmt"
	"regexp"
	"strings"
)

// GlobPrefix marks a pattern as a shell glob rather than a regular expression.
const GlobPrefix = "glob:"

// PathFilter excludes paths matching any of its patterns.
type PathFilter struct {
	patterns []string
	compiled []*regexp.Regexp
}

// New compiles patterns into a PathFilter. A nil or empty list excludes nothing.
func New(patterns []string) (*PathFilter, error) {
	pf := &PathFilter{
		patterns: append([]string(nil), patterns...),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for i, pattern := range patterns {
		expr := pattern
		if glob, ok := strings.CutPrefix(pattern, GlobPrefix); ok {
			expr = globToRegexp(glob)
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &PatternCompileError{Pattern: pattern, Index: i, Err: err}
		}
		pf.compiled = append(pf.compiled, re)
	}

	return pf, nil
}

// globToRegexp converts a glob pattern to an expression anchored at a segment boundary.
func globToRegexp(pattern string) string {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return "(^|/)" + regexPattern + "$"
}

// IsExcluded reports whether path matches any pattern.
func (pf *PathFilter) IsExcluded(path string) bool {
	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	for _, re := range pf.compiled {
		if re.MatchString(normalizedPath) {
			return true
		}
	}
	return false
}

// IsDirExcluded reports whether a directory and everything below it is excluded.
// The directory is tested both bare and with a trailing slash so that globs
// like "build/**" prune the whole subtree.
func (pf *PathFilter) IsDirExcluded(path string) bool {
	normalizedPath := strings.TrimSuffix(strings.ReplaceAll(path, "\\", "/"), "/")
	return pf.IsExcluded(normalizedPath) || pf.IsExcluded(normalizedPath+"/")
}

// Patterns returns the patterns the filter was built from.
func (pf *PathFilter) Patterns() []string {
	return append([]string(nil), pf.patterns...)
}

// Len returns the number of patterns.
func (pf *PathFilter) Len() int {
	return len(pf.compiled)
}

// PatternCompileError reports an exclusion pattern that is not a valid expression.
type PatternCompileError struct {
	Pattern string
	Index   int
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid exclusion pattern #%d %q: %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}
