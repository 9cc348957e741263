// Package ignore implements gitignore-style pattern matching over an ordered
// rule list. Later rules override earlier ones, so a negated rule appearing
// after a broader exclusion re-includes the paths it matches.
package ignore

import (
	"path/filepath"
	"strings"
)

// PatternSet holds an ordered sequence of compiled ignore rules. The zero-rule
// set matches nothing, so every path is included.
type PatternSet struct {
	rules []Rule
}

// Compile parses raw gitignore pattern lines into a PatternSet. Blank lines
// and comment lines are dropped. Order is preserved because matching is
// last-match-wins.
func Compile(lines []string) *PatternSet {
	patternSet := &PatternSet{rules: make([]Rule, 0, len(lines))}
	for _, line := range lines {
		if rule := parseRuleLine(line); rule != nil {
			patternSet.rules = append(patternSet.rules, *rule)
		}
	}
	return patternSet
}

// Matches reports whether relativePath is excluded by the set. Every rule is
// evaluated in order and the last rule that matches decides the outcome; a
// negated final match means the path is included. Paths matching no rule are
// included. relativePath must be relative to the directory the rules were
// loaded from; isDir states whether it names a directory.
func (patternSet *PatternSet) Matches(relativePath string, isDir bool) bool {
	normalizedPath := normalizePath(relativePath)
	if normalizedPath == "" || normalizedPath == "." {
		return false
	}
	pathSegments := strings.Split(normalizedPath, "/")

	excluded := false
	for ruleIndex := range patternSet.rules {
		rule := &patternSet.rules[ruleIndex]
		if ruleMatches(rule, pathSegments, isDir) {
			excluded = !rule.negated
		}
	}
	return excluded
}

// HasNegations reports whether any compiled rule is negated. Callers that
// prune a matched directory must descend into it instead when negations are
// present, because a later negation can re-include a path inside it.
func (patternSet *PatternSet) HasNegations() bool {
	for _, rule := range patternSet.rules {
		if rule.Negated() {
			return true
		}
	}
	return false
}

// Len returns the number of compiled rules.
func (patternSet *PatternSet) Len() int {
	return len(patternSet.rules)
}

// normalizePath converts a candidate path to clean forward-slash relative
// form: separators unified, consecutive slashes collapsed, leading "./" and
// trailing "/" removed.
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return strings.TrimSuffix(path, "/")
}
