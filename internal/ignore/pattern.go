package ignore

import (
	"strings"
)

// Rule is a single parsed gitignore-style pattern. Rules are evaluated in file
// order; the last rule that matches a path decides whether it is excluded.
type Rule struct {
	pattern  string
	segments []segment
	negated  bool
	dirOnly  bool
	anchored bool
}

// Pattern returns the original pattern text the rule was parsed from.
func (rule Rule) Pattern() string {
	return rule.pattern
}

// Negated reports whether a match against this rule re-includes the path.
func (rule Rule) Negated() bool {
	return rule.negated
}

// segment is one slash-delimited part of a pattern. A segment is either a
// literal, a glob requiring wildcard matching, or a double star spanning any
// number of path segments.
type segment struct {
	text       string
	wildcard   bool
	doubleStar bool
}

// parseRuleLine parses one line of gitignore syntax. It returns nil for blank
// lines, comment lines, and patterns that are empty after processing.
func parseRuleLine(line string) *Rule {
	line = trimTrailingWhitespace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	originalPattern := line

	negated := false
	if strings.HasPrefix(line, "\\!") {
		line = line[1:]
	} else if strings.HasPrefix(line, "!") {
		negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "\\#") {
		line = line[1:]
	}

	dirOnly := false
	if strings.HasSuffix(line, "/") {
		dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	// A leading slash anchors the pattern to the root. A slash anywhere else
	// in the pattern also anchors it, except for the floating "**/" prefix.
	anchored := false
	if strings.HasPrefix(line, "/") {
		anchored = true
		line = strings.TrimPrefix(line, "/")
	} else if strings.Contains(line, "/") && !strings.HasPrefix(line, "**/") {
		anchored = true
	}

	if line == "" {
		return nil
	}

	return &Rule{
		pattern:  originalPattern,
		segments: parseSegments(line),
		negated:  negated,
		dirOnly:  dirOnly,
		anchored: anchored,
	}
}

// parseSegments splits a pattern by "/" and classifies each part.
func parseSegments(pattern string) []segment {
	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if part == "**" {
			segments = append(segments, segment{doubleStar: true})
			continue
		}
		hasWildcard := strings.ContainsAny(part, "*?[\\")
		segments = append(segments, segment{text: part, wildcard: hasWildcard})
	}
	return segments
}

// trimTrailingWhitespace removes trailing spaces and tabs, honoring a
// backslash escape before the first trailing space.
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	backslashCount := 0
	for index := end - 1; index >= 0 && line[index] == '\\'; index-- {
		backslashCount++
	}
	if backslashCount%2 == 1 && line[end] == ' ' {
		return line[:end-1] + " "
	}
	return line[:end]
}
