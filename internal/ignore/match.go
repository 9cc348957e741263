package ignore

// ruleMatches reports whether pathSegments satisfy the rule. A rule matches a
// path exactly, or matches one of the path's ancestor directories, in which
// case everything inside that directory is covered as well. Directory-only
// rules never match a file exactly.
func ruleMatches(rule *Rule, pathSegments []string, isDir bool) bool {
	if len(pathSegments) == 0 || len(rule.segments) == 0 {
		return false
	}

	exactAllowed := !rule.dirOnly || isDir

	if rule.anchored {
		if exactAllowed && matchSegmentsExact(rule.segments, pathSegments) {
			return true
		}
		return matchSegmentsPrefix(rule.segments, pathSegments)
	}

	// Floating rules may match starting at any path segment.
	for start := range pathSegments {
		remainder := pathSegments[start:]
		if exactAllowed && matchSegmentsExact(rule.segments, remainder) {
			return true
		}
		if matchSegmentsPrefix(rule.segments, remainder) {
			return true
		}
	}
	return false
}

// matchSegmentsExact matches pattern segments against the entire path.
func matchSegmentsExact(pattern []segment, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}

	current := pattern[0]
	if current.doubleStar {
		// A trailing double star matches what lies inside the preceding
		// directory, never the directory itself.
		if len(pattern) == 1 {
			return len(path) > 0
		}
		// An interior double star consumes zero or more path segments.
		for skip := 0; skip <= len(path); skip++ {
			if matchSegmentsExact(pattern[1:], path[skip:]) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if !matchSingleSegment(current, path[0]) {
		return false
	}
	return matchSegmentsExact(pattern[1:], path[1:])
}

// matchSegmentsPrefix matches pattern segments against a strict prefix of the
// path, so that the remaining segments lie inside the matched directory.
func matchSegmentsPrefix(pattern []segment, path []string) bool {
	if len(pattern) == 0 {
		return len(path) > 0
	}

	current := pattern[0]
	if current.doubleStar {
		for skip := 0; skip <= len(path); skip++ {
			if matchSegmentsPrefix(pattern[1:], path[skip:]) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if !matchSingleSegment(current, path[0]) {
		return false
	}
	return matchSegmentsPrefix(pattern[1:], path[1:])
}

// matchSingleSegment matches one pattern segment against one path segment.
func matchSingleSegment(patternSegment segment, pathSegment string) bool {
	if patternSegment.doubleStar {
		return true
	}
	if !patternSegment.wildcard {
		return patternSegment.text == pathSegment
	}
	return matchGlob(patternSegment.text, pathSegment)
}

// matchGlob matches a glob pattern against a path segment. Supported syntax:
// * (zero or more characters), ? (exactly one character), [...] character
// classes with ranges and ! or ^ negation, and \ escapes.
func matchGlob(pattern, text string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for index := 0; index <= len(text); index++ {
				if matchGlob(pattern, text[index:]) {
					return true
				}
			}
			return false
		case '?':
			if len(text) == 0 {
				return false
			}
			pattern = pattern[1:]
			text = text[1:]
		case '[':
			if len(text) == 0 {
				return false
			}
			matched, remainder, wellFormed := matchCharacterClass(pattern, text[0])
			if !wellFormed {
				// An unterminated class is treated as a literal bracket.
				if text[0] != '[' {
					return false
				}
				pattern = pattern[1:]
				text = text[1:]
				continue
			}
			if !matched {
				return false
			}
			pattern = remainder
			text = text[1:]
		default:
			expected := pattern[0]
			if expected == '\\' && len(pattern) > 1 {
				pattern = pattern[1:]
				expected = pattern[0]
			}
			if len(text) == 0 || text[0] != expected {
				return false
			}
			pattern = pattern[1:]
			text = text[1:]
		}
	}
	return len(text) == 0
}

// matchCharacterClass evaluates a [...] class beginning at pattern[0] == '['.
// It returns whether target belongs to the class, the pattern remaining after
// the closing bracket, and whether the class was well formed.
func matchCharacterClass(pattern string, target byte) (matched bool, remainder string, wellFormed bool) {
	index := 1
	negated := false
	if index < len(pattern) && (pattern[index] == '!' || pattern[index] == '^') {
		negated = true
		index++
	}

	first := true
	for index < len(pattern) {
		if pattern[index] == ']' && !first {
			if negated {
				matched = !matched
			}
			return matched, pattern[index+1:], true
		}
		first = false

		if pattern[index] == '\\' && index+1 < len(pattern) {
			index++
		}
		low := pattern[index]
		index++

		if index+1 < len(pattern) && pattern[index] == '-' && pattern[index+1] != ']' {
			index++
			if pattern[index] == '\\' && index+1 < len(pattern) {
				index++
			}
			high := pattern[index]
			index++
			if target >= low && target <= high {
				matched = true
			}
			continue
		}

		if target == low {
			matched = true
		}
	}
	return false, "", false
}
