package ignore

import (
	"testing"
)

func TestMatchGlob(t *testing.T) {
	testCases := []struct {
		pattern  string
		text     string
		expected bool
	}{
		{"*", "anything", true},
		{"*.log", "debug.log", true},
		{"*.log", ".log", true},
		{"*.log", "debug.txt", false},
		{"foo*", "foobar", true},
		{"foo*bar", "foobar", true},
		{"foo*bar", "fooxbar", true},
		{"foo*bar", "fooxbaz", false},
		{"?", "a", true},
		{"?", "", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"[abc]", "b", true},
		{"[abc]", "d", false},
		{"[a-z]", "m", true},
		{"[a-z]", "M", false},
		{"[!a-z]", "M", true},
		{"[^a-z]", "m", false},
		{"[]]", "]", true},
		{"file[0-9].txt", "file5.txt", true},
		{"file[0-9].txt", "filex.txt", false},
		{"\\*", "*", true},
		{"\\*", "a", false},
		{"a[", "a[", true},
	}
	for _, testCase := range testCases {
		result := matchGlob(testCase.pattern, testCase.text)
		if result != testCase.expected {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", testCase.pattern, testCase.text, result, testCase.expected)
		}
	}
}

func TestPatternSetMatches(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		path     string
		isDir    bool
		expected bool
	}{
		{name: "empty_set_matches_nothing", lines: nil, path: "main.go", expected: false},
		{name: "simple_glob", lines: []string{"*.log"}, path: "debug.log", expected: true},
		{name: "glob_at_depth", lines: []string{"*.log"}, path: "logs/today/debug.log", expected: true},
		{name: "non_matching", lines: []string{"*.log"}, path: "main.go", expected: false},
		{name: "anchored_root_only", lines: []string{"/todo.txt"}, path: "todo.txt", expected: true},
		{name: "anchored_not_nested", lines: []string{"/todo.txt"}, path: "docs/todo.txt", expected: false},
		{name: "interior_slash_anchors", lines: []string{"docs/*.md"}, path: "docs/guide.md", expected: true},
		{name: "interior_slash_not_nested", lines: []string{"docs/*.md"}, path: "sub/docs/guide.md", expected: false},
		{name: "directory_rule_matches_dir", lines: []string{"build/"}, path: "build", isDir: true, expected: true},
		{name: "directory_rule_skips_file_of_same_name", lines: []string{"build/"}, path: "build", isDir: false, expected: false},
		{name: "directory_rule_matches_contents", lines: []string{"build/"}, path: "build/out/app.bin", expected: true},
		{name: "plain_rule_matches_dir_contents", lines: []string{"node_modules"}, path: "node_modules/pkg/index.js", expected: true},
		{name: "double_star_spans_segments", lines: []string{"**/generated/*.go"}, path: "a/b/generated/code.go", expected: true},
		{name: "double_star_middle", lines: []string{"src/**/testdata"}, path: "src/pkg/inner/testdata", expected: true},
		{name: "double_star_zero_segments", lines: []string{"src/**/testdata"}, path: "src/testdata", expected: true},
		{name: "trailing_double_star_matches_contents", lines: []string{"a/**"}, path: "a/b", expected: true},
		{name: "trailing_double_star_matches_deep_contents", lines: []string{"a/**"}, path: "a/b/c.txt", expected: true},
		{name: "trailing_double_star_skips_directory_itself", lines: []string{"a/**"}, path: "a", isDir: true, expected: false},
		{name: "question_wildcard", lines: []string{"file?.txt"}, path: "file1.txt", expected: true},
		{name: "character_class", lines: []string{"log[0-9].txt"}, path: "log7.txt", expected: true},
		{name: "comment_and_blank_ignored", lines: []string{"", "# comment", "*.tmp"}, path: "cache.tmp", expected: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			patternSet := Compile(testCase.lines)
			result := patternSet.Matches(testCase.path, testCase.isDir)
			if result != testCase.expected {
				t.Fatalf("Matches(%q, %v) = %v, want %v", testCase.path, testCase.isDir, result, testCase.expected)
			}
		})
	}
}

func TestPatternSetLastMatchWins(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		path     string
		expected bool
	}{
		{name: "negation_reincludes", lines: []string{"*.log", "!keep.log"}, path: "keep.log", expected: false},
		{name: "negation_leaves_others_excluded", lines: []string{"*.log", "!keep.log"}, path: "other.log", expected: true},
		{name: "later_exclusion_overrides_negation", lines: []string{"*.log", "!keep.log", "keep.*"}, path: "keep.log", expected: true},
		{name: "negation_before_exclusion_is_inert", lines: []string{"!keep.log", "*.log"}, path: "keep.log", expected: true},
		{name: "negation_without_prior_match", lines: []string{"!keep.log"}, path: "keep.log", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			patternSet := Compile(testCase.lines)
			result := patternSet.Matches(testCase.path, false)
			if result != testCase.expected {
				t.Fatalf("Matches(%q) = %v, want %v", testCase.path, result, testCase.expected)
			}
		})
	}
}

// Without negation rules, exclusion must be equivalent to "any rule matches".
func TestPatternSetMonotonicExclusion(t *testing.T) {
	lines := []string{"*.log", "build/", "docs/*.md", "**/testdata"}
	patternSet := Compile(lines)

	paths := []string{"a.log", "build/x", "docs/guide.md", "pkg/testdata", "main.go", "docs/guide.txt"}
	for _, path := range paths {
		anyRuleMatches := false
		for _, line := range lines {
			if Compile([]string{line}).Matches(path, false) {
				anyRuleMatches = true
				break
			}
		}
		combined := patternSet.Matches(path, false)
		if combined != anyRuleMatches {
			t.Errorf("path %q: combined=%v, any-single=%v", path, combined, anyRuleMatches)
		}
	}
}

func TestPatternSetNormalizesPaths(t *testing.T) {
	patternSet := Compile([]string{"*.log"})
	if !patternSet.Matches("./logs//debug.log", false) {
		t.Fatal("expected dot-prefixed path with doubled slashes to match")
	}
	if patternSet.Matches("", false) {
		t.Fatal("expected empty path to never match")
	}
}

func TestPatternSetHasNegations(t *testing.T) {
	if Compile([]string{"*.log", "build/"}).HasNegations() {
		t.Fatal("expected no negations in a purely excluding set")
	}
	if !Compile([]string{"*.log", "!keep.log"}).HasNegations() {
		t.Fatal("expected negation to be reported")
	}
	if Compile(nil).HasNegations() {
		t.Fatal("expected empty set to report no negations")
	}
}

func TestPatternSetLen(t *testing.T) {
	patternSet := Compile([]string{"# comment", "", "*.log", "!keep.log"})
	if patternSet.Len() != 2 {
		t.Fatalf("expected 2 compiled rules, got %d", patternSet.Len())
	}
}
