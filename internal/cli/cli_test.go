package cli

import (
	"testing"

	"github.com/chigwell/codebaselister/internal/config"
)

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestResolveListSettingsConfigurationAppliesWhenFlagsUnset(t *testing.T) {
	configurationPath := ""
	command := createListCommand(&configurationPath)

	options := listOptions{
		format:     "raw",
		tokenModel: defaultTokenizerModelName,
	}
	configuration := config.ListCommandConfiguration{
		Format:       "json",
		Output:       "listing.txt",
		Exclude:      []string{"vendor/"},
		UseGitignore: boolPointer(false),
		Clipboard:    boolPointer(true),
		Tokens:       config.TokenConfiguration{Enabled: boolPointer(true), Model: "custom"},
	}

	settings := resolveListSettings(command, options, configuration)

	if settings.format != "json" {
		t.Errorf("format = %q, want json", settings.format)
	}
	if settings.outputFilename != "listing.txt" {
		t.Errorf("outputFilename = %q, want listing.txt", settings.outputFilename)
	}
	if settings.useGitignore {
		t.Error("useGitignore = true, want configuration value false")
	}
	if !settings.copyEnabled {
		t.Error("copyEnabled = false, want configuration value true")
	}
	if !settings.tokensEnabled {
		t.Error("tokensEnabled = false, want configuration value true")
	}
	if settings.tokenModel != "custom" {
		t.Errorf("tokenModel = %q, want custom", settings.tokenModel)
	}
	if len(settings.exclusionPatterns) != 1 || settings.exclusionPatterns[0] != "vendor/" {
		t.Errorf("exclusionPatterns = %v, want [vendor/]", settings.exclusionPatterns)
	}
}

func TestResolveListSettingsExplicitFlagsWin(t *testing.T) {
	configurationPath := ""
	command := createListCommand(&configurationPath)
	if parseError := command.Flags().Parse([]string{
		"--format", "raw",
		"--output", "mine.txt",
		"--no-gitignore",
		"-e", "dist/",
	}); parseError != nil {
		t.Fatalf("parse flags: %v", parseError)
	}

	options := listOptions{
		outputFilename:    "mine.txt",
		disableGitignore:  true,
		exclusionPatterns: []string{"dist/"},
		format:            "raw",
		tokenModel:        defaultTokenizerModelName,
	}
	configuration := config.ListCommandConfiguration{
		Format:       "json",
		Output:       "listing.txt",
		Exclude:      []string{"vendor/"},
		UseGitignore: boolPointer(true),
	}

	settings := resolveListSettings(command, options, configuration)

	if settings.format != "raw" {
		t.Errorf("format = %q, want raw", settings.format)
	}
	if settings.outputFilename != "mine.txt" {
		t.Errorf("outputFilename = %q, want mine.txt", settings.outputFilename)
	}
	if settings.useGitignore {
		t.Error("useGitignore = true, explicit --no-gitignore must win")
	}
	// Configuration exclusions come first so command-line rules keep
	// last-match-wins priority.
	expectedPatterns := []string{"vendor/", "dist/"}
	if len(settings.exclusionPatterns) != len(expectedPatterns) {
		t.Fatalf("exclusionPatterns = %v, want %v", settings.exclusionPatterns, expectedPatterns)
	}
	for index, pattern := range expectedPatterns {
		if settings.exclusionPatterns[index] != pattern {
			t.Errorf("exclusionPatterns[%d] = %q, want %q", index, settings.exclusionPatterns[index], pattern)
		}
	}
}

func TestIsSupportedFormat(t *testing.T) {
	testCases := []struct {
		format   string
		expected bool
	}{
		{format: "raw", expected: true},
		{format: "json", expected: true},
		{format: "xml", expected: false},
		{format: "", expected: false},
	}
	for _, testCase := range testCases {
		if result := isSupportedFormat(testCase.format); result != testCase.expected {
			t.Errorf("isSupportedFormat(%q) = %v, want %v", testCase.format, result, testCase.expected)
		}
	}
}
