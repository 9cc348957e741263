package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chigwell/codebaselister/internal/output"
	"github.com/chigwell/codebaselister/internal/types"
)

func TestRenderListingResultRaw(t *testing.T) {
	result := types.ListingResult{
		OutputFilename: "listing_20240102_150405.txt",
		CharsCount:     1234,
		FileSize:       0.5,
		FilesCount:     7,
	}

	rendered := output.RenderListingResultRaw(result)

	expectedFragments := []string{
		"Output file: listing_20240102_150405.txt",
		"Files listed: 7",
		"Characters: 1234",
		"Size: 0.500000 MB",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(rendered, fragment) {
			t.Errorf("expected %q in output, got %q", fragment, rendered)
		}
	}
	if strings.Contains(rendered, "Tokens:") {
		t.Errorf("expected no token line without a count, got %q", rendered)
	}
}

func TestRenderListingResultRawIncludesTokens(t *testing.T) {
	result := types.ListingResult{
		OutputFilename: "listing.txt",
		Tokens:         42,
		Model:          "gpt-4o",
	}
	rendered := output.RenderListingResultRaw(result)
	if !strings.Contains(rendered, "Tokens: 42 (gpt-4o)") {
		t.Fatalf("expected token line, got %q", rendered)
	}
}

func TestRenderListingResultJSON(t *testing.T) {
	result := types.ListingResult{
		OutputFilename: "listing.txt",
		CharsCount:     5,
		FileSize:       0.000005,
		FilesCount:     1,
	}

	rendered, renderError := output.RenderListingResultJSON(result)
	if renderError != nil {
		t.Fatalf("RenderListingResultJSON error: %v", renderError)
	}

	var decoded map[string]any
	if decodeError := json.Unmarshal([]byte(rendered), &decoded); decodeError != nil {
		t.Fatalf("invalid JSON: %v", decodeError)
	}
	if decoded["output_filename"] != "listing.txt" {
		t.Errorf("output_filename = %v", decoded["output_filename"])
	}
	if decoded["chars_count"] != float64(5) {
		t.Errorf("chars_count = %v", decoded["chars_count"])
	}
	if decoded["files_count"] != float64(1) {
		t.Errorf("files_count = %v", decoded["files_count"])
	}
	if _, tokensPresent := decoded["tokens"]; tokensPresent {
		t.Error("tokens must be omitted when zero")
	}
}
