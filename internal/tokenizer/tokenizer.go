// Package tokenizer estimates token counts for generated listing artifacts.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

// NewCounter returns a Counter for the requested model along with the name
// actually selected. Unknown models fall back to the default encoding.
func NewCounter(model string) (Counter, string, error) {
	selectedModel := strings.ToLower(strings.TrimSpace(model))
	if selectedModel == "" {
		selectedModel = defaultModel
	}

	encoding, encodingError := tiktoken.EncodingForModel(selectedModel)
	if encodingError == nil && encoding != nil {
		return openAICounter{encoding: encoding, name: selectedModel}, selectedModel, nil
	}

	fallback, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return openAICounter{encoding: fallback, name: defaultEncodingName}, defaultEncodingName, nil
}
