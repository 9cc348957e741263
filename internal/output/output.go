// Package output renders the listing run summary in the supported formats.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chigwell/codebaselister/internal/types"
	"github.com/chigwell/codebaselister/internal/utils"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	outputFileLabel = "Output file: "
	filesLabel      = "Files listed: "
	charactersLabel = "Characters: "
	sizeLabel       = "Size: "
	tokensLabel     = "Tokens: "

	megabytesFormat = "%.6f MB"
	tokensFormat    = "%d (%s)"
)

// RenderListingResultRaw returns the run summary as human-readable text.
func RenderListingResultRaw(result types.ListingResult) string {
	var buffer bytes.Buffer
	buffer.WriteString(outputFileLabel + result.OutputFilename + "\n")
	buffer.WriteString(filesLabel + fmt.Sprintf("%d", result.FilesCount) + "\n")
	buffer.WriteString(charactersLabel + fmt.Sprintf("%d", result.CharsCount) + "\n")
	buffer.WriteString(sizeLabel + fmt.Sprintf(megabytesFormat, result.FileSize))
	buffer.WriteString(" (" + utils.FormatFileSize(megabytesToBytes(result.FileSize)) + ")\n")
	if result.Tokens > 0 {
		buffer.WriteString(tokensLabel + fmt.Sprintf(tokensFormat, result.Tokens, result.Model) + "\n")
	}
	return buffer.String()
}

// RenderListingResultJSON marshals the run summary as an indented JSON document.
func RenderListingResultJSON(result types.ListingResult) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(result, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded), nil
}

func megabytesToBytes(megabytes float64) int64 {
	return int64(megabytes * 1024 * 1024)
}
