// Package types defines cross-package data structures used by the codebaselister CLI.
package types

const (
	// FormatRaw renders the run summary as human-readable text.
	FormatRaw = "raw"
	// FormatJSON renders the run summary as a JSON document.
	FormatJSON = "json"
)

// FileEntry describes one file discovered during traversal. The relative path
// uses forward slashes and is the form written to the listing header; the
// absolute path is used for reading content.
type FileEntry struct {
	RelativePath string
	AbsolutePath string
}

// ListingResult captures aggregate metadata about a generated listing artifact.
type ListingResult struct {
	OutputFilename string  `json:"output_filename"`
	CharsCount     int     `json:"chars_count"`
	FileSize       float64 `json:"file_size"`
	FilesCount     int     `json:"files_count"`
	Tokens         int     `json:"tokens,omitempty"`
	Model          string  `json:"model,omitempty"`
}
