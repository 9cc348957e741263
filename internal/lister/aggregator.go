package lister

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/chigwell/codebaselister/internal/types"
)

const (
	// entryHeaderFormat introduces each file block with its path.
	entryHeaderFormat = "# %s:\n"
	// entrySeparator terminates a block: the content's final line break plus
	// one blank line before the next header.
	entrySeparator = "\n\n"
	// readFailureFormat is the diagnostic body substituted for unreadable files.
	readFailureFormat = "Error reading file: %v"
)

// ReadFileFunc reads a file's raw bytes. Production code passes os.ReadFile;
// tests inject failures through it.
type ReadFileFunc func(path string) ([]byte, error)

// Aggregator formats discovered files into listing blocks on a destination
// stream while accumulating run statistics. Read failures never abort the
// run: the block body becomes a diagnostic string, and that string's length
// still counts toward the character total.
type Aggregator struct {
	destination io.Writer
	readFile    ReadFileFunc
	charsCount  int
	filesCount  int
}

// NewAggregator constructs an Aggregator writing to destination. A nil
// readFile defaults to reading from the local filesystem.
func NewAggregator(destination io.Writer, readFile ReadFileFunc) *Aggregator {
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &Aggregator{destination: destination, readFile: readFile}
}

// WriteEntry reads the entry's content and appends its formatted block to the
// destination. Every entry counts toward the file total, including failed
// reads.
func (aggregator *Aggregator) WriteEntry(entry types.FileEntry) error {
	var body string
	contentBytes, readError := aggregator.readFile(entry.AbsolutePath)
	if readError != nil {
		body = fmt.Sprintf(readFailureFormat, readError)
	} else {
		body = string(contentBytes)
	}

	aggregator.charsCount += utf8.RuneCountInString(body)
	aggregator.filesCount++

	if _, writeError := fmt.Fprintf(aggregator.destination, entryHeaderFormat, entry.RelativePath); writeError != nil {
		return fmt.Errorf("writing header for %s: %w", entry.RelativePath, writeError)
	}
	if _, writeError := io.WriteString(aggregator.destination, body+entrySeparator); writeError != nil {
		return fmt.Errorf("writing content for %s: %w", entry.RelativePath, writeError)
	}
	return nil
}

// CharsCount returns the accumulated character total across all block bodies,
// including diagnostic substitutions.
func (aggregator *Aggregator) CharsCount() int {
	return aggregator.charsCount
}

// FilesCount returns the number of entries written so far.
func (aggregator *Aggregator) FilesCount() int {
	return aggregator.filesCount
}
