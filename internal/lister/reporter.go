package lister

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chigwell/codebaselister/internal/ignore"
	"github.com/chigwell/codebaselister/internal/types"
	"github.com/chigwell/codebaselister/internal/utils"
)

const (
	errorResolveBasePathFormat = "failed to get absolute path for %s: %w"
	errorLoadGitignoreFormat   = "loading %s from %s: %w"
	errorCreateOutputFormat    = "creating output file %s: %w"
	errorFlushOutputFormat     = "flushing output file %s: %w"
	errorCloseOutputFormat     = "closing output file %s: %w"
	errorStatOutputFormat      = "stat failed for output file %s: %w"
)

// Options configures a single listing run.
type Options struct {
	// BasePath is the root of the tree to list. Empty means the working directory.
	BasePath string
	// UseGitignore loads <BasePath>/.gitignore as the ignore-rule source.
	UseGitignore bool
	// OutputFilename names the artifact. Empty selects a timestamp-derived name.
	OutputFilename string
	// ExclusionPatterns are extra gitignore-syntax rules appended after the
	// loaded ones, so they participate in last-match-wins ordering.
	ExclusionPatterns []string
	// ReadFile overrides the content read primitive. Nil means os.ReadFile.
	ReadFile ReadFileFunc
}

// GenerateListing drives the pipeline end to end: it compiles the ignore
// rules, walks the tree, streams every surviving file through the aggregator
// into the output artifact, and returns the run's metadata. An unwritable
// output destination is the only fatal failure; unreadable files and
// directories degrade to inline diagnostics and skipped subtrees.
func GenerateListing(options Options) (types.ListingResult, error) {
	basePath := options.BasePath
	if basePath == "" {
		basePath = "."
	}
	absoluteBasePath, absolutePathError := filepath.Abs(basePath)
	if absolutePathError != nil {
		return types.ListingResult{}, fmt.Errorf(errorResolveBasePathFormat, basePath, absolutePathError)
	}
	cleanedBasePath := filepath.Clean(absoluteBasePath)

	outputFilename := options.OutputFilename
	if outputFilename == "" {
		outputFilename = utils.DefaultListingFilename(time.Now())
	}
	absoluteOutputPath, outputPathError := filepath.Abs(outputFilename)
	if outputPathError != nil {
		return types.ListingResult{}, fmt.Errorf(errorResolveBasePathFormat, outputFilename, outputPathError)
	}

	patternSet, compileError := compilePatternSet(cleanedBasePath, options)
	if compileError != nil {
		return types.ListingResult{}, compileError
	}

	outputFile, createError := os.Create(absoluteOutputPath)
	if createError != nil {
		return types.ListingResult{}, fmt.Errorf(errorCreateOutputFormat, outputFilename, createError)
	}

	bufferedWriter := bufio.NewWriter(outputFile)
	aggregator := NewAggregator(bufferedWriter, options.ReadFile)
	walker := NewWalker(cleanedBasePath, patternSet, absoluteOutputPath)

	walkError := walker.Walk(func(entry types.FileEntry) error {
		return aggregator.WriteEntry(entry)
	})

	flushError := bufferedWriter.Flush()
	closeError := outputFile.Close()
	if walkError != nil {
		return types.ListingResult{}, walkError
	}
	if flushError != nil {
		return types.ListingResult{}, fmt.Errorf(errorFlushOutputFormat, outputFilename, flushError)
	}
	if closeError != nil {
		return types.ListingResult{}, fmt.Errorf(errorCloseOutputFormat, outputFilename, closeError)
	}

	outputInfo, statError := os.Stat(absoluteOutputPath)
	if statError != nil {
		return types.ListingResult{}, fmt.Errorf(errorStatOutputFormat, outputFilename, statError)
	}

	return types.ListingResult{
		OutputFilename: outputFilename,
		CharsCount:     aggregator.CharsCount(),
		FileSize:       utils.FileSizeMegabytes(outputInfo.Size()),
		FilesCount:     aggregator.FilesCount(),
	}, nil
}

// compilePatternSet loads the gitignore rules when enabled and appends the
// caller's exclusion patterns as additional rule lines.
func compilePatternSet(cleanedBasePath string, options Options) (*ignore.PatternSet, error) {
	var patternLines []string
	if options.UseGitignore {
		gitIgnorePath := filepath.Join(cleanedBasePath, utils.GitIgnoreFileName)
		loadedLines, loadError := ignore.LoadPatternLines(gitIgnorePath)
		if loadError != nil {
			return nil, fmt.Errorf(errorLoadGitignoreFormat, utils.GitIgnoreFileName, cleanedBasePath, loadError)
		}
		patternLines = append(patternLines, loadedLines...)
	}
	patternLines = append(patternLines, options.ExclusionPatterns...)
	return ignore.Compile(patternLines), nil
}
