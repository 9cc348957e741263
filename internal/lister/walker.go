// Package lister walks a directory tree, filters entries through a compiled
// ignore PatternSet, and concatenates surviving file contents into a single
// listing artifact.
package lister

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chigwell/codebaselister/internal/ignore"
	"github.com/chigwell/codebaselister/internal/types"
	"github.com/chigwell/codebaselister/internal/utils"
)

const (
	// WarningAccessPathFormat reports a path that could not be accessed during traversal.
	WarningAccessPathFormat = "Warning: error accessing path %s: %v\n"
)

// Visitor receives each file entry that survives ignore filtering.
type Visitor func(types.FileEntry) error

// Walker traverses a directory tree and yields every regular file that is not
// excluded by the pattern set. Matched directories are pruned so their
// subtrees are never visited, unless the set carries negation rules, in which
// case the walker descends so a later negation can re-include inner files.
type Walker struct {
	rootPath           string
	patternSet         *ignore.PatternSet
	excludedOutputPath string
}

// NewWalker constructs a Walker rooted at the cleaned absolute rootPath.
// excludedOutputPath is the absolute path of the listing artifact; it is
// skipped even when it resides inside the walked tree.
func NewWalker(rootPath string, patternSet *ignore.PatternSet, excludedOutputPath string) *Walker {
	return &Walker{
		rootPath:           rootPath,
		patternSet:         patternSet,
		excludedOutputPath: excludedOutputPath,
	}
}

// Walk visits every surviving file under the root in lexical per-directory
// order, so repeated runs against an unchanged tree yield an identical
// sequence. Unreadable directories are reported to stderr and skipped;
// symbolic links are never followed.
func (walker *Walker) Walk(visitor Visitor) error {
	return filepath.WalkDir(walker.rootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, WarningAccessPathFormat, walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, walker.rootPath)
		if relativePath == "." {
			return nil
		}

		isDirectory := directoryEntry.IsDir()
		if walker.patternSet.Matches(relativePath, isDirectory) {
			// Pruning a matched directory is only safe when no negation rule
			// could re-include a path inside it.
			if isDirectory && !walker.patternSet.HasNegations() {
				return filepath.SkipDir
			}
			return nil
		}
		if isDirectory {
			return nil
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}
		// The ignore-rule source is a service file, never part of the listing.
		if directoryEntry.Name() == utils.GitIgnoreFileName {
			return nil
		}
		if walker.excludedOutputPath != "" && walkedPath == walker.excludedOutputPath {
			return nil
		}

		return visitor(types.FileEntry{RelativePath: relativePath, AbsolutePath: walkedPath})
	})
}
