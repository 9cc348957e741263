package ignore

import (
	"bufio"
	"fmt"
	"os"
)

// LoadPatternLines reads an ignore-rule source file and returns its raw lines.
// A missing file is not an error; it simply yields no lines.
//
// #nosec G304
func LoadPatternLines(path string) ([]string, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		if os.IsNotExist(openError) {
			return nil, nil
		}
		return nil, openError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", path, closeError)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return lines, nil
}

// CompileFile loads the ignore-rule source at path and compiles it. A missing
// file yields the empty, always-inclusive PatternSet.
func CompileFile(path string) (*PatternSet, error) {
	lines, loadError := LoadPatternLines(path)
	if loadError != nil {
		return nil, loadError
	}
	return Compile(lines), nil
}
