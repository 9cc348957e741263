package tokenizer

import (
	"errors"
	"os"
)

// CountFile reads the artifact at path and estimates its token count.
func CountFile(counter Counter, path string) (int, error) {
	if counter == nil {
		return 0, errors.New("nil tokenizer counter")
	}
	data, readError := os.ReadFile(path)
	if readError != nil {
		return 0, readError
	}
	return counter.CountString(string(data))
}
