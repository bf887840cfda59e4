// Package inputfile reads rotation documents on behalf of the solver. The
// solver itself never performs file I/O; it receives the whole document as
// one in-memory string.
package inputfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Read returns the entire rotation document as a single string. Failures are
// wrapped with enough context for the operator to act on them; the caller is
// expected to treat any error as fatal for the run.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("input file %s not found (are you running from the right directory?): %w", path, err)
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("permission denied reading input file %s: %w", path, err)
	case err != nil:
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(data), nil
}
