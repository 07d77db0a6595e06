// Package roster reads nameplate rosters: plain UTF-8 text files with one
// name per line. Lines are trimmed and blank lines skipped; there is no
// quoting or escaping.
package roster

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/foldprint/foldprint/pkg/errors"
)

// Parse reads names from r, one per line, trimming surrounding whitespace
// and skipping blank lines. It returns EMPTY_ROSTER when nothing usable
// remains after filtering.
func Parse(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read names")
	}

	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyRoster, "no usable names after blank-line filtering")
	}

	return names, nil
}

// Load opens path and parses it with Parse. A missing file is reported
// with the FILE_NOT_FOUND code so callers can fail fast before rendering.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "names file %q not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open names file %q", path)
	}
	defer f.Close()

	return Parse(f)
}
