// Package reader is the file collaborator: it reads a path into an ordered
// list of raw lines for the decode entry point. Failures here are
// environment-level and fatal, never confused with a per-line decode error.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/ndjson/internal/errors"
)

// ReadLines reads the file at path and returns its lines with terminators
// intact; the splitter normalizes them later. An empty file yields an empty
// list, which decodes to an empty value stream.
func ReadLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewResourceError("file path is empty", errors.ErrInvalidFilePath)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewResourceError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewResourceError(
			fmt.Sprintf("failed to open file '%s'", path),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return readAll(file, path)
}

func readAll(r io.Reader, path string) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.NewResourceError(
				fmt.Sprintf("failed to read file '%s'", path),
				err,
			)
		}
	}
}
