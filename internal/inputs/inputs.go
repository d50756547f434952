// Package inputs collects text lines from files or the interactive prompt.
package inputs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads one input per line from the provided file path.
// Leading and trailing whitespace is trimmed and blank lines are
// discarded.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("input file contains no text")
	}
	return lines, nil
}

// ReadLine reads a single trimmed line from r. Used when stdin is not
// a terminal and the Bubble Tea prompt cannot run.
func ReadLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
