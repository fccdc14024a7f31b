package rules

import (
	"bufio"
	"io"
	"strings"
)

// ListReader streams synonym groups from a list table.
type ListReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewListReader creates a reader for a list table.
func NewListReader(reader io.Reader) *ListReader {
	return &ListReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next non-empty group of synonyms.
// It returns io.EOF when exhausted.
func (r *ListReader) Next() ([]string, error) {
	for r.scanner.Scan() {
		r.line++
		line, ok := cleanLine(r.scanner.Text(), r.line)
		if !ok {
			continue
		}
		group := make([]string, 0, 2)
		for _, item := range strings.Split(line, "\t") {
			if item = strings.TrimSpace(item); item != "" {
				group = append(group, item)
			}
		}
		if len(group) == 0 {
			continue
		}
		return group, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
