package rules

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const bom = "\uFEFF"

// Reader streams key/value entries from an entry table.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates an entry reader for a tab-separated table.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next entry as (key, value).
// It returns io.EOF when exhausted.
//
// Only the first TAB separates key from value; the value is taken verbatim
// apart from a trailing carriage return.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		line, ok := r.nextLine()
		if !ok {
			continue
		}
		key, value, found := strings.Cut(line, "\t")
		if !found || key == "" {
			return "", "", fmt.Errorf("line %d: expected key and value separated by TAB: %q", r.line, line)
		}
		return key, value, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

// nextLine prepares the current scanner line, reporting false for lines to skip.
func (r *Reader) nextLine() (string, bool) {
	r.line++
	return cleanLine(r.scanner.Text(), r.line)
}

func cleanLine(line string, lineno int) (string, bool) {
	if lineno == 1 {
		line = strings.TrimPrefix(line, bom)
	}
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}

