package abbrev

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// EntryReader yields rule entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (key string, value string, err error)
}

// lineReader is implemented by readers which know the current line.
type lineReader interface {
	Line() int
}

// Rule replaces matches of Pattern by Replacement.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Expander expands abbreviations of one language.
// An Expander is immutable and safe for concurrent use.
type Expander struct {
	rules      []Rule
	Identifier string // Identifies the rule table
}

// LoadExpander reads rules from a streaming source. Every key is compiled as
// a regular expression; an invalid one fails the whole table.
func LoadExpander(name string, reader EntryReader) (*Expander, error) {
	e := &Expander{Identifier: fmt.Sprintf("abbreviations: %s", name)}
	for {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("abbreviations %s: %w", name, err)
		}
		pattern, err := regexp.Compile(key)
		if err != nil {
			if lr, ok := reader.(lineReader); ok {
				return nil, fmt.Errorf("abbreviations %s: line %d: pattern %q: %w", name, lr.Line(), key, err)
			}
			return nil, fmt.Errorf("abbreviations %s: pattern %q: %w", name, key, err)
		}
		e.rules = append(e.rules, Rule{Pattern: pattern, Replacement: value})
	}
	tracer().Infof("abbreviations %s: %d rules", name, len(e.rules))
	return e, nil
}

// EmptyExpander creates an expander which returns text unchanged.
func EmptyExpander(name string) *Expander {
	return &Expander{Identifier: fmt.Sprintf("abbreviations: %s", name)}
}

// Len returns the number of rules.
func (e *Expander) Len() int {
	if e == nil {
		return 0
	}
	return len(e.rules)
}

// Expand applies all rules in order. Double spaces left by replacements are
// collapsed.
func (e *Expander) Expand(text string) string {
	if e.Len() == 0 {
		return text
	}
	for _, r := range e.rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return strings.ReplaceAll(text, "  ", " ")
}
