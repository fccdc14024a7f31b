package numerals

import (
	"fmt"
	"io"
	"strconv"
)

// SandhiRule contracts the end of a spoken numeral with a following case
// suffix: if the expansion ends in Suffix and the word attached to the
// numeral starts with Prefix, Suffix is replaced by Replacement.
type SandhiRule struct {
	Suffix      string
	Prefix      string
	Replacement string
}

// EntryReader yields grammar entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (key string, value string, err error)
}

// Grammar is an immutable numeral table for one language.
type Grammar struct {
	entries    map[string]string
	sandhi     []SandhiRule
	Identifier string // Identifies the grammar
}

// LoadGrammar reads a grammar from a streaming source. Later duplicates of a
// key overwrite earlier ones.
func LoadGrammar(name string, reader EntryReader) (*Grammar, error) {
	entries := make(map[string]string)
	for {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("numeral grammar %s: %w", name, err)
		}
		entries[key] = value
	}
	g := newGrammar(name, entries)
	tracer().Infof("numeral grammar %s: %d entries, %d sandhi rules", name, len(g.entries), len(g.sandhi))
	return g, nil
}

// NewGrammar creates a grammar from an in-memory table. The map is copied.
func NewGrammar(name string, table map[string]string) *Grammar {
	entries := make(map[string]string, len(table))
	for k, v := range table {
		entries[k] = v
	}
	return newGrammar(name, entries)
}

// EmptyGrammar creates a grammar without entries. Expanding with it returns
// numerals unchanged.
func EmptyGrammar(name string) *Grammar {
	return newGrammar(name, map[string]string{})
}

func newGrammar(name string, entries map[string]string) *Grammar {
	return &Grammar{
		entries:    entries,
		sandhi:     collectSandhiRules(entries),
		Identifier: fmt.Sprintf("numerals: %s", name),
	}
}

// collectSandhiRules scans s1/p1/r1, s2/p2/r2, … until one of a triple is missing.
func collectSandhiRules(entries map[string]string) []SandhiRule {
	var rules []SandhiRule
	for i := 1; ; i++ {
		n := strconv.Itoa(i)
		suffix, ok1 := entries["s"+n]
		prefix, ok2 := entries["p"+n]
		replacement, ok3 := entries["r"+n]
		if !ok1 || !ok2 || !ok3 {
			return rules
		}
		if replacement == "delete" || replacement == "remove" {
			replacement = ""
		}
		rules = append(rules, SandhiRule{Suffix: suffix, Prefix: prefix, Replacement: replacement})
	}
}

// Lookup returns the value for a raw rule-table key.
func (g *Grammar) Lookup(key string) (string, bool) {
	if g == nil {
		return "", false
	}
	v, ok := g.entries[key]
	return v, ok
}

func (g *Grammar) lookup(k patternKey) (string, bool) {
	return g.Lookup(k.String())
}

// Len returns the number of entries, including sandhi keys.
func (g *Grammar) Len() int {
	if g == nil {
		return 0
	}
	return len(g.entries)
}

// SandhiRules returns the contraction rules in table order.
func (g *Grammar) SandhiRules() []SandhiRule {
	if g == nil {
		return nil
	}
	rules := make([]SandhiRule, len(g.sandhi))
	copy(rules, g.sandhi)
	return rules
}
