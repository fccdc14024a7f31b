package vowelsign

import (
	"sync"

	"github.com/npillmayer/indicnorm/script"
)

// merge is a Rule resolved to code points of one script.
type merge struct {
	first, second, result rune
	split                 bool
}

// Normalizer merges vowel sign renderings of one script.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	script script.Script
	merges []merge
}

// NewNormalizer creates a normalizer from an ordered list of rules.
func NewNormalizer(s script.Script, rules []Rule) *Normalizer {
	n := &Normalizer{script: s, merges: make([]merge, len(rules))}
	for i, r := range rules {
		n.merges[i] = merge{
			first:  s.Rune(r.First),
			second: s.Rune(r.Second),
			result: s.Rune(r.Result),
			split:  r.Split,
		}
	}
	return n
}

var normalizers = sync.OnceValue(func() map[string]*Normalizer {
	m := make(map[string]*Normalizer, len(script.Scripts))
	for _, s := range script.Scripts {
		m[s.ID] = NewNormalizer(s, rulesByScript[s.ID])
	}
	return m
})

// For returns the built-in normalizer for a script. Scripts without rules
// get a normalizer which returns text unchanged.
func For(s script.Script) *Normalizer {
	if n, ok := normalizers()[s.ID]; ok {
		return n
	}
	return NewNormalizer(s, nil)
}

// MergeVowelSigns normalizes text with the built-in rules for s.
func MergeVowelSigns(text string, s script.Script) string {
	return For(s).Normalize(text)
}

// Script returns the script the normalizer is configured for.
func (n *Normalizer) Script() script.Script {
	return n.script
}

// Normalize applies all rules in order, repeating until none matches.
// Unrecognized sequences pass through unchanged.
func (n *Normalizer) Normalize(text string) string {
	if len(n.merges) == 0 || text == "" {
		return text
	}
	in := []rune(text)
	total := 0
	for {
		changes := 0
		for _, m := range n.merges {
			var c int
			in, c = n.apply(m, in)
			changes += c
		}
		if changes == 0 {
			break
		}
		total += changes
	}
	if total == 0 {
		return text
	}
	tracer().Debugf("%s: %d vowel sign merges", n.script, total)
	return string(in)
}

// apply runs a single merge over the text. Every match shortens the text by
// one code point, so repeated application terminates.
func (n *Normalizer) apply(m merge, in []rune) ([]rune, int) {
	out := make([]rune, 0, len(in))
	changes := 0
	for i := 0; i < len(in); i++ {
		if in[i] == m.first {
			if !m.split && i+1 < len(in) && in[i+1] == m.second {
				out = append(out, m.result)
				i++
				changes++
				continue
			}
			if m.split && i+2 < len(in) && in[i+2] == m.second &&
				n.script.IsConsonant(in[i+1]) && n.orphaned(in, i) {
				out = append(out, in[i+1], m.result)
				i += 2
				changes++
				continue
			}
		}
		out = append(out, in[i])
	}
	if changes == 0 {
		return in, 0
	}
	return out, changes
}

// orphaned is true if the sign at position i does not follow a consonant
// or a nukta.
func (n *Normalizer) orphaned(in []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := in[i-1]
	return !n.script.IsConsonant(prev) && prev != n.script.Rune(script.SignNukta)
}
