package numerals

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/indicnorm/script"
)

// expandDescending composes a number starting with its last two digits,
// followed by hundreds, thousands, lakhs, crores and arbudas:
//
//	125 => पञ्चविंशतिः शतम्   (twenty-five, hundred)
//
// Thousands with a non-zero hundreds digit are read as hundreds.
func (e *Expander) expandDescending(n int64) string {
	words := make([]string, 0, 6)
	add := func(w string) {
		if w != "" {
			words = append(words, w)
		}
	}
	add(e.descendingTens(n))
	asHundreds := hundredsWithinThousands(n)
	if n >= 100 {
		upper := int64(1000)
		if asHundreds {
			upper = 10000
		}
		add(e.descendingTier(n, upper, hundreds))
	}
	if n >= 1000 && !asHundreds {
		add(e.descendingTier(n, 100000, thousands))
	}
	if n >= 100000 {
		add(e.descendingTier(n, 10000000, lakhs))
	}
	if n >= 10000000 {
		add(e.descendingTier(n, 1000000000, crores))
	}
	if n >= 1000000000 {
		add(e.descendingArbudas(n))
	}
	return strings.Join(words, " ")
}

func (e *Expander) descendingTens(n int64) string {
	m := n % 100
	if m == 0 {
		return ""
	}
	if n >= 100 {
		if word, ok := e.grammar.lookup(adjunct(m)); ok {
			return strings.TrimSpace(word)
		}
	}
	word, _ := e.grammar.lookup(literal(m))
	return strings.TrimSpace(word)
}

// descendingTier reads the digits of n belonging to tier t, bounded by upper.
// Below upper the round form of the tier is used, above it the form that
// precedes a larger magnitude.
func (e *Expander) descendingTier(n, upper int64, t tier) string {
	m := (n % upper) / t.divisor()
	if m == 0 {
		return ""
	}
	key, suffixKey := literal(m*t.divisor()), round(t)
	if n >= upper {
		key, suffixKey = compound(m, t), template(t)
	}
	if word, ok := e.grammar.lookup(key); ok {
		return strings.TrimSpace(word)
	}
	stem, ok1 := e.grammar.lookup(literal(m))
	suffix, ok2 := e.grammar.lookup(suffixKey)
	if !ok1 || !ok2 {
		return ""
	}
	return trimVisarga(e.lang.Script, strings.TrimSpace(stem)) + strings.TrimSpace(suffix)
}

func (e *Expander) descendingArbudas(n int64) string {
	q := n / tierDivisors[arbudas]
	if word, ok := e.grammar.lookup(literal(q * tierDivisors[arbudas])); ok {
		return strings.TrimSpace(word)
	}
	word, ok := e.grammar.lookup(round(arbudas))
	head := e.expand(q)
	if !ok || head == "" {
		return ""
	}
	return join(head, word)
}

// trimVisarga drops a final visarga from a stem which is compounded.
func trimVisarga(s script.Script, word string) string {
	last, size := utf8.DecodeLastRuneInString(word)
	if s.IsBrahmic() && last == s.Rune(script.SignVisarga) {
		return word[:len(word)-size]
	}
	return word
}
