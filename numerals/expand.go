package numerals

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/indicnorm/script"
)

// DefaultDigitThreshold is the maximum length of a plain digit run which is
// read as one number. Longer runs, e.g. phone numbers, are read digit by digit.
const DefaultDigitThreshold = 4

// Expander converts numbers of one language into words.
// An Expander is immutable and safe for concurrent use.
type Expander struct {
	lang       script.Language
	grammar    *Grammar
	threshold  int
	asHundreds func(int64) bool // language-specific tier override
	descending bool
	token      *regexp.Regexp
}

// Option configures an Expander.
type Option func(*Expander)

// WithDigitThreshold sets the maximum length of a comma-free digit run which
// is expanded as a number.
func WithDigitThreshold(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.threshold = n
		}
	}
}

// Languages whose spoken convention reads some thousands as hundreds,
// e.g. 1500 as "fifteen hundred".
var hundredsOverrides = map[string]func(int64) bool{
	"hin": elevenHundreds,
	"ben": elevenHundreds,
	"tel": elevenHundreds,
	"mar": hundredsWithinThousands,
}

// Languages composing numbers in descending order of magnitude.
var descendingLanguages = map[string]bool{
	"san": true,
}

// elevenHundreds covers 1001–1999.
func elevenHundreds(n int64) bool {
	return n >= 1001 && n <= 1999
}

// hundredsWithinThousands covers x100–x999 for x in 1…9, i.e. thousands
// with a non-zero hundreds digit.
func hundredsWithinThousands(n int64) bool {
	return n >= 1100 && n <= 9999 && (n/100)%10 != 0
}

// NewExpander creates an expander for a language and its grammar.
// A nil grammar is treated as empty.
func NewExpander(lang script.Language, grammar *Grammar, opts ...Option) *Expander {
	if grammar == nil {
		grammar = EmptyGrammar(lang.Name)
	}
	e := &Expander{
		lang:       lang,
		grammar:    grammar,
		threshold:  DefaultDigitThreshold,
		asHundreds: hundredsOverrides[lang.Code3],
		descending: descendingLanguages[lang.Code3],
		token:      tokenPattern(lang.Script),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Language returns the language of the expander.
func (e *Expander) Language() script.Language {
	return e.lang
}

// Grammar returns the expander's grammar.
func (e *Expander) Grammar() *Grammar {
	return e.grammar
}

// Expand returns the spoken form of n, words separated by spaces.
//
// If the grammar lacks the entries needed for n, digits are read one by one;
// if even those are missing, the decimal numeral is returned.
func (e *Expander) Expand(n int64) string {
	if n < 0 {
		minus := e.lexeme(minusKey, "-")
		if n == math.MinInt64 {
			digits := strconv.FormatInt(n, 10)[1:]
			return join(minus, e.readDigitsOr(digits))
		}
		return join(minus, e.Expand(-n))
	}
	if n == 0 {
		return e.lexeme(literal(0).String(), "0")
	}
	if words := e.expand(n); words != "" {
		return words
	}
	return strconv.FormatInt(n, 10)
}

// expand returns "" for 0 and whenever the grammar cannot produce n.
func (e *Expander) expand(n int64) string {
	if n <= 0 {
		return ""
	}
	if words, ok := e.grammar.lookup(literal(n)); ok {
		return strings.TrimSpace(words)
	}
	var words string
	if e.descending {
		words = e.expandDescending(n)
	} else {
		t := e.selectTier(n)
		words = e.expandAtTier(n, t)
		if words == "" {
			tracer().Debugf("%s: no pattern for %d at tier %s", e.lang, n, t)
		}
	}
	if words == "" {
		words = e.readDigits(strconv.FormatInt(n, 10))
	}
	return words
}

func (e *Expander) selectTier(n int64) tier {
	switch {
	case n <= 99:
		return tens
	case n <= 999:
		return hundreds
	case e.asHundreds != nil && e.asHundreds(n):
		return hundreds
	case n <= 99999:
		return thousands
	case n <= 9999999:
		return lakhs
	}
	return crores // larger quotients recurse
}

// expandAtTier tries the three lookup strategies in order: irregular
// compound, round number, generic template. It returns "" if none applies.
func (e *Expander) expandAtTier(n int64, t tier) string {
	q, r := n/t.divisor(), n%t.divisor()
	doSandhi := t == tens
	s := e.lang.Script
	if word, ok := e.grammar.lookup(compound(q, t)); ok {
		rest := e.expand(r)
		if r != 0 && rest == "" {
			return ""
		}
		return joinSandhi(s, word, rest, doSandhi)
	}
	if r == 0 {
		if word, ok := e.grammar.lookup(round(t)); ok {
			head := e.expand(q)
			if head == "" {
				return ""
			}
			return joinSandhi(s, head, word, true)
		}
	}
	if word, ok := e.grammar.lookup(template(t)); ok {
		head, rest := e.expand(q), e.expand(r)
		if head == "" || (r != 0 && rest == "") {
			return ""
		}
		return joinSandhi(s, joinSandhi(s, head, word, true), rest, doSandhi)
	}
	return ""
}

// readDigits reads a string of ASCII digits one by one. It returns "" if a
// digit has no entry.
func (e *Expander) readDigits(digits string) string {
	words := make([]string, 0, len(digits))
	for _, d := range digits {
		word, ok := e.grammar.Lookup(string(d))
		if !ok || strings.TrimSpace(word) == "" {
			return ""
		}
		words = append(words, word)
	}
	return join(words...)
}

func (e *Expander) readDigitsOr(digits string) string {
	if words := e.readDigits(digits); words != "" {
		return words
	}
	return digits
}

func (e *Expander) lexeme(key, fallback string) string {
	if word, ok := e.grammar.Lookup(key); ok && strings.TrimSpace(word) != "" {
		return strings.TrimSpace(word)
	}
	return fallback
}
