package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/indicnorm/abbrev"
	"github.com/npillmayer/indicnorm/script"
)

// DefaultMaxLength is the default maximum sentence length in code points.
const DefaultMaxLength = 250

const (
	zwnj = '\u200C'
	zwj  = '\u200D'
)

// Paragraph is an ordered list of sentences.
type Paragraph []string

// lineBreak matches any Unicode line break sequence.
var lineBreak = regexp.MustCompile(`\r\n|[\n\v\f\r\x{85}\x{2028}\x{2029}]`)

// Segmenter splits text of one script into sentences.
// A Segmenter is immutable and safe for concurrent use.
type Segmenter struct {
	script   script.Script
	initials *abbrev.Set
	numbered *regexp.Regexp
	maxLen   int
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithMaxLength sets the maximum sentence length in code points.
// Values < 1 disable the length pass.
func WithMaxLength(n int) Option {
	return func(s *Segmenter) {
		s.maxLen = n
	}
}

// New creates a segmenter for a script. initials may be nil.
func New(s script.Script, initials *abbrev.Set, opts ...Option) *Segmenter {
	seg := &Segmenter{
		script:   s,
		initials: initials,
		numbered: numberedListPattern(s),
		maxLen:   DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(seg)
	}
	return seg
}

// numberedListPattern matches list markers "<digits>.<letter>" after
// whitespace, with the letter taken from the script's own alphabet.
func numberedListPattern(s script.Script) *regexp.Regexp {
	digits := "0-9"
	if s.DigitZero != '0' {
		digits += fmt.Sprintf(`\x{%04X}-\x{%04X}`, s.DigitZero, s.DigitNine)
	}
	var letters string
	switch {
	case s.IsBrahmic():
		letters = fmt.Sprintf(`\x{%04X}-\x{%04X}`, s.Rune(script.LetterA), s.Rune(script.LetterHA))
	case s.ID == script.Arab.ID:
		letters = `\x{0621}-\x{064A}`
	default:
		letters = `A-Za-z`
	}
	return regexp.MustCompile(fmt.Sprintf(`\s+([%s]+)(\.)([%s])`, digits, letters))
}

// MaxLength returns the configured maximum sentence length.
func (s *Segmenter) MaxLength() int {
	return s.maxLen
}

// ProcessNumberedLists starts a new line at every list marker, so that
// list items do not end up in the preceding sentence.
func (s *Segmenter) ProcessNumberedLists(text string) string {
	return s.numbered.ReplaceAllString(text, "\n${1}${2} ${3}")
}

// Split breaks text into paragraphs at line breaks and every paragraph into
// sentences of at most MaxLength code points. Blank paragraphs are dropped.
func (s *Segmenter) Split(text string) []Paragraph {
	return s.SplitBounded(text, s.maxLen)
}

// SplitBounded is Split with an explicit maximum sentence length.
func (s *Segmenter) SplitBounded(text string, maxLen int) []Paragraph {
	var paragraphs []Paragraph
	for _, p := range Paragraphs(text) {
		sentences := BoundLength(s.SplitSentences(p), maxLen)
		if len(sentences) == 0 {
			continue
		}
		paragraphs = append(paragraphs, Paragraph(sentences))
	}
	return paragraphs
}

// Paragraphs splits text at line breaks, dropping blank lines.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, p := range lineBreak.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// SplitSentences splits a single paragraph into sentences, without bounding
// their length.
func (s *Segmenter) SplitSentences(paragraph string) []string {
	return s.mergeInitials(s.candidates(paragraph))
}

func (s *Segmenter) isTerminator(r rune) bool {
	switch r {
	case '.', '?', '!':
		return true
	case 0:
		return false
	}
	return r == s.script.FullStop || r == s.script.DoubleFullStop
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '”', '’', 'ʼ', '\'':
		return true
	}
	return false
}

// candidates runs the boundary scan. Candidates of a single code point are
// dropped.
func (s *Segmenter) candidates(paragraph string) []string {
	var candidates []string
	add := func(rs []rune) {
		if sentence := strings.TrimSpace(string(rs)); utf8.RuneCountInString(sentence) > 1 {
			candidates = append(candidates, sentence)
		}
	}
	rs := []rune(paragraph)
	begin := 0
	for i, r := range rs {
		if !s.isTerminator(r) {
			continue
		}
		if r == '.' && i > 0 && s.script.IsDigit(rs[i-1]) {
			continue // decimal point
		}
		if r == '.' && i+1 < len(rs) && rs[i+1] == '.' {
			continue // ellipsis
		}
		if i+1 < len(rs) && isClosingQuote(rs[i+1]) {
			continue
		}
		add(rs[begin : i+1])
		begin = i + 1
	}
	add(rs[begin:])
	return candidates
}

// mergeInitials repairs false boundaries after initials and acronyms.
func (s *Segmenter) mergeInitials(candidates []string) []string {
	candidates = append([]string(nil), candidates...)
	var sentences []string
	for i, sentence := range candidates {
		words := strings.Fields(sentence)
		if len(words) == 0 {
			continue
		}
		last := words[len(words)-1]
		if utf8.RuneCountInString(last) <= 1 {
			sentences = append(sentences, sentence)
			continue
		}
		if strings.HasSuffix(last, ".") && i+1 < len(candidates) && s.initials.Contains(stripWord(last)) {
			candidates[i+1] = sentence + " " + candidates[i+1]
		} else if len(words) == 1 && len(sentences) > 0 {
			sentences[len(sentences)-1] += " " + sentence
		} else {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// stripWord removes the terminator, a trailing zero-width (non-)joiner and a
// leading parenthesis from the last word of a candidate.
func stripWord(word string) string {
	_, size := utf8.DecodeLastRuneInString(word)
	word = word[:len(word)-size]
	if r, size := utf8.DecodeLastRuneInString(word); r == zwnj || r == zwj {
		word = word[:len(word)-size]
	}
	return strings.TrimPrefix(word, "(")
}
