package numerals

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/npillmayer/indicnorm/script"
)

// indianGrouping matches comma grouping in the #,##,##,### convention.
var indianGrouping = regexp.MustCompile(`^[0-9]{1,2}(,[0-9]{2})*,[0-9]{3}$`)

// tokenPattern creates the numeral token pattern for a script. It matches
// an optional sign followed by a run of digits, commas, periods and dashes
// which starts and ends with a digit.
func tokenPattern(s script.Script) *regexp.Regexp {
	digits := "0-9"
	if s.DigitZero != '0' {
		digits += fmt.Sprintf(`\x{%04X}-\x{%04X}`, s.DigitZero, s.DigitNine)
	}
	return regexp.MustCompile(fmt.Sprintf(`-?[%[1]s](?:[%[1]s,.\-]*[%[1]s])?`, digits))
}

// ExpandNumbers replaces every numeral in text by its spoken form. Text
// between numerals is copied unchanged.
//
// With retain set, numerals are kept for validation: each one is replaced
// by "{numeral}{expansion}". RemoveNumeralsAndBrackets undoes this.
//
// If the expander's grammar is empty, text is returned unchanged.
func (e *Expander) ExpandNumbers(text string, retain bool) string {
	if e.grammar.Len() == 0 {
		return text
	}
	matches := e.token.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if text[start] == '-' && e.isWordInternal(text[:start]) {
			start++ // a hyphen, not a sign
		}
		b.WriteString(text[last:start])
		numeral := text[start:end]
		spoken := e.expandToken(numeral)
		last = end
		if next := attachedWord(text[end:]); next != "" {
			spoken, _ = e.contract(spoken, next)
		} else if suffix := detachedSuffix(text[end:]); suffix != "" {
			var ok bool
			if spoken, ok = e.contractSuffix(spoken, suffix); ok && !retain {
				last++ // join the suffix to the numeral
			}
		}
		if retain {
			b.WriteString("{" + numeral + "}{" + spoken + "}")
		} else {
			b.WriteString(spoken)
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

// isWordInternal is true if the text preceding a dash ends in a letter,
// mark or digit.
func (e *Expander) isWordInternal(before string) bool {
	if before == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(before)
	return unicode.IsLetter(r) || unicode.IsMark(r) || e.lang.Script.IsDigit(r)
}

// attachedWord returns the letters and marks directly following a numeral,
// e.g. the case suffix in "10ನೇ".
func attachedWord(after string) string {
	for i, r := range after {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			return after[:i]
		}
	}
	return after
}

// detachedSuffix returns the word following a numeral after exactly one
// space, e.g. "ನೇ" in "10 ನೇ".
func detachedSuffix(after string) string {
	if !strings.HasPrefix(after, " ") {
		return ""
	}
	return attachedWord(after[1:])
}

// contract applies the first sandhi rule matching the end of the spoken
// numeral and the start of the attached word.
func (e *Expander) contract(spoken, next string) (string, bool) {
	return e.contractIf(spoken, func(rule SandhiRule) bool {
		return strings.HasPrefix(next, rule.Prefix)
	})
}

// contractSuffix applies the first sandhi rule whose prefix is exactly the
// word following the numeral. Words merely starting with a prefix, such as
// "ರೂಪಾಯಿ" for "ರ", are left alone.
func (e *Expander) contractSuffix(spoken, suffix string) (string, bool) {
	return e.contractIf(spoken, func(rule SandhiRule) bool {
		return suffix == rule.Prefix
	})
}

func (e *Expander) contractIf(spoken string, matches func(SandhiRule) bool) (string, bool) {
	for _, rule := range e.grammar.sandhi {
		if strings.HasSuffix(spoken, rule.Suffix) && matches(rule) {
			return strings.TrimSuffix(spoken, rule.Suffix) + rule.Replacement, true
		}
	}
	return spoken, false
}

// expandToken expands a single numeral token. Native digits are matched as
// their ASCII equivalents.
func (e *Expander) expandToken(numeral string) string {
	ascii, _, err := transform.String(runes.Map(e.lang.Script.ASCIIDigit), numeral)
	if err != nil {
		tracer().Errorf("cannot map digits of %q: %v", numeral, err)
		return numeral
	}
	negative := strings.HasPrefix(ascii, "-")
	var words []string
	if negative {
		words = append(words, e.lexeme(minusKey, "-"))
	}
	first := true
	for _, piece := range strings.Split(strings.TrimPrefix(ascii, "-"), "-") {
		if piece == "" {
			continue
		}
		words = append(words, e.expandPiece(piece, negative && first))
		first = false
	}
	return join(words...)
}

// expandPiece expands a dash-free part of a numeral token. A single period
// followed by comma-free digits is a decimal point; other periods separate
// numbers which are expanded independently.
func (e *Expander) expandPiece(piece string, force bool) string {
	parts := strings.Split(piece, ".")
	switch {
	case len(parts) == 2 && parts[0] != "" && parts[1] != "" && !strings.Contains(parts[1], ","):
		return join(
			e.expandInteger(parts[0], true),
			e.lexeme(decimalPointKey, "."),
			e.readDigitsOr(parts[1]),
		)
	case len(parts) > 1:
		words := make([]string, 0, len(parts))
		for _, part := range parts {
			if part != "" {
				words = append(words, e.expandInteger(part, force))
			}
		}
		return join(words...)
	}
	return e.expandInteger(piece, force)
}

// expandInteger expands a string of digits and commas. Correctly grouped
// numbers are read as one integer, anything else chunk by chunk.
func (e *Expander) expandInteger(s string, force bool) string {
	if !strings.Contains(s, ",") {
		return e.expandDigitString(s, force)
	}
	if indianGrouping.MatchString(s) {
		return e.expandDigitString(strings.ReplaceAll(s, ",", ""), true)
	}
	tracer().Debugf("%s: invalid digit grouping in %q", e.lang, s)
	var words []string
	for _, chunk := range strings.Split(s, ",") {
		if chunk != "" {
			words = append(words, e.expandDigitString(chunk, false))
		}
	}
	return join(words...)
}

// expandDigitString reads a plain string of ASCII digits. Numbers with a
// leading zero, and numbers longer than the digit threshold unless forced,
// are read digit by digit.
func (e *Expander) expandDigitString(s string, force bool) string {
	if len(s) > 1 && s[0] == '0' {
		return e.readDigitsOr(s)
	}
	if !force && len(s) > e.threshold {
		return e.readDigitsOr(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return e.readDigitsOr(s)
	}
	return e.Expand(n)
}
