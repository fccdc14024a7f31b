package numerals

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/indicnorm/script"
)

// joinSandhi concatenates two word fragments. With doSandhi set, a vowel
// sign ending the first fragment merges with an independent vowel starting
// the second one: the sign is replaced by the dependent form of the vowel.
//
//	ಇಪ್ಪತ್ತು + ಒಂದು => ಇಪ್ಪತ್ತೊಂದು
//
// Otherwise the fragments are separated by a space. Empty fragments vanish.
func joinSandhi(s script.Script, word1, word2 string, doSandhi bool) string {
	word1 = strings.TrimSpace(word1)
	word2 = strings.TrimSpace(word2)
	if word1 == "" {
		return word2
	}
	if word2 == "" {
		return word1
	}
	if doSandhi {
		prev, psize := utf8.DecodeLastRuneInString(word1)
		next, nsize := utf8.DecodeRuneInString(word2)
		if s.IsDependentVowel(prev) && s.IsVowel(next) {
			sign := script.ToDependentVowel(s.Offset(next))
			if script.IsDependentVowel(sign) {
				return word1[:len(word1)-psize] + string(s.Rune(sign)) + word2[nsize:]
			}
		}
	}
	return word1 + " " + word2
}

// join concatenates non-empty words with single spaces.
func join(words ...string) string {
	var b strings.Builder
	for _, w := range words {
		if w = strings.TrimSpace(w); w == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
