package indicnorm

import (
	"sync"

	"github.com/npillmayer/indicnorm/numerals"
	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/indicnorm/segment"
	"github.com/npillmayer/indicnorm/vowelsign"
)

// Default returns the registry over the embedded rule tables.
var Default = sync.OnceValue(func() *Registry {
	return New()
})

// Expand returns the spoken form of n in a language, using the embedded
// rule tables.
func Expand(n int64, lang script.Language) string {
	return Default().Expand(n, lang)
}

// ExpandNumbers replaces all numerals in text by their spoken form, using
// the embedded rule tables.
func ExpandNumbers(text string, lang script.Language, retain bool) string {
	return Default().ExpandNumbers(text, lang, retain)
}

// RemoveNumeralsAndBrackets reverts ExpandNumbers in validation mode.
func RemoveNumeralsAndBrackets(text string) string {
	return numerals.RemoveNumeralsAndBrackets(text)
}

// MergeVowelSigns collapses multi-part vowel signs of a script.
func MergeVowelSigns(text string, s script.Script) string {
	return vowelsign.MergeVowelSigns(text, s)
}

// Segment normalizes text and splits it into sentences, using the embedded
// rule tables.
func Segment(text string, lang script.Language, maxLen int) []segment.Paragraph {
	return Default().Segment(text, lang, maxLen)
}
