package numerals

import "regexp"

// validationPair matches "{numeral}{expansion}" as written by ExpandNumbers
// in validation mode.
var validationPair = regexp.MustCompile(`\{([^{}]*)\}\{([^{}]*)\}`)

// RemoveNumeralsAndBrackets restores the original numerals from text
// produced by ExpandNumbers in validation mode. For input without
// pre-existing braces this is the exact inverse.
func RemoveNumeralsAndBrackets(text string) string {
	return validationPair.ReplaceAllString(text, "${1}")
}

// KeepExpansions resolves validated pairs to their expansion, dropping the
// numerals and the braces. This yields the text ExpandNumbers would have
// produced without validation mode.
func KeepExpansions(text string) string {
	return validationPair.ReplaceAllString(text, "${2}")
}
