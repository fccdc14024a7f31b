package script

import "strings"

// Script describes a writing system by its Unicode block.
type Script struct {
	ID             string // ISO 15924 four-letter code, e.g. "Deva"
	Name           string
	BlockStart     rune
	BlockEnd       rune
	DigitZero      rune
	DigitNine      rune
	FullStop       rune // script-specific sentence terminator, 0 if none
	DoubleFullStop rune // 0 if none
	brahmic        bool
}

const (
	danda       = '।'
	doubleDanda = '॥'
)

func brahmic(id, name string, start rune) Script {
	return Script{
		ID:             id,
		Name:           name,
		BlockStart:     start,
		BlockEnd:       start + 0x7F,
		DigitZero:      start + rune(DigitZero),
		DigitNine:      start + rune(DigitNine),
		FullStop:       danda,
		DoubleFullStop: doubleDanda,
		brahmic:        true,
	}
}

// The closed set of supported scripts, named by ISO 15924 code.
var (
	Deva = brahmic("Deva", "Devanagari", 0x0900)
	Beng = brahmic("Beng", "Bengali", 0x0980)
	Guru = brahmic("Guru", "Gurmukhi", 0x0A00)
	Gujr = brahmic("Gujr", "Gujarati", 0x0A80)
	Orya = brahmic("Orya", "Odia", 0x0B00)
	Taml = brahmic("Taml", "Tamil", 0x0B80)
	Telu = brahmic("Telu", "Telugu", 0x0C00)
	Knda = brahmic("Knda", "Kannada", 0x0C80)
	Mlym = brahmic("Mlym", "Malayalam", 0x0D00)
	Latn = Script{
		ID:         "Latn",
		Name:       "Latin",
		BlockStart: 0x0000,
		BlockEnd:   0x007F,
		DigitZero:  '0',
		DigitNine:  '9',
	}
	Arab = Script{
		ID:         "Arab",
		Name:       "Urdu",
		BlockStart: 0x0600,
		BlockEnd:   0x06FF,
		DigitZero:  0x06F0, // extended Arabic-Indic digits as used for Urdu
		DigitNine:  0x06F9,
		FullStop:   0x06D4,
	}
)

// Scripts lists all supported scripts in block order.
var Scripts = []Script{
	Deva, Beng, Guru, Gujr, Orya, Taml, Telu, Knda, Mlym, Latn, Arab,
}

// ScriptByName finds a script by ISO 15924 code or by name, ignoring case.
func ScriptByName(name string) (Script, bool) {
	for _, s := range Scripts {
		if strings.EqualFold(s.ID, name) || strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	if strings.EqualFold(name, "Oriya") {
		return Orya, true
	}
	return Script{}, false
}

func (s Script) String() string {
	return s.Name
}

// IsBrahmic is true for scripts following the shared syllabic template.
func (s Script) IsBrahmic() bool {
	return s.brahmic
}

// Contains checks if r is inside the script's Unicode block.
func (s Script) Contains(r rune) bool {
	return r >= s.BlockStart && r <= s.BlockEnd
}

// Offset returns the canonical offset of r. The result is meaningful only
// for code points inside the block.
func (s Script) Offset(r rune) Offset {
	return Offset(r - s.BlockStart)
}

// Rune returns the code point for a canonical offset in this script.
func (s Script) Rune(offset Offset) rune {
	return s.BlockStart + rune(offset)
}

// IsVowel is true if r is an independent vowel letter of a Brahmic script.
func (s Script) IsVowel(r rune) bool {
	return s.brahmic && s.Contains(r) && IsVowel(s.Offset(r))
}

// IsDependentVowel is true if r is a vowel sign of a Brahmic script.
func (s Script) IsDependentVowel(r rune) bool {
	return s.brahmic && s.Contains(r) && IsDependentVowel(s.Offset(r))
}

// IsConsonant is true if r is a consonant letter of s. Besides the template
// slots some scripts define consonants outside of it.
func (s Script) IsConsonant(r rune) bool {
	if !s.brahmic || !s.Contains(r) {
		return false
	}
	offset := s.Offset(r)
	if IsConsonant(offset) {
		return true
	}
	switch s.ID {
	case "Beng": // Assamese ra, wa
		return offset == 0x70 || offset == 0x71
	case "Orya": // wa
		return offset == 0x71
	case "Mlym": // chillu letters
		return offset >= 0x7A && offset <= 0x7F
	}
	return false
}

// IsNativeDigit is true for the script's own digits (not ASCII).
func (s Script) IsNativeDigit(r rune) bool {
	return s.DigitZero != '0' && r >= s.DigitZero && r <= s.DigitNine
}

// IsDigit is true for ASCII digits and for the script's native digits.
func (s Script) IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || s.IsNativeDigit(r)
}

// ASCIIDigit maps a native digit to its ASCII equivalent. Other runes are
// returned unchanged.
func (s Script) ASCIIDigit(r rune) rune {
	if s.IsNativeDigit(r) {
		return r - s.DigitZero + '0'
	}
	return r
}

