package script

import "testing"

func TestOffsetClassification(t *testing.T) {
	tests := []struct {
		offset      Offset
		vowel       bool
		dependent   bool
		consonant   bool
		description string
	}{
		{LetterA, true, false, false, "letter a"},
		{LetterAU, true, false, false, "letter au"},
		{LetterVocalicLL, true, false, false, "letter vocalic ll"},
		{LetterKA, false, false, true, "letter ka"},
		{LetterHA, false, false, true, "letter ha"},
		{0x58, false, false, true, "nukta consonant qa"},
		{VowelSignAA, false, true, false, "vowel sign aa"},
		{VowelSignAU, false, true, false, "vowel sign au"},
		{AULengthMark, false, true, false, "au length mark"},
		{SignNukta, false, false, false, "nukta"},
		{SignVirama, false, false, false, "virama"},
		{SignAnusvara, false, false, false, "anusvara"},
		{SignAvagraha, false, false, false, "avagraha"},
		{DigitZero, false, false, false, "digit zero"},
		{0x7F, false, false, false, "undefined slot"},
		{-3, false, false, false, "negative offset"},
	}
	for _, tt := range tests {
		if got := IsVowel(tt.offset); got != tt.vowel {
			t.Errorf("IsVowel(%s) = %v, want %v", tt.description, got, tt.vowel)
		}
		if got := IsDependentVowel(tt.offset); got != tt.dependent {
			t.Errorf("IsDependentVowel(%s) = %v, want %v", tt.description, got, tt.dependent)
		}
		if got := IsConsonant(tt.offset); got != tt.consonant {
			t.Errorf("IsConsonant(%s) = %v, want %v", tt.description, got, tt.consonant)
		}
	}
}

func TestToDependentVowel(t *testing.T) {
	letters := []Offset{LetterA, LetterAA, LetterI, LetterII, LetterU, LetterUU, LetterCandraE,
		LetterE, LetterEE, LetterAI, LetterCandraO, LetterO, LetterOO, LetterAU}
	if len(letters) != len(toVowelSign) {
		t.Fatalf("vowel sign table has %d entries, want %d", len(toVowelSign), len(letters))
	}
	for _, l := range letters {
		sign := ToDependentVowel(l)
		if !IsDependentVowel(sign) {
			t.Errorf("ToDependentVowel(%#x) = %#x, which is not a vowel sign", int(l), int(sign))
		}
	}
	if got := ToDependentVowel(LetterO); got != VowelSignO {
		t.Errorf("ToDependentVowel(O) = %#x, want %#x", int(got), int(VowelSignO))
	}
	for _, other := range []Offset{LetterShortA, LetterVocalicR, LetterKA, VowelSignE, 0x7F} {
		if got := ToDependentVowel(other); got != other {
			t.Errorf("ToDependentVowel(%#x) = %#x, want input unchanged", int(other), int(got))
		}
	}
}

func TestSameOffsetSameRole(t *testing.T) {
	for _, s := range Scripts {
		if !s.IsBrahmic() {
			continue
		}
		if got := s.Offset(s.Rune(VowelSignE)); got != VowelSignE {
			t.Errorf("%s: offset round trip failed: %#x", s, int(got))
		}
		if !s.IsConsonant(s.Rune(LetterKA)) {
			t.Errorf("%s: KA should be a consonant", s)
		}
		if !s.IsDependentVowel(s.Rune(VowelSignAA)) {
			t.Errorf("%s: AA sign should be a dependent vowel", s)
		}
	}
}
