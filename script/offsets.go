package script

// Offset is a position in the Brahmic syllabic template, relative to the
// start of a script's Unicode block.
type Offset int

// Offsets of the shared template. Only the slots the normalizers and the
// numeral engine refer to are named.
const (
	SignInvertedCandrabindu Offset = 0x00
	SignCandrabindu         Offset = 0x01
	SignAnusvara            Offset = 0x02
	SignVisarga             Offset = 0x03

	LetterShortA    Offset = 0x04
	LetterA         Offset = 0x05
	LetterAA        Offset = 0x06
	LetterI         Offset = 0x07
	LetterII        Offset = 0x08
	LetterU         Offset = 0x09
	LetterUU        Offset = 0x0A
	LetterVocalicR  Offset = 0x0B
	LetterVocalicL  Offset = 0x0C
	LetterCandraE   Offset = 0x0D
	LetterE         Offset = 0x0E
	LetterEE        Offset = 0x0F
	LetterAI        Offset = 0x10
	LetterCandraO   Offset = 0x11
	LetterO         Offset = 0x12
	LetterOO        Offset = 0x13
	LetterAU        Offset = 0x14
	LetterKA        Offset = 0x15
	LetterHA        Offset = 0x39
	LetterVocalicRR Offset = 0x60
	LetterVocalicLL Offset = 0x61

	SignNukta    Offset = 0x3C
	SignAvagraha Offset = 0x3D

	VowelSignAA        Offset = 0x3E
	VowelSignI         Offset = 0x3F
	VowelSignII        Offset = 0x40
	VowelSignU         Offset = 0x41
	VowelSignUU        Offset = 0x42
	VowelSignVocalicR  Offset = 0x43
	VowelSignVocalicRR Offset = 0x44
	VowelSignCandraE   Offset = 0x45
	VowelSignE         Offset = 0x46
	VowelSignEE        Offset = 0x47
	VowelSignAI        Offset = 0x48
	VowelSignCandraO   Offset = 0x49
	VowelSignO         Offset = 0x4A
	VowelSignOO        Offset = 0x4B
	VowelSignAU        Offset = 0x4C
	SignVirama         Offset = 0x4D

	LengthMark   Offset = 0x55 // Telugu, Kannada
	AILengthMark Offset = 0x56
	AULengthMark Offset = 0x57 // Odia, Tamil, Malayalam

	VowelSignVocalicL  Offset = 0x62
	VowelSignVocalicLL Offset = 0x63

	DigitZero Offset = 0x66
	DigitNine Offset = 0x6F
)

// IsVowel is true for the independent vowel letters of the template.
func IsVowel(offset Offset) bool {
	return (offset >= LetterShortA && offset <= LetterAU) ||
		offset == LetterVocalicRR || offset == LetterVocalicLL
}

// IsDependentVowel is true for vowel signs (matras) and length marks.
func IsDependentVowel(offset Offset) bool {
	return (offset >= VowelSignAA && offset <= VowelSignAU) ||
		offset == VowelSignVocalicL || offset == VowelSignVocalicLL ||
		(offset >= LengthMark && offset <= AULengthMark)
}

// IsConsonant is true for the consonant letters of the template, including
// the precomposed nukta consonants at 0x58–0x5F.
func IsConsonant(offset Offset) bool {
	return (offset >= LetterKA && offset <= LetterHA) ||
		(offset >= 0x58 && offset <= 0x5F)
}

// IsDigit is true for the native digit slots.
func IsDigit(offset Offset) bool {
	return offset >= DigitZero && offset <= DigitNine
}

// toVowelSign is closed: only the 14 independent vowel letters which have a
// dependent counterpart appear here.
var toVowelSign = map[Offset]Offset{
	LetterA:       VowelSignAA,
	LetterAA:      VowelSignAA,
	LetterI:       VowelSignI,
	LetterII:      VowelSignII,
	LetterU:       VowelSignU,
	LetterUU:      VowelSignUU,
	LetterCandraE: VowelSignCandraE,
	LetterE:       VowelSignE,
	LetterEE:      VowelSignEE,
	LetterAI:      VowelSignAI,
	LetterCandraO: VowelSignCandraO,
	LetterO:       VowelSignO,
	LetterOO:      VowelSignOO,
	LetterAU:      VowelSignAU,
}

// ToDependentVowel maps an independent vowel letter to the vowel sign used
// when the vowel follows a consonant. Any other offset is returned unchanged.
//
//	ToDependentVowel(LetterO) => VowelSignO
func ToDependentVowel(letter Offset) Offset {
	if sign, ok := toVowelSign[letter]; ok {
		return sign
	}
	return letter
}
