package vowelsign

import "github.com/npillmayer/indicnorm/script"

// Rule merges First and Second into Result. Values are offsets relative to
// the start of the script's Unicode block.
type Rule struct {
	First, Second, Result script.Offset
	Split                 bool // First precedes a consonant, Second follows it
}

func adjacent(first, second, result script.Offset) Rule {
	return Rule{First: first, Second: second, Result: result}
}

func split(first, second, result script.Offset) Rule {
	return Rule{First: first, Second: second, Result: result, Split: true}
}

// both creates an adjacent rule and its split variant.
func both(first, second, result script.Offset) []Rule {
	return []Rule{adjacent(first, second, result), split(first, second, result)}
}

func concat(groups ...[]Rule) []Rule {
	var all []Rule
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Nukta merges come first, so that vowel rules see precomposed consonants.
var devanagariRules = []Rule{
	adjacent(0x15, script.SignNukta, 0x58), // qa
	adjacent(0x16, script.SignNukta, 0x59), // khha
	adjacent(0x17, script.SignNukta, 0x5A), // ghha
	adjacent(0x1C, script.SignNukta, 0x5B), // za
	adjacent(0x21, script.SignNukta, 0x5C), // dddha
	adjacent(0x22, script.SignNukta, 0x5D), // rha
	adjacent(0x2B, script.SignNukta, 0x5E), // fa
	adjacent(0x2F, script.SignNukta, 0x5F), // yya
	adjacent(0x28, script.SignNukta, 0x29), // nnna
	adjacent(0x30, script.SignNukta, 0x31), // rra
	adjacent(0x33, script.SignNukta, 0x34), // llla
	adjacent(script.VowelSignAA, script.VowelSignEE, script.VowelSignOO),
	adjacent(script.VowelSignAA, script.VowelSignAI, script.VowelSignAU),
	adjacent(script.VowelSignAA, script.VowelSignCandraE, script.VowelSignCandraO),
	adjacent(script.LetterA, script.VowelSignAA, script.LetterAA),
	adjacent(script.LetterAA, script.VowelSignEE, script.LetterOO),
	adjacent(script.LetterAA, script.VowelSignAI, script.LetterAU),
	adjacent(script.LetterA, script.VowelSignOO, script.LetterOO),
	adjacent(script.LetterA, script.VowelSignAU, script.LetterAU),
	adjacent(script.LetterA, script.VowelSignCandraO, script.LetterCandraO),
	adjacent(script.LetterAA, script.VowelSignCandraE, script.LetterCandraO),
	adjacent(script.LetterA, script.VowelSignCandraE, 0x72), // candra a
	adjacent(script.LetterEE, script.VowelSignCandraE, script.LetterCandraE),
	adjacent(script.LetterEE, script.VowelSignEE, script.LetterAI),
}

var bengaliRules = concat(
	[]Rule{
		adjacent(0x21, script.SignNukta, 0x5C), // rra
		adjacent(0x22, script.SignNukta, 0x5D), // rha
		adjacent(0x2F, script.SignNukta, 0x5F), // yya
		adjacent(script.LetterA, script.VowelSignAA, script.LetterAA),
	},
	both(script.VowelSignEE, script.VowelSignAA, script.VowelSignOO),
	both(script.VowelSignEE, script.AULengthMark, script.VowelSignAU),
)

var gurmukhiRules = []Rule{
	adjacent(0x38, script.SignNukta, 0x36), // sha
	adjacent(0x16, script.SignNukta, 0x59), // khha
	adjacent(0x17, script.SignNukta, 0x5A), // ghha
	adjacent(0x1C, script.SignNukta, 0x5B), // za
	adjacent(0x2B, script.SignNukta, 0x5E), // fa
	adjacent(0x32, script.SignNukta, 0x33), // lla
	adjacent(script.LetterA, script.VowelSignAA, script.LetterAA),
	adjacent(0x72, script.VowelSignI, script.LetterI),   // iri
	adjacent(0x72, script.VowelSignII, script.LetterII), // iri
	adjacent(0x72, script.VowelSignEE, script.LetterEE), // iri
	adjacent(script.LetterA, script.VowelSignAI, script.LetterAI),
	adjacent(0x73, script.VowelSignU, script.LetterU),   // ura
	adjacent(0x73, script.VowelSignUU, script.LetterUU), // ura
	adjacent(0x73, script.VowelSignOO, script.LetterOO), // ura
	adjacent(script.LetterA, script.VowelSignAU, script.LetterAU),
}

var gujaratiRules = []Rule{
	adjacent(script.LetterA, script.VowelSignAA, script.LetterAA),
	adjacent(script.LetterA, script.VowelSignCandraE, script.LetterCandraE),
	adjacent(script.LetterA, script.VowelSignOO, script.LetterOO),
	adjacent(script.LetterA, script.VowelSignAU, script.LetterAU),
	adjacent(script.LetterA, script.VowelSignCandraO, script.LetterCandraO),
	adjacent(script.VowelSignAA, script.VowelSignEE, script.VowelSignOO),
	adjacent(script.VowelSignAA, script.VowelSignAI, script.VowelSignAU),
	adjacent(script.VowelSignAA, script.VowelSignCandraE, script.VowelSignCandraO),
}

var odiaRules = concat(
	[]Rule{
		adjacent(0x21, script.SignNukta, 0x5C), // rra
		adjacent(0x22, script.SignNukta, 0x5D), // rha
		adjacent(script.LetterA, script.VowelSignAA, script.LetterAA),
	},
	both(script.VowelSignEE, script.VowelSignAA, script.VowelSignOO),
	both(script.VowelSignEE, script.AILengthMark, script.VowelSignAI),
	both(script.VowelSignEE, script.AULengthMark, script.VowelSignAU),
)

var tamilRules = concat(
	both(script.VowelSignE, script.VowelSignAA, script.VowelSignO),
	both(script.VowelSignEE, script.VowelSignAA, script.VowelSignOO),
	both(script.VowelSignE, script.AULengthMark, script.VowelSignAU),
	[]Rule{adjacent(script.LetterO, script.AULengthMark, script.LetterAU)},
)

var teluguRules = []Rule{
	adjacent(script.VowelSignE, script.LengthMark, script.VowelSignEE),
	adjacent(script.VowelSignE, script.AILengthMark, script.VowelSignAI),
}

var kannadaRules = []Rule{
	adjacent(script.VowelSignI, script.LengthMark, script.VowelSignII),
	adjacent(script.VowelSignE, script.LengthMark, script.VowelSignEE),
	adjacent(script.VowelSignE, script.AILengthMark, script.VowelSignAI),
	adjacent(script.VowelSignE, script.VowelSignUU, script.VowelSignO),
	adjacent(script.VowelSignO, script.LengthMark, script.VowelSignOO),
	adjacent(script.LetterO, script.VowelSignAU, script.LetterAU),
}

var malayalamRules = concat(
	both(script.VowelSignE, script.VowelSignAA, script.VowelSignO),
	both(script.VowelSignEE, script.VowelSignAA, script.VowelSignOO),
	both(script.VowelSignE, script.AULengthMark, script.VowelSignAU),
	both(script.VowelSignE, script.VowelSignE, script.VowelSignAI),
	[]Rule{
		adjacent(script.LetterO, script.VowelSignAA, script.LetterOO),
		adjacent(script.LetterO, script.AULengthMark, script.LetterAU),
		adjacent(script.LetterE, script.VowelSignE, script.LetterAI),
	},
)

// Urdu: alef and waw/yeh with madda or hamza above or below.
var urduRules = []Rule{
	adjacent(0x27, 0x53, 0x22), // alef + madda
	adjacent(0x27, 0x54, 0x23), // alef + hamza above
	adjacent(0x27, 0x55, 0x25), // alef + hamza below
	adjacent(0x48, 0x54, 0x24), // waw + hamza above
	adjacent(0x4A, 0x54, 0x26), // yeh + hamza above
	adjacent(0xC1, 0x54, 0xC2), // heh goal + hamza above
	adjacent(0xD2, 0x54, 0xD3), // yeh barree + hamza above
}

// rulesByScript holds the ordered rule list per script ID. Latin has none.
var rulesByScript = map[string][]Rule{
	script.Deva.ID: devanagariRules,
	script.Beng.ID: bengaliRules,
	script.Guru.ID: gurmukhiRules,
	script.Gujr.ID: gujaratiRules,
	script.Orya.ID: odiaRules,
	script.Taml.ID: tamilRules,
	script.Telu.ID: teluguRules,
	script.Knda.ID: kannadaRules,
	script.Mlym.ID: malayalamRules,
	script.Arab.ID: urduRules,
}
