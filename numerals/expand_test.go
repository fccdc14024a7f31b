package numerals

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var englishTable = map[string]string{
	"0": "zero", "1": "one", "2": "two", "3": "three", "4": "four",
	"5": "five", "6": "six", "7": "seven", "8": "eight", "9": "nine",
	"10": "ten", "11": "eleven", "12": "twelve", "13": "thirteen", "14": "fourteen",
	"15": "fifteen", "16": "sixteen", "17": "seventeen", "18": "eighteen", "19": "nineteen",
	"2x": "twenty", "3x": "thirty", "4x": "forty", "5x": "fifty",
	"6x": "sixty", "7x": "seventy", "8x": "eighty", "9x": "ninety",
	"x00": "hundred", "xxx": "hundred",
	"x000": "thousand", "xxxx": "thousand",
	"x00000": "lakh", "xxxxxx": "lakh",
	"x0000000": "crore", "xxxxxxxx": "crore",
	"-": "minus", ".": "point",
}

func englishExpander(opts ...Option) *Expander {
	return NewExpander(script.English, NewGrammar("English", englishTable), opts...)
}

type sliceEntryReader struct {
	entries [][2]string
	index   int
}

func (r *sliceEntryReader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		return "", "", io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e[0], e[1], nil
}

func TestLoadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indicnorm")
	defer teardown()
	//
	g, err := LoadGrammar("test", &sliceEntryReader{entries: [][2]string{
		{"1", "one"},
		{"s1", "u"}, {"p1", "ne"}, {"r1", "delete"},
		{"s2", "a"}, {"p2", "ra"}, {"r2", "e"},
		{"s3", "i"}, {"p3", "ke"}, {"r3", "remove"},
		{"s5", "x"}, {"p5", "y"}, {"r5", "z"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 13 {
		t.Errorf("expected 13 entries, have %d", g.Len())
	}
	rules := g.SandhiRules()
	if len(rules) != 3 {
		t.Fatalf("expected sandhi rules 1 to 3 only, have %v", rules)
	}
	if rules[0] != (SandhiRule{Suffix: "u", Prefix: "ne", Replacement: ""}) {
		t.Errorf("'delete' should yield an empty replacement, have %+v", rules[0])
	}
	if rules[1] != (SandhiRule{Suffix: "a", Prefix: "ra", Replacement: "e"}) {
		t.Errorf("unexpected rule 2: %+v", rules[1])
	}
	if rules[2] != (SandhiRule{Suffix: "i", Prefix: "ke", Replacement: ""}) {
		t.Errorf("'remove' should yield an empty replacement, have %+v", rules[2])
	}
	if !strings.Contains(g.Identifier, "test") {
		t.Errorf("identifier should name the grammar, is %q", g.Identifier)
	}
}

func TestPatternKeys(t *testing.T) {
	tests := []struct {
		key  patternKey
		want string
	}{
		{literal(21), "21"},
		{compound(2, tens), "2x"},
		{compound(15, hundreds), "15xx"},
		{round(tens), "x0"},
		{round(lakhs), "x00000"},
		{template(thousands), "xxxx"},
		{template(crores), "xxxxxxxx"},
		{adjunct(25), "x25"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("key %+v renders as %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestExpandEnglish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indicnorm")
	defer teardown()
	//
	e := englishExpander()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{20, "twenty"},
		{21, "twenty one"},
		{100, "one hundred"},
		{105, "one hundred five"},
		{999, "nine hundred ninety nine"},
		{1500, "one thousand five hundred"},
		{123456, "one lakh twenty three thousand four hundred fifty six"},
		{10000000, "one crore"},
		{-7, "minus seven"},
	}
	for _, tt := range tests {
		if got := e.Expand(tt.n); got != tt.want {
			t.Errorf("Expand(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestExpandBeyondCrores(t *testing.T) {
	e := englishExpander()
	want := "one thousand crore"
	if got := e.Expand(10000000000); got != want {
		t.Errorf("Expand(10^10) = %q, want %q", got, want)
	}
	got := e.Expand(-9223372036854775808)
	if !strings.HasPrefix(got, "minus nine two two three") {
		t.Errorf("MinInt64 should be read as minus and digits, is %q", got)
	}
}

func TestExpandCompleteness(t *testing.T) {
	e := englishExpander()
	for n := int64(1); n <= 99999; n++ {
		got := e.Expand(n)
		if got == "" || strings.ContainsAny(got, "0123456789") {
			t.Fatalf("Expand(%d) = %q is incomplete", n, got)
		}
	}
}

func TestToyGrammarFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indicnorm")
	defer teardown()
	//
	toy := NewGrammar("toy", map[string]string{"1": "one", "2": "two", "x0": "-ty", "9": "nine"})
	e := NewExpander(script.English, toy)
	if got := e.Expand(21); got != "two one" {
		t.Errorf("21 should be read digit by digit, is %q", got)
	}
	if got := e.Expand(20); got == "" {
		t.Errorf("20 should use the round pattern")
	}
	if got := e.Expand(35); got != "35" {
		t.Errorf("without digit entries the numeral is returned, got %q", got)
	}
}

func TestEmptyGrammar(t *testing.T) {
	e := NewExpander(script.Hindi, nil)
	if got := e.Expand(42); got != "42" {
		t.Errorf("empty grammar should return 42, got %q", got)
	}
	text := "कक्षा 10 में -3.5 अंक"
	if got := e.ExpandNumbers(text, false); got != text {
		t.Errorf("empty grammar should leave text unchanged, got %q", got)
	}
}

func TestTierOverrides(t *testing.T) {
	table := map[string]string{
		"1": "ek", "2": "do", "5": "paanch", "15": "pandrah", "25": "pachchis", "50": "pachaas",
		"x00": "sau", "xxx": "sau", "x000": "hazaar", "xxxx": "hazaar",
	}
	tests := []struct {
		lang script.Language
		n    int64
		want string
	}{
		{script.Hindi, 1500, "pandrah sau"},
		{script.Hindi, 2500, "do hazaar paanch sau"},
		{script.Bengali, 1500, "pandrah sau"},
		{script.Marathi, 2500, "pachchis sau"},
		{script.Marathi, 2050, "do hazaar pachaas"},
		{script.Gujarati, 1500, "ek hazaar paanch sau"},
	}
	for _, tt := range tests {
		e := NewExpander(tt.lang, NewGrammar(tt.lang.Name, table))
		if got := e.Expand(tt.n); got != tt.want {
			t.Errorf("%s: Expand(%d) = %q, want %q", tt.lang, tt.n, got, tt.want)
		}
	}
}

func TestSandhiJoin(t *testing.T) {
	e := NewExpander(script.Kannada, NewGrammar("Kannada", map[string]string{
		"1":  "ಒಂದು",
		"2x": "ಇಪ್ಪತ್ತು",
	}))
	if got := e.Expand(21); got != "ಇಪ್ಪತ್ತೊಂದು" {
		t.Errorf("21 should contract to ಇಪ್ಪತ್ತೊಂದು, is %q", got)
	}
	if got := joinSandhi(script.Knda, "ಇಪ್ಪತ್ತು", "ಒಂದು", false); got != "ಇಪ್ಪತ್ತು ಒಂದು" {
		t.Errorf("without sandhi words should be separated, got %q", got)
	}
	if got := joinSandhi(script.Knda, " ", "ಒಂದು", true); got != "ಒಂದು" {
		t.Errorf("empty fragments should vanish, got %q", got)
	}	// a trailing anusvara is not a vowel sign and keeps the words apart
	if got := joinSandhi(script.Knda, "ನೂರಂ", "ಒಂದು", true); got != "ನೂರಂ ಒಂದು" {
		t.Errorf("anusvara should not merge with a following vowel, got %q", got)
	}
}

func TestDescendingComposition(t *testing.T) {
	e := NewExpander(script.Sanskrit, NewGrammar("Sanskrit", map[string]string{
		"3":    "त्रयः",
		"25":   "पञ्चविंशतिः",
		"x25":  "पञ्चविंशति",
		"100":  "शतम्",
		"x00":  "शतम्",
		"xxx":  "शत",
		"x000": "सहस्रम्",
		"xxxx": "सहस्र",
	}))
	tests := []struct {
		n    int64
		want string
	}{
		{25, "पञ्चविंशतिः"},
		{125, "पञ्चविंशति शतम्"},
		{3000, "त्रयसहस्रम्"},
	}
	for _, tt := range tests {
		if got := e.Expand(tt.n); got != tt.want {
			t.Errorf("Expand(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestHundredsWithinThousands(t *testing.T) {
	for n, want := range map[int64]bool{1099: false, 1100: true, 1999: true, 2050: false, 9999: true, 10100: false} {
		if got := hundredsWithinThousands(n); got != want {
			t.Errorf("hundredsWithinThousands(%d) = %v", n, got)
		}
	}
}
