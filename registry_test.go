package indicnorm

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/indicnorm/segment"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"github.com/ulikunitz/xz"
)

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	registry *Registry
}

// listen for 'go test' command --> run test methods
func TestRegistryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indicnorm")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run once, before test suite methods
func (env *RegistryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("indicnorm").SetTraceLevel(tracing.LevelError)
	env.registry = New()
}

// run once, after test suite methods
func (env *RegistryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
	tracing.Select("indicnorm").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

var embeddedLanguages = []script.Language{
	script.English, script.Hindi, script.Kannada, script.Sanskrit,
}

func (env *RegistryTestEnviron) TestGrammarCompleteness() {
	for _, lang := range embeddedLanguages {
		e := env.registry.Expander(lang)
		env.Greater(e.Grammar().Len(), 30, "grammar for %s should be loaded", lang)
		for n := int64(1); n <= 99999; n++ {
			words := e.Expand(n)
			if words == "" || strings.ContainsAny(words, "0123456789") {
				env.Failf("incomplete expansion", "%s: Expand(%d) = %q", lang, n, words)
				break
			}
		}
	}
}

func (env *RegistryTestEnviron) TestExpandEmbedded() {
	tests := []struct {
		lang script.Language
		n    int64
		want string
	}{
		{script.English, 21, "twenty one"},
		{script.English, 123456, "one lakh twenty three thousand four hundred fifty six"},
		{script.Hindi, 21, "इक्कीस"},
		{script.Hindi, 1500, "पंद्रह सौ"},
		{script.Hindi, 2500, "दो हज़ार पाँच सौ"},
		{script.Kannada, 25, "ಇಪ್ಪತ್ತೈದು"},
		{script.Kannada, 1500, "ಸಾವಿರದ ಐನೂರು"},
		{script.Sanskrit, 25, "पञ्चविंशतिः"},
	}
	for _, tt := range tests {
		env.Equal(tt.want, env.registry.Expand(tt.n, tt.lang), "%s: Expand(%d)", tt.lang, tt.n)
	}
}

func (env *RegistryTestEnviron) TestMissingGrammarIsEmpty() {
	r := New(WithResources(fstest.MapFS{}))
	env.Equal("42", r.Expand(42, script.Hindi))
	text := "कक्षा 10 में 3.5 अंक"
	env.Equal(text, r.ExpandNumbers(text, script.Hindi, false))
	env.Equal(0, r.Initials(script.Deva).Len())
}

func (env *RegistryTestEnviron) TestMalformedGrammarIsEmpty() {
	r := New(WithResources(fstest.MapFS{
		"numerals/Hindi.tsv": &fstest.MapFile{Data: []byte("1\tएक\n2 दो\n")},
	}))
	env.Equal("42", r.Expand(42, script.Hindi))
}

func (env *RegistryTestEnviron) TestCompressedGrammar() {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	env.Require().NoError(err)
	_, err = w.Write([]byte("1\tone\n2x\ttwenty\n"))
	env.Require().NoError(err)
	env.Require().NoError(w.Close())
	r := New(WithResources(fstest.MapFS{
		"numerals/English.tsv.xz": &fstest.MapFile{Data: buf.Bytes()},
	}))
	env.Equal("twenty one", r.Expand(21, script.English))
	env.Contains(r.Expander(script.English).Grammar().Identifier, "English")
}

func (env *RegistryTestEnviron) TestRoundTrip() {
	inputs := []string{
		"कक्षा 10 में 3.5 अंक, फ़ोन 9876543210 और -7",
		"ಒಟ್ಟು ೧೨,೩೪,೫೬೭ ರೂಪಾಯಿ 10ನೇ ದಿನ",
		"no braces, no numbers",
	}
	for _, s := range inputs {
		for _, lang := range embeddedLanguages {
			validated := env.registry.ExpandNumbers(s, lang, true)
			env.Equal(s, RemoveNumeralsAndBrackets(validated), "%s: %q", lang, validated)
		}
	}
}

func (env *RegistryTestEnviron) TestSegmentInitials() {
	paragraphs := env.registry.Segment("Dr. Smith went home.", script.English, 250)
	env.Equal([]segment.Paragraph{{"Dr. Smith went home."}}, paragraphs)
}

func (env *RegistryTestEnviron) TestSegmentKannada() {
	text := "ಡಾ. ರಾವ್ 10ನೇ ತರಗತಿಯಲ್ಲಿ 25 ವಿದ್ಯಾರ್ಥಿಗಳನ್ನು ಕಂಡರು. ಅವರು ಸಂತೋಷಪಟ್ಟರು."
	paragraphs := env.registry.Segment(text, script.Kannada, 0)
	env.Equal([]segment.Paragraph{{
		"ಡಾಕ್ಟರ್ ರಾವ್ ಹತ್ತನೇ ತರಗತಿಯಲ್ಲಿ ಇಪ್ಪತ್ತೈದು ವಿದ್ಯಾರ್ಥಿಗಳನ್ನು ಕಂಡರು.",
		"ಅವರು ಸಂತೋಷಪಟ್ಟರು.",
	}}, paragraphs)
}

func (env *RegistryTestEnviron) TestSegmentNumberedList() {
	paragraphs := env.registry.Segment("ಪಟ್ಟಿ 1.ಕನ್ನಡ 2.ತುಳು", script.Kannada, 0)
	env.Equal([]segment.Paragraph{
		{"ಪಟ್ಟಿ"},
		{"ಒಂದು. ಕನ್ನಡ"},
		{"ಎರಡು. ತುಳು"},
	}, paragraphs)
}

func (env *RegistryTestEnviron) TestSegmentLengthBound() {
	paragraphs := env.registry.Segment("the quick brown fox jumps", script.English, 12)
	env.Equal([]segment.Paragraph{{"the quick", "brown fox", "jumps"}}, paragraphs)
}

func (env *RegistryTestEnviron) TestSingleConstruction() {
	r := New()
	const workers = 16
	expanders := make([]any, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			expanders[i] = r.Expander(script.Kannada)
		}(i)
	}
	wg.Wait()
	for i := 1; i < workers; i++ {
		env.Same(expanders[0], expanders[i])
	}
	env.Equal(1, r.Loaded())
}

func (env *RegistryTestEnviron) TestListTables() {
	tables, err := ListTables(Resources())
	env.Require().NoError(err)
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
		env.Len(t.Digest, 64, "digest of %s", t.Name)
	}
	env.Contains(names, "numerals/Kannada.tsv")
	env.Contains(names, "initials/Latin.tsv")
	env.Contains(names, "abbreviations/Hindi.tsv")
}
