package indicnorm

import (
	"fmt"
	"io/fs"

	"github.com/npillmayer/indicnorm/abbrev"
	"github.com/npillmayer/indicnorm/numerals"
	"github.com/npillmayer/indicnorm/rules"
	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/indicnorm/segment"
	"github.com/npillmayer/indicnorm/vowelsign"
)

// Registry provides the rule tables for all languages and scripts.
//
// Tables are loaded on first use, at most once per language or script, and
// are immutable afterwards. A Registry is safe for concurrent use.
// Missing or malformed tables are logged and replaced by empty ones, so that
// normalization never fails; it degrades to leaving text unchanged.
type Registry struct {
	fsys      fs.FS
	threshold int
	maxLen    int

	expanders     memo[string, *numerals.Expander]
	initials      memo[string, *abbrev.Set]
	abbreviations memo[string, *abbrev.Expander]
	segmenters    memo[string, *segment.Segmenter]
}

// Option configures a Registry.
type Option func(*Registry)

// WithResources loads rule tables from fsys instead of the embedded ones.
// See Resources for the layout.
func WithResources(fsys fs.FS) Option {
	return func(r *Registry) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithDigitThreshold sets the length of plain digit runs above which
// numerals are read digit by digit.
func WithDigitThreshold(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.threshold = n
		}
	}
}

// WithMaxSentenceLength sets the default maximum sentence length in code
// points.
func WithMaxSentenceLength(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxLen = n
		}
	}
}

// New creates a registry. Without options it uses the embedded rule tables.
func New(opts ...Option) *Registry {
	r := &Registry{
		threshold: numerals.DefaultDigitThreshold,
		maxLen:    segment.DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fsys == nil {
		r.fsys = Resources()
	}
	return r
}

// Resources returns the file system the registry loads tables from.
func (r *Registry) Resources() fs.FS {
	return r.fsys
}

// MaxSentenceLength returns the default maximum sentence length.
func (r *Registry) MaxSentenceLength() int {
	return r.maxLen
}

// Loaded returns the number of tables requested so far.
func (r *Registry) Loaded() int {
	return r.expanders.len() + r.initials.len() + r.abbreviations.len()
}

// Expander returns the numeral expander for a language.
func (r *Registry) Expander(lang script.Language) *numerals.Expander {
	return r.expanders.get(lang.Name, func(string) *numerals.Expander {
		return numerals.NewExpander(lang, r.loadGrammar(lang), numerals.WithDigitThreshold(r.threshold))
	})
}

func (r *Registry) loadGrammar(lang script.Language) *numerals.Grammar {
	res, err := readResource(r.fsys, numeralsResource(lang))
	if err != nil {
		tracer().Errorf("no numeral grammar for %s: %v", lang, err)
		return numerals.EmptyGrammar(lang.Name)
	}
	g, err := numerals.LoadGrammar(lang.Name, rules.NewReader(res.reader()))
	if err != nil {
		tracer().Errorf("%s: %v", res.name, err)
		return numerals.EmptyGrammar(lang.Name)
	}
	g.Identifier = fmt.Sprintf("%s [%s]", g.Identifier, res.short())
	return g
}

// Initials returns the set of initials and acronyms for a script.
func (r *Registry) Initials(s script.Script) *abbrev.Set {
	return r.initials.get(s.ID, func(string) *abbrev.Set {
		res, err := readResource(r.fsys, initialsResource(s))
		if err != nil {
			tracer().Errorf("no initials for %s: %v", s, err)
			return abbrev.EmptySet(s.Name)
		}
		set, err := abbrev.LoadSet(s.Name, rules.NewListReader(res.reader()))
		if err != nil {
			tracer().Errorf("%s: %v", res.name, err)
			return abbrev.EmptySet(s.Name)
		}
		set.Identifier = fmt.Sprintf("%s [%s]", set.Identifier, res.short())
		return set
	})
}

// Abbreviations returns the abbreviation expander for a language. Most
// languages have none, which is traced at Info level only.
func (r *Registry) Abbreviations(lang script.Language) *abbrev.Expander {
	return r.abbreviations.get(lang.Name, func(string) *abbrev.Expander {
		res, err := readResource(r.fsys, abbreviationsResource(lang))
		if err != nil {
			tracer().Infof("no abbreviations for %s", lang)
			return abbrev.EmptyExpander(lang.Name)
		}
		e, err := abbrev.LoadExpander(lang.Name, rules.NewReader(res.reader()))
		if err != nil {
			tracer().Errorf("%s: %v", res.name, err)
			return abbrev.EmptyExpander(lang.Name)
		}
		e.Identifier = fmt.Sprintf("%s [%s]", e.Identifier, res.short())
		return e
	})
}

// Segmenter returns the sentence segmenter for a script.
func (r *Registry) Segmenter(s script.Script) *segment.Segmenter {
	return r.segmenters.get(s.ID, func(string) *segment.Segmenter {
		return segment.New(s, r.Initials(s), segment.WithMaxLength(r.maxLen))
	})
}

// Expand returns the spoken form of n in a language.
func (r *Registry) Expand(n int64, lang script.Language) string {
	return r.Expander(lang).Expand(n)
}

// ExpandNumbers replaces all numerals in text by their spoken form. With
// retain set, every numeral is kept as "{numeral}{expansion}".
func (r *Registry) ExpandNumbers(text string, lang script.Language, retain bool) string {
	return r.Expander(lang).ExpandNumbers(text, retain)
}

// Normalize applies the text normalizations preceding segmentation:
// numbered lists are broken into lines, vowel signs merged, abbreviations
// and numerals expanded.
func (r *Registry) Normalize(text string, lang script.Language) string {
	text = r.Segmenter(lang.Script).ProcessNumberedLists(text)
	text = vowelsign.MergeVowelSigns(text, lang.Script)
	text = r.Abbreviations(lang).Expand(text)
	return r.Expander(lang).ExpandNumbers(text, false)
}

// Segment normalizes text and splits it into paragraphs of sentences of at
// most maxLen code points. maxLen < 1 selects the registry's default.
func (r *Registry) Segment(text string, lang script.Language, maxLen int) []segment.Paragraph {
	if maxLen < 1 {
		maxLen = r.maxLen
	}
	normalized := r.Normalize(text, lang)
	return r.Segmenter(lang.Script).SplitBounded(normalized, maxLen)
}
