/*
Package indicnorm normalizes Indic text for speech synthesis corpus
preparation.

Raw written sentences are converted into a canonical, speakable form:

  - multi-code-point vowel renderings are collapsed into single code points
    (package vowelsign),
  - abbreviations and numerals are expanded into words, driven by
    per-language rule tables (packages abbrev and numerals),
  - text is segmented into bounded-length sentences, respecting initials,
    acronyms and numbered lists (package segment).

A Registry loads the rule tables lazily, once per language or script, and
hands out immutable expanders and segmenters. Package-level functions use a
default registry over the rule tables embedded into this package.

	paragraphs := indicnorm.Segment(text, script.Kannada, 250)

Rule tables are plain tab-separated text files, see package rules. Custom
tables may be supplied with WithResources.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package indicnorm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
