/*
Package script holds the closed set of writing systems and languages known to
indicnorm, together with the canonical offset model shared by the Brahmic
scripts.

Brahmic scripts inherit a common letter ordering from ISCII: the Unicode blocks
for Devanagari, Bengali, Gurmukhi, Gujarati, Odia, Tamil, Telugu, Kannada and
Malayalam are laid out so that the same distance from the block start denotes
the same phonological role. A canonical Offset therefore classifies a code
point independently of its script:

	offset := s.Offset(r)          // r - s.BlockStart
	if script.IsDependentVowel(offset) { ... }

Not every script defines every slot of the template. Offsets in undefined
slots simply classify as neither vowel, dependent vowel nor consonant.

Script and Language are plain, comparable value records. Instances are
package-level values and must be treated as immutable.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}
