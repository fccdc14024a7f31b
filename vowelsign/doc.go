/*
Package vowelsign collapses multi-code-point vowel renderings into single
canonical code points.

Many Brahmic scripts allow a vowel sign to be typed as two parts, e.g.
Devanagari AA + EE for O, or Kannada E + length mark for EE. Text prepared
for speech synthesis counts code points and matches character ranges, so
every such rendering has to be reduced to the precomposed form first.

Two shapes of merges exist. An adjacent merge replaces A followed by B by C.
A split merge handles the visual typing order of two-part signs, where the
first part has been entered before the consonant it belongs to:

	A + consonant + B  =>  consonant + C

A split merge applies only if A is orphaned, i.e. does not follow a
consonant of its own.

Rules are applied in a fixed order per script until no rule matches, which
makes the normalization idempotent.
*/
package vowelsign

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}
