/*
Package segment splits normalized text into paragraphs of bounded-length
sentences.

Segmentation runs in passes over a single paragraph:

  - a boundary scan proposes candidate sentences at terminators
    ('.', '?', '!' and the script's full stops), skipping decimal points,
    ellipses and terminators followed by a closing quote;
  - a merge pass joins candidates which end in a known initial or acronym
    ("Dr.") with the following one, and attaches stray one-word
    fragments to the preceding sentence;
  - a length pass cuts sentences longer than the maximum at the last space
    within the limit.

Text is expected to be normalized already, see package indicnorm for the
complete pipeline.
*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}
