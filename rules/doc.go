/*
Package rules reads the line-oriented rule tables which drive numeral
expansion, abbreviation expansion and sentence segmentation.

Two formats are supported. Entry tables hold one key and one value per line,
separated by a TAB:

	# Hindi numerals
	21	इक्कीस
	x00	सौ
	s1	ु
	p1	ने
	r1	delete

List tables hold groups of synonyms, one group per line, separated by TABs:

	डॉ	डा
	प्रो

Empty lines and lines starting with '#' are skipped in both formats. A
leading UTF-8 byte order mark is ignored.

Readers are streaming: Next returns one record at a time and io.EOF when the
input is exhausted. Interpreting the records is left to the consumers.
*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}
