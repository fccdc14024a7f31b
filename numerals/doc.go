/*
Package numerals expands numerals into their spoken form, driven by
per-language grammar tables.

Indic numerals up to 99, and often up to 999, are not compositional and must be
memorized. A Grammar therefore maps literal integers to words and supplies
"x"-templated patterns for the magnitude tiers ten, hundred, thousand, lakh
(10^5) and crore (10^7):

	21	इक्कीस          literal
	2x	twenty          irregular compound: quotient 2 at the tens tier
	x00	सौ              round: the tier's word for a zero remainder
	xxx	सौ              template: <quotient> <word> <remainder>

An Expander decomposes a number recursively, tier by tier, and joins the
fragments with vowel-junction contraction (sandhi) at the ones/tens boundary.
Sanskrit is composed in descending order instead, ones and tens first.

The scanner part of the package finds numerals in running text, handling
native digits, comma grouping in the Indian convention (#,##,##,###),
decimals, dash-separated numbers and case suffixes attached to a numeral.
In validation mode every numeral is kept next to its expansion as
"{original}{expansion}"; RemoveNumeralsAndBrackets reverses this.

All operations are total: missing table entries degrade to digit-by-digit
reading and finally to the unexpanded numeral text, never to an error.
*/
package numerals

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
