/*
Package abbrev holds the per-script sets of initials and acronyms which
must not end a sentence, and the per-language regular-expression rules that
expand abbreviations into their spoken form.

A Set is loaded from a list resource with tab-separated synonyms per line,
all of which become members:

	Dr	Dr.	ಡಾ
	Prof	ಪ್ರೊ

An Expander is loaded from a rule table, key is a regular expression and
value its replacement ($1 etc. refer to groups). Rules are applied in table
order.
*/
package abbrev

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}
