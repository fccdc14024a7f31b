package numerals

import (
	"strconv"
	"strings"
)

// tier is a magnitude level of the Indian numbering system.
type tier uint8

const (
	tens tier = iota
	hundreds
	thousands
	lakhs
	crores
	arbudas // 10^9, used by descending composition only
)

var tierDivisors = [...]int64{10, 100, 1000, 100000, 10000000, 1000000000}
var tierZeros = [...]int{1, 2, 3, 5, 7, 9}
var tierNames = [...]string{"tens", "hundreds", "thousands", "lakhs", "crores", "arbudas"}

func (t tier) divisor() int64 {
	return tierDivisors[t]
}

func (t tier) String() string {
	return tierNames[t]
}

// keyKind selects the shape of a grammar key.
type keyKind uint8

const (
	literalKey  keyKind = iota // "21"
	compoundKey                // "2x", "3xx": irregular word for a quotient at a tier
	roundKey                   // "x0", "x00": word for a tier with zero remainder
	templateKey                // "xx", "xxx": generic word for a tier
	adjunctKey                 // "x21": Sanskrit tens preceding a higher magnitude
)

// patternKey is a grammar key. Only the constructors below create keys, so
// every key is one of the shapes the rule tables use.
type patternKey struct {
	kind keyKind
	tier tier
	n    int64
}

func literal(n int64) patternKey {
	return patternKey{kind: literalKey, n: n}
}

func compound(quotient int64, t tier) patternKey {
	return patternKey{kind: compoundKey, tier: t, n: quotient}
}

func round(t tier) patternKey {
	return patternKey{kind: roundKey, tier: t}
}

func template(t tier) patternKey {
	return patternKey{kind: templateKey, tier: t}
}

func adjunct(n int64) patternKey {
	return patternKey{kind: adjunctKey, n: n}
}

// String renders the key as it appears in rule tables.
func (k patternKey) String() string {
	switch k.kind {
	case literalKey:
		return strconv.FormatInt(k.n, 10)
	case compoundKey:
		return strconv.FormatInt(k.n, 10) + strings.Repeat("x", tierZeros[k.tier])
	case roundKey:
		return "x" + strings.Repeat("0", tierZeros[k.tier])
	case templateKey:
		return "x" + strings.Repeat("x", tierZeros[k.tier])
	case adjunctKey:
		return "x" + strconv.FormatInt(k.n, 10)
	}
	assert(false, "unknown key kind")
	return ""
}

// Keys for lexemes which are not numbers.
const (
	minusKey        = "-"
	decimalPointKey = "."
)
