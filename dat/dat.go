/*
Package dat implements a frozen double-array trie over words of BMP code
points. It serves read-mostly word sets such as abbreviation lists, which
are built once and queried for every candidate sentence boundary.

States are indices into Base/Check, 0 is unused and Root is 1.
A transition on dense symbol c from state s leads to t = Base[s] + c, and is
valid if Check[t] == s. Symbols are dense IDs in [1..Sigma] assigned by an
Alphabet; 0 means "not in alphabet".
*/
package dat

import "fmt"

// DAT is a frozen double-array trie. Create one with a Builder.
type DAT struct {
	Root  uint32
	Sigma uint16 // size of the dense alphabet

	Base     []int32
	Check    []int32
	Terminal []bool // Terminal[s] is set if a word ends in state s

	Alphabet Alphabet
	words    int
}

// NStates returns the number of allocated slots in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Len returns the number of distinct words.
func (d *DAT) Len() int { return d.words }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) || d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows word from the root and returns the state reached.
func (d *DAT) Walk(word string) (uint32, bool) {
	if d == nil {
		return 0, false
	}
	state := d.Root
	for _, r := range word {
		if r > 0xFFFF {
			return 0, false
		}
		next, ok := d.Transition(state, d.Alphabet.Dense(uint16(r)))
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

// Contains checks if word has been added to the trie.
func (d *DAT) Contains(word string) bool {
	state, ok := d.Walk(word)
	return ok && int(state) < len(d.Terminal) && d.Terminal[state]
}

// Stats reports the density of the double array.
type Stats struct {
	UsedSlots  int
	TotalSlots int
}

// FillRatio is the share of used slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats counts used slots.
func (d *DAT) Stats() Stats {
	stats := Stats{TotalSlots: d.NStates()}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
		}
	}
	return stats
}

func (d *DAT) String() string {
	return fmt.Sprintf("DAT(words=%d,states=%d,sigma=%d)", d.words, d.NStates(), d.Sigma)
}
